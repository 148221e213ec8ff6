package feed

import (
	"strconv"
	"strings"

	"moviemaker/internal/history/domain"
)

// 行内字段位置固定。
const (
	colDay = iota
	colX
	colY
	colTerritory
	colWorld
	colSizeClass
	colKind
	colOwner
	fieldCount
)

// ParseRow 解析一行 CSV 事件，任何字段问题都是致命错误。
func ParseRow(line string) (domain.Event, error) {
	return ParseRecord(strings.Split(strings.TrimRight(line, "\r"), ","))
}

// ParseRecord 把已切分的字段解码成 Event。
func ParseRecord(fields []string) (domain.Event, error) {
	if len(fields) != fieldCount {
		return domain.Event{}, domain.ErrMalformedRow.
			WithData("fields", len(fields)).
			WithData("want", fieldCount)
	}

	var ints [fieldCount]int
	for i, f := range fields {
		if i == colKind {
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return domain.Event{}, domain.ErrMalformedRow.WithData("column", i).WithData("value", f).WithCause(err)
		}
		ints[i] = v
	}

	ev := domain.Event{
		Day:         ints[colDay],
		X:           ints[colX],
		Y:           ints[colY],
		TerritoryID: ints[colTerritory],
		WorldID:     ints[colWorld],
		SizeClass:   ints[colSizeClass],
		Kind:        domain.Kind(strings.TrimSpace(fields[colKind])),
		OwnerID:     ints[colOwner],
	}
	switch ev.Kind {
	case domain.KindCity:
		if !domain.ValidSizeClass(ev.SizeClass) {
			return domain.Event{}, domain.ErrMalformedRow.WithData("size_class", ev.SizeClass)
		}
	case domain.KindArmy:
	default:
		return domain.Event{}, domain.ErrMalformedRow.WithData("kind", string(ev.Kind))
	}
	return ev, nil
}
