package feed

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"moviemaker/internal/history/domain"
	"moviemaker/modules/kit/errx"
)

// Feed 是解析后的完整输入：世界元数据 + 按天升序的事件流。
type Feed struct {
	World  domain.World
	Events []domain.Event
}

// Parse 读取 feed 文本：首行元数据，其余每行 8 个逗号分隔字段。
func Parse(r io.Reader) (*Feed, error) {
	br := bufio.NewReader(r)
	header, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, errx.ErrUnavailable.WithCause(err)
	}
	if strings.TrimSpace(header) == "" {
		return nil, domain.ErrEmptyFeed
	}
	world, err := ParseMetadata(header)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = fieldCount
	cr.ReuseRecord = true
	cr.TrimLeadingSpace = true

	out := &Feed{World: world}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				// 首行元数据不在 csv reader 里，行号要 +1
				return nil, domain.ErrMalformedRow.WithData("line", pe.Line+1).WithCause(err)
			}
			return nil, errx.ErrUnavailable.WithCause(err)
		}
		ev, err := ParseRecord(rec)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, withLine(err, line+1)
		}
		out.Events = append(out.Events, ev)
	}
	if len(out.Events) == 0 {
		return nil, domain.ErrEmptyFeed
	}
	return out, nil
}

// ParseString 解析已经取回的 feed 文本。
func ParseString(text string) (*Feed, error) {
	return Parse(strings.NewReader(strings.TrimSpace(text)))
}

func withLine(err error, line int) error {
	var e *errx.Error
	if errors.As(err, &e) {
		return e.WithData("line", line)
	}
	return domain.ErrMalformedRow.WithData("line", line).WithCause(err)
}
