package assets

import (
	"strconv"
	"strings"

	"moviemaker/internal/history/domain"
)

var worldIDs = map[string]int{
	"fantasia":     1,
	"mantrax":      2,
	"zetamania":    3,
	"starta":       4,
	"nirvana":      5,
	"valhalla":     6,
	"armageddon":   7,
	"talents":      8,
	"midgard":      9,
	"latha":        10,
	"fensteria":    11,
	"mogrox":       12,
	"good vs evil": 13,
}

// WorldIDByName 世界名不区分大小写；不在表里时按数字 id 解析。
func WorldIDByName(name string) (int, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if id, ok := worldIDs[key]; ok {
		return id, nil
	}
	id, err := strconv.Atoi(key)
	if err != nil || id <= 0 {
		return 0, domain.ErrUnknownWorld.WithData("world", name)
	}
	return id, nil
}
