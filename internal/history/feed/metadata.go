package feed

import (
	"regexp"
	"strings"

	"moviemaker/internal/history/domain"

	"github.com/go-viper/mapstructure/v2"
)

var metaPair = regexp.MustCompile(`([A-Za-z_]+)=([^\s,;&]+)`)

// ParseMetadata 解析 feed 首行的 key=value 元数据（world/era/map/size 必填，其余忽略）。
func ParseMetadata(line string) (domain.World, error) {
	pairs := metaPair.FindAllStringSubmatch(line, -1)
	raw := make(map[string]any, len(pairs))
	for _, p := range pairs {
		raw[strings.ToLower(p[1])] = p[2]
	}

	var w domain.World
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnset:       true,
		Result:           &w,
	})
	if err != nil {
		return domain.World{}, domain.ErrMalformedMetadata.WithCause(err)
	}
	if err := dec.Decode(raw); err != nil {
		return domain.World{}, domain.ErrMalformedMetadata.WithData("line", line).WithCause(err)
	}
	if w.Size <= 0 {
		return domain.World{}, domain.ErrMalformedMetadata.WithData("line", line).WithData("size", w.Size)
	}
	return w, nil
}
