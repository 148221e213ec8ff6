package palette

import (
	"errors"
	"io/fs"

	"moviemaker/internal/history/domain"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type file struct {
	Territories map[int]string `yaml:"territories"`
	Owners      map[int]string `yaml:"owners"`
}

// Load 读取预设颜色表。path 为空或文件不存在时返回空表。
func Load(fsys afero.Fs, path string) (domain.Palette, error) {
	empty := domain.Palette{Territories: map[int]domain.Color{}, Owners: map[int]domain.Color{}}
	if path == "" {
		return empty, nil
	}
	raw, err := afero.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return empty, nil
	}
	if err != nil {
		return domain.Palette{}, err
	}
	return Parse(raw)
}

func Parse(raw []byte) (domain.Palette, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return domain.Palette{}, domain.ErrInvalidColor.WithData("reason", "yaml").WithCause(err)
	}
	territories, err := parseTable(f.Territories)
	if err != nil {
		return domain.Palette{}, err
	}
	owners, err := parseTable(f.Owners)
	if err != nil {
		return domain.Palette{}, err
	}
	return domain.Palette{Territories: territories, Owners: owners}, nil
}

func parseTable(in map[int]string) (map[int]domain.Color, error) {
	out := make(map[int]domain.Color, len(in))
	for id, s := range in {
		c, err := domain.ParseColor(s)
		if err != nil {
			return nil, err
		}
		out[id] = c
	}
	return out, nil
}
