package config

import (
	"os"
	"path/filepath"

	"moviemaker/modules/kit/errx"
)

const defaultConfigRelPath = "configs/conf.yml"

// Load 把配置文件解析到 out（指向带 mapstructure tag 的结构体）。
//
// 约定：
// 1) 传入 cfgName（相对/绝对路径）则优先使用；
// 2) 否则从当前目录开始向上查找 `configs/conf.yml`。
func Load(cfgName string, out any) error {
	curDir, err := os.Getwd()
	if err != nil {
		return errx.ErrUnavailable.WithCause(err)
	}
	if cfgName != "" {
		if !filepath.IsAbs(cfgName) {
			cfgName = filepath.Join(curDir, cfgName)
		}
		return load(cfgName, out)
	}
	path, err := findConfigUpward(curDir)
	if err != nil {
		return err
	}
	return load(path, out)
}

func findConfigUpward(startDir string) (string, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, defaultConfigRelPath)
		if fileExist(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrConfigNotFound.WithData("search_from", startDir)
		}
		dir = parent
	}
}
