package config

import (
	"os"
	"strings"

	"moviemaker/modules/kit/errx"

	"github.com/spf13/viper"
)

const (
	CodeConfigNotFound Code = "CONFIG_NOT_FOUND"
	CodeConfigInvalid  Code = "CONFIG_INVALID"
)

type Code = errx.Code

var (
	ErrConfigNotFound = errx.NewBiz(CodeConfigNotFound, "配置文件不存在")
	ErrConfigInvalid  = errx.NewBiz(CodeConfigInvalid, "配置文件解析失败")
)

// 渲染任务是一次性批处理，只在启动时读取一次配置，不做热更新。
func load(configPath string, out any) error {
	if !fileExist(configPath) {
		return ErrConfigNotFound.WithData("path", configPath)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	// 环境变量覆盖：MOVIEMAKER_RENDER_WORKERS=8
	v.SetEnvPrefix("moviemaker")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return ErrConfigInvalid.WithData("path", configPath).WithCause(err)
	}
	if err := v.Unmarshal(out); err != nil {
		return ErrConfigInvalid.WithData("path", configPath).WithCause(err)
	}
	return nil
}

func fileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return err == nil
}
