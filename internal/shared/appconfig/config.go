package appconfig

import (
	"errors"

	"moviemaker/internal/shared/config"
)

// Default 返回内置默认值；配置文件里出现的字段会覆盖它们。
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", MaxSize: 10, MaxBackups: 3, MaxAge: 7},
		Render: RenderConfig{
			CanvasSize:           1000,
			Workers:              4,
			OutputDir:            "./frames",
			ShowTerritoryBanners: true,
			ShowTerritoryBorders: true,
			ShowRulerBorders:     true,
			BannerAlpha:          0.25,
			BannerWidth:          120,
			BannerHeight:         100,
		},
		Feed: FeedConfig{
			URLTemplate: "http://visual-utopia.com/history/%d_%s.csv",
			GapPolicy:   "strict",
			TimeoutS:    30,
		},
		Assets: AssetsConfig{
			MapBaseURL:     "http://static.visual-utopia.com/images/",
			MapCacheDir:    "./maps",
			BannerBaseURL:  "http://visual-utopia.com/KDbanners/",
			BannerCacheDir: "./kdbanners",
			FetchWorkers:   8,
		},
	}
}

// Load 读取配置：cfgName 为空时向上查找 configs/conf.yml，找不到就用默认值；
// 显式指定的文件不存在则报错。
func Load(cfgName string) (Config, error) {
	conf := Default()
	err := config.Load(cfgName, &conf)
	if cfgName == "" && errors.Is(err, config.ErrConfigNotFound) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	return conf, nil
}
