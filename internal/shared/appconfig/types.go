package appconfig

type Config struct {
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	Render  RenderConfig  `yaml:"render" mapstructure:"render"`
	Feed    FeedConfig    `yaml:"feed" mapstructure:"feed"`
	Assets  AssetsConfig  `yaml:"assets" mapstructure:"assets"`
	Palette PaletteConfig `yaml:"palette" mapstructure:"palette"`
}

type LogConfig struct {
	FileDir    string `yaml:"file_dir" mapstructure:"file_dir"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"` // MB
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"` // days
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	Level      string `yaml:"level" mapstructure:"level"` // debug/info/warn/error...
	Dev        bool   `yaml:"dev" mapstructure:"dev"`
}

type RenderConfig struct {
	CanvasSize           int     `yaml:"canvas_size" mapstructure:"canvas_size"`
	Workers              int     `yaml:"workers" mapstructure:"workers"`
	OutputDir            string  `yaml:"output_dir" mapstructure:"output_dir"`
	SingleFrame          bool    `yaml:"single_frame" mapstructure:"single_frame"`
	Seed                 uint64  `yaml:"seed" mapstructure:"seed"` // 0 表示每次随机
	ShowTerritoryBanners bool    `yaml:"show_territory_banners" mapstructure:"show_territory_banners"`
	ShowTerritoryBorders bool    `yaml:"show_territory_borders" mapstructure:"show_territory_borders"`
	ShowRulerBorders     bool    `yaml:"show_ruler_borders" mapstructure:"show_ruler_borders"`
	BannerAlpha          float64 `yaml:"banner_alpha" mapstructure:"banner_alpha"`
	BannerWidth          int     `yaml:"banner_width" mapstructure:"banner_width"`
	BannerHeight         int     `yaml:"banner_height" mapstructure:"banner_height"`
}

type FeedConfig struct {
	URLTemplate string `yaml:"url_template" mapstructure:"url_template"` // 参数：world id, era
	File        string `yaml:"file" mapstructure:"file"`                 // 本地 .csv / .csv.zst，设置后不走网络
	ArchiveDir  string `yaml:"archive_dir" mapstructure:"archive_dir"`   // 下载后额外存一份 zstd 压缩副本
	GapPolicy   string `yaml:"gap_policy" mapstructure:"gap_policy"`     // strict/backfill
	TimeoutS    int    `yaml:"timeout_s" mapstructure:"timeout_s"`
}

type AssetsConfig struct {
	MapBaseURL     string `yaml:"map_base_url" mapstructure:"map_base_url"`
	MapCacheDir    string `yaml:"map_cache_dir" mapstructure:"map_cache_dir"`
	BannerBaseURL  string `yaml:"banner_base_url" mapstructure:"banner_base_url"`
	BannerCacheDir string `yaml:"banner_cache_dir" mapstructure:"banner_cache_dir"`
	FetchWorkers   int    `yaml:"fetch_workers" mapstructure:"fetch_workers"`
}

type PaletteConfig struct {
	File string `yaml:"file" mapstructure:"file"`
}
