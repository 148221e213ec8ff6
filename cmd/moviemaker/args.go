package main

import (
	"moviemaker/internal/shared/appconfig"

	"github.com/spf13/pflag"
)

type cliArgs struct {
	conf     string
	world    string
	era      string
	single   bool
	seed     uint64
	out      string
	feedFile string
	set      map[string]bool
}

// parseArgs 支持 `moviemaker Fantasia last -t` 这种位置参数写法，也支持 --world/--era。
func parseArgs(argv []string) (cliArgs, error) {
	var a cliArgs
	fs := pflag.NewFlagSet("moviemaker", pflag.ContinueOnError)
	fs.StringVar(&a.conf, "conf", "", "配置文件路径，默认向上查找 configs/conf.yml")
	fs.StringVar(&a.world, "world", "Fantasia", "世界名或世界 id")
	fs.StringVar(&a.era, "era", "last", "纪元")
	fs.BoolVarP(&a.single, "test", "t", false, "只渲染第一帧")
	fs.Uint64Var(&a.seed, "seed", 0, "颜色随机种子，0 表示每次不同")
	fs.StringVar(&a.out, "out", "", "帧输出目录")
	fs.StringVar(&a.feedFile, "feed-file", "", "本地 feed 文件（.csv 或 .csv.zst）")
	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}

	pos := fs.Args()
	if len(pos) > 0 {
		a.world = pos[0]
	}
	if len(pos) > 1 {
		a.era = pos[1]
	}

	a.set = make(map[string]bool)
	fs.Visit(func(f *pflag.Flag) { a.set[f.Name] = true })
	return a, nil
}

// apply 命令行显式给出的参数覆盖配置文件。
func (a cliArgs) apply(conf *appconfig.Config) {
	if a.set["test"] {
		conf.Render.SingleFrame = a.single
	}
	if a.set["seed"] {
		conf.Render.Seed = a.seed
	}
	if a.set["out"] {
		conf.Render.OutputDir = a.out
	}
	if a.set["feed-file"] {
		conf.Feed.File = a.feedFile
	}
}
