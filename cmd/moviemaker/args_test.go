package main

import (
	"testing"

	"moviemaker/internal/shared/appconfig"
)

func TestParseArgs_默认值(t *testing.T) {
	a, err := parseArgs(nil)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if a.world != "Fantasia" || a.era != "last" || a.single {
		t.Fatalf("期望默认 Fantasia/last, got=%+v", a)
	}
}

func TestParseArgs_位置参数与单帧开关(t *testing.T) {
	a, err := parseArgs([]string{"Mantrax", "3", "-t"})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if a.world != "Mantrax" || a.era != "3" || !a.single {
		t.Fatalf("期望 Mantrax/3/单帧, got=%+v", a)
	}
}

func TestParseArgs_命令行覆盖配置(t *testing.T) {
	a, err := parseArgs([]string{"--world", "7", "--seed", "9", "--out", "/tmp/f", "--feed-file", "x.csv.zst"})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	conf := appconfig.Default()
	a.apply(&conf)
	if a.world != "7" || conf.Render.Seed != 9 || conf.Render.OutputDir != "/tmp/f" || conf.Feed.File != "x.csv.zst" {
		t.Fatalf("期望命令行覆盖配置, args=%+v conf=%+v", a, conf.Render)
	}
	if conf.Render.SingleFrame {
		t.Fatalf("未给 -t 时期望保持配置值")
	}
}

func TestParseArgs_未知参数报错(t *testing.T) {
	if _, err := parseArgs([]string{"--nope"}); err == nil {
		t.Fatalf("期望未知参数报错")
	}
}
