package feed

import (
	"errors"
	"testing"

	"moviemaker/internal/history/domain"
	"moviemaker/modules/kit/errx"
)

func TestParseRow_城市与军队(t *testing.T) {
	ev, err := ParseRow("5,0,0,10,1,0,city,0")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	want := domain.Event{Day: 5, TerritoryID: 10, WorldID: 1, Kind: domain.KindCity}
	if ev != want {
		t.Fatalf("期望 %+v, got=%+v", want, ev)
	}

	ev, err = ParseRow("5,50,-50,10,1,0,army,7\r")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if ev.Kind != domain.KindArmy || ev.X != 50 || ev.Y != -50 || ev.OwnerID != 7 {
		t.Fatalf("期望解析出军队 (50,-50) owner=7, got=%+v", ev)
	}
}

func TestParseRow_非法行都是致命错误(t *testing.T) {
	cases := map[string]string{
		"字段太少":         "5,0,0,10,1,0,city",
		"字段太多":         "5,0,0,10,1,0,city,0,9",
		"数字字段非法":       "5,x,0,10,1,0,city,0",
		"owner非法":      "5,0,0,10,1,0,city,abc",
		"未知类型":         "5,0,0,10,1,0,ship,0",
		"size class越界": "5,0,0,10,1,10,city,0",
	}
	for name, line := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseRow(line); !errors.Is(err, domain.ErrMalformedRow) {
				t.Fatalf("期望 ErrMalformedRow, got=%v", err)
			}
		})
	}
}

func TestParseMetadata(t *testing.T) {
	w, err := ParseMetadata("world=1 era=3 map=9 size=100 name=Fantasia")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if w != (domain.World{ID: 1, Era: 3, Map: 9, Size: 100}) {
		t.Fatalf("got=%+v", w)
	}

	if _, err := ParseMetadata("world=1 era=3 map=9"); !errors.Is(err, domain.ErrMalformedMetadata) {
		t.Fatalf("缺 size 期望 ErrMalformedMetadata, got=%v", err)
	}
	if _, err := ParseMetadata("world=1 era=3 map=9 size=0"); !errors.Is(err, domain.ErrMalformedMetadata) {
		t.Fatalf("size=0 期望 ErrMalformedMetadata, got=%v", err)
	}
	if _, err := ParseMetadata("world=one era=3 map=9 size=10"); !errors.Is(err, domain.ErrMalformedMetadata) {
		t.Fatalf("world 非数字期望 ErrMalformedMetadata, got=%v", err)
	}
}

func TestParseString_完整feed(t *testing.T) {
	text := "world=1 era=1 map=1 size=100\n5,0,0,10,1,0,city,0\n5,50,50,10,1,0,army,7\n6,1,1,0,1,2,city,3\n"
	f, err := ParseString(text)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if f.World.Size != 100 || len(f.Events) != 3 {
		t.Fatalf("期望 size=100 且 3 个事件, got world=%+v events=%d", f.World, len(f.Events))
	}
	if f.Events[2].Day != 6 || f.Events[2].OwnerID != 3 {
		t.Fatalf("期望第三行 day=6 owner=3, got=%+v", f.Events[2])
	}
}

func TestParseString_坏行带行号(t *testing.T) {
	text := "world=1 era=1 map=1 size=100\n5,0,0,10,1,0,city,0\n5,0,0,10,1,0,city,zz\n"
	_, err := ParseString(text)
	if !errors.Is(err, domain.ErrMalformedRow) {
		t.Fatalf("期望 ErrMalformedRow, got=%v", err)
	}
	var e *errx.Error
	if !errors.As(err, &e) || e.Data()["line"] != 3 {
		t.Fatalf("期望错误带 line=3, got=%v", err)
	}
}

func TestParseString_只有元数据(t *testing.T) {
	if _, err := ParseString("world=1 era=1 map=1 size=100\n"); !errors.Is(err, domain.ErrEmptyFeed) {
		t.Fatalf("期望 ErrEmptyFeed, got=%v", err)
	}
	if _, err := ParseString(""); !errors.Is(err, domain.ErrEmptyFeed) {
		t.Fatalf("期望 ErrEmptyFeed, got=%v", err)
	}
}
