package app

import (
	"testing"

	"moviemaker/internal/history/domain"
)

func newTestResolver(preset domain.Palette) *ColorResolver {
	return NewColorResolver(NewRand(7), preset)
}

func TestResolve_同一对id颜色稳定(t *testing.T) {
	r := newTestResolver(domain.Palette{})
	pairs := [][2]int{{0, 3}, {10, 0}, {10, 7}, {11, 7}, {0, 0}}
	first := make([]domain.Color, len(pairs))
	for i, p := range pairs {
		first[i] = r.Resolve(p[0], p[1])
	}
	for round := 0; round < 3; round++ {
		for i, p := range pairs {
			if got := r.Resolve(p[0], p[1]); got != first[i] {
				t.Fatalf("round=%d pair=%v 期望颜色稳定 %s, got=%s", round, p, first[i], got)
			}
		}
	}
}

func TestResolve_有领地无owner返回领地颜色且不建owner条目(t *testing.T) {
	r := newTestResolver(domain.Palette{})
	got := r.Resolve(10, 0)
	tc, ok := r.TerritoryColor(10)
	if !ok || got != tc {
		t.Fatalf("期望返回领地颜色 %s, got=%s", tc, got)
	}
	if _, ok := r.OwnerColor(0); ok {
		t.Fatalf("期望不创建 owner=0 条目")
	}
}

func TestResolve_新统治者继承领地颜色(t *testing.T) {
	r := newTestResolver(domain.Palette{})
	tc := r.Resolve(10, 0)
	if got := r.Resolve(10, 7); got != tc {
		t.Fatalf("期望新 owner 首次取到领地颜色 %s, got=%s", tc, got)
	}
	// 之后 owner 换到别的领地仍保持自己的颜色
	r.Resolve(11, 0)
	if got := r.Resolve(11, 7); got != tc {
		t.Fatalf("期望 owner=7 颜色稳定 %s, got=%s", tc, got)
	}
}

func TestResolve_无领地按owner取色(t *testing.T) {
	r := newTestResolver(domain.Palette{})
	c := r.Resolve(0, 3)
	oc, ok := r.OwnerColor(3)
	if !ok || oc != c {
		t.Fatalf("期望 owner=3 已存颜色 %s, got=%s ok=%v", c, oc, ok)
	}
	if _, ok := r.TerritoryColor(0); ok {
		t.Fatalf("期望 territory=0 不建条目")
	}
	if ids := r.TerritoryIDs(); len(ids) != 0 {
		t.Fatalf("期望没有 territory, got=%v", ids)
	}
}

func TestResolve_预设颜色优先(t *testing.T) {
	r := newTestResolver(domain.Palette{
		Territories: map[int]domain.Color{5783: "#46d2c4"},
		Owners:      map[int]domain.Color{9: "#000001"},
	})
	if got := r.Resolve(5783, 0); got != "#46d2c4" {
		t.Fatalf("期望预设领地颜色, got=%s", got)
	}
	if got := r.Resolve(5783, 9); got != "#000001" {
		t.Fatalf("期望预设 owner 颜色, got=%s", got)
	}
}

func TestResolve_相同种子结果相同(t *testing.T) {
	a := newTestResolver(domain.Palette{})
	b := newTestResolver(domain.Palette{})
	for _, id := range []int{4, 8, 15, 16, 23, 42} {
		if ca, cb := a.Resolve(id, 0), b.Resolve(id, 0); ca != cb {
			t.Fatalf("期望同种子同颜色 id=%d a=%s b=%s", id, ca, cb)
		}
	}
	if ids := a.TerritoryIDs(); len(ids) != 6 || ids[0] != 4 || ids[5] != 42 {
		t.Fatalf("期望 TerritoryIDs 升序, got=%v", ids)
	}
}

func TestRandomColor_格式(t *testing.T) {
	r := newTestResolver(domain.Palette{})
	for i := 0; i < 100; i++ {
		c := r.RandomColor()
		if _, err := domain.ParseColor(string(c)); err != nil || len(c) != 7 {
			t.Fatalf("期望 #rrggbb 格式, got=%q", c)
		}
	}
}
