package app

import (
	"math/rand/v2"
	"sort"

	"moviemaker/internal/history/domain"
)

// ColorResolver 给 (territory, owner) 分配稳定的显示颜色。
//
// 两张表在整次任务内只增不改：同一个 id 一旦分到颜色，整段动画里都不变。
// 只在构帧阶段被单 goroutine 调用；渲染阶段只读。
type ColorResolver struct {
	rng         *rand.Rand
	territories map[int]domain.Color
	owners      map[int]domain.Color
}

// NewRand 返回颜色用的随机源；seed 为 0 时每次运行不同。
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func NewColorResolver(rng *rand.Rand, preset domain.Palette) *ColorResolver {
	if rng == nil {
		rng = NewRand(0)
	}
	r := &ColorResolver{
		rng:         rng,
		territories: make(map[int]domain.Color, len(preset.Territories)),
		owners:      make(map[int]domain.Color, len(preset.Owners)),
	}
	for id, c := range preset.Territories {
		r.territories[id] = c
	}
	for id, c := range preset.Owners {
		r.owners[id] = c
	}
	return r
}

// Resolve 规则（先匹配先生效）：
//  1. territory == 0：按 owner 取色，没有就随机一个
//  2. 否则 territory 没有颜色就随机一个
//  3. owner == 0：直接用 territory 的颜色，不建 owner 条目
//  4. owner 第一次出现时继承 territory 当前颜色
func (r *ColorResolver) Resolve(territoryID, ownerID int) domain.Color {
	if territoryID == 0 {
		c, ok := r.owners[ownerID]
		if !ok {
			c = r.RandomColor()
			r.owners[ownerID] = c
		}
		return c
	}

	tc, ok := r.territories[territoryID]
	if !ok {
		tc = r.RandomColor()
		r.territories[territoryID] = tc
	}
	if ownerID == 0 {
		return tc
	}
	oc, ok := r.owners[ownerID]
	if !ok {
		oc = tc
		r.owners[ownerID] = oc
	}
	return oc
}

// RandomColor 均匀随机的 24 位颜色。
func (r *ColorResolver) RandomColor() domain.Color {
	return domain.ColorFromRGB(uint32(r.rng.IntN(1 << 24)))
}

func (r *ColorResolver) TerritoryColor(territoryID int) (domain.Color, bool) {
	c, ok := r.territories[territoryID]
	return c, ok
}

func (r *ColorResolver) OwnerColor(ownerID int) (domain.Color, bool) {
	c, ok := r.owners[ownerID]
	return c, ok
}

// TerritoryIDs 已分配颜色的非 0 territory，升序。
func (r *ColorResolver) TerritoryIDs() []int {
	ids := make([]int, 0, len(r.territories))
	for id := range r.territories {
		if id != 0 {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}
