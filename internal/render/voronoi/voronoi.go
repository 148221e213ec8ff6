// Package voronoi 计算裁剪到矩形画布内的平面 Voronoi 剖分。
//
// 每个站点的 cell 由画布矩形依次被它与其它站点的中垂线半平面裁剪得到，
// 裁剪时记录每条边来自哪个邻居，从而同时得到 cell 邻接关系和共享边。
// 结果是只读值：渲染各层各自遍历 Cells / Edges，不共享游标。
package voronoi

import (
	"math"
	"sort"
)

// NoSite 表示边的这一侧没有站点（画布边界）。
const NoSite = -1

type Point struct {
	X, Y float64
}

// BBox 裁剪矩形：x ∈ [XL, XR]，y ∈ [YT, YB]（图像坐标，y 向下）。
type BBox struct {
	XL, XR, YT, YB float64
}

// Square 返回 [0,size]×[0,size] 的画布矩形。
func Square(size float64) BBox {
	return BBox{XL: 0, XR: size, YT: 0, YB: size}
}

// Halfedge 是 cell 边界上的一段有向边；Neighbor 为对面 cell 的站点下标。
type Halfedge struct {
	Start    Point
	End      Point
	Neighbor int
}

// Cell 对应输入的一个站点。Halfedges 首尾相接围成闭合多边形；
// 重复站点的后来者没有 Halfedges（退化 cell）。
type Cell struct {
	Site      int
	Halfedges []Halfedge
}

func (c Cell) Degenerate() bool {
	return len(c.Halfedges) == 0
}

// Polygon 返回 cell 顶点序列（不重复首点）。
func (c Cell) Polygon() []Point {
	pts := make([]Point, 0, len(c.Halfedges))
	for _, h := range c.Halfedges {
		pts = append(pts, h.Start)
	}
	return pts
}

// Edge 是剖分中的一条边。Left < Right；画布边界上的边 Right == NoSite。
type Edge struct {
	Left  int
	Right int
	A     Point
	B     Point
}

// Shared 报告边两侧是否都有站点。
func (e Edge) Shared() bool {
	return e.Left != NoSite && e.Right != NoSite
}

type Diagram struct {
	Cells []Cell // Cells[i].Site == i
	Edges []Edge
}

// Compute 计算 sites 的 Voronoi 剖分并裁剪到 bbox。
func Compute(sites []Point, bbox BBox) *Diagram {
	d := &Diagram{Cells: make([]Cell, len(sites))}
	if len(sites) == 0 {
		return d
	}

	// 坐标完全相同的站点只有第一个参与剖分
	dup := make([]bool, len(sites))
	firstAt := make(map[Point]int, len(sites))
	for i, p := range sites {
		if _, ok := firstAt[p]; ok {
			dup[i] = true
			continue
		}
		firstAt[p] = i
	}

	order := make([]int, 0, len(sites))
	for i := range sites {
		d.Cells[i].Site = i
		if dup[i] {
			continue
		}
		order = order[:0]
		for j := range sites {
			if j != i && !dup[j] {
				order = append(order, j)
			}
		}
		s := sites[i]
		sort.Slice(order, func(a, b int) bool {
			return dist2(s, sites[order[a]]) < dist2(s, sites[order[b]])
		})
		d.Cells[i].Halfedges = cellOf(i, sites, order, bbox)
	}

	d.Edges = collectEdges(d.Cells)
	return d
}

// cellOf 用按距离排序的邻居依次裁剪画布矩形。
// 当邻居距离的一半超过 cell 外接半径时，后面的邻居都不可能再切到它。
func cellOf(i int, sites []Point, order []int, bbox BBox) []Halfedge {
	s := sites[i]
	poly := bbox.polygon()
	for _, j := range order {
		if len(poly) == 0 {
			break
		}
		if dist2(s, sites[j])/4 > maxDist2(s, poly) {
			break
		}
		poly = clip(poly, s, sites[j], j)
	}
	if len(poly) < 3 {
		return nil
	}
	out := make([]Halfedge, len(poly))
	for k, v := range poly {
		out[k] = Halfedge{Start: v.p, End: poly[(k+1)%len(poly)].p, Neighbor: v.tag}
	}
	return out
}

func collectEdges(cells []Cell) []Edge {
	var edges []Edge
	seen := make(map[[2]int]bool)
	for _, c := range cells {
		for _, h := range c.Halfedges {
			if h.Neighbor == NoSite {
				edges = append(edges, Edge{Left: c.Site, Right: NoSite, A: h.Start, B: h.End})
				continue
			}
			key := [2]int{min(c.Site, h.Neighbor), max(c.Site, h.Neighbor)}
			if seen[key] {
				continue
			}
			seen[key] = true
			edges = append(edges, Edge{Left: key[0], Right: key[1], A: h.Start, B: h.End})
		}
	}
	return edges
}

func dist2(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

func maxDist2(s Point, poly []vertex) float64 {
	m := 0.0
	for _, v := range poly {
		m = math.Max(m, dist2(s, v.p))
	}
	return m
}
