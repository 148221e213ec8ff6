package voronoi

// vertex 是多边形顶点；tag 是“从该顶点出发的那条边”来自哪个邻居。
type vertex struct {
	p   Point
	tag int
}

const nearEps = 1e-9

func (b BBox) polygon() []vertex {
	return []vertex{
		{Point{b.XL, b.YT}, NoSite},
		{Point{b.XR, b.YT}, NoSite},
		{Point{b.XR, b.YB}, NoSite},
		{Point{b.XL, b.YB}, NoSite},
	}
}

// clip 保留 poly 中离 s 比离 o 更近的部分（Sutherland–Hodgman，单条裁剪线）。
// 裁剪线上新生成的边打上 o 的下标。
func clip(poly []vertex, s, o Point, oIndex int) []vertex {
	dx, dy := o.X-s.X, o.Y-s.Y
	mx, my := (s.X+o.X)/2, (s.Y+o.Y)/2
	eps := nearEps * (dx*dx + dy*dy)
	side := func(p Point) float64 {
		return (p.X-mx)*dx + (p.Y-my)*dy
	}

	n := len(poly)
	out := make([]vertex, 0, n+1)
	for k := 0; k < n; k++ {
		a, b := poly[k], poly[(k+1)%n]
		da, db := side(a.p), side(b.p)
		aIn, bIn := da <= eps, db <= eps
		switch {
		case aIn && bIn:
			out = append(out, a)
		case aIn && !bIn:
			out = append(out, a, vertex{intersect(a.p, b.p, da, db), oIndex})
		case !aIn && bIn:
			out = append(out, vertex{intersect(a.p, b.p, da, db), a.tag})
		}
	}
	return dedupe(out)
}

func intersect(a, b Point, da, db float64) Point {
	t := da / (da - db)
	return Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
}

// dedupe 去掉零长度的边：丢弃零长度边的起点，后继顶点的 tag 保留。
func dedupe(poly []vertex) []vertex {
	n := len(poly)
	if n < 3 {
		return nil
	}
	out := make([]vertex, 0, n)
	for k, v := range poly {
		if near(v.p, poly[(k+1)%n].p) {
			continue
		}
		out = append(out, v)
	}
	if len(out) < 3 {
		return nil
	}
	return out
}

func near(a, b Point) bool {
	return dist2(a, b) < nearEps
}
