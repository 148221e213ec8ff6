package domain

// City 已换算到图像坐标的城市，也是 Voronoi 的站点。
type City struct {
	X           float64
	Y           float64
	Radius      float64
	TerritoryID int
	OwnerID     int
	Color       Color
}

// Army 已换算到图像坐标的军队，不参与 Voronoi。
type Army struct {
	X           float64
	Y           float64
	TerritoryID int
	OwnerID     int
	Color       Color
}

// Frame 一天的完整快照，动画的最小单位。
type Frame struct {
	Day    int
	Cities []City
	Armies []Army
}

// NewFrame 创建空帧（列表非 nil，方便下游直接 range / 序列化）。
func NewFrame(day int) Frame {
	return Frame{Day: day, Cities: []City{}, Armies: []Army{}}
}

func (f Frame) Empty() bool {
	return len(f.Cities) == 0 && len(f.Armies) == 0
}
