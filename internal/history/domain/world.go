package domain

import "math"

const (
	// CanvasSize 默认画布边长（像素）。
	CanvasSize = 1000
	// ReferenceTileSpan 地图贴图一块覆盖的世界坐标跨度。
	ReferenceTileSpan = 2500
	ArmyWidth         = 3
	ArmyHeight        = 3
)

// World 是 feed 首行元数据，整次任务只解析一次。
// Size 是世界坐标的半宽：世界坐标范围 [-Size, Size]。
type World struct {
	ID   int `mapstructure:"world"`
	Era  int `mapstructure:"era"`
	Map  int `mapstructure:"map"`
	Size int `mapstructure:"size"`
}

// Span 世界坐标总跨度。
func (w World) Span() int {
	return w.Size * 2
}

// Scale 世界坐标到图像坐标的缩放系数。
func (w World) Scale(canvas int) float64 {
	return float64(canvas) / float64(w.Span())
}

// ToImage 把一个世界坐标分量平移到 [0, span] 后缩放到图像坐标，不取整。
func (w World) ToImage(c int, canvas int) float64 {
	return float64(c+w.Size) * w.Scale(canvas)
}

// ToImageRounded 同 ToImage 但四舍五入到整数像素（.5 向上），用于 Voronoi 站点。
func (w World) ToImageRounded(c int, canvas int) float64 {
	return math.Floor(w.ToImage(c, canvas) + 0.5)
}
