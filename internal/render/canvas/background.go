package canvas

import (
	"image"
	"math"

	"moviemaker/internal/history/domain"
	"moviemaker/modules/kit/errx"

	xdraw "golang.org/x/image/draw"
)

const CodeBackgroundInvalid errx.Code = "BACKGROUND_INVALID"

var ErrBackgroundInvalid = errx.NewBiz(CodeBackgroundInvalid, "无法生成地图背景")

// TileLayout 地图贴图平铺参数。一块贴图覆盖 ReferenceTileSpan 个世界单位；
// 世界跨度不是整数倍时，起点取负偏移让余量左右各分一半。
type TileLayout struct {
	MapSpan  int
	Scale    float64
	TileSize int
	Repeat   int
	Start    float64
}

func NewTileLayout(worldSize, canvasSize int) (TileLayout, error) {
	if worldSize <= 0 || canvasSize <= 0 {
		return TileLayout{}, ErrBackgroundInvalid.WithData("world_size", worldSize).WithData("canvas_size", canvasSize)
	}
	span := worldSize * 2
	scale := float64(canvasSize) / float64(span)
	l := TileLayout{
		MapSpan:  span,
		Scale:    scale,
		TileSize: int(math.Floor(domain.ReferenceTileSpan * scale)),
		Repeat:   span / domain.ReferenceTileSpan,
	}
	if rem := span % domain.ReferenceTileSpan; rem != 0 {
		l.Start = -float64(rem) / 2 * scale
	}
	if l.TileSize < 1 {
		return TileLayout{}, ErrBackgroundInvalid.WithData("world_size", worldSize).WithData("tile_size", l.TileSize)
	}
	return l, nil
}

// Origins 返回每块贴图左上角坐标（x、y 相同）。
func (l TileLayout) Origins(canvasSize int) []float64 {
	var out []float64
	for k := 0; ; k++ {
		p := l.Start + float64(k*l.TileSize)
		if p >= float64(canvasSize) {
			return out
		}
		out = append(out, p)
	}
}

// ComposeBackground 把地图贴图平铺成整张画布大小的背景。整次任务只算一次，各帧只读共享。
func ComposeBackground(tile image.Image, worldSize, canvasSize int) (*image.RGBA, error) {
	if tile == nil || tile.Bounds().Empty() {
		return nil, ErrBackgroundInvalid.WithData("reason", "empty tile")
	}
	layout, err := NewTileLayout(worldSize, canvasSize)
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, canvasSize, canvasSize))
	origins := layout.Origins(canvasSize)
	for _, x := range origins {
		for _, y := range origins {
			x0, y0 := int(math.Floor(x)), int(math.Floor(y))
			r := image.Rect(x0, y0, x0+layout.TileSize, y0+layout.TileSize)
			xdraw.BiLinear.Scale(dst, r, tile, tile.Bounds(), xdraw.Over, nil)
		}
	}
	return dst, nil
}
