package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"moviemaker/internal/history/domain"

	xdraw "golang.org/x/image/draw"
)

// Banner 领地填充样式：有旗帜图就用重复纹理，否则用纯色。
type Banner struct {
	Texture  image.Image
	Fallback color.NRGBA
}

func (b Banner) HasTexture() bool {
	return b.Texture != nil
}

// BannerSet territory id -> Banner，渲染阶段只读。
type BannerSet map[int]Banner

// NewTextureBanner 把旗帜图缩放到 w×h 并预乘透明度，作为重复纹理的一块。
func NewTextureBanner(src image.Image, w, h int, alpha float64) Banner {
	r := image.Rect(0, 0, max(1, w), max(1, h))
	scaled := image.NewRGBA(r)
	xdraw.CatmullRom.Scale(scaled, r, src, src.Bounds(), xdraw.Src, nil)

	out := image.NewRGBA(r)
	a := uint8(min(max(alpha, 0), 1)*255 + 0.5)
	draw.DrawMask(out, r, scaled, image.Point{}, image.NewUniform(color.Alpha{A: a}), image.Point{}, draw.Over)
	return Banner{Texture: out}
}

// NewColorBanner 没有旗帜图时的低透明度纯色填充。
func NewColorBanner(c domain.Color, alpha float64) Banner {
	return Banner{Fallback: c.NRGBA(alpha)}
}
