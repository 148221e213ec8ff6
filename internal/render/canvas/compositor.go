package canvas

import (
	"context"
	"image"
	"image/color"

	"moviemaker/internal/history/domain"
	"moviemaker/internal/render/voronoi"
	"moviemaker/modules/kit/logx"

	"github.com/fogleman/gg"
	"go.uber.org/zap"
)

// Options 图层开关只影响画不画，不影响几何计算。
type Options struct {
	CanvasSize           int
	ShowBanners          bool
	ShowTerritoryBorders bool
	ShowRulerBorders     bool
	BannerAlpha          float64
}

// 图层样式
const (
	territoryBorderAlpha = 0.7
	territoryBorderWidth = 4
	rulerBorderWidth     = 1
	cityOutlineWidth     = 3
	armyOutlineWidth     = 1
)

var (
	territoryBorderDash = []float64{4, 2}
	rulerBorderDash     = []float64{2, 1}
)

// Compositor 按固定层序把一帧画到背景副本上：
// 背景 -> 领地旗帜填充 -> 领地边界 -> 统治者边界 -> 城市 -> 军队。
// 背景和 banners 只读，可被多个 goroutine 同时使用。
type Compositor struct {
	opts       Options
	background image.Image
	banners    BannerSet
	log        logx.Logger
}

func NewCompositor(background image.Image, banners BannerSet, opts Options, log logx.Logger) *Compositor {
	if opts.CanvasSize <= 0 {
		opts.CanvasSize = domain.CanvasSize
	}
	if log == nil {
		log = logx.Nop()
	}
	return &Compositor{opts: opts, background: background, banners: banners, log: log}
}

// Sites 帧内城市坐标，作为 Voronoi 站点；下标与 frame.Cities 一一对应。
func Sites(frame domain.Frame) []voronoi.Point {
	out := make([]voronoi.Point, len(frame.Cities))
	for i, c := range frame.Cities {
		out[i] = voronoi.Point{X: c.X, Y: c.Y}
	}
	return out
}

// Tessellate 计算帧的 Voronoi 剖分。
func (c *Compositor) Tessellate(frame domain.Frame) *voronoi.Diagram {
	return voronoi.Compute(Sites(frame), voronoi.Square(float64(c.opts.CanvasSize)))
}

func (c *Compositor) Render(ctx context.Context, frame domain.Frame, d *voronoi.Diagram) image.Image {
	var dc *gg.Context
	if c.background != nil {
		dc = gg.NewContextForImage(c.background)
	} else {
		dc = gg.NewContext(c.opts.CanvasSize, c.opts.CanvasSize)
	}

	if c.opts.ShowBanners {
		c.fillBanners(ctx, dc, frame, d)
	}
	if c.opts.ShowTerritoryBorders {
		c.strokeTerritoryBorders(dc, frame, d)
	}
	if c.opts.ShowRulerBorders {
		c.strokeRulerBorders(dc, frame, d)
	}
	drawCities(dc, frame.Cities)
	drawArmies(dc, frame.Armies)
	return dc.Image()
}

func (c *Compositor) fillBanners(ctx context.Context, dc *gg.Context, frame domain.Frame, d *voronoi.Diagram) {
	degenerate := 0
	for _, cell := range d.Cells {
		if cell.Degenerate() {
			degenerate++
			continue
		}
		city := frame.Cities[cell.Site]
		if city.TerritoryID == 0 {
			continue
		}

		h0 := cell.Halfedges[0]
		dc.MoveTo(h0.Start.X, h0.Start.Y)
		for _, h := range cell.Halfedges {
			dc.LineTo(h.End.X, h.End.Y)
		}
		dc.ClosePath()

		b, ok := c.banners[city.TerritoryID]
		switch {
		case ok && b.HasTexture():
			dc.SetFillStyle(gg.NewSurfacePattern(b.Texture, gg.RepeatBoth))
		case ok:
			dc.SetColor(b.Fallback)
		default:
			dc.SetColor(city.Color.NRGBA(c.opts.BannerAlpha))
		}
		dc.Fill()
	}
	if degenerate > 0 {
		logx.ReportDegradedWithLoggerContext(ctx, c.log, "fill_banners", "degenerate_cell",
			zap.Int("cells", degenerate))
	}
}

func (c *Compositor) strokeTerritoryBorders(dc *gg.Context, frame domain.Frame, d *voronoi.Diagram) {
	dc.SetRGBA(0, 0, 0, territoryBorderAlpha)
	dc.SetLineWidth(territoryBorderWidth)
	dc.SetDash(territoryBorderDash...)
	for _, e := range d.Edges {
		if !e.Shared() || frame.Cities[e.Left].TerritoryID == frame.Cities[e.Right].TerritoryID {
			continue
		}
		strokeEdge(dc, e)
	}
}

func (c *Compositor) strokeRulerBorders(dc *gg.Context, frame domain.Frame, d *voronoi.Diagram) {
	dc.SetLineWidth(rulerBorderWidth)
	dc.SetDash(rulerBorderDash...)
	for _, e := range d.Edges {
		if !e.Shared() || frame.Cities[e.Left].OwnerID == frame.Cities[e.Right].OwnerID {
			continue
		}
		dc.SetColor(frame.Cities[e.Left].Color.NRGBA(1))
		strokeEdge(dc, e)
	}
}

func strokeEdge(dc *gg.Context, e voronoi.Edge) {
	dc.MoveTo(e.A.X, e.A.Y)
	dc.LineTo(e.B.X, e.B.Y)
	dc.Stroke()
}

func drawCities(dc *gg.Context, cities []domain.City) {
	dc.SetDash()
	dc.SetLineWidth(cityOutlineWidth)
	for _, city := range cities {
		dc.DrawCircle(city.X, city.Y, city.Radius)
		dc.SetColor(color.Black)
		dc.StrokePreserve()
		dc.SetColor(city.Color.NRGBA(1))
		dc.Fill()
	}
}

func drawArmies(dc *gg.Context, armies []domain.Army) {
	dc.SetDash()
	dc.SetLineWidth(armyOutlineWidth)
	for _, a := range armies {
		dc.DrawRectangle(a.X-domain.ArmyWidth/2.0, a.Y-domain.ArmyHeight/2.0, domain.ArmyWidth, domain.ArmyHeight)
		dc.SetColor(color.Black)
		dc.StrokePreserve()
		dc.SetColor(a.Color.NRGBA(1))
		dc.Fill()
	}
}
