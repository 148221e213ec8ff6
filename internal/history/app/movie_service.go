package app

import (
	"context"
	"errors"
	"image"
	"sort"
	"time"

	"moviemaker/internal/history/domain"
	"moviemaker/internal/history/feed"
	"moviemaker/internal/render/canvas"
	"moviemaker/modules/kit/logx"
	"moviemaker/modules/kit/tracex"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type MovieOptions struct {
	Render       canvas.Options
	Workers      int // 并发渲染帧数
	FetchWorkers int // 并发下载旗帜数
	SingleFrame  bool
	GapPolicy    GapPolicy
	Seed         uint64
	BannerWidth  int
	BannerHeight int
}

type MovieRequest struct {
	WorldID int
	Era     string
}

type MovieResult struct {
	RunID    string
	World    domain.World
	Frames   int
	DayStart int
	DayEnd   int
	Elapsed  time.Duration
}

// MovieService 两阶段流水线：先单 goroutine 构建全部帧（会改颜色表），再并发渲染。
type MovieService struct {
	feeds   FeedSource
	maps    MapSource
	banners BannerSource
	sink    FrameSink
	palette domain.Palette
	log     Logger
	opts    MovieOptions
}

func NewMovieService(feeds FeedSource, maps MapSource, banners BannerSource, sink FrameSink, palette domain.Palette, log Logger, opts MovieOptions) *MovieService {
	if opts.Render.CanvasSize <= 0 {
		opts.Render.CanvasSize = domain.CanvasSize
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.FetchWorkers <= 0 {
		opts.FetchWorkers = 1
	}
	if log == nil {
		log = logx.Nop()
	}
	return &MovieService{
		feeds:   feeds,
		maps:    maps,
		banners: banners,
		sink:    sink,
		palette: palette,
		log:     log,
		opts:    opts,
	}
}

func (s *MovieService) Run(ctx context.Context, req MovieRequest) (*MovieResult, error) {
	start := time.Now()
	runID := tracex.NewRunID()
	ctx = tracex.WithRunID(ctx, runID)
	s.log.WithContext(ctx).Info("movie run start", zap.Int("world", req.WorldID), zap.String("era", req.Era))

	text, err := s.feeds.FetchFeed(ctx, req.WorldID, req.Era)
	if err != nil {
		return nil, err
	}
	fd, err := s.parse(ctx, text)
	if err != nil {
		return nil, err
	}

	background, err := s.background(ctx, fd.World)
	if err != nil {
		return nil, err
	}

	colors := NewColorResolver(NewRand(s.opts.Seed), s.palette)
	builder := NewFrameBuilder(colors, s.log, FrameBuilderOptions{
		CanvasSize:  s.opts.Render.CanvasSize,
		SingleFrame: s.opts.SingleFrame,
		GapPolicy:   s.opts.GapPolicy,
	})
	frames, err := builder.Build(ctx, fd.World, fd.Events)
	if err != nil {
		return nil, err
	}

	var banners canvas.BannerSet
	if s.opts.Render.ShowBanners {
		banners, err = s.loadBanners(ctx, territoriesOf(frames), colors)
		if err != nil {
			return nil, err
		}
	}

	if err := s.sink.Reset(ctx); err != nil {
		return nil, err
	}
	comp := canvas.NewCompositor(background, banners, s.opts.Render, s.log)
	if err := s.renderAll(ctx, comp, frames); err != nil {
		return nil, err
	}

	res := &MovieResult{
		RunID:    runID,
		World:    fd.World,
		Frames:   len(frames),
		DayStart: frames[0].Day,
		DayEnd:   frames[len(frames)-1].Day,
		Elapsed:  time.Since(start),
	}
	s.log.WithContext(ctx).Info("movie run done",
		zap.Int("frames", res.Frames),
		zap.Int("day_start", res.DayStart),
		zap.Int("day_end", res.DayEnd),
		zap.Duration("elapsed", res.Elapsed),
	)
	return res, nil
}

func (s *MovieService) parse(ctx context.Context, text string) (*feed.Feed, error) {
	defer logx.Timed(ctx, s.log, "parse feed")()
	fd, err := feed.ParseString(text)
	if err != nil {
		return nil, err
	}
	s.log.WithContext(ctx).Info("feed parsed",
		zap.Int("world", fd.World.ID),
		zap.Int("era", fd.World.Era),
		zap.Int("map", fd.World.Map),
		zap.Int("size", fd.World.Size),
		zap.Int("rows", len(fd.Events)),
	)
	return fd, nil
}

func (s *MovieService) background(ctx context.Context, world domain.World) (image.Image, error) {
	defer logx.Timed(ctx, s.log, "make map background", zap.Int("map", world.Map))()
	tile, err := s.maps.FetchMap(ctx, world.Map)
	if err != nil {
		return nil, err
	}
	return canvas.ComposeBackground(tile, world.Size, s.opts.Render.CanvasSize)
}

// loadBanners 并发下载，完成后按 territory id 升序补降级颜色，保证同一种子结果可复现。
// 只有 404 可降级，解码失败等其它错误都中止任务。
func (s *MovieService) loadBanners(ctx context.Context, ids []int, colors *ColorResolver) (canvas.BannerSet, error) {
	defer logx.Timed(ctx, s.log, "get territory banners", zap.Int("territories", len(ids)))()

	images := make([]image.Image, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.FetchWorkers)
	for i, id := range ids {
		g.Go(func() error {
			img, err := s.banners.FetchBanner(gctx, id)
			if errors.Is(err, ErrAssetNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	alpha := s.opts.Render.BannerAlpha
	set := make(canvas.BannerSet, len(ids))
	for i, id := range ids {
		if images[i] == nil {
			logx.ReportDegradedWithLoggerContext(ctx, s.log, "get_banner", "not_found", zap.Int("territory", id))
			set[id] = canvas.NewColorBanner(colors.RandomColor(), alpha)
			continue
		}
		set[id] = canvas.NewTextureBanner(images[i], s.opts.BannerWidth, s.opts.BannerHeight, alpha)
	}
	return set, nil
}

func (s *MovieService) renderAll(ctx context.Context, comp *canvas.Compositor, frames []domain.Frame) error {
	defer logx.Timed(ctx, s.log, "render frames", zap.Int("frames", len(frames)))()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for i, f := range frames {
		g.Go(func() error {
			fctx := tracex.WithFrame(gctx, i)
			done := logx.Timed(fctx, s.log, "paint frame", zap.Int("day", f.Day))
			defer done()

			img := comp.Render(fctx, f, comp.Tessellate(f))
			return s.sink.WriteFrame(fctx, i, img)
		})
	}
	return g.Wait()
}

// territoriesOf 帧内城市出现过的非 0 territory，升序。
func territoriesOf(frames []domain.Frame) []int {
	seen := make(map[int]struct{})
	for _, f := range frames {
		for _, c := range f.Cities {
			if c.TerritoryID != 0 {
				seen[c.TerritoryID] = struct{}{}
			}
		}
	}
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
