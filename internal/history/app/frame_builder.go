package app

import (
	"context"

	"moviemaker/internal/history/domain"
	"moviemaker/modules/kit/logx"

	"go.uber.org/zap"
)

// GapPolicy 决定 feed 天数不连续时怎么办。
type GapPolicy string

const (
	// GapStrict 断档视为 feed 损坏，直接失败。
	GapStrict GapPolicy = "strict"
	// GapBackfill 为缺失的天补空帧。
	GapBackfill GapPolicy = "backfill"
)

func ParseGapPolicy(s string) (GapPolicy, error) {
	switch GapPolicy(s) {
	case "", GapStrict:
		return GapStrict, nil
	case GapBackfill:
		return GapBackfill, nil
	default:
		return "", ErrInvalidOption.WithData("gap_policy", s)
	}
}

type FrameBuilderOptions struct {
	CanvasSize  int
	SingleFrame bool // 只要第一天的帧，用于快速验证
	GapPolicy   GapPolicy
}

// FrameBuilder 把按天升序的事件流切成连续的逐日帧。
type FrameBuilder struct {
	opts   FrameBuilderOptions
	colors *ColorResolver
	log    Logger
}

func NewFrameBuilder(colors *ColorResolver, log Logger, opts FrameBuilderOptions) *FrameBuilder {
	if opts.CanvasSize <= 0 {
		opts.CanvasSize = domain.CanvasSize
	}
	if opts.GapPolicy == "" {
		opts.GapPolicy = GapStrict
	}
	if log == nil {
		log = logx.Nop()
	}
	return &FrameBuilder{opts: opts, colors: colors, log: log}
}

// Build 单遍扫描事件流。完成后校验 len(frames) == lastDay-firstDay+1，不满足即致命错误。
func (b *FrameBuilder) Build(ctx context.Context, world domain.World, events []domain.Event) ([]domain.Frame, error) {
	if len(events) == 0 {
		return nil, domain.ErrEmptyFeed
	}
	defer logx.Timed(ctx, b.log, "build frames", zap.Int("rows", len(events)))()

	dayStart := events[0].Day
	dayEnd := events[len(events)-1].Day
	if b.opts.SingleFrame {
		dayEnd = dayStart
	}
	b.log.WithContext(ctx).Info("build frames",
		zap.Int("day_start", dayStart),
		zap.Int("day_end", dayEnd),
		zap.Bool("single_frame", b.opts.SingleFrame),
	)

	frames := []domain.Frame{domain.NewFrame(dayStart)}
	cur := &frames[0]
	currentDay := dayStart

	for _, ev := range events {
		if ev.Day != currentDay {
			if b.opts.SingleFrame {
				break
			}
			if ev.Day < currentDay {
				return nil, domain.ErrUnsortedFeed.WithData("day", ev.Day).WithData("current_day", currentDay)
			}
			if ev.Day-currentDay != 1 {
				b.log.WithContext(ctx).Warn("feed day gap",
					zap.Int("day", ev.Day),
					zap.Int("current_day", currentDay),
					zap.String("policy", string(b.opts.GapPolicy)),
				)
				if b.opts.GapPolicy != GapBackfill {
					return nil, domain.ErrDayGap.WithData("day", ev.Day).WithData("current_day", currentDay)
				}
				for d := currentDay + 1; d < ev.Day; d++ {
					frames = append(frames, domain.NewFrame(d))
				}
			}
			frames = append(frames, domain.NewFrame(ev.Day))
			cur = &frames[len(frames)-1]
			currentDay = ev.Day
		}
		if err := b.place(cur, world, ev); err != nil {
			return nil, err
		}
	}

	if want := dayEnd - dayStart + 1; len(frames) != want {
		return nil, domain.ErrDensityMismatch.
			WithData("frames", len(frames)).
			WithData("day_start", dayStart).
			WithData("day_end", dayEnd)
	}
	return frames, nil
}

func (b *FrameBuilder) place(f *domain.Frame, world domain.World, ev domain.Event) error {
	canvas := b.opts.CanvasSize
	switch ev.Kind {
	case domain.KindCity:
		if !domain.ValidSizeClass(ev.SizeClass) {
			return domain.ErrMalformedRow.WithData("day", ev.Day).WithData("size_class", ev.SizeClass)
		}
		color := b.colors.Resolve(ev.TerritoryID, ev.OwnerID)
		f.Cities = append(f.Cities, domain.City{
			X:           world.ToImageRounded(ev.X, canvas),
			Y:           world.ToImageRounded(ev.Y, canvas),
			Radius:      domain.SizeClassRadius[ev.SizeClass] * world.Scale(canvas),
			TerritoryID: ev.TerritoryID,
			OwnerID:     ev.OwnerID,
			Color:       color,
		})
	case domain.KindArmy:
		color := b.colors.Resolve(ev.TerritoryID, ev.OwnerID)
		f.Armies = append(f.Armies, domain.Army{
			X:           world.ToImage(ev.X, canvas),
			Y:           world.ToImage(ev.Y, canvas),
			TerritoryID: ev.TerritoryID,
			OwnerID:     ev.OwnerID,
			Color:       color,
		})
	default:
		return domain.ErrMalformedRow.WithData("day", ev.Day).WithData("kind", string(ev.Kind))
	}
	return nil
}
