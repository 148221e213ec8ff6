package tracex

import (
	"context"

	"github.com/google/uuid"
)

type runIDKey struct{}
type frameKey struct{}

// WithRunID 把一次渲染任务的 run_id 写入 ctx，日志统一从 ctx 取。
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey{}, runID)
}

func RunIDFrom(ctx context.Context) (string, bool) {
	v := ctx.Value(runIDKey{})
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}

// WithFrame 标记当前处理的帧序号。
func WithFrame(ctx context.Context, index int) context.Context {
	return context.WithValue(ctx, frameKey{}, index)
}

func FrameFrom(ctx context.Context) (int, bool) {
	v := ctx.Value(frameKey{})
	if v == nil {
		return 0, false
	}
	i, ok := v.(int)
	return i, ok
}

// NewRunID 生成随机 run_id（uuid v4）。
func NewRunID() string {
	return uuid.NewString()
}
