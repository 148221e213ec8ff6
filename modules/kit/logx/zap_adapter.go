package logx

import (
	"context"

	"moviemaker/modules/kit/tracex"

	"go.uber.org/zap"
)

// ZapLogger 把 Logger 落到 zap 上；底层为 nil 时什么都不输出。
type ZapLogger struct {
	zl *zap.Logger
}

func NewZapLogger(l *zap.Logger) *ZapLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapLogger{zl: l}
}

// Named 返回带子组件名的 logger，例如 moviemaker.assets。
func (z *ZapLogger) Named(name string) *ZapLogger {
	return &ZapLogger{zl: z.zl.Named(name)}
}

// WithContext 把 ctx 里的 run_id、frame 挂成固定字段；并发渲染时靠 frame 区分日志来自哪一帧。
func (z *ZapLogger) WithContext(ctx context.Context) Logger {
	if z == nil {
		return NewZapLogger(nil)
	}
	var fields []zap.Field
	if rid, ok := tracex.RunIDFrom(ctx); ok {
		fields = append(fields, zap.String("run_id", rid))
	}
	if frame, ok := tracex.FrameFrom(ctx); ok {
		fields = append(fields, zap.Int("frame", frame))
	}
	if len(fields) == 0 {
		return z
	}
	return &ZapLogger{zl: z.zl.With(fields...)}
}

func (z *ZapLogger) Debug(msg string, fields ...zap.Field) { z.zl.Debug(msg, fields...) }
func (z *ZapLogger) Info(msg string, fields ...zap.Field)  { z.zl.Info(msg, fields...) }
func (z *ZapLogger) Warn(msg string, fields ...zap.Field)  { z.zl.Warn(msg, fields...) }
func (z *ZapLogger) Error(msg string, fields ...zap.Field) { z.zl.Error(msg, fields...) }
