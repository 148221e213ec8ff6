package logx

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// SysLog 是致命错误日志的强类型输入，避免参数顺序误传。
type SysLog struct {
	Action string
	Err    error
}

func NewSysLog(action string, err error) SysLog {
	return SysLog{Action: action, Err: err}
}

// ReportSysErrorWithLoggerContext 记录导致整次任务中止的错误：ERROR、err_type=sys，附带错误码/上下文/栈。
func ReportSysErrorWithLoggerContext(ctx context.Context, l Logger, sys SysLog, fields ...zap.Field) {
	if sys.Err == nil || l == nil {
		return
	}
	action := sys.Action
	if action == "" {
		action = "sys_error"
	}

	meta := BuildErrorLog(sys.Err)
	base := []zap.Field{
		zap.String("err_type", "sys"),
		zap.String("action", action),
	}
	if meta.Code != "" {
		base = append(base, zap.String("error_code", meta.Code))
	}
	if len(meta.CauseChain) != 0 {
		base = append(base, zap.Any("cause_chain", meta.CauseChain))
	}
	if len(meta.Data) != 0 {
		base = append(base, zap.Any("error_data", meta.Data))
	}
	if meta.Origin != "" {
		base = append(base, zap.String("origin_caller", meta.Origin))
	}
	if meta.Stack != "" {
		base = append(base, zap.String("stack_origin", meta.Stack))
	}
	base = append(base, fields...)

	msg := fmt.Sprintf("%s, error:%s", action, meta.Error)
	if meta.Msg != "" {
		msg = fmt.Sprintf("%s, error:%s, msg:%s", action, meta.Error, meta.Msg)
	}
	l.WithContext(ctx).Error(msg, base...)
}

// ReportDegradedWithLoggerContext 记录可降级的异常（缺 banner、退化 cell 等）：WARN、err_type=degraded，不带栈。
func ReportDegradedWithLoggerContext(ctx context.Context, l Logger, action, reason string, fields ...zap.Field) {
	if l == nil {
		return
	}
	base := []zap.Field{
		zap.String("err_type", "degraded"),
		zap.String("action", action),
		zap.String("reason", reason),
	}
	base = append(base, fields...)
	l.WithContext(ctx).Warn(fmt.Sprintf("%s, reason:%s", action, reason), base...)
}

// Timed 记录一段操作的耗时，用法：defer logx.Timed(ctx, l, "parse feed")()
func Timed(ctx context.Context, l Logger, action string, fields ...zap.Field) func() {
	start := time.Now()
	return func() {
		if l == nil {
			return
		}
		base := append([]zap.Field{zap.String("action", action), zap.Duration("elapsed", time.Since(start))}, fields...)
		l.WithContext(ctx).Debug(action, base...)
	}
}
