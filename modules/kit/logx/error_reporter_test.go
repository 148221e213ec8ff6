package logx

import (
	"context"
	"errors"
	"strings"
	"testing"

	"moviemaker/modules/kit/errx"
	"moviemaker/modules/kit/tracex"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuildErrorLog_能提取语义与栈(t *testing.T) {
	cause := errors.New("connection reset")
	e := errx.NewSys("ASSET_UNAVAILABLE", "下载失败").
		WithData("url", "http://example/vuQ.jpg").
		WithCause(cause)

	meta := BuildErrorLog(e)
	if meta.Code != "ASSET_UNAVAILABLE" {
		t.Fatalf("期望 meta.Code=ASSET_UNAVAILABLE, got=%q", meta.Code)
	}
	if meta.Msg == "" {
		t.Fatalf("期望 meta.Msg 非空")
	}
	if meta.Data["url"] != "http://example/vuQ.jpg" {
		t.Fatalf("期望 meta.Data 包含 url, got=%v", meta.Data)
	}
	if len(meta.CauseChain) == 0 {
		t.Fatalf("期望 meta.CauseChain 非空")
	}
	if meta.Origin == "" || meta.Stack == "" {
		t.Fatalf("期望 meta.Origin/meta.Stack 非空 origin=%q stack=%q", meta.Origin, meta.Stack)
	}
}

func TestReportSysError_带run_id与错误码(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLogger(zap.New(core))
	ctx := tracex.WithRunID(context.Background(), "run-42")

	err := errx.NewBiz("FRAME_DENSITY_MISMATCH", "帧数与天数不符").WithData("frames", 3)
	ReportSysErrorWithLoggerContext(ctx, l, NewSysLog("build_frames", err))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("期望记录 1 条日志, got=%d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["run_id"] != "run-42" {
		t.Fatalf("期望日志带 run_id, got=%v", fields["run_id"])
	}
	if fields["error_code"] != "FRAME_DENSITY_MISMATCH" {
		t.Fatalf("期望日志带 error_code, got=%v", fields["error_code"])
	}
	if !strings.HasPrefix(entries[0].Message, "build_frames") {
		t.Fatalf("期望消息以 action 开头, got=%q", entries[0].Message)
	}
}

func TestTimed_记录耗时(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLogger(zap.New(core))

	Timed(context.Background(), l, "parse feed")()

	entries := logs.FilterMessage("parse feed").All()
	if len(entries) != 1 {
		t.Fatalf("期望 1 条耗时日志, got=%d", len(entries))
	}
	if _, ok := entries[0].ContextMap()["elapsed"]; !ok {
		t.Fatalf("期望耗时日志带 elapsed 字段")
	}
}

func TestReportDegraded_带帧号与组件名(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLogger(zap.New(core)).Named("canvas")
	ctx := tracex.WithFrame(tracex.WithRunID(context.Background(), "run-7"), 12)

	ReportDegradedWithLoggerContext(ctx, l, "fill_banners", "degenerate_cell", zap.Int("cells", 2))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("期望记录 1 条日志, got=%d", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.WarnLevel || e.LoggerName != "canvas" {
		t.Fatalf("期望 WARN 且 logger 名为 canvas, got level=%v name=%q", e.Level, e.LoggerName)
	}
	fields := e.ContextMap()
	if fields["frame"] != int64(12) || fields["run_id"] != "run-7" || fields["err_type"] != "degraded" {
		t.Fatalf("期望带 frame/run_id/err_type, got=%v", fields)
	}
}
