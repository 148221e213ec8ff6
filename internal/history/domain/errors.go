package domain

import "moviemaker/modules/kit/errx"

// Code 表示领域错误码。
//
// 约定：feed 数据问题一律是整次任务的致命错误（没有逐行恢复），
// 由顶层统一打印一次日志后退出，渲染阶段之前就要失败。
type Code = errx.Code

const (
	CodeMalformedRow      Code = "FEED_MALFORMED_ROW"
	CodeMalformedMetadata Code = "FEED_MALFORMED_METADATA"
	CodeEmptyFeed         Code = "FEED_EMPTY"
	CodeUnsortedFeed      Code = "FEED_UNSORTED"
	CodeDayGap            Code = "FRAME_DAY_GAP"
	CodeDensityMismatch   Code = "FRAME_DENSITY_MISMATCH"
	CodeUnknownWorld      Code = "WORLD_UNKNOWN"
	CodeUnknownMap        Code = "MAP_UNKNOWN"
	CodeInvalidColor      Code = "COLOR_INVALID"
)

type Error = errx.Error

var (
	ErrMalformedRow      = errx.NewBiz(CodeMalformedRow, "feed 行格式错误")
	ErrMalformedMetadata = errx.NewBiz(CodeMalformedMetadata, "feed 元数据格式错误")
	ErrEmptyFeed         = errx.NewBiz(CodeEmptyFeed, "feed 没有事件行")
	ErrUnsortedFeed      = errx.NewBiz(CodeUnsortedFeed, "feed 未按天升序")
	ErrDayGap            = errx.NewBiz(CodeDayGap, "feed 天数不连续")
	ErrDensityMismatch   = errx.NewBiz(CodeDensityMismatch, "帧数与天数区间不符")
	ErrUnknownWorld      = errx.NewBiz(CodeUnknownWorld, "未知世界")
	ErrUnknownMap        = errx.NewBiz(CodeUnknownMap, "未知地图")
	ErrInvalidColor      = errx.NewBiz(CodeInvalidColor, "颜色格式错误")
)
