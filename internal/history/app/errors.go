package app

import "moviemaker/modules/kit/errx"

// Code 表示应用层错误码。
type Code = errx.Code

const (
	CodeAssetNotFound    Code = "ASSET_NOT_FOUND"
	CodeAssetUnavailable Code = "ASSET_UNAVAILABLE"
	CodeAssetDecode      Code = "ASSET_DECODE_FAILED"
	CodeOutputFailed     Code = "RENDER_OUTPUT_FAILED"
	CodeInvalidOption    Code = "OPTION_INVALID"
	// CodeInternal 复用 kit 的统一系统码。
	CodeInternal Code = errx.CodeInternal
)

type Error = errx.Error

// 哨兵错误：通过 WithData/WithCause 派生，禁止原地修改。
var (
	// ErrAssetNotFound 资源不存在（HTTP 404），banner 场景下可降级。
	ErrAssetNotFound    = errx.NewBiz(CodeAssetNotFound, "资源不存在")
	ErrAssetUnavailable = errx.NewSys(CodeAssetUnavailable, "资源获取失败")
	// ErrAssetDecode 资源取到了但解码失败，按致命错误处理。
	ErrAssetDecode   = errx.NewSys(CodeAssetDecode, "资源解码失败")
	ErrOutputFailed  = errx.NewSys(CodeOutputFailed, "帧输出失败")
	ErrInvalidOption = errx.NewBiz(CodeInvalidOption, "参数错误")
	ErrInternal      = errx.ErrInternal
)
