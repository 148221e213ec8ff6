package errx

// 跨包统一的系统类错误码。
//
// 约束：
// - 只放“技术类错误”（IO、网络、内部不变量被破坏）
// - 数据/业务类错误码（例如 FEED_MALFORMED_ROW）由各领域包自行定义

const (
	// CodeInternal 表示内部不可预期错误（兜底）。
	CodeInternal Code = "INTERNAL_ERROR"
	// CodeUnavailable 表示依赖不可用（网络、文件系统、下游站点等）。
	CodeUnavailable Code = "SERVICE_UNAVAILABLE"
	// CodeTimeout 表示依赖调用超时。
	CodeTimeout Code = "TIMEOUT"
	// CodeInvalidArgument 表示调用方传入参数非法（命令行/配置）。
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
)

// 统一系统类哨兵错误（通过 WithData/WithCause 派生新对象，禁止原地修改）。
var (
	ErrInternal        = NewSys(CodeInternal, "内部错误")
	ErrUnavailable     = NewSys(CodeUnavailable, "依赖不可用")
	ErrTimeout         = NewSys(CodeTimeout, "调用超时")
	ErrInvalidArgument = NewBiz(CodeInvalidArgument, "参数错误")
)
