package figure

import "errors"

// 库的错误哨兵值
// 所有错误都以同步返回值的形式报告给触发操作的调用方,
// 内部不重试,也不会终止进程,由上层应用决定记录、忽略还是提示用户
var (
	// ErrInvalidFrame 表示帧参数非法(图片标识为空、时长非正数,或解析器无法解析图片)
	ErrInvalidFrame = errors.New("invalid animation frame")

	// ErrInvalidAnimation 表示动画参数非法(名称为空或帧序列为空)
	ErrInvalidAnimation = errors.New("invalid animation")

	// ErrUnknownAnimation 表示按名称查找动画失败
	ErrUnknownAnimation = errors.New("unknown animation")

	// ErrOutOfBounds 表示目标位置超出网格范围
	// 网格模式下这是一个正常的"操作被拒绝"信号(例如撞墙),属于可恢复状态
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrInvalidArgument 表示调用参数非法(例如负的时间增量),属于调用方编程错误
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConfiguration 表示角色构造配置错误(缺少绘制表面,或网格/自由容器不满足二选一)
	ErrConfiguration = errors.New("invalid character configuration")

	// ErrDuplicateAnimation 表示动画注册表中出现重名动画
	ErrDuplicateAnimation = errors.New("duplicate animation name")
)
