package figure

import "fmt"

// DefaultDuration 是帧的默认显示时长(秒)
const DefaultDuration = 0.25

// Frame 表示动画中的一帧:一个图片标识加一个显示时长
// 图片标识是不透明的,由外部的图片解析器负责映射到可加载的图片资源
type Frame struct {
	Image    string  // 图片标识
	Duration float64 // 显示时长(秒),必须为正数
}

// NewFrame 构造一帧并校验参数
// 参数:
//   - image: 图片标识,不能为空
//   - duration: 显示时长(秒),必须大于 0
//
// 返回:
//   - 校验失败时返回包装了 ErrInvalidFrame 的错误
func NewFrame(image string, duration float64) (Frame, error) {
	if image == "" {
		return Frame{}, fmt.Errorf("%w: empty image id", ErrInvalidFrame)
	}
	if duration <= 0 {
		return Frame{}, fmt.Errorf("%w: duration %v must be positive", ErrInvalidFrame, duration)
	}
	return Frame{Image: image, Duration: duration}, nil
}

// NewDefaultFrame 构造一帧,使用默认时长 DefaultDuration
func NewDefaultFrame(image string) (Frame, error) {
	return NewFrame(image, DefaultDuration)
}

// Animation 表示一个命名的有序帧序列
// 构造后不可变,按名称注册到角色的动画注册表中查找
type Animation struct {
	name   string
	frames []Frame
}

// NewAnimation 构造动画并校验参数
// 构造函数会复制帧切片,调用方之后修改原切片不影响动画
// 帧也会逐一重新校验,防止绕过 NewFrame 直接用字面量构造的非法帧混入
// 参数:
//   - name: 动画名称,在一个角色的动画集内必须唯一,不能为空
//   - frames: 帧序列,不能为空(零帧动画在构造时即失败,而不是播放时)
//
// 返回:
//   - 名称或帧序列非法时返回包装了 ErrInvalidAnimation 的错误,
//     单帧非法时返回包装了 ErrInvalidFrame 的错误
func NewAnimation(name string, frames []Frame) (*Animation, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidAnimation)
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: animation %q has no frames", ErrInvalidAnimation, name)
	}
	for i, f := range frames {
		if f.Image == "" {
			return nil, fmt.Errorf("%w: animation %q frame %d has empty image id", ErrInvalidFrame, name, i)
		}
		if f.Duration <= 0 {
			return nil, fmt.Errorf("%w: animation %q frame %d duration %v must be positive", ErrInvalidFrame, name, i, f.Duration)
		}
	}
	copied := make([]Frame, len(frames))
	copy(copied, frames)
	return &Animation{name: name, frames: copied}, nil
}

// Name 返回动画名称
func (a *Animation) Name() string {
	return a.name
}

// Len 返回帧数量
func (a *Animation) Len() int {
	return len(a.frames)
}

// FrameAt 返回索引 i 处的帧(0-based)
// 索引越界会 panic,调用方应保证 0 <= i < Len()
func (a *Animation) FrameAt(i int) Frame {
	return a.frames[i]
}
