// Package figure 提供单个屏幕角色的帧动画播放与移动控制
//
// 核心由两部分组成:按时间推进帧索引的播放控制器,以及在网格/自由两种
// 互斥策略下校验并应用位移的移动控制器。两者都只通过注入的 Surface、
// GridContainer、FreeContainer 等接口与外界交互,因此同一套逻辑可以运行在
// Ebitengine 窗口、终端,或者测试里的桩实现之上。
//
// 并发模型是单线程协作式的:所有操作都在调用方的事件循环线程上同步执行
// 完毕,内部不加锁也不启动 goroutine。多个 goroutine 共享同一个 Character
// 时需要调用方自行串行化。
package figure

import (
	"fmt"
	"sort"
)

// Config 是 NewCharacter 的构造配置
// Grid 与 Area 必须恰好设置一个,对应网格/自由两种互斥的移动模式
type Config struct {
	// Surface 绘制表面,必填
	Surface Surface
	// Grid 网格容器,设置后角色工作在网格模式,初始格子为 (Row, Col)
	Grid GridContainer
	// Area 自由移动容器,设置后角色工作在自由模式,初始位置为 (X, Y)
	Area FreeContainer
	// Resolver 图片解析器,可选;设置后构造时会校验全部帧的图片标识
	Resolver ImageResolver
	// Animations 初始动画集,名称不允许重复;注册表在构造后不可再修改
	Animations []*Animation

	// Row, Col 网格模式的初始格子,越界时构造失败
	Row, Col int
	// X, Y 自由模式的初始像素位置,越界时按边界收拢
	X, Y int
}

// Character 是库的唯一公开入口,组合了播放控制器与移动控制器
// 动画注册表在构造时建立,之后不可变;移动模式在构造时确定,终生不变
type Character struct {
	registry map[string]*Animation
	playback playback
	movement *movement
}

// NewCharacter 按配置构造角色
// 构造成功时向绘制表面发出恰好一次 Reposition(落到初始位置),
// 不发出 Show:在第一次 PlayAnimation 之前表面上没有可显示的图片
// 返回的错误(按检查顺序):
//   - ErrConfiguration: Surface 缺失,或 Grid/Area 不满足二选一
//   - ErrInvalidAnimation: 动画集中出现 nil 动画
//   - ErrDuplicateAnimation: 动画集中出现重名动画
//   - ErrInvalidFrame: Resolver 无法解析某一帧的图片标识
//   - ErrOutOfBounds: 网格模式的初始格子越界
func NewCharacter(cfg Config) (*Character, error) {
	if cfg.Surface == nil {
		return nil, fmt.Errorf("%w: surface is required", ErrConfiguration)
	}
	if (cfg.Grid == nil) == (cfg.Area == nil) {
		return nil, fmt.Errorf("%w: exactly one of grid and area must be set", ErrConfiguration)
	}

	registry := make(map[string]*Animation, len(cfg.Animations))
	for _, a := range cfg.Animations {
		if a == nil {
			return nil, fmt.Errorf("%w: nil animation in animation set", ErrInvalidAnimation)
		}
		if _, exists := registry[a.Name()]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAnimation, a.Name())
		}
		registry[a.Name()] = a
	}

	// 图片解析失败在构造阶段暴露,而不是等到播放阶段
	if cfg.Resolver != nil {
		for _, a := range cfg.Animations {
			for i := 0; i < a.Len(); i++ {
				image := a.FrameAt(i).Image
				if err := cfg.Resolver.Resolve(image); err != nil {
					return nil, fmt.Errorf("%w: animation %q image %q: %v", ErrInvalidFrame, a.Name(), image, err)
				}
			}
		}
	}

	var mv *movement
	if cfg.Grid != nil {
		var err error
		mv, err = newGridMovement(cfg.Surface, cfg.Grid, cfg.Row, cfg.Col)
		if err != nil {
			return nil, err
		}
	} else {
		mv = newFreeMovement(cfg.Surface, cfg.Area, cfg.X, cfg.Y)
	}

	return &Character{
		registry: registry,
		playback: playback{surface: cfg.Surface},
		movement: mv,
	}, nil
}

// PlayAnimation 切换到指定名称的动画并立即显示其第 0 帧
// 对正在播放的动画而言等价于取消并重启:帧索引与累计时间都归零
// 名称不存在时返回包装了 ErrUnknownAnimation 的错误,播放状态保持不变
func (c *Character) PlayAnimation(name string) error {
	a, ok := c.registry[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAnimation, name)
	}
	c.playback.play(a)
	return nil
}

// Tick 向播放控制器投递一段经过的时间(秒),驱动帧推进
// 外部定时器以什么节奏调用无关紧要:跨多帧的大增量会依次发出每个中间帧
// 的 Show,剩余时间保留,结果与切分粒度无关
// delta 为负时返回包装了 ErrInvalidArgument 的错误
func (c *Character) Tick(delta float64) error {
	return c.playback.tick(delta)
}

// Move 按当前模式应用一次位移
// 网格模式下参数是 (行偏移, 列偏移),目标格子越界时返回 ErrOutOfBounds,
// 位置保持不变;自由模式下参数是 (x偏移, y偏移),越界时收拢到边界,不会失败
func (c *Character) Move(a, b int) error {
	return c.movement.move(a, b)
}

// SetPosition 直接落到指定位置,不经过中间格子/中间点
// 网格模式下参数是 (行, 列),越界时返回 ErrOutOfBounds;
// 自由模式下是像素坐标,越界时收拢到边界
func (c *Character) SetPosition(a, b int) error {
	return c.movement.setPosition(a, b)
}

// Position 返回当前位置:网格模式为 (行, 列),自由模式为像素 (x, y)
func (c *Character) Position() (int, int) {
	return c.movement.position()
}

// Mode 返回构造时确定的移动模式
func (c *Character) Mode() Mode {
	return c.movement.mode
}

// CurrentAnimation 返回当前动画的名称,尚未播放过任何动画时返回空串
func (c *Character) CurrentAnimation() string {
	return c.playback.animationName()
}

// FrameIndex 返回当前帧索引(0-based),尚未播放时返回 0
func (c *Character) FrameIndex() int {
	return c.playback.index
}

// Animations 返回动画集中全部动画名称的副本,按字典序排序
func (c *Character) Animations() []string {
	names := make([]string, 0, len(c.registry))
	for name := range c.registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
