package figure

import "fmt"

// playback 是嵌在角色内部的动画推进控制器
// 状态机的状态是当前动画的帧索引 0..N-1,后继为 (i+1) % N,
// 循环播放,没有终止态(单次播放不在支持范围内,切换动画即打断)
type playback struct {
	surface Surface
	active  *Animation
	index   int
	elapsed float64
}

// play 切换到指定动画并立即显示第 0 帧
// 相当于对进行中的动画做一次取消并重启:帧索引与累计时间都归零,
// 不继承上一个动画的部分推进时间
func (p *playback) play(a *Animation) {
	p.active = a
	p.index = 0
	p.elapsed = 0
	p.surface.Show(a.FrameAt(0).Image)
}

// tick 累计经过的时间并按当前帧的时长推进帧索引
// 一次调用可以跨越多帧:每跨过一帧都会向绘制表面发出一次 Show,
// 中间帧不会被跳过,剩余时间保留到下一次调用,
// 因此推进结果与调用方切分时间的粒度无关
// 尚未播放任何动画时是空操作
// 参数:
//   - delta: 距上次调用经过的时间(秒),负值返回包装了 ErrInvalidArgument 的错误
func (p *playback) tick(delta float64) error {
	if delta < 0 {
		return fmt.Errorf("%w: negative tick delta %v", ErrInvalidArgument, delta)
	}
	if p.active == nil {
		return nil
	}
	p.elapsed += delta
	for p.elapsed >= p.active.FrameAt(p.index).Duration {
		p.elapsed -= p.active.FrameAt(p.index).Duration
		p.index = (p.index + 1) % p.active.Len()
		p.surface.Show(p.active.FrameAt(p.index).Image)
	}
	return nil
}

// animationName 返回当前动画名称,尚未播放时返回空串
func (p *playback) animationName() string {
	if p.active == nil {
		return ""
	}
	return p.active.Name()
}
