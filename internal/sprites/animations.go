package sprites

import (
	"fmt"

	"github.com/decker502/figure/pkg/figure"
)

// animationSpec 一组动画的帧清单:图片标识加显示时长(秒)
// 时长为 0 的帧使用全局默认时长
type animationSpec struct {
	name   string
	frames []frameSpec
}

type frameSpec struct {
	image    string
	duration float64
}

// demoSet 演示用的标准动画集
// 帧序列与节奏沿用最初的演示取值:关键帧之间 0.1 秒快速过渡,
// 表情顶点与回到常态后各停留 2~3 秒
var demoSet = []animationSpec{
	{name: "blink", frames: []frameSpec{
		{image: "blue_square_blink_0001.png"},
		{image: "blue_square_blink_0002.png", duration: 0.1},
		{image: "blue_square_blink_0003.png", duration: 0.1},
		{image: "blue_square_blink_0004.png"},
		{image: "blue_square_blink_0001.png", duration: 3.0},
	}},
	{name: "blink_an_eye", frames: []frameSpec{
		{image: "blue_square_blinkaneye_0001.png"},
		{image: "blue_square_blinkaneye_0002.png", duration: 0.1},
		{image: "blue_square_blinkaneye_0003.png", duration: 0.1},
		{image: "blue_square_blinkaneye_0004.png"},
		{image: "blue_square_blinkaneye_0001.png", duration: 2.0},
	}},
	{name: "look_up", frames: []frameSpec{
		{image: "blue_square_lookup_0001.png"},
		{image: "blue_square_lookup_0002.png", duration: 0.1},
		{image: "blue_square_lookup_0003.png", duration: 2.0},
		{image: "blue_square_lookup_0004.png", duration: 0.1},
		{image: "blue_square_lookup_0001.png", duration: 2.0},
	}},
	{name: "move_eyebrow", frames: []frameSpec{
		{image: "blue_square_moveuplefteyebrow_0001.png"},
		{image: "blue_square_moveuplefteyebrow_0002.png", duration: 0.1},
		{image: "blue_square_moveuplefteyebrow_0003.png", duration: 3.0},
		{image: "blue_square_moveuplefteyebrow_0004.png", duration: 0.1},
		{image: "blue_square_moveuplefteyebrow_0001.png", duration: 2.0},
	}},
}

// Animations 构建演示用的标准动画集
// 包含 blink、blink_an_eye、look_up、move_eyebrow 四组动画,
// 全部图片标识都能被本图库解析
func Animations() ([]*figure.Animation, error) {
	animations := make([]*figure.Animation, 0, len(demoSet))
	for _, spec := range demoSet {
		frames := make([]figure.Frame, 0, len(spec.frames))
		for _, fs := range spec.frames {
			var (
				f   figure.Frame
				err error
			)
			if fs.duration == 0 {
				f, err = figure.NewDefaultFrame(fs.image)
			} else {
				f, err = figure.NewFrame(fs.image, fs.duration)
			}
			if err != nil {
				return nil, fmt.Errorf("demo animation %q: %w", spec.name, err)
			}
			frames = append(frames, f)
		}
		a, err := figure.NewAnimation(spec.name, frames)
		if err != nil {
			return nil, fmt.Errorf("demo animation %q: %w", spec.name, err)
		}
		animations = append(animations, a)
	}
	return animations, nil
}
