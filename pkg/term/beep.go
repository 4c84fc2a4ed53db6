package term

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Beeper 短促的提示音,演示程序在移动被拒绝时播放
// 音频设备初始化失败时进入静音降级模式,Play 变为空操作
type Beeper struct {
	enabled    bool
	sampleRate beep.SampleRate
}

// NewBeeper 初始化扬声器并返回提示音播放器
// 初始化失败不是致命错误:记录日志并返回静音的播放器,演示照常运行
func NewBeeper() *Beeper {
	sampleRate := beep.SampleRate(44100)
	b := &Beeper{sampleRate: sampleRate}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("[Term] Audio initialization failed: %v (beeps disabled)", err)
		return b
	}
	b.enabled = true
	return b
}

// Play 播放一声 880Hz、60 毫秒的提示音
// 降级模式下是空操作
func (b *Beeper) Play() {
	if !b.enabled {
		return
	}
	sine, err := generators.SineTone(b.sampleRate, 880)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(b.sampleRate.N(60*time.Millisecond), sine))
}

// Close 关闭扬声器
func (b *Beeper) Close() {
	if b.enabled {
		speaker.Close()
	}
}
