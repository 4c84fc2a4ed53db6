// Package app 提供演示程序的应用包装器
//
// 该包将窗口配置、日志开关、全屏切换等启动逻辑从各个 main 包提取出来,
// 使四个演示程序共用同一套外壳,演示本身只需实现 Demo 接口。
package app

import (
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Demo 是演示程序需要实现的接口
// Update 以固定步长(秒)驱动逻辑,Draw 每帧绘制一次
type Demo interface {
	Update(deltaTime float64) error
	Draw(screen *ebiten.Image)
}

// Config 定义应用启动配置
type Config struct {
	// Title 窗口标题
	Title string
	// Width, Height 逻辑屏幕尺寸(独立于实际窗口大小)
	Width, Height int
	// Verbose 启用详细日志输出
	Verbose bool
}

// App 是演示程序的应用外壳,实现 ebiten.Game 接口
type App struct {
	demo                     Demo
	cfg                      Config
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// New 创建应用外壳
//
// 未开启 Verbose 时全局日志被重定向到 io.Discard,
// 各包里的 log.Printf 不会打扰演示画面所在的终端。
func New(demo Demo, cfg Config) *App {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
	return &App{
		demo: demo,
		cfg:  cfg,
	}
}

// Run 配置窗口并运行演示,阻塞直到窗口关闭
//
// 固定 60 TPS:每个 tick 对应 1/60 秒的逻辑时间,
// 播放控制器的跨帧推进保证动画节奏与 TPS 取值无关。
func Run(demo Demo, cfg Config) error {
	a := New(demo, cfg)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(60)

	log.Printf("[App] 窗口配置: %dx%d @ 60 TPS", cfg.Width, cfg.Height)

	return ebiten.RunGame(a)
}

// Update 更新演示逻辑
// 每个 tick 调用一次(每秒 60 次)
func (a *App) Update() error {
	// 延迟设置窗口大小(退出全屏后需要等待几帧才能正确设置)
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Width, a.cfg.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.cfg.Width, a.cfg.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			// 退出全屏
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小,让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	return a.demo.Update(deltaTime)
}

// Draw 绘制演示画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.demo.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小,Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Width, a.cfg.Height
}
