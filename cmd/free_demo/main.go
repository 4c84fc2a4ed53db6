// cmd/free_demo/main.go
// 自由移动演示:角色在固定区域内按像素移动,越界时收拢到边界
//
// 用法：
//   go run ./cmd/free_demo [-verbose] [-export-dir 目录]
//
// 操作：
//   方向键 / WASD - 按 15 像素步长移动(按住连续移动)
//   ESC           - 退出
//
// 演示同时走一遍完整的磁盘资源流水线:启动时把内置图库导出为 PNG 文件,
// 再经由资源管理器从磁盘解码加载。-export-dir 未指定时使用临时目录,
// 退出时删除。

package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/figure/internal/sprites"
	"github.com/decker502/figure/pkg/app"
	"github.com/decker502/figure/pkg/assets"
	"github.com/decker502/figure/pkg/figure"
	"github.com/decker502/figure/pkg/render"
)

var (
	verbose   = flag.Bool("verbose", false, "详细日志")
	exportDir = flag.String("export-dir", "", "PNG 导出目录(默认为临时目录)")
)

const (
	windowWidth  = 640
	windowHeight = 640

	areaWidth  = 560
	areaHeight = 500
	areaX      = 40
	areaY      = 80

	spriteSize = 54
	stepSize   = 15

	initialX = 20
	initialY = 20
)

// moveKeys 方向键与 WASD 到像素偏移的映射
var moveKeys = []struct {
	key    ebiten.Key
	dx, dy int
}{
	{ebiten.KeyUp, 0, -stepSize},
	{ebiten.KeyW, 0, -stepSize},
	{ebiten.KeyDown, 0, stepSize},
	{ebiten.KeyS, 0, stepSize},
	{ebiten.KeyLeft, -stepSize, 0},
	{ebiten.KeyA, -stepSize, 0},
	{ebiten.KeyRight, stepSize, 0},
	{ebiten.KeyD, stepSize, 0},
}

// repeatingKeyPressed 模拟键盘自动重复:按下瞬间触发一次,
// 按住一段时间后按固定间隔连续触发
func repeatingKeyPressed(key ebiten.Key) bool {
	const (
		delay    = 15
		interval = 4
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}

// Game 自由移动演示
type Game struct {
	area    *render.FreeArea
	sprite  *render.Sprite
	char    *figure.Character
	manager *assets.Manager

	// clipRect 精灵的绘制裁剪区域,移出边界的部分不露出区域外
	clipRect image.Rectangle
}

// NewGame 创建演示实例,图片一律从 assetDir 里的 PNG 文件加载
func NewGame(assetDir string) (*Game, error) {
	manager := assets.NewManager(assetDir)
	library := sprites.NewLibrary(spriteSize)
	if err := manager.Preload(library.IDs()); err != nil {
		return nil, fmt.Errorf("预加载图片失败: %w", err)
	}
	log.Printf("✓ 从磁盘加载 %d 张图片: %s", manager.Count(), assetDir)

	animations, err := sprites.Animations()
	if err != nil {
		return nil, fmt.Errorf("构建动画集失败: %w", err)
	}

	area := &render.FreeArea{
		Width: areaWidth, Height: areaHeight,
		OriginX: areaX, OriginY: areaY,
	}

	sprite := render.NewSprite(manager)
	// 自由模式的位置以区域左上角为原点,偏移把它平移到屏幕位置
	sprite.SetOrigin(areaX, areaY)

	char, err := figure.NewCharacter(figure.Config{
		Surface:    sprite,
		Area:       area,
		Resolver:   manager,
		Animations: animations,
		X:          initialX,
		Y:          initialY,
	})
	if err != nil {
		return nil, fmt.Errorf("创建角色失败: %w", err)
	}
	if err := char.PlayAnimation("blink"); err != nil {
		return nil, fmt.Errorf("播放动画失败: %w", err)
	}

	return &Game{
		area:     area,
		sprite:   sprite,
		char:     char,
		manager:  manager,
		clipRect: image.Rect(areaX, areaY, areaX+areaWidth, areaY+areaHeight),
	}, nil
}

// Update 更新演示逻辑
func (g *Game) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, mk := range moveKeys {
		if !repeatingKeyPressed(mk.key) {
			continue
		}
		// 自由模式不会失败:越界的目标被收拢到边界
		if err := g.char.Move(mk.dx, mk.dy); err != nil {
			return err
		}
		if *verbose {
			x, y := g.char.Position()
			log.Printf("移动到 (%d,%d)", x, y)
		}
	}

	return g.char.Tick(deltaTime)
}

// Draw 绘制演示画面
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{50, 50, 50, 255})

	g.area.Draw(screen, color.RGBA{235, 235, 235, 255})
	g.area.DrawBorder(screen, color.RGBA{120, 120, 120, 255}, 2)

	// 裁剪到活动区域,贴边时角色不越过边框线
	clipped := screen.SubImage(g.clipRect).(*ebiten.Image)
	g.sprite.Draw(clipped)

	x, y := g.char.Position()
	ebitenutil.DebugPrintAt(screen, "Arrows/WASD: move (hold to repeat)  ESC: quit", 40, 10)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Position: (%d,%d) of %dx%d  Animation: %s  Images: %d",
			x, y, areaWidth, areaHeight, g.char.CurrentAnimation(), g.manager.Count()),
		40, 28)
}

func main() {
	flag.Parse()

	if *verbose {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	}

	log.Println("=== 自由移动演示启动 ===")

	// 准备磁盘资源目录:内置图库导出为真实的 PNG 文件
	assetDir := *exportDir
	temporary := assetDir == ""
	if temporary {
		dir, err := os.MkdirTemp("", "figure_free_demo_")
		if err != nil {
			log.Fatalf("创建临时目录失败: %v", err)
		}
		assetDir = dir
	}
	if err := sprites.NewLibrary(spriteSize).WritePNGs(assetDir); err != nil {
		log.Fatalf("导出 PNG 失败: %v", err)
	}
	log.Printf("✓ 图库已导出到: %s", assetDir)

	game, err := NewGame(assetDir)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	runErr := app.Run(game, app.Config{
		Title:   "Figure - Free Demo",
		Width:   windowWidth,
		Height:  windowHeight,
		Verbose: *verbose,
	})

	if temporary {
		if err := os.RemoveAll(assetDir); err != nil {
			log.Printf("警告: 清理临时目录失败: %v", err)
		}
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
