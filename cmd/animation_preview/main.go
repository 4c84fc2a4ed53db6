// cmd/animation_preview/main.go
// 动画预览:角色固定在舞台中央,逐个查看动画集里的动画
//
// 用法：
//   go run ./cmd/animation_preview [-config 配置文件] [-verbose]
//
// 操作：
//   1..9  - 按序号选择动画
//   Tab   - 切换到下一个动画
//   空格  - 从头重放当前动画
//   ESC   - 退出
//
// 不指定 -config 时使用内嵌的默认动画集,图片来自内置图库;
// 自定义配置里设置了 image_dir 时,图片改从该目录下的文件加载。

package main

import (
	_ "embed"
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/figure/internal/sprites"
	"github.com/decker502/figure/pkg/app"
	"github.com/decker502/figure/pkg/assets"
	"github.com/decker502/figure/pkg/config"
	"github.com/decker502/figure/pkg/figure"
	"github.com/decker502/figure/pkg/render"
)

//go:embed character.yaml
var defaultConfigYAML []byte

var (
	configPath = flag.String("config", "", "角色动画集配置文件(默认使用内嵌配置)")
	verbose    = flag.Bool("verbose", false, "详细日志")
)

const (
	windowWidth  = 480
	windowHeight = 360

	stageSize = 96
	stageX    = (windowWidth - stageSize) / 2
	stageY    = (windowHeight - stageSize) / 2
)

// Game 动画预览
type Game struct {
	stage  *render.GridBoard
	sprite *render.Sprite
	char   *figure.Character

	// names 动画名称表,HUD 序号与数字键都以它为准
	names []string
}

// loadConfig 加载动画集配置:优先命令行指定的文件,否则用内嵌默认配置
func loadConfig() (*config.CharacterConfig, error) {
	if *configPath != "" {
		log.Printf("✓ 使用配置文件: %s", *configPath)
		return config.LoadCharacterConfig(*configPath)
	}
	log.Println("✓ 使用内嵌的默认动画集")
	return config.ParseCharacterConfig(defaultConfigYAML)
}

// NewGame 创建演示实例
func NewGame() (*Game, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}

	animations, err := cfg.BuildAnimations()
	if err != nil {
		return nil, fmt.Errorf("构建动画集失败: %w", err)
	}
	log.Printf("✓ 角色 %q: %d 组动画", cfg.Name, len(animations))

	// 图片来源:配置指定了目录时走磁盘资源管理器,否则用内置图库
	var (
		source   render.ImageSource
		resolver figure.ImageResolver
	)
	if cfg.ImageDir != "" {
		manager := assets.NewManager(cfg.ImageDir)
		source, resolver = manager, manager
		log.Printf("✓ 图片目录: %s", cfg.ImageDir)
	} else {
		library := sprites.NewLibrary(stageSize)
		source, resolver = library, library
	}

	// 舞台是只有一个格子的棋盘,角色固定在唯一的格子里
	stage := &render.GridBoard{
		Rows: 1, Cols: 1,
		CellWidth: stageSize, CellHeight: stageSize,
		OriginX: stageX, OriginY: stageY,
	}

	sprite := render.NewSprite(source)

	char, err := figure.NewCharacter(figure.Config{
		Surface:    sprite,
		Grid:       stage,
		Resolver:   resolver,
		Animations: animations,
	})
	if err != nil {
		return nil, fmt.Errorf("创建角色失败: %w", err)
	}

	names := char.Animations()
	if err := char.PlayAnimation(names[0]); err != nil {
		return nil, fmt.Errorf("播放动画失败: %w", err)
	}

	return &Game{
		stage:  stage,
		sprite: sprite,
		char:   char,
		names:  names,
	}, nil
}

// selectAnimation 切换到第 i 个动画
func (g *Game) selectAnimation(i int) {
	if i < 0 || i >= len(g.names) {
		return
	}
	if err := g.char.PlayAnimation(g.names[i]); err != nil {
		log.Printf("警告: 播放动画失败: %v", err)
		return
	}
	if *verbose {
		log.Printf("切换动画: %s", g.names[i])
	}
}

// currentIndex 返回当前动画在名称表里的序号
func (g *Game) currentIndex() int {
	current := g.char.CurrentAnimation()
	for i, name := range g.names {
		if name == current {
			return i
		}
	}
	return -1
}

// Update 更新演示逻辑
func (g *Game) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// 数字键按序号选择(最多 9 个)
	for i := 0; i < len(g.names) && i < 9; i++ {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			g.selectAnimation(i)
		}
	}

	// Tab 循环切换
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.selectAnimation((g.currentIndex() + 1) % len(g.names))
	}

	// 空格从头重放:对正在播放的动画,重放等价于取消并重启
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.selectAnimation(g.currentIndex())
	}

	return g.char.Tick(deltaTime)
}

// Draw 绘制演示画面
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{50, 50, 50, 255})

	g.stage.Draw(screen,
		color.RGBA{235, 235, 235, 255},
		color.RGBA{235, 235, 235, 255})
	g.stage.DrawBorder(screen, color.RGBA{120, 120, 120, 255}, 2)

	g.sprite.Draw(screen)

	ebitenutil.DebugPrintAt(screen, "1-9: select  Tab: next  Space: replay  ESC: quit", 10, 10)

	// 左侧列出全部动画,当前动画加标记
	active := g.currentIndex()
	for i, name := range g.names {
		marker := "  "
		if i == active {
			marker = "> "
		}
		line := fmt.Sprintf("%s%d. %s", marker, i+1, name)
		ebitenutil.DebugPrintAt(screen, line, 10, 50+i*16)
	}

	status := fmt.Sprintf("Frame: %d", g.char.FrameIndex())
	ebitenutil.DebugPrintAt(screen, status, 10, windowHeight-24)
}

func main() {
	flag.Parse()

	if *verbose {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	}

	log.Println("=== 动画预览启动 ===")

	game, err := NewGame()
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	if err := app.Run(game, app.Config{
		Title:   "Figure - Animation Preview",
		Width:   windowWidth,
		Height:  windowHeight,
		Verbose: *verbose,
	}); err != nil {
		log.Fatal(err)
	}
}
