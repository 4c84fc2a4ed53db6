// cmd/grid_demo/main.go
// 网格移动演示:角色在 6x6 棋盘上移动,越界的移动被整体拒绝
//
// 用法：
//   go run ./cmd/grid_demo [-verbose] [-restore=false]
//
// 操作：
//   方向键 / WASD - 移动一格
//   鼠标左键      - 瞬移到点中的格子
//   ESC           - 退出
//
// 越界移动会让棋盘边框闪红 0.2 秒。退出时的格子会被记住,
// 下次启动时自动回到那里(-restore=false 关闭)。

package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/figure/internal/sprites"
	"github.com/decker502/figure/pkg/app"
	"github.com/decker502/figure/pkg/figure"
	"github.com/decker502/figure/pkg/render"
	"github.com/decker502/figure/pkg/session"
)

var (
	verbose = flag.Bool("verbose", false, "详细日志")
	restore = flag.Bool("restore", true, "恢复上次退出时的格子")
)

const (
	windowWidth  = 520
	windowHeight = 560

	boardRows = 6
	boardCols = 6
	cellSize  = 80
	boardX    = 20
	boardY    = 60

	spriteSize = 54

	// flashDuration 越界提示的红框持续时间(秒)
	flashDuration = 0.2

	defaultRow = 1
	defaultCol = 0
)

// moveKeys 方向键与 WASD 到格子偏移的映射
var moveKeys = []struct {
	key        ebiten.Key
	dRow, dCol int
}{
	{ebiten.KeyUp, -1, 0},
	{ebiten.KeyW, -1, 0},
	{ebiten.KeyDown, 1, 0},
	{ebiten.KeyS, 1, 0},
	{ebiten.KeyLeft, 0, -1},
	{ebiten.KeyA, 0, -1},
	{ebiten.KeyRight, 0, 1},
	{ebiten.KeyD, 0, 1},
}

// Game 网格演示
type Game struct {
	board  *render.GridBoard
	sprite *render.Sprite
	char   *figure.Character
	sess   *session.Manager

	// flashTimer 大于 0 时边框显示为红色,随时间衰减
	flashTimer float64
}

// NewGame 创建演示实例
func NewGame() (*Game, error) {
	board := &render.GridBoard{
		Rows: boardRows, Cols: boardCols,
		CellWidth: cellSize, CellHeight: cellSize,
		OriginX: boardX, OriginY: boardY,
	}

	library := sprites.NewLibrary(spriteSize)
	animations, err := sprites.Animations()
	if err != nil {
		return nil, fmt.Errorf("构建动画集失败: %w", err)
	}
	log.Printf("✓ 内置图库就绪: %d 张图片, %d 组动画", len(library.IDs()), len(animations))

	sprite := render.NewSprite(library)
	// 网格坐标指向格子左上角,加偏移让角色在格子内居中
	sprite.SetOrigin((cellSize-spriteSize)/2, (cellSize-spriteSize)/2)

	sess := session.NewManager(session.Open("figure_grid_demo"))

	row, col := defaultRow, defaultCol
	animation := "blink"
	if *restore {
		if st := sess.State(); st.Animation != "" {
			row, col = st.Row, st.Col
			animation = st.Animation
			log.Printf("✓ 恢复上次会话: 格子 (%d,%d), 动画 %s", row, col, animation)
		}
	}

	cfg := figure.Config{
		Surface:    sprite,
		Grid:       board,
		Resolver:   library,
		Animations: animations,
		Row:        row,
		Col:        col,
	}
	char, err := figure.NewCharacter(cfg)
	if err != nil && (row != defaultRow || col != defaultCol) {
		// 恢复的格子对当前棋盘不可用,回到默认格子重来
		log.Printf("警告: 恢复的格子不可用: %v (回到默认格子)", err)
		cfg.Row, cfg.Col = defaultRow, defaultCol
		char, err = figure.NewCharacter(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("创建角色失败: %w", err)
	}

	if err := char.PlayAnimation(animation); err != nil {
		log.Printf("警告: 动画 %q 不存在: %v (改用 blink)", animation, err)
		if err := char.PlayAnimation("blink"); err != nil {
			return nil, fmt.Errorf("播放动画失败: %w", err)
		}
	}

	g := &Game{
		board:  board,
		sprite: sprite,
		char:   char,
		sess:   sess,
	}
	g.saveSession()

	return g, nil
}

// saveSession 把当前格子与动画写入会话存储
func (g *Game) saveSession() {
	row, col := g.char.Position()
	g.sess.SetCell(row, col)
	g.sess.SetAnimation(g.char.CurrentAnimation())
	if err := g.sess.Save(); err != nil {
		log.Printf("警告: 保存会话失败: %v", err)
	}
}

// Update 更新演示逻辑
func (g *Game) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.flashTimer > 0 {
		g.flashTimer -= deltaTime
	}

	// 方向键移动,越界时整体拒绝并闪红提示
	for _, mk := range moveKeys {
		if !inpututil.IsKeyJustPressed(mk.key) {
			continue
		}
		if err := g.char.Move(mk.dRow, mk.dCol); err != nil {
			if errors.Is(err, figure.ErrOutOfBounds) {
				g.flashTimer = flashDuration
				log.Printf("移动被拒绝: %v", err)
			}
			continue
		}
		g.saveSession()
		if *verbose {
			row, col := g.char.Position()
			log.Printf("移动到格子 (%d,%d)", row, col)
		}
	}

	// 点击瞬移:点在棋盘外时忽略
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if row, col, ok := g.board.PixelToCell(x, y); ok {
			if err := g.char.SetPosition(row, col); err != nil {
				if errors.Is(err, figure.ErrOutOfBounds) {
					g.flashTimer = flashDuration
				}
			} else {
				g.saveSession()
				if *verbose {
					log.Printf("瞬移到格子 (%d,%d)", row, col)
				}
			}
		}
	}

	return g.char.Tick(deltaTime)
}

// Draw 绘制演示画面
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{50, 50, 50, 255})

	g.board.Draw(screen,
		color.RGBA{235, 235, 235, 255},
		color.RGBA{204, 204, 204, 255})

	if g.flashTimer > 0 {
		g.board.DrawBorder(screen, color.RGBA{220, 60, 60, 255}, 3)
	} else {
		g.board.DrawBorder(screen, color.RGBA{120, 120, 120, 255}, 1)
	}

	g.sprite.Draw(screen)

	row, col := g.char.Position()
	status := fmt.Sprintf("Cell: (%d,%d)  Animation: %s  Frame: %d",
		row, col, g.char.CurrentAnimation(), g.char.FrameIndex())
	if g.flashTimer > 0 {
		status += "  [move rejected]"
	}
	ebitenutil.DebugPrintAt(screen, "Arrows/WASD: move  Click: teleport  ESC: quit", 20, 10)
	ebitenutil.DebugPrintAt(screen, status, 20, 28)
}

func main() {
	flag.Parse()

	if *verbose {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	}

	log.Println("=== 网格移动演示启动 ===")

	game, err := NewGame()
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	if err := app.Run(game, app.Config{
		Title:   "Figure - Grid Demo",
		Width:   windowWidth,
		Height:  windowHeight,
		Verbose: *verbose,
	}); err != nil {
		log.Fatal(err)
	}
}
