// cmd/term_demo/main.go
// 终端版网格移动演示:角色是一张字符画,棋盘画在终端里
//
// 用法：
//   go run ./cmd/term_demo [-verbose]
//
// 操作：
//   hjkl / 方向键 - 移动一格
//   q / ESC / Ctrl+C - 退出
//
// 越界移动会让棋盘边框闪红并蜂鸣一声。驱动角色的核心与 Ebitengine
// 演示完全相同,只是绘制表面换成了终端适配层。
//
// -verbose 把日志写到 stderr,会干扰画面,仅排查问题时配合 2>文件 使用。

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/figure/pkg/figure"
	"github.com/decker502/figure/pkg/term"
)

var verbose = flag.Bool("verbose", false, "详细日志(写到 stderr)")

const (
	boardRows  = 6
	boardCols  = 6
	cellWidth  = 7
	cellHeight = 3
	boardX     = 4
	boardY     = 4

	// errorBlinkMs 越界提示的红框持续时间(毫秒)
	errorBlinkMs = 200

	initialRow = 1
	initialCol = 0
)

// blinkArts 注册眨眼动画用到的字符画
// 图片标识沿用图形版演示的命名,半闭帧在闭合前后各用一次
func blinkArts() (map[string]term.Art, error) {
	style := tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)

	faces := []struct {
		id    string
		lines []string
	}{
		{"blue_square_blink_0001.png", []string{
			".---.",
			"|o_o|",
			"'---'",
		}},
		{"blue_square_blink_0002.png", []string{
			".---.",
			"|-_-|",
			"'---'",
		}},
		{"blue_square_blink_0003.png", []string{
			".---.",
			"|___|",
			"'---'",
		}},
		{"blue_square_blink_0004.png", []string{
			".---.",
			"|-_-|",
			"'---'",
		}},
	}

	arts := make(map[string]term.Art, len(faces))
	for _, f := range faces {
		a, err := term.NewArt(f.lines, style)
		if err != nil {
			return nil, fmt.Errorf("art %q: %w", f.id, err)
		}
		arts[f.id] = a
	}
	return arts, nil
}

// blinkAnimation 构建眨眼动画,节奏与图形版演示一致
func blinkAnimation() (*figure.Animation, error) {
	specs := []struct {
		image    string
		duration float64
	}{
		{"blue_square_blink_0001.png", 0},
		{"blue_square_blink_0002.png", 0.1},
		{"blue_square_blink_0003.png", 0.1},
		{"blue_square_blink_0004.png", 0},
		{"blue_square_blink_0001.png", 3.0},
	}

	frames := make([]figure.Frame, 0, len(specs))
	for _, s := range specs {
		var (
			f   figure.Frame
			err error
		)
		if s.duration == 0 {
			f, err = figure.NewDefaultFrame(s.image)
		} else {
			f, err = figure.NewFrame(s.image, s.duration)
		}
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return figure.NewAnimation("blink", frames)
}

// Game 终端演示
type Game struct {
	screen tcell.Screen
	board  *term.Board
	sprite *term.Sprite
	char   *figure.Character
	beeper *term.Beeper

	// errorTime 最近一次越界移动的时间,红框在其后 errorBlinkMs 内显示
	errorTime time.Time
	lastTick  time.Time
}

func NewGame() (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	board := &term.Board{
		Rows: boardRows, Cols: boardCols,
		CellWidth: cellWidth, CellHeight: cellHeight,
		OriginX: boardX, OriginY: boardY,
	}

	arts, err := blinkArts()
	if err != nil {
		screen.Fini()
		return nil, err
	}
	sprite := term.NewSprite(arts)
	// 字符画 5 列宽,格子 7 列宽,偏移一列让它居中
	sprite.SetOrigin(1, 0)

	blink, err := blinkAnimation()
	if err != nil {
		screen.Fini()
		return nil, err
	}

	char, err := figure.NewCharacter(figure.Config{
		Surface:    sprite,
		Grid:       board,
		Resolver:   sprite,
		Animations: []*figure.Animation{blink},
		Row:        initialRow,
		Col:        initialCol,
	})
	if err != nil {
		screen.Fini()
		return nil, fmt.Errorf("create character: %w", err)
	}
	if err := char.PlayAnimation("blink"); err != nil {
		screen.Fini()
		return nil, err
	}

	return &Game{
		screen:   screen,
		board:    board,
		sprite:   sprite,
		char:     char,
		beeper:   term.NewBeeper(),
		lastTick: time.Now(),
	}, nil
}

// tryMove 应用一次移动,越界时蜂鸣并记下闪红时刻
func (g *Game) tryMove(dRow, dCol int) {
	if err := g.char.Move(dRow, dCol); err != nil {
		if errors.Is(err, figure.ErrOutOfBounds) {
			g.errorTime = time.Now()
			g.beeper.Play()
			log.Printf("move rejected: %v", err)
		}
		return
	}
	if *verbose {
		row, col := g.char.Position()
		log.Printf("moved to cell (%d,%d)", row, col)
	}
}

// handleInput 处理一个终端事件,返回 false 表示退出
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			g.tryMove(-1, 0)
		case tcell.KeyDown:
			g.tryMove(1, 0)
		case tcell.KeyLeft:
			g.tryMove(0, -1)
		case tcell.KeyRight:
			g.tryMove(0, 1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'k':
				g.tryMove(-1, 0)
			case 'j':
				g.tryMove(1, 0)
			case 'h':
				g.tryMove(0, -1)
			case 'l':
				g.tryMove(0, 1)
			}
		}

	case *tcell.EventResize:
		g.screen.Sync()
	}

	return true
}

// drawText 把一行文本写到屏幕指定位置
func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func (g *Game) draw() {
	g.screen.Clear()

	light := tcell.StyleDefault.Background(tcell.NewRGBColor(235, 235, 235))
	dark := tcell.StyleDefault.Background(tcell.NewRGBColor(204, 204, 204))
	g.board.Draw(g.screen, light, dark)

	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	if time.Since(g.errorTime).Milliseconds() < errorBlinkMs {
		borderStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	}
	g.board.DrawBorder(g.screen, borderStyle)

	g.sprite.Render(g.screen)

	textStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	drawText(g.screen, boardX-1, 1, textStyle, "hjkl/arrows: move  q/ESC: quit")

	row, col := g.char.Position()
	status := fmt.Sprintf("Cell: (%d,%d)  Animation: %s  Frame: %d",
		row, col, g.char.CurrentAnimation(), g.char.FrameIndex())
	if time.Since(g.errorTime).Milliseconds() < errorBlinkMs {
		status += "  [move rejected]"
	}
	_, height := g.board.Size()
	drawText(g.screen, boardX-1, boardY+height+1, textStyle, status)

	g.screen.Show()
}

func (g *Game) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case <-ticker.C:
			now := time.Now()
			delta := now.Sub(g.lastTick).Seconds()
			g.lastTick = now
			if err := g.char.Tick(delta); err != nil {
				log.Printf("tick failed: %v", err)
			}
			g.draw()
		}
	}
}

func (g *Game) cleanup() {
	g.beeper.Close()
	g.screen.Fini()
}

func main() {
	flag.Parse()

	// 终端被 tcell 接管后,未重定向的日志会破坏画面
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	game, err := NewGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}
