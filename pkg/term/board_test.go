package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// TestBoardCellToPixel 测试格子坐标到屏幕坐标的换算
func TestBoardCellToPixel(t *testing.T) {
	board := &Board{Rows: 3, Cols: 4, CellWidth: 4, CellHeight: 2, OriginX: 5, OriginY: 3}

	tests := []struct {
		name         string
		row, col     int
		wantX, wantY int
	}{
		{name: "左上角格子", row: 0, col: 0, wantX: 5, wantY: 3},
		{name: "中间格子", row: 1, col: 2, wantX: 13, wantY: 5},
		{name: "右下角格子", row: 2, col: 3, wantX: 17, wantY: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := board.CellToPixel(tt.row, tt.col)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("CellToPixel(%d, %d) = (%d, %d), want (%d, %d)",
					tt.row, tt.col, x, y, tt.wantX, tt.wantY)
			}
		})
	}

	rows, cols := board.GridSize()
	if rows != 3 || cols != 4 {
		t.Errorf("GridSize() = (%d, %d), want (3, 4)", rows, cols)
	}
	width, height := board.Size()
	if width != 16 || height != 6 {
		t.Errorf("Size() = (%d, %d), want (16, 6)", width, height)
	}
}

// TestBoardDraw 测试棋盘格的交替底色
func TestBoardDraw(t *testing.T) {
	screen := newSimScreen(t)
	board := &Board{Rows: 2, Cols: 2, CellWidth: 4, CellHeight: 2, OriginX: 5, OriginY: 3}

	light := tcell.StyleDefault.Background(tcell.ColorWhite)
	dark := tcell.StyleDefault.Background(tcell.ColorGray)
	board.Draw(screen, light, dark)

	_, _, style00, _ := screen.GetContent(5, 3)
	if style00 != light {
		t.Error("cell (0,0) should use the light style")
	}
	_, _, style01, _ := screen.GetContent(9, 3)
	if style01 != dark {
		t.Error("cell (0,1) should use the dark style")
	}
	_, _, style11, _ := screen.GetContent(9, 5)
	if style11 != light {
		t.Error("cell (1,1) should use the light style")
	}
}

// TestBoardDrawBorder 测试边框绘制在画板外沿一圈
func TestBoardDrawBorder(t *testing.T) {
	screen := newSimScreen(t)
	board := &Board{Rows: 2, Cols: 3, CellWidth: 4, CellHeight: 2, OriginX: 5, OriginY: 3}
	style := tcell.StyleDefault.Foreground(tcell.ColorRed)

	board.DrawBorder(screen, style)

	width, height := board.Size()
	left, top := 4, 2
	right, bottom := 5+width, 3+height

	corners := []struct {
		x, y int
		want rune
	}{
		{left, top, tcell.RuneULCorner},
		{right, top, tcell.RuneURCorner},
		{left, bottom, tcell.RuneLLCorner},
		{right, bottom, tcell.RuneLRCorner},
	}
	for _, c := range corners {
		got, _, gotStyle, _ := screen.GetContent(c.x, c.y)
		if got != c.want {
			t.Errorf("corner at (%d,%d) = %q, want %q", c.x, c.y, got, c.want)
		}
		if gotStyle != style {
			t.Errorf("corner style at (%d,%d) differs from the border style", c.x, c.y)
		}
	}

	got, _, _, _ := screen.GetContent(left+2, top)
	if got != tcell.RuneHLine {
		t.Errorf("top edge rune = %q, want horizontal line", got)
	}
	got, _, _, _ = screen.GetContent(left, top+2)
	if got != tcell.RuneVLine {
		t.Errorf("left edge rune = %q, want vertical line", got)
	}
}
