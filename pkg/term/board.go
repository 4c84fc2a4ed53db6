package term

import "github.com/gdamore/tcell/v2"

// Board 终端上的网格画板,实现核心库的网格容器接口
// "像素"是字符单元:每个格子占 CellWidth x CellHeight 个字符
type Board struct {
	Rows, Cols            int // 行数与列数
	CellWidth, CellHeight int // 每格的字符单元尺寸
	OriginX, OriginY      int // 画板左上角的字符单元位置
}

// GridSize 返回网格的行数与列数
func (b *Board) GridSize() (rows, cols int) {
	return b.Rows, b.Cols
}

// CellToPixel 将格子坐标转换为该格子左上角的字符单元坐标
func (b *Board) CellToPixel(row, col int) (x, y int) {
	x = b.OriginX + col*b.CellWidth
	y = b.OriginY + row*b.CellHeight
	return x, y
}

// Size 返回画板的整体字符单元尺寸
func (b *Board) Size() (width, height int) {
	return b.Cols * b.CellWidth, b.Rows * b.CellHeight
}

// Draw 以交替的两种底色填充棋盘格
func (b *Board) Draw(screen tcell.Screen, light, dark tcell.Style) {
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			style := light
			if (row+col)%2 == 1 {
				style = dark
			}
			x, y := b.CellToPixel(row, col)
			for dy := 0; dy < b.CellHeight; dy++ {
				for dx := 0; dx < b.CellWidth; dx++ {
					screen.SetContent(x+dx, y+dy, ' ', nil, style)
				}
			}
		}
	}
}

// DrawBorder 沿画板外沿绘制一圈边框
// 演示程序用它做非法移动时的红色闪烁提示
func (b *Board) DrawBorder(screen tcell.Screen, style tcell.Style) {
	width, height := b.Size()
	left, top := b.OriginX-1, b.OriginY-1
	right, bottom := b.OriginX+width, b.OriginY+height

	for x := left + 1; x < right; x++ {
		screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}
