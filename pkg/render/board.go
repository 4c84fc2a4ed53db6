package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridBoard 固定尺寸的网格画板,实现核心库的网格容器接口
// 像素坐标系以窗口左上角为原点,画板从 (OriginX, OriginY) 开始铺设
type GridBoard struct {
	Rows, Cols            int // 行数与列数
	CellWidth, CellHeight int // 每格的像素尺寸
	OriginX, OriginY      int // 画板左上角的像素位置
}

// GridSize 返回网格的行数与列数
func (b *GridBoard) GridSize() (rows, cols int) {
	return b.Rows, b.Cols
}

// CellToPixel 将格子坐标转换为该格子左上角的像素坐标
// 参数:
//   - row: 行索引 (0-based)
//   - col: 列索引 (0-based)
//
// 返回:
//   - x, y: 格子左上角的像素坐标
func (b *GridBoard) CellToPixel(row, col int) (x, y int) {
	x = b.OriginX + col*b.CellWidth
	y = b.OriginY + row*b.CellHeight
	return x, y
}

// PixelToCell 将像素坐标(例如鼠标位置)转换为格子坐标
// 参数:
//   - x, y: 像素坐标
//
// 返回:
//   - row: 行索引
//   - col: 列索引
//   - ok: 是否落在画板范围内
func (b *GridBoard) PixelToCell(x, y int) (row, col int, ok bool) {
	width, height := b.PixelSize()
	if x < b.OriginX || x >= b.OriginX+width || y < b.OriginY || y >= b.OriginY+height {
		return 0, 0, false
	}

	col = (x - b.OriginX) / b.CellWidth
	row = (y - b.OriginY) / b.CellHeight

	// 边界检查(防止整除边缘情况导致的越界)
	if col >= b.Cols {
		col = b.Cols - 1
	}
	if row >= b.Rows {
		row = b.Rows - 1
	}

	return row, col, true
}

// PixelSize 返回画板的整体像素尺寸
func (b *GridBoard) PixelSize() (width, height int) {
	return b.Cols * b.CellWidth, b.Rows * b.CellHeight
}

// Draw 以交替的两种底色绘制棋盘格
func (b *GridBoard) Draw(screen *ebiten.Image, light, dark color.Color) {
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			clr := light
			if (row+col)%2 == 1 {
				clr = dark
			}
			x, y := b.CellToPixel(row, col)
			vector.DrawFilledRect(screen, float32(x), float32(y),
				float32(b.CellWidth), float32(b.CellHeight), clr, false)
		}
	}
}

// DrawBorder 沿画板外沿描边
// 演示程序用它做非法移动时的红色闪烁提示
func (b *GridBoard) DrawBorder(screen *ebiten.Image, clr color.Color, strokeWidth float32) {
	width, height := b.PixelSize()
	vector.StrokeRect(screen, float32(b.OriginX), float32(b.OriginY),
		float32(width), float32(height), strokeWidth, clr, false)
}
