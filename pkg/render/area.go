package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FreeArea 固定边界的自由移动区域,实现核心库的自由容器接口
// 角色位置以区域左上角为原点,收拢在 [0,Width] x [0,Height] 内;
// 绘制时整个区域平移到屏幕上的 (OriginX, OriginY)
type FreeArea struct {
	Width, Height    int // 位置活动范围(像素)
	OriginX, OriginY int // 区域左上角的屏幕像素位置
}

// Bounds 返回可移动区域的宽度与高度
func (a *FreeArea) Bounds() (width, height int) {
	return a.Width, a.Height
}

// Contains 判断屏幕像素坐标是否落在区域内
func (a *FreeArea) Contains(x, y int) bool {
	return x >= a.OriginX && x <= a.OriginX+a.Width &&
		y >= a.OriginY && y <= a.OriginY+a.Height
}

// Draw 以底色填充整个区域
func (a *FreeArea) Draw(screen *ebiten.Image, fill color.Color) {
	vector.DrawFilledRect(screen, float32(a.OriginX), float32(a.OriginY),
		float32(a.Width), float32(a.Height), fill, false)
}

// DrawBorder 沿区域外沿描边
// 演示程序用它标出活动范围的边界
func (a *FreeArea) DrawBorder(screen *ebiten.Image, clr color.Color, strokeWidth float32) {
	vector.StrokeRect(screen, float32(a.OriginX), float32(a.OriginY),
		float32(a.Width), float32(a.Height), strokeWidth, clr, false)
}
