// Package render 提供核心库在 Ebitengine 下的绘制适配
//
// Sprite 充当角色的绘制表面,GridBoard 与 FreeArea 充当两种移动模式的
// 容器。三者只做状态承接与绘制,不包含任何移动/播放规则,规则都在核心库里。
package render

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageSource 按标识提供图片
// 磁盘资源管理器和内存图库都满足这个接口
type ImageSource interface {
	Image(id string) (*ebiten.Image, error)
}

// Sprite 实现核心库的绘制表面:承接 Show/Reposition,在 Draw 时输出到屏幕
// 角色的每次状态变化同步落到这里,游戏循环的 Draw 阶段只读取
type Sprite struct {
	source           ImageSource
	image            *ebiten.Image
	x, y             int
	originX, originY int
}

// NewSprite 创建精灵,图片一律经由 source 取得
func NewSprite(source ImageSource) *Sprite {
	return &Sprite{source: source}
}

// SetOrigin 设置精灵绘制位置的固定偏移
// 自由模式下核心发出的是区域本地坐标,把原点设为 FreeArea 的原点即可落到
// 屏幕上的正确位置;网格模式的 CellToPixel 返回格子左上角,偏移取
// (格宽-角色宽)/2 可以把角色居中到格子内
func (s *Sprite) SetOrigin(x, y int) {
	s.originX = x
	s.originY = y
}

// Show 切换当前显示的图片
// 标识无法取得时保留上一张图片并记录日志
// (角色构造时的解析校验已覆盖正常路径,这里只是兜底)
func (s *Sprite) Show(image string) {
	img, err := s.source.Image(image)
	if err != nil {
		log.Printf("[Render] Warning: failed to show image %q: %v", image, err)
		return
	}
	s.image = img
}

// Reposition 移动到指定像素位置
func (s *Sprite) Reposition(x, y int) {
	s.x = x
	s.y = y
}

// Draw 将当前图片绘制到屏幕上的当前位置(含原点偏移)
// 尚未显示过任何图片时什么都不画
func (s *Sprite) Draw(screen *ebiten.Image) {
	if s.image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(s.originX+s.x), float64(s.originY+s.y))
	screen.DrawImage(s.image, op)
}

// Position 返回当前像素位置
func (s *Sprite) Position() (x, y int) {
	return s.x, s.y
}

// CurrentImage 返回当前图片,尚未显示过时为 nil
func (s *Sprite) CurrentImage() *ebiten.Image {
	return s.image
}
