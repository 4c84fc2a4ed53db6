package term

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
)

// Sprite 实现核心库的绘制表面:承接 Show/Reposition,在 Render 时输出到终端
// 图片标识映射到注册表里的字符画;注册表在构造时复制,之后不可变
type Sprite struct {
	arts             map[string]Art
	current          string // 当前显示的标识,空串表示尚未显示过
	x, y             int
	originX, originY int
}

// NewSprite 创建终端精灵,注册表为 标识→字符画 的映射
func NewSprite(arts map[string]Art) *Sprite {
	copied := make(map[string]Art, len(arts))
	for id, a := range arts {
		copied[id] = a
	}
	return &Sprite{arts: copied}
}

// SetOrigin 设置渲染位置的固定偏移
// 棋盘格坐标指向格子左上角,偏移可以把字符画在格子内居中
func (s *Sprite) SetOrigin(x, y int) {
	s.originX = x
	s.originY = y
}

// Show 切换当前显示的字符画
// 标识未注册时保留上一张并记录日志
// (角色构造时的解析校验已覆盖正常路径,这里只是兜底)
func (s *Sprite) Show(image string) {
	if _, ok := s.arts[image]; !ok {
		log.Printf("[Term] Warning: unknown art %q", image)
		return
	}
	s.current = image
}

// Reposition 移动到指定的字符单元坐标
func (s *Sprite) Reposition(x, y int) {
	s.x = x
	s.y = y
}

// Resolve 在图片标识已注册时返回 nil
// 实现核心库的图片解析器接口
func (s *Sprite) Resolve(image string) error {
	if _, ok := s.arts[image]; !ok {
		return fmt.Errorf("unknown art %q", image)
	}
	return nil
}

// Render 把当前字符画绘制到屏幕上的当前位置(含原点偏移)
// 尚未显示过任何字符画时什么都不画
func (s *Sprite) Render(screen tcell.Screen) {
	a, ok := s.arts[s.current]
	if !ok {
		return
	}
	a.Render(screen, s.originX+s.x, s.originY+s.y)
}

// Position 返回当前的字符单元坐标
func (s *Sprite) Position() (x, y int) {
	return s.x, s.y
}

// Current 返回当前显示的图片标识,尚未显示过时返回空串
func (s *Sprite) Current() string {
	return s.current
}
