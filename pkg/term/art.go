// Package term 提供核心库在 tcell 终端下的绘制适配
//
// 终端里的一张"图片"是一幅矩形字符画(Art)。Sprite 充当角色的绘制表面,
// Board 充当网格容器,Beeper 在移动被拒绝时发出提示音。与 Ebitengine 适配
// 层一样,这里只做状态承接与绘制,移动/播放规则全部在核心库里。
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Art 一张图片的终端形态:矩形的字符网格加一个统一样式
// 构造后不可变
type Art struct {
	cells [][]rune
	style tcell.Style
}

// NewArt 从若干行文本构造字符画
// 各行宽度必须一致(按 rune 计),行数与宽度都不能为零
func NewArt(lines []string, style tcell.Style) (Art, error) {
	if len(lines) == 0 {
		return Art{}, fmt.Errorf("art has no lines")
	}
	cells := make([][]rune, len(lines))
	width := len([]rune(lines[0]))
	if width == 0 {
		return Art{}, fmt.Errorf("art line 0 is empty")
	}
	for i, line := range lines {
		runes := []rune(line)
		if len(runes) != width {
			return Art{}, fmt.Errorf("art line %d is %d cells wide, want %d", i, len(runes), width)
		}
		cells[i] = runes
	}
	return Art{cells: cells, style: style}, nil
}

// Width 返回字符画的宽度(字符单元数)
func (a Art) Width() int {
	if len(a.cells) == 0 {
		return 0
	}
	return len(a.cells[0])
}

// Height 返回字符画的高度(行数)
func (a Art) Height() int {
	return len(a.cells)
}

// Render 把字符画绘制到屏幕上,左上角落在 (x, y)
func (a Art) Render(screen tcell.Screen, x, y int) {
	for row, runes := range a.cells {
		for col, r := range runes {
			screen.SetContent(x+col, y+row, r, nil, a.style)
		}
	}
}
