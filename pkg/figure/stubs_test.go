// stubs_test.go - 测试共用的桩实现
//
// 核心逻辑只通过注入的接口与外界交互,因此测试不需要真实窗口,
// 用记录型桩替代绘制表面即可逐条断言核心发出的调用及其顺序。
package figure

import "fmt"

// stubSurface 记录核心发出的全部绘制调用
type stubSurface struct {
	shows []string
	moves [][2]int
}

func (s *stubSurface) Show(image string) {
	s.shows = append(s.shows, image)
}

func (s *stubSurface) Reposition(x, y int) {
	s.moves = append(s.moves, [2]int{x, y})
}

// stubGrid 固定尺寸的网格容器,格子映射为 (col*cellW, row*cellH)
type stubGrid struct {
	rows, cols   int
	cellW, cellH int
}

func (g stubGrid) GridSize() (rows, cols int) {
	return g.rows, g.cols
}

func (g stubGrid) CellToPixel(row, col int) (x, y int) {
	return col * g.cellW, row * g.cellH
}

// stubArea 固定边界的自由移动容器
type stubArea struct {
	w, h int
}

func (a stubArea) Bounds() (width, height int) {
	return a.w, a.h
}

// stubResolver 按黑名单拒绝图片标识
type stubResolver struct {
	missing map[string]bool
}

func (r stubResolver) Resolve(image string) error {
	if r.missing[image] {
		return fmt.Errorf("image %q not found", image)
	}
	return nil
}

// mustAnimation 构造测试动画,失败直接 panic(测试数据写错时尽早暴露)
func mustAnimation(name string, frames ...Frame) *Animation {
	a, err := NewAnimation(name, frames)
	if err != nil {
		panic(err)
	}
	return a
}

// frame 构造测试帧的简写
func frame(image string, duration float64) Frame {
	return Frame{Image: image, Duration: duration}
}
