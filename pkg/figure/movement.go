package figure

import "fmt"

// Mode 标识角色的移动模式
type Mode int

const (
	// ModeGrid 网格模式:位置是离散的格子,越界的移动被整体拒绝
	ModeGrid Mode = iota
	// ModeFree 自由模式:位置是连续的像素坐标,越界时收拢到边界
	ModeFree
)

// movement 是嵌在角色内部的移动控制器
// 两种互斥的策略在构造时二选一,之后终生不变,
// 避免在各个移动方法里散落运行期的空值判断
type movement struct {
	surface Surface
	mode    Mode

	// 网格模式
	grid     GridContainer
	row, col int

	// 自由模式
	area FreeContainer
	x, y int
}

// newGridMovement 构造网格模式的移动控制器并落到初始格子
// 初始格子越界时返回 ErrOutOfBounds
func newGridMovement(surface Surface, grid GridContainer, row, col int) (*movement, error) {
	m := &movement{surface: surface, mode: ModeGrid, grid: grid}
	if err := m.setCell(row, col); err != nil {
		return nil, err
	}
	return m, nil
}

// newFreeMovement 构造自由模式的移动控制器并落到初始像素位置
// 初始位置与 SetPosition 一样按边界收拢,不会失败
func newFreeMovement(surface Surface, area FreeContainer, x, y int) *movement {
	m := &movement{surface: surface, mode: ModeFree, area: area}
	m.place(x, y)
	return m
}

// move 按当前模式应用一次位移
// 网格模式下参数是 (行偏移, 列偏移),自由模式下是 (x偏移, y偏移)
func (m *movement) move(a, b int) error {
	if m.mode == ModeGrid {
		return m.setCell(m.row+a, m.col+b)
	}
	m.place(m.x+a, m.y+b)
	return nil
}

// setPosition 直接落到指定位置,不经过中间格子/中间点
// 网格模式下参数是 (行, 列),自由模式下是像素坐标 (x, y)
func (m *movement) setPosition(a, b int) error {
	if m.mode == ModeGrid {
		return m.setCell(a, b)
	}
	m.place(a, b)
	return nil
}

// position 返回当前位置:网格模式为 (行, 列),自由模式为像素 (x, y)
// 只读,无副作用
func (m *movement) position() (int, int) {
	if m.mode == ModeGrid {
		return m.row, m.col
	}
	return m.x, m.y
}

// setCell 校验并落到格子 (row, col)
// 目标在 [0,rows) x [0,cols) 之外时返回包装了 ErrOutOfBounds 的错误,
// 当前格子保持原样(不存在部分移动),也不会触碰绘制表面
func (m *movement) setCell(row, col int) error {
	rows, cols := m.grid.GridSize()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return fmt.Errorf("%w: cell (%d,%d) outside %dx%d grid", ErrOutOfBounds, row, col, rows, cols)
	}
	m.row, m.col = row, col
	x, y := m.grid.CellToPixel(row, col)
	m.surface.Reposition(x, y)
	return nil
}

// place 将像素坐标收拢到 [0,width] x [0,height] 内再落位
// 朝边界的移动会走到边界为止,这是自由模式下符合直觉的行为,
// 与网格模式的整体拒绝是有意保留的差异
func (m *movement) place(x, y int) {
	width, height := m.area.Bounds()
	m.x = clamp(x, 0, width)
	m.y = clamp(y, 0, height)
	m.surface.Reposition(m.x, m.y)
}

// clamp 将 v 收拢到 [lo, hi] 区间内
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
