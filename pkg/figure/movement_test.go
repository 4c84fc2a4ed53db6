package figure

import (
	"errors"
	"reflect"
	"testing"
)

// newGridCharacter 构造网格模式角色,格子像素映射为 (col*10, row*10)
func newGridCharacter(t *testing.T, surface *stubSurface, rows, cols, row, col int) *Character {
	t.Helper()
	c, err := NewCharacter(Config{
		Surface: surface,
		Grid:    stubGrid{rows: rows, cols: cols, cellW: 10, cellH: 10},
		Row:     row,
		Col:     col,
	})
	if err != nil {
		t.Fatalf("NewCharacter returned error: %v", err)
	}
	return c
}

// newFreeCharacter 构造自由模式角色
func newFreeCharacter(t *testing.T, surface *stubSurface, w, h, x, y int) *Character {
	t.Helper()
	c, err := NewCharacter(Config{
		Surface: surface,
		Area:    stubArea{w: w, h: h},
		X:       x,
		Y:       y,
	})
	if err != nil {
		t.Fatalf("NewCharacter returned error: %v", err)
	}
	return c
}

// TestGridMove 测试网格模式的移动:界内生效,越界整体拒绝
func TestGridMove(t *testing.T) {
	tests := []struct {
		name       string
		dRow, dCol int
		wantErr    error
		wantRow    int
		wantCol    int
	}{
		{name: "向右一格", dRow: 0, dCol: 1, wantErr: nil, wantRow: 2, wantCol: 3},
		{name: "向下一格", dRow: 1, dCol: 0, wantErr: nil, wantRow: 3, wantCol: 2},
		{name: "斜向移动", dRow: -1, dCol: -1, wantErr: nil, wantRow: 1, wantCol: 1},
		{name: "零位移原地不动", dRow: 0, dCol: 0, wantErr: nil, wantRow: 2, wantCol: 2},
		{name: "右越界被拒绝", dRow: 0, dCol: 3, wantErr: ErrOutOfBounds, wantRow: 2, wantCol: 2},
		{name: "下越界被拒绝", dRow: 3, dCol: 0, wantErr: ErrOutOfBounds, wantRow: 2, wantCol: 2},
		{name: "负方向越界被拒绝", dRow: -3, dCol: 0, wantErr: ErrOutOfBounds, wantRow: 2, wantCol: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := &stubSurface{}
			c := newGridCharacter(t, surface, 5, 5, 2, 2)

			err := c.Move(tt.dRow, tt.dCol)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Move(%d,%d) error = %v, want %v", tt.dRow, tt.dCol, err, tt.wantErr)
			}
			row, col := c.Position()
			if row != tt.wantRow || col != tt.wantCol {
				t.Errorf("Position() = (%d,%d), want (%d,%d)", row, col, tt.wantRow, tt.wantCol)
			}
		})
	}
}

// TestGridMoveRejectionIsIdempotent 测试被拒绝的移动不产生任何输出变化
// 构造时一次 Reposition,之后连续的越界移动既不改格子也不触碰绘制表面
func TestGridMoveRejectionIsIdempotent(t *testing.T) {
	surface := &stubSurface{}
	c := newGridCharacter(t, surface, 5, 5, 2, 2)

	movesBefore := len(surface.moves)
	for i := 0; i < 3; i++ {
		if err := c.Move(0, 3); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Move(0,3) error = %v, want ErrOutOfBounds", err)
		}
	}
	row, col := c.Position()
	if row != 2 || col != 2 {
		t.Errorf("Position() = (%d,%d) after rejected moves, want (2,2)", row, col)
	}
	if len(surface.moves) != movesBefore {
		t.Errorf("surface received %d extra Reposition calls on rejected moves", len(surface.moves)-movesBefore)
	}
}

// TestGridMoveRepositionsToCellPixel 测试界内移动按容器映射落位
func TestGridMoveRepositionsToCellPixel(t *testing.T) {
	surface := &stubSurface{}
	c := newGridCharacter(t, surface, 6, 6, 1, 0)

	if err := c.Move(0, 2); err != nil {
		t.Fatalf("Move returned error: %v", err)
	}
	// 构造时落到 (1,0)=(0,10),移动后落到 (1,2)=(20,10)
	want := [][2]int{{0, 10}, {20, 10}}
	if !reflect.DeepEqual(surface.moves, want) {
		t.Errorf("moves = %v, want %v", surface.moves, want)
	}
}

// TestGridSetPosition 测试网格模式的直接落位
func TestGridSetPosition(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
		wantErr  error
	}{
		{name: "界内任意格子", row: 4, col: 0, wantErr: nil},
		{name: "原点", row: 0, col: 0, wantErr: nil},
		{name: "行越界", row: 5, col: 0, wantErr: ErrOutOfBounds},
		{name: "列越界", row: 0, col: 5, wantErr: ErrOutOfBounds},
		{name: "负行", row: -1, col: 0, wantErr: ErrOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := &stubSurface{}
			c := newGridCharacter(t, surface, 5, 5, 2, 2)

			err := c.SetPosition(tt.row, tt.col)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SetPosition(%d,%d) error = %v, want %v", tt.row, tt.col, err, tt.wantErr)
			}
			row, col := c.Position()
			if tt.wantErr == nil {
				// 往返:落位成功后位置就是所设的值
				if row != tt.row || col != tt.col {
					t.Errorf("Position() = (%d,%d), want (%d,%d)", row, col, tt.row, tt.col)
				}
			} else if row != 2 || col != 2 {
				t.Errorf("Position() = (%d,%d) after rejected set, want (2,2)", row, col)
			}
		})
	}
}

// TestFreeMoveClamps 测试自由模式的移动永不越界,越界分量收拢到边界
func TestFreeMoveClamps(t *testing.T) {
	tests := []struct {
		name   string
		startX int
		startY int
		dx, dy int
		wantX  int
		wantY  int
	}{
		{name: "界内平移", startX: 20, startY: 20, dx: 15, dy: 0, wantX: 35, wantY: 20},
		{name: "右越界收拢", startX: 95, startY: 5, dx: 20, dy: 0, wantX: 100, wantY: 5},
		{name: "左越界收拢", startX: 5, startY: 50, dx: -20, dy: 0, wantX: 0, wantY: 50},
		{name: "下越界收拢", startX: 50, startY: 95, dx: 0, dy: 30, wantX: 50, wantY: 100},
		{name: "双轴同时越界", startX: 95, startY: 95, dx: 50, dy: 50, wantX: 100, wantY: 100},
		{name: "恰好落在边界上", startX: 85, startY: 0, dx: 15, dy: 0, wantX: 100, wantY: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := &stubSurface{}
			c := newFreeCharacter(t, surface, 100, 100, tt.startX, tt.startY)

			if err := c.Move(tt.dx, tt.dy); err != nil {
				t.Fatalf("Move(%d,%d) returned error: %v", tt.dx, tt.dy, err)
			}
			x, y := c.Position()
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Position() = (%d,%d), want (%d,%d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestFreeMoveNeverEscapesBounds 测试反复朝边界移动只会停在边界上
func TestFreeMoveNeverEscapesBounds(t *testing.T) {
	surface := &stubSurface{}
	c := newFreeCharacter(t, surface, 100, 100, 20, 20)

	for i := 0; i < 50; i++ {
		if err := c.Move(15, 15); err != nil {
			t.Fatalf("Move returned error: %v", err)
		}
		x, y := c.Position()
		if x < 0 || x > 100 || y < 0 || y > 100 {
			t.Fatalf("Position() = (%d,%d) escaped bounds on step %d", x, y, i)
		}
	}
	x, y := c.Position()
	if x != 100 || y != 100 {
		t.Errorf("Position() = (%d,%d) after walking into the corner, want (100,100)", x, y)
	}
}

// TestFreeSetPosition 测试自由模式的直接落位与收拢
func TestFreeSetPosition(t *testing.T) {
	tests := []struct {
		name  string
		x, y  int
		wantX int
		wantY int
	}{
		{name: "界内往返", x: 37, y: 73, wantX: 37, wantY: 73},
		{name: "边界上往返", x: 0, y: 100, wantX: 0, wantY: 100},
		{name: "越界收拢", x: 300, y: -10, wantX: 100, wantY: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := &stubSurface{}
			c := newFreeCharacter(t, surface, 100, 100, 0, 0)

			if err := c.SetPosition(tt.x, tt.y); err != nil {
				t.Fatalf("SetPosition(%d,%d) returned error: %v", tt.x, tt.y, err)
			}
			x, y := c.Position()
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Position() = (%d,%d), want (%d,%d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestFreeMoveRepositionsSurface 测试自由模式每次移动都同步落位到绘制表面
func TestFreeMoveRepositionsSurface(t *testing.T) {
	surface := &stubSurface{}
	c := newFreeCharacter(t, surface, 560, 500, 20, 20)

	if err := c.Move(15, 0); err != nil {
		t.Fatalf("Move returned error: %v", err)
	}
	if err := c.Move(0, 15); err != nil {
		t.Fatalf("Move returned error: %v", err)
	}
	// 构造时一次,两次移动各一次
	want := [][2]int{{20, 20}, {35, 20}, {35, 35}}
	if !reflect.DeepEqual(surface.moves, want) {
		t.Errorf("moves = %v, want %v", surface.moves, want)
	}
}
