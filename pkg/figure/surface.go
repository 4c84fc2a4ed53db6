package figure

// Surface 是角色用来反映状态变化的绘制表面
// 核心逻辑只会调用这两个方法,不关心背后是 Ebitengine、终端还是测试桩
// 两个方法都是同步生效的:调用返回时新的图片/位置已经被表面接受
type Surface interface {
	// Show 立即显示指定标识的图片
	Show(image string)
	// Reposition 立即移动到指定的像素坐标
	Reposition(x, y int)
}

// GridContainer 提供网格模式所需的容器能力:网格尺寸与格子到像素的映射
type GridContainer interface {
	// GridSize 返回网格的行数与列数
	GridSize() (rows, cols int)
	// CellToPixel 返回格子 (row, col) 对应的像素坐标
	CellToPixel(row, col int) (x, y int)
}

// FreeContainer 提供自由移动模式所需的容器能力:像素边界
type FreeContainer interface {
	// Bounds 返回可移动区域的宽度与高度(像素)
	Bounds() (width, height int)
}

// ImageResolver 校验图片标识是否可以解析为可加载的图片
// 在角色构造时对全部帧做一次校验,保证播放阶段不会再出现资源错误
type ImageResolver interface {
	// Resolve 在图片标识可加载时返回 nil
	Resolve(image string) error
}
