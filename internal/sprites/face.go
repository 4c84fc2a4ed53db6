// Package sprites 在启动时生成演示用的角色帧
//
// 仓库不携带任何二进制素材:演示角色是一张程序化绘制的蓝色方块脸,
// 眨眼、单眼眨、抬眼、挑眉四组动画各对应四张表情图。帧先画在
// 标准库的 image.RGBA 上,既可以直接转换为 Ebitengine 图片,
// 也可以导出为 PNG 文件走磁盘资源管线。
package sprites

import (
	"image"
	"image/color"
)

// 表情图的调色板
var (
	bodyColor  = color.RGBA{59, 130, 246, 255}  // 方块主体(蓝)
	eyeColor   = color.RGBA{229, 231, 235, 255} // 眼白
	pupilColor = color.RGBA{15, 23, 42, 255}    // 瞳孔/眉毛/嘴
)

// face 一张表情图的参数
// 两只眼睛的睁眼程度、瞳孔上移量和左眉上挑量共同决定表情
type face struct {
	leftEye   float64 // 左眼睁眼程度 0(闭合)..1(全开)
	rightEye  float64 // 右眼睁眼程度
	pupilLift float64 // 瞳孔上移比例 0..1
	browLift  float64 // 左眉上挑比例 0..1
}

// faces 图片标识到表情参数的映射
// 标识沿用最初素材的命名,四张一组对应一组动画的关键帧
var faces = map[string]face{
	// 眨眼:双眼 全开→半闭→闭合→将开
	"blue_square_blink_0001.png": {leftEye: 1, rightEye: 1},
	"blue_square_blink_0002.png": {leftEye: 0.45, rightEye: 0.45},
	"blue_square_blink_0003.png": {leftEye: 0, rightEye: 0},
	"blue_square_blink_0004.png": {leftEye: 0.7, rightEye: 0.7},

	// 单眼眨:只有左眼闭合
	"blue_square_blinkaneye_0001.png": {leftEye: 1, rightEye: 1},
	"blue_square_blinkaneye_0002.png": {leftEye: 0.45, rightEye: 1},
	"blue_square_blinkaneye_0003.png": {leftEye: 0, rightEye: 1},
	"blue_square_blinkaneye_0004.png": {leftEye: 0.7, rightEye: 1},

	// 抬眼:瞳孔上移
	"blue_square_lookup_0001.png": {leftEye: 1, rightEye: 1},
	"blue_square_lookup_0002.png": {leftEye: 1, rightEye: 1, pupilLift: 0.5},
	"blue_square_lookup_0003.png": {leftEye: 1, rightEye: 1, pupilLift: 1},
	"blue_square_lookup_0004.png": {leftEye: 1, rightEye: 1, pupilLift: 0.5},

	// 挑眉:左眉上挑
	"blue_square_moveuplefteyebrow_0001.png": {leftEye: 1, rightEye: 1},
	"blue_square_moveuplefteyebrow_0002.png": {leftEye: 1, rightEye: 1, browLift: 0.5},
	"blue_square_moveuplefteyebrow_0003.png": {leftEye: 1, rightEye: 1, browLift: 1},
	"blue_square_moveuplefteyebrow_0004.png": {leftEye: 1, rightEye: 1, browLift: 0.5},
}

// drawFace 按表情参数绘制一张 size x size 的表情图
func drawFace(size int, f face) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRoundedSquare(img, size, s*0.18, bodyColor)

	leftX, rightX := s*0.33, s*0.67
	eyeY := s * 0.45
	eyeR := s * 0.13
	drawEye(img, leftX, eyeY, eyeR, f.leftEye, f.pupilLift)
	drawEye(img, rightX, eyeY, eyeR, f.rightEye, f.pupilLift)

	// 眉毛:右眉固定,左眉按 browLift 上挑
	browY := s * 0.24
	browHalf := s * 0.1
	browThick := s * 0.035
	fillRect(img, leftX-browHalf, browY-f.browLift*s*0.08, browHalf*2, browThick, pupilColor)
	fillRect(img, rightX-browHalf, browY, browHalf*2, browThick, pupilColor)

	// 嘴:固定的短横条
	fillRect(img, s*0.5-s*0.12, s*0.72, s*0.24, s*0.03, pupilColor)

	return img
}

// drawEye 绘制一只眼睛
// openness 决定眼白椭圆的纵向半径,闭合时退化为一条眼睑线;
// 睁眼程度足够时在眼内绘制瞳孔,瞳孔按 pupilLift 上移
func drawEye(img *image.RGBA, cx, cy, r, openness, pupilLift float64) {
	if openness <= 0 {
		fillRect(img, cx-r, cy-r*0.12, r*2, r*0.24, pupilColor)
		return
	}

	fillEllipse(img, cx, cy, r, r*openness, eyeColor)
	if openness >= 0.3 {
		pupilR := r * 0.42
		fillEllipse(img, cx, cy-pupilLift*r*0.5, pupilR, pupilR*openness, pupilColor)
	}
}

// fillRoundedSquare 填充带圆角的正方形主体
func fillRoundedSquare(img *image.RGBA, size int, radius float64, clr color.RGBA) {
	last := float64(size - 1)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx, fy := float64(x), float64(y)

			// 找到最近的圆角圆心;不在任何角区内则直接填充
			cornerX, inCornerX := radius, fx < radius
			if fx > last-radius {
				cornerX, inCornerX = last-radius, true
			}
			cornerY, inCornerY := radius, fy < radius
			if fy > last-radius {
				cornerY, inCornerY = last-radius, true
			}
			if inCornerX && inCornerY {
				dx, dy := fx-cornerX, fy-cornerY
				if dx*dx+dy*dy > radius*radius {
					continue
				}
			}
			img.SetRGBA(x, y, clr)
		}
	}
}

// fillEllipse 填充以 (cx, cy) 为中心、半径 (rx, ry) 的椭圆
func fillEllipse(img *image.RGBA, cx, cy, rx, ry float64, clr color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	bounds := img.Bounds()
	for y := int(cy - ry); y <= int(cy+ry+1); y++ {
		for x := int(cx - rx); x <= int(cx+rx+1); x++ {
			if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
				continue
			}
			dx := (float64(x) - cx) / rx
			dy := (float64(y) - cy) / ry
			if dx*dx+dy*dy <= 1 {
				img.SetRGBA(x, y, clr)
			}
		}
	}
}

// fillRect 填充矩形,边界自动截断到图片范围内
func fillRect(img *image.RGBA, x, y, w, h float64, clr color.RGBA) {
	bounds := img.Bounds()
	for py := int(y); py < int(y+h+0.5); py++ {
		for px := int(x); px < int(x+w+0.5); px++ {
			if px < bounds.Min.X || px >= bounds.Max.X || py < bounds.Min.Y || py >= bounds.Max.Y {
				continue
			}
			img.SetRGBA(px, py, clr)
		}
	}
}
