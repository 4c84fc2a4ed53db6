package sprites

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultSize 表情图的默认边长(像素)
const DefaultSize = 54

// Library 内存中的表情图库
// 创建时一次性生成全部表情位图,Ebitengine 图片按需转换并缓存。
// 同时充当渲染层的图片来源(Image)和核心库的图片解析器(Resolve)。
type Library struct {
	size   int
	pixels map[string]*image.RGBA
	cache  map[string]*ebiten.Image
}

// NewLibrary 生成边长为 size 像素的表情图库
// size 非正数时回退到 DefaultSize
func NewLibrary(size int) *Library {
	if size <= 0 {
		size = DefaultSize
	}
	l := &Library{
		size:   size,
		pixels: make(map[string]*image.RGBA, len(faces)),
		cache:  make(map[string]*ebiten.Image, len(faces)),
	}
	for id, f := range faces {
		l.pixels[id] = drawFace(size, f)
	}
	return l
}

// Size 返回表情图的边长(像素)
func (l *Library) Size() int {
	return l.size
}

// IDs 返回图库中全部图片标识,按字典序排序
func (l *Library) IDs() []string {
	ids := make([]string, 0, len(l.pixels))
	for id := range l.pixels {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Image 按标识返回 Ebitengine 图片
// 位图到 Ebitengine 图片的转换只在第一次取用时发生,之后走缓存
func (l *Library) Image(id string) (*ebiten.Image, error) {
	if img, ok := l.cache[id]; ok {
		return img, nil
	}
	rgba, ok := l.pixels[id]
	if !ok {
		return nil, fmt.Errorf("unknown sprite id %q", id)
	}
	img := ebiten.NewImageFromImage(rgba)
	l.cache[id] = img
	return img, nil
}

// Resolve 在图片标识存在于图库时返回 nil
// 实现核心库的图片解析器接口,角色构造时逐帧校验
func (l *Library) Resolve(id string) error {
	if _, ok := l.pixels[id]; !ok {
		return fmt.Errorf("unknown sprite id %q", id)
	}
	return nil
}

// WritePNGs 把全部表情图导出为 dir 下的 PNG 文件
// 文件名即图片标识,供磁盘资源管线(pkg/assets)按同样的标识加载
func (l *Library) WritePNGs(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create sprite dir %s: %w", dir, err)
	}
	for id, rgba := range l.pixels {
		path := filepath.Join(dir, id)
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create sprite file %s: %w", path, err)
		}
		if err := png.Encode(file, rgba); err != nil {
			file.Close()
			return fmt.Errorf("failed to encode sprite %s: %w", path, err)
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("failed to close sprite file %s: %w", path, err)
		}
	}
	return nil
}
