package sprites

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/figure/pkg/figure"
)

// TestNewLibraryGeneratesAllFaces 测试图库在创建时生成全部表情图
func TestNewLibraryGeneratesAllFaces(t *testing.T) {
	l := NewLibrary(DefaultSize)

	ids := l.IDs()
	if len(ids) != len(faces) {
		t.Fatalf("IDs() returned %d ids, want %d", len(ids), len(faces))
	}
	for _, id := range ids {
		if err := l.Resolve(id); err != nil {
			t.Errorf("Resolve(%q) returned error: %v", id, err)
		}
	}

	if err := l.Resolve("missing.png"); err == nil {
		t.Error("Resolve on unknown id succeeded, want error")
	}
}

// TestNewLibraryDefaultSize 测试非正数尺寸回退到默认边长
func TestNewLibraryDefaultSize(t *testing.T) {
	if got := NewLibrary(0).Size(); got != DefaultSize {
		t.Errorf("Size() = %d, want %d", got, DefaultSize)
	}
	if got := NewLibrary(120).Size(); got != 120 {
		t.Errorf("Size() = %d, want 120", got)
	}
}

// TestLibraryImageCaching 测试 Ebitengine 图片按需转换并缓存
func TestLibraryImageCaching(t *testing.T) {
	l := NewLibrary(32)

	img, err := l.Image("blue_square_blink_0001.png")
	if err != nil {
		t.Fatalf("Image returned error: %v", err)
	}
	if img == nil {
		t.Fatal("Image returned nil image")
	}
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 32 || h != 32 {
		t.Errorf("image size = %dx%d, want 32x32", w, h)
	}

	again, err := l.Image("blue_square_blink_0001.png")
	if err != nil {
		t.Fatalf("Image (cached) returned error: %v", err)
	}
	if again != img {
		t.Error("cached load returned a different image instance")
	}

	if _, err := l.Image("missing.png"); err == nil {
		t.Error("Image on unknown id succeeded, want error")
	}
}

// TestFacesDiffer 测试表情参数确实改变了画面(睁眼与闭眼的位图不同)
func TestFacesDiffer(t *testing.T) {
	l := NewLibrary(DefaultSize)

	open := l.pixels["blue_square_blink_0001.png"]
	closed := l.pixels["blue_square_blink_0003.png"]
	if bytes.Equal(open.Pix, closed.Pix) {
		t.Error("open-eye and closed-eye faces are pixel-identical")
	}
}

// TestWritePNGs 测试 PNG 导出:每个标识一个文件,内容可解码且尺寸正确
func TestWritePNGs(t *testing.T) {
	dir := t.TempDir()
	l := NewLibrary(48)

	if err := l.WritePNGs(dir); err != nil {
		t.Fatalf("WritePNGs returned error: %v", err)
	}

	for _, id := range l.IDs() {
		path := filepath.Join(dir, id)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("exported file %s missing: %v", id, err)
		}
	}

	file, err := os.Open(filepath.Join(dir, "blue_square_lookup_0003.png"))
	if err != nil {
		t.Fatalf("failed to open exported png: %v", err)
	}
	defer file.Close()
	decoded, err := png.Decode(file)
	if err != nil {
		t.Fatalf("exported png does not decode: %v", err)
	}
	if w, h := decoded.Bounds().Dx(), decoded.Bounds().Dy(); w != 48 || h != 48 {
		t.Errorf("decoded size = %dx%d, want 48x48", w, h)
	}
}

// TestAnimationsBuild 测试标准动画集的构建:名称、帧数与时长补全
func TestAnimationsBuild(t *testing.T) {
	animations, err := Animations()
	if err != nil {
		t.Fatalf("Animations returned error: %v", err)
	}

	wantNames := []string{"blink", "blink_an_eye", "look_up", "move_eyebrow"}
	if len(animations) != len(wantNames) {
		t.Fatalf("got %d animations, want %d", len(animations), len(wantNames))
	}
	for i, want := range wantNames {
		if animations[i].Name() != want {
			t.Errorf("animation[%d].Name() = %q, want %q", i, animations[i].Name(), want)
		}
		if animations[i].Len() != 5 {
			t.Errorf("animation %q has %d frames, want 5", want, animations[i].Len())
		}
	}

	// 省略时长的帧补为全局默认,指定时长的帧保持原值
	blink := animations[0]
	if d := blink.FrameAt(0).Duration; d != figure.DefaultDuration {
		t.Errorf("blink frame 0 duration = %v, want default %v", d, figure.DefaultDuration)
	}
	if d := blink.FrameAt(1).Duration; d != 0.1 {
		t.Errorf("blink frame 1 duration = %v, want 0.1", d)
	}
	if d := blink.FrameAt(4).Duration; d != 3.0 {
		t.Errorf("blink frame 4 duration = %v, want 3.0", d)
	}

	// 动画引用的全部图片都能被图库解析
	l := NewLibrary(DefaultSize)
	for _, a := range animations {
		for i := 0; i < a.Len(); i++ {
			if err := l.Resolve(a.FrameAt(i).Image); err != nil {
				t.Errorf("animation %q frame %d: %v", a.Name(), i, err)
			}
		}
	}
}
