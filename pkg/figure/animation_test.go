package figure

import (
	"errors"
	"testing"
)

// TestNewFrame 测试帧构造的参数校验
func TestNewFrame(t *testing.T) {
	tests := []struct {
		name     string
		image    string
		duration float64
		wantErr  error
	}{
		{
			name:     "合法帧",
			image:    "eye_open.png",
			duration: 0.25,
			wantErr:  nil,
		},
		{
			name:     "空图片标识",
			image:    "",
			duration: 0.25,
			wantErr:  ErrInvalidFrame,
		},
		{
			name:     "零时长",
			image:    "eye_open.png",
			duration: 0,
			wantErr:  ErrInvalidFrame,
		},
		{
			name:     "负时长",
			image:    "eye_open.png",
			duration: -0.1,
			wantErr:  ErrInvalidFrame,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFrame(tt.image, tt.duration)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewFrame(%q, %v) error = %v, want %v", tt.image, tt.duration, err, tt.wantErr)
			}
			if err == nil && (f.Image != tt.image || f.Duration != tt.duration) {
				t.Errorf("NewFrame(%q, %v) = %+v", tt.image, tt.duration, f)
			}
		})
	}
}

// TestNewDefaultFrame 测试默认时长
func TestNewDefaultFrame(t *testing.T) {
	f, err := NewDefaultFrame("idle.png")
	if err != nil {
		t.Fatalf("NewDefaultFrame returned error: %v", err)
	}
	if f.Duration != DefaultDuration {
		t.Errorf("Duration = %v, want %v", f.Duration, DefaultDuration)
	}
}

// TestNewAnimation 测试动画构造的参数校验
func TestNewAnimation(t *testing.T) {
	valid := []Frame{frame("a.png", 0.1), frame("b.png", 0.2)}

	tests := []struct {
		name     string
		animName string
		frames   []Frame
		wantErr  error
	}{
		{
			name:     "合法动画",
			animName: "blink",
			frames:   valid,
			wantErr:  nil,
		},
		{
			name:     "空名称",
			animName: "",
			frames:   valid,
			wantErr:  ErrInvalidAnimation,
		},
		{
			name:     "空帧序列",
			animName: "blink",
			frames:   nil,
			wantErr:  ErrInvalidAnimation,
		},
		{
			name:     "混入空图片标识的帧",
			animName: "blink",
			frames:   []Frame{frame("a.png", 0.1), frame("", 0.1)},
			wantErr:  ErrInvalidFrame,
		},
		{
			name:     "混入零时长的帧",
			animName: "blink",
			frames:   []Frame{frame("a.png", 0)},
			wantErr:  ErrInvalidFrame,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAnimation(tt.animName, tt.frames)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewAnimation(%q) error = %v, want %v", tt.animName, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if a.Name() != tt.animName {
				t.Errorf("Name() = %q, want %q", a.Name(), tt.animName)
			}
			if a.Len() != len(tt.frames) {
				t.Errorf("Len() = %d, want %d", a.Len(), len(tt.frames))
			}
		})
	}
}

// TestAnimationCopiesFrames 测试构造后修改原切片不影响动画
func TestAnimationCopiesFrames(t *testing.T) {
	frames := []Frame{frame("a.png", 0.1)}
	a, err := NewAnimation("blink", frames)
	if err != nil {
		t.Fatalf("NewAnimation returned error: %v", err)
	}

	frames[0].Image = "mutated.png"
	if got := a.FrameAt(0).Image; got != "a.png" {
		t.Errorf("FrameAt(0).Image = %q after mutating source slice, want %q", got, "a.png")
	}
}
