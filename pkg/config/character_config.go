package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/figure/pkg/figure"
)

// CharacterConfig 角色动画集配置文件的顶层结构
// 描述一个角色拥有的全部动画及其帧序列
type CharacterConfig struct {
	// Name 角色名称（必填）
	Name string `yaml:"name"`

	// ImageDir 图片基础目录（可选，供解析器拼接图片路径时使用）
	ImageDir string `yaml:"image_dir,omitempty"`

	// Animations 动画列表（至少一个）
	Animations []AnimationConfig `yaml:"animations"`
}

// AnimationConfig 单个动画的配置
type AnimationConfig struct {
	// Name 动画名称（必填，文件内唯一）
	Name string `yaml:"name"`

	// Duration 本动画内帧的默认时长（秒，可选）
	// 0 表示未设置，回退到全局默认 figure.DefaultDuration
	Duration float64 `yaml:"duration,omitempty"`

	// Frames 帧列表（至少一帧）
	Frames []FrameConfig `yaml:"frames"`
}

// FrameConfig 单帧配置
type FrameConfig struct {
	// Image 图片标识（必填）
	Image string `yaml:"image"`

	// Duration 该帧的显示时长（秒，可选）
	// 0 表示未设置，回退到所属动画的默认时长
	Duration float64 `yaml:"duration,omitempty"`
}

// LoadCharacterConfig 从 YAML 文件加载角色动画集配置
//
// 参数：
//   - path: 配置文件路径
//
// 返回：
//   - *CharacterConfig: 解析并通过验证的配置对象
//   - error: 读取、解析或验证错误
func LoadCharacterConfig(path string) (*CharacterConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取配置文件 %s: %w", path, err)
	}

	config, err := ParseCharacterConfig(data)
	if err != nil {
		return nil, fmt.Errorf("配置文件 %s: %w", path, err)
	}
	return config, nil
}

// ParseCharacterConfig 从内存中的 YAML 数据解析角色动画集配置
// 供嵌入式默认配置等不经过文件系统的场景使用
func ParseCharacterConfig(data []byte) (*CharacterConfig, error) {
	var config CharacterConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("无法解析 YAML: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("配置验证失败: %w", err)
	}

	return &config, nil
}

// validateConfig 验证配置的完整性和正确性
func validateConfig(config *CharacterConfig) error {
	if config.Name == "" {
		return fmt.Errorf("缺少必填字段 'name'")
	}

	if len(config.Animations) == 0 {
		return fmt.Errorf("角色 '%s' 的 'animations' 列表为空", config.Name)
	}

	seen := make(map[string]bool)
	for i, anim := range config.Animations {
		if anim.Name == "" {
			return fmt.Errorf("动画 #%d 缺少 'name' 字段", i)
		}
		if seen[anim.Name] {
			return fmt.Errorf("动画 '%s' 重复定义", anim.Name)
		}
		seen[anim.Name] = true

		if anim.Duration < 0 {
			return fmt.Errorf("动画 '%s' 的默认时长 %v 不能为负", anim.Name, anim.Duration)
		}

		if len(anim.Frames) == 0 {
			return fmt.Errorf("动画 '%s' 的 'frames' 列表为空", anim.Name)
		}
		for j, f := range anim.Frames {
			if f.Image == "" {
				return fmt.Errorf("动画 '%s' 第 %d 帧缺少 'image' 字段", anim.Name, j)
			}
			if f.Duration < 0 {
				return fmt.Errorf("动画 '%s' 第 %d 帧的时长 %v 不能为负", anim.Name, j, f.Duration)
			}
		}
	}

	return nil
}

// BuildAnimations 将配置构建为核心动画对象
// 帧时长按 帧自身 > 动画默认 > 全局默认(figure.DefaultDuration) 的优先级补全,
// 参数合法性最终以核心构造函数的校验为准
func (c *CharacterConfig) BuildAnimations() ([]*figure.Animation, error) {
	animations := make([]*figure.Animation, 0, len(c.Animations))
	for _, ac := range c.Animations {
		frames := make([]figure.Frame, 0, len(ac.Frames))
		for _, fc := range ac.Frames {
			duration := fc.Duration
			if duration == 0 {
				duration = ac.Duration
			}
			if duration == 0 {
				duration = figure.DefaultDuration
			}
			f, err := figure.NewFrame(fc.Image, duration)
			if err != nil {
				return nil, fmt.Errorf("构建动画 '%s' 失败: %w", ac.Name, err)
			}
			frames = append(frames, f)
		}

		a, err := figure.NewAnimation(ac.Name, frames)
		if err != nil {
			return nil, fmt.Errorf("构建动画 '%s' 失败: %w", ac.Name, err)
		}
		animations = append(animations, a)
	}
	return animations, nil
}
