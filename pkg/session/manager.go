// Package session 提供演示程序的会话状态持久化
//
// 状态通过 gdata 存入平台对应的用户数据目录,序列化格式为 YAML。
// 存储不可用时管理器进入降级模式:加载返回默认状态,保存静默跳过,
// 演示程序不因此失去可玩性。
package session

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// State 一次演示会话结束时的角色快照
type State struct {
	// Animation 最后播放的动画名称,空串表示尚未播放过
	Animation string `yaml:"animation"`

	// Row, Col 网格模式的最后格子
	Row int `yaml:"row"`
	Col int `yaml:"col"`

	// X, Y 自由模式的最后像素位置
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// DefaultState 返回默认状态(零值即可,单独成函数是为了与 Load 的语义对齐)
func DefaultState() State {
	return State{}
}

// Manager 会话状态管理器
// 负责状态的加载、保存和内存管理
type Manager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器,可为 nil(降级模式)
	state        State          // 当前状态
}

// 存储路径常量
const (
	sessionObject   = "session"
	sessionProperty = "character"
)

// Open 打开应用对应的 gdata 存储
// 打开失败时记录日志并返回 nil,调用方可以把 nil 直接交给 NewManager 进入降级模式
func Open(appName string) *gdata.Manager {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[Session] Warning: failed to open data store: %v (state will not persist)", err)
		return nil
	}
	return m
}

// NewManager 创建会话状态管理器并尝试加载已保存的状态
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器,可为 nil(降级模式,仅内存状态)
//
// 返回：
//   - *Manager: 管理器实例,加载失败时持有默认状态
func NewManager(gdataManager *gdata.Manager) *Manager {
	m := &Manager{
		gdataManager: gdataManager,
		state:        DefaultState(),
	}

	if err := m.Load(); err != nil {
		// 加载失败不是致命错误,使用默认状态
		log.Printf("[Session] Warning: failed to load state: %v (using defaults)", err)
	}

	return m
}

// Load 从 gdata 加载状态
//
// gdataManager 为 nil 或状态尚未保存过时使用默认状态,不算错误
//
// 返回：
//   - error: 读取或反序列化失败
func (m *Manager) Load() error {
	if m.gdataManager == nil {
		m.state = DefaultState()
		return nil
	}

	if !m.gdataManager.ObjectPropExists(sessionObject, sessionProperty) {
		m.state = DefaultState()
		return nil
	}

	data, err := m.gdataManager.LoadObjectProp(sessionObject, sessionProperty)
	if err != nil {
		m.state = DefaultState()
		return fmt.Errorf("failed to load session state: %w", err)
	}

	var loaded State
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		m.state = DefaultState()
		return fmt.Errorf("failed to unmarshal session state: %w", err)
	}

	m.state = loaded
	return nil
}

// Save 保存当前状态到 gdata
//
// gdataManager 为 nil 时直接返回 nil(降级模式,不报错)
//
// 返回：
//   - error: 序列化或写入失败
func (m *Manager) Save() error {
	if m.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(m.state)
	if err != nil {
		return fmt.Errorf("failed to marshal session state: %w", err)
	}

	if err := m.gdataManager.SaveObjectProp(sessionObject, sessionProperty, data); err != nil {
		return fmt.Errorf("failed to save session state: %w", err)
	}

	return nil
}

// State 返回当前状态的副本
func (m *Manager) State() State {
	return m.state
}

// SetAnimation 记录最后播放的动画
// 仅修改内存中的状态,需调用 Save() 持久化
func (m *Manager) SetAnimation(name string) {
	m.state.Animation = name
}

// SetCell 记录网格模式的最后格子
// 仅修改内存中的状态,需调用 Save() 持久化
func (m *Manager) SetCell(row, col int) {
	m.state.Row = row
	m.state.Col = col
}

// SetPixel 记录自由模式的最后像素位置
// 仅修改内存中的状态,需调用 Save() 持久化
func (m *Manager) SetPixel(x, y int) {
	m.state.X = x
	m.state.Y = y
}
