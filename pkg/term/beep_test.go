package term

import "testing"

// TestBeeperDegradedLifecycle 测试蜂鸣器在无声卡环境下仍可安全使用
// CI 环境通常没有音频设备,初始化失败时 Beeper 进入静音模式,
// Play 和 Close 都必须是安全的空操作
func TestBeeperDegradedLifecycle(t *testing.T) {
	beeper := NewBeeper()
	if beeper == nil {
		t.Fatal("NewBeeper() should never return nil")
	}

	beeper.Play()
	beeper.Play()
	beeper.Close()
}
