package feature

import (
	"context"
	"testing"
)

// TestFeastLoader_LoadVectors 测试 Feast 加载器的基本功能
// 注意：这是一个示例测试，实际使用时需要连接真实的 Feast 服务器
func TestFeastLoader_LoadVectors(t *testing.T) {
	t.Skip("需要连接真实的 Feast 服务器才能运行")

	ctx := context.Background()

	loader, err := NewFeastLoader("localhost", 6565, "catalog", []string{
		"article_stats:embed_0",
		"article_stats:embed_1",
	})
	if err != nil {
		t.Fatalf("创建加载器失败: %v", err)
	}
	defer loader.Close()

	vectors, err := loader.LoadVectors(ctx, []string{"0108775015", "0108775044"})
	if err != nil {
		t.Fatalf("拉取特征失败: %v", err)
	}

	if vectors.Dim() != 2 {
		t.Errorf("期望维度 2，实际得到 %d", vectors.Dim())
	}
	for _, aid := range vectors.IDs() {
		vec, _ := vectors.Get(aid)
		t.Logf("物品 %s: %v", aid, vec)
	}
}

func TestNewFeastLoader_RequiresFeatures(t *testing.T) {
	if _, err := NewFeastLoader("localhost", 0, "catalog", nil); err == nil {
		t.Fatal("expected error for empty feature references, got nil")
	}
}
