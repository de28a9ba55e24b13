package feature

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rushteam/evalkit/core"
)

func TestVectors_Set(t *testing.T) {
	v := NewVectors()

	if err := v.Set("a01", []float64{1, 2, 3}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if v.Dim() != 3 {
		t.Errorf("Dim() = %d, want 3", v.Dim())
	}

	// 维度不一致
	err := v.Set("a02", []float64{1, 2})
	if err == nil {
		t.Fatal("expected dimension mismatch error, got nil")
	}
	if !core.IsInvalidInput(err) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}

	// 空向量
	if err := v.Set("a03", nil); err == nil {
		t.Fatal("expected empty vector error, got nil")
	}
}

func TestVectors_UniqueIndex(t *testing.T) {
	v := NewVectors()
	if err := v.Set("a01", []float64{1, 0}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	// 重复写入覆盖旧值，索引保持唯一
	if err := v.Set("a01", []float64{0, 1}); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}

	if v.Len() != 1 {
		t.Errorf("Len() = %d, want 1", v.Len())
	}
	vec, ok := v.Get("a01")
	if !ok {
		t.Fatal("Get(a01) not found")
	}
	if vec[0] != 0 || vec[1] != 1 {
		t.Errorf("Get(a01) = %v, want [0 1]", vec)
	}
}

func TestVectors_CopyOnSet(t *testing.T) {
	v := NewVectors()
	src := []float64{1, 2}
	if err := v.Set("a01", src); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	src[0] = 99 // 调用方修改原切片不影响表内数据
	vec, _ := v.Get("a01")
	if vec[0] != 1 {
		t.Errorf("Get(a01)[0] = %v, want 1", vec[0])
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.csv")
	content := "article_id,f0,f1\n" +
		"a01,1.0,0.0\n" +
		"a02,0.5,0.5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	v, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}
	if v.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", v.Len())
	}
	vec, ok := v.Get("a02")
	if !ok {
		t.Fatal("Get(a02) not found")
	}
	if vec[0] != 0.5 || vec[1] != 0.5 {
		t.Errorf("Get(a02) = %v, want [0.5 0.5]", vec)
	}
}

func TestLoadCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "header only", content: "article_id,f0\n"},
		{name: "non numeric cell", content: "article_id,f0\na01,abc\n"},
		{name: "ragged rows", content: "article_id,f0,f1\na01,1.0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "items.csv")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write fixture: %v", err)
			}
			if _, err := LoadCSV(path); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestLoadCSV_FileNotFound(t *testing.T) {
	if _, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("expected error, got nil")
	}
}
