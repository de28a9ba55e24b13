package store

import (
	"context"
	"sort"
	"sync"

	"github.com/rushteam/evalkit/core"
)

// MemoryStore 是内存实现的 SummaryStore，用于测试/开发/原型。
// 进程重启后数据丢失。
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]*core.Summary
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]*core.Summary),
	}
}

func (m *MemoryStore) Name() string { return "memory" }

func (m *MemoryStore) Save(ctx context.Context, summary *core.Summary) error {
	if summary == nil || summary.Name == "" {
		return core.NewDomainError(core.ModuleStore, core.ErrorCodeInvalidInput, "summary name is required")
	}

	// 拷贝后存储，调用方后续修改不影响已保存的结果
	cp := &core.Summary{
		Name:  summary.Name,
		Cells: make([]core.Cell, len(summary.Cells)),
	}
	copy(cp.Cells, summary.Cells)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[summary.Name] = cp
	return nil
}

func (m *MemoryStore) Load(ctx context.Context, name string) (*core.Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.data[name]
	if !ok {
		return nil, core.ErrStoreNotFound
	}

	cp := &core.Summary{
		Name:  s.Name,
		Cells: make([]core.Cell, len(s.Cells)),
	}
	copy(cp.Cells, s.Cells)
	return cp, nil
}

func (m *MemoryStore) Delete(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, name)
	return nil
}

func (m *MemoryStore) List(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.data))
	for name := range m.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemoryStore) Close() error { return nil }

// 确保 MemoryStore 实现了 SummaryStore 接口
var _ core.SummaryStore = (*MemoryStore)(nil)
