package core

import "context"

// SummaryStore 是评估结果存储的领域接口。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（store）实现
//   - 遵循依赖倒置原则：领域层定义接口，基础设施层实现接口
//   - 避免循环依赖：领域层不依赖基础设施层
//
// 使用场景：
//   - 保存每个推荐引擎的离线评估汇总，按引擎名检索
//   - 多次评估之间做横向对比（A/B 引擎、不同召回策略）
//
// 实现：
//   - store.MemoryStore 实现此接口
//   - store.RedisStore 实现此接口
type SummaryStore interface {
	// Name 返回存储后端名称（用于日志/监控）
	Name() string

	// Save 保存一个评估汇总，按 Summary.Name 作为 key 覆盖写入
	Save(ctx context.Context, summary *Summary) error

	// Load 按引擎名读取评估汇总，不存在时返回 NOT_FOUND
	Load(ctx context.Context, name string) (*Summary, error)

	// Delete 删除一个评估汇总
	Delete(ctx context.Context, name string) error

	// List 列出已保存的引擎名
	List(ctx context.Context) ([]string, error)

	// Close 关闭连接/释放资源
	Close() error
}
