package store

// 注意：此包只包含实现，接口定义在 core 包。
// 使用 core.SummaryStore 接口。
//
// 示例：
//   var s core.SummaryStore = NewMemoryStore()
//   var s core.SummaryStore = mustRedis(NewRedisStore("127.0.0.1:6379", 0))
