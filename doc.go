// Package evalkit 是一个推荐系统离线评估工具包（Evaluation Kit）。
//
// 设计要点：
// - Chain-first: 评估逻辑通过 Metric 串联（Coverage → Precision → Recall → MAP → Diversity）
// - 一次连接多次消费：推荐表与真值表左连接一次，全部指标共享同一个评估帧
// - Metric 可插拔: 自定义指标实现 metric.Metric 即可扩展，支持 YAML 配置驱动
package evalkit

import (
	"github.com/rushteam/evalkit/core"
	"github.com/rushteam/evalkit/dataset"
	"github.com/rushteam/evalkit/metric"
)

// 轻量 facade：便于用户直接 import "evalkit" 使用核心抽象。
type Calculator = metric.Calculator
type Request = metric.Request
type Metric = metric.Metric
type Summary = core.Summary
type Recommendation = dataset.Recommendation
type Interaction = dataset.Interaction

// NewCalculator 创建默认指标链的 Calculator。
func NewCalculator(metrics ...Metric) *Calculator {
	return metric.NewCalculator(metrics...)
}
