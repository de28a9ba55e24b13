package metric

import (
	"context"

	"github.com/rushteam/evalkit/core"
	"github.com/rushteam/evalkit/dataset"
	"github.com/rushteam/evalkit/feature"
)

// DefaultK 是截断值 K 的默认值。
const DefaultK = 5

// Request 是一次离线评估的输入。
//
// Recommendations 由上游完成 top-k 截断，本层只信任不截断。
// TrueLabels 只包含正样本，未出现的 (cid, aid) 对视为负样本。
// Items 的索引需覆盖被推荐的物品，缺失物品会被多样性指标静默排除。
type Request struct {
	// Name 推荐引擎名称，作为结果行的索引
	Name string

	// Recommendations 每客户的推荐明细
	Recommendations []dataset.Recommendation

	// TrueLabels 每客户的真实消费明细（仅正样本）
	TrueLabels []dataset.Interaction

	// Items 物品特征向量表
	Items *feature.Vectors

	// SortColumn 排序列名，决定 MAP 的位次
	SortColumn string

	// K 截断值，<= 0 时取 DefaultK
	K int

	// Segment 可选的行筛选器，为 nil 时全量评估
	Segment *dataset.Segment
}

// Calculator 串联执行指标节点，产出一行评估汇总。
// 节点顺序即 Summary 中单元的顺序。
type Calculator struct {
	Metrics []Metric
}

// NewCalculator 创建 Calculator；不传指标时使用默认指标链。
func NewCalculator(metrics ...Metric) *Calculator {
	if len(metrics) == 0 {
		metrics = DefaultChain()
	}
	return &Calculator{Metrics: metrics}
}

// DefaultChain 返回默认指标链：覆盖率 → 精度 → 召回 → MAP → 多样性。
func DefaultChain() []Metric {
	return []Metric{
		&Coverage{},
		&Precision{},
		&Recall{},
		&MAP{},
		&Diversity{},
	}
}

// Compute 执行一次评估。输入只读，不做原地修改；
// 相同输入的两次调用产出完全一致的 Summary（纯函数）。
func (c *Calculator) Compute(ctx context.Context, req *Request) (*core.Summary, error) {
	if req == nil {
		return nil, core.NewDomainError(core.ModuleMetric, core.ErrorCodeInvalidInput, "request is nil")
	}
	if req.Items == nil {
		return nil, core.NewDomainError(core.ModuleMetric, core.ErrorCodeInvalidInput, "item feature table is nil")
	}
	if req.SortColumn == "" {
		return nil, core.NewDomainError(core.ModuleMetric, core.ErrorCodeInvalidInput, "sort column is required")
	}

	k := req.K
	if k <= 0 {
		k = DefaultK
	}

	recs := req.Recommendations
	if req.Segment != nil {
		filtered, err := req.Segment.Filter(recs)
		if err != nil {
			return nil, err
		}
		recs = filtered
	}

	frame, err := dataset.Join(recs, req.TrueLabels, req.SortColumn)
	if err != nil {
		return nil, err
	}

	in := &Input{
		Frame: frame,
		Items: req.Items,
		K:     k,
	}

	summary := core.NewSummary(req.Name)
	for _, m := range c.Metrics {
		cells, err := m.Compute(ctx, in)
		if err != nil {
			return nil, err
		}
		summary.Cells = append(summary.Cells, cells...)
	}
	return summary, nil
}
