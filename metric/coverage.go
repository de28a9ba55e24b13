package metric

import (
	"context"
	"math"

	"github.com/rushteam/evalkit/core"
)

// Coverage 是目录覆盖率指标：去重后的推荐物品数占全量目录的百分比。
// 值域 [0, 100]，目录全部被推荐到时为 100。结果保留 4 位小数。
//
// 空目录不做拦截：0/0 为 NaN，按数值语义向上传播。
type Coverage struct{}

func (m *Coverage) Name() string { return "metric.coverage" }

func (m *Coverage) Compute(_ context.Context, in *Input) ([]core.Cell, error) {
	covered := float64(len(in.Frame.ArticleIDs()))

	var catalog float64
	if in.Items != nil {
		catalog = float64(in.Items.Len())
	}

	cov := covered / catalog
	return []core.Cell{
		{Group: "General", Sub: "Catalog coverage (%)", Value: round4(100 * cov)},
	}, nil
}

// round4 四舍五入到 4 位小数。
func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
