package metric

import (
	"context"

	"gonum.org/v1/gonum/stat"

	"github.com/rushteam/evalkit/core"
	"github.com/rushteam/evalkit/vector"
)

// Diversity 是多样性指标：1 − 客户推荐物品两两相似度的均值。
//
// 相似度矩阵对全部去重推荐物品一次性构建（而非逐客户），之后按物品对查询。
// 推荐数少于 2 的客户没有物品对，不参与聚合；特征表缺失的物品
// 不进入矩阵，涉及它的物品对被丢弃（内连接语义）。
//
// 两个特征向量完全相同的物品对，相似度为 1，多样性贡献为 0。
type Diversity struct{}

func (m *Diversity) Name() string { return "metric.diversity" }

func (m *Diversity) Compute(_ context.Context, in *Input) ([]core.Cell, error) {
	sims := vector.BuildCosine(in.Items, in.Frame.ArticleIDs())

	perCustomer := make([]float64, 0, len(in.Frame.Customers()))
	for _, cid := range in.Frame.Customers() {
		rows := in.Frame.RowsOf(cid)
		if len(rows) < 2 {
			continue
		}

		var sum float64
		var pairs int
		for i := 0; i < len(rows); i++ {
			for j := i + 1; j < len(rows); j++ {
				sim, ok := sims.Lookup(rows[i].ArticleID, rows[j].ArticleID)
				if !ok {
					continue
				}
				sum += sim
				pairs++
			}
		}
		if pairs == 0 {
			continue
		}
		perCustomer = append(perCustomer, 1-sum/float64(pairs))
	}

	return []core.Cell{
		{Group: "Diversity", Sub: "mean", Value: stat.Mean(perCustomer, nil)},
		{Group: "Diversity", Sub: "std", Value: stat.StdDev(perCustomer, nil)},
	}, nil
}
