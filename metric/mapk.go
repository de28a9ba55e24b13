package metric

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/rushteam/evalkit/core"
)

// MAP 是 MAP@K 指标（Mean Average Precision）。
//
// 每客户：按排序列降序排列推荐行（稳定排序，平分保持输入顺序），
// 在每个位置计算展开精度（截至该位置的命中数 ÷ 已看到的行数），
// 乘以该位置的标签（未命中位置清零），对所有位置取均值。
// 最后跨客户输出 mean/std（样本标准差）。
//
// 单条推荐且命中时，该客户的值恰为 1.0。
type MAP struct{}

func (m *MAP) Name() string { return "metric.map" }

func (m *MAP) Compute(_ context.Context, in *Input) ([]core.Cell, error) {
	perCustomer := make([]float64, 0, len(in.Frame.Customers()))
	for _, cid := range in.Frame.Customers() {
		rows := in.Frame.RankedRowsOf(cid)

		var cumHits, sum float64
		for pos, r := range rows {
			cumHits += r.Label
			expanding := cumHits / float64(pos+1)
			sum += expanding * r.Label
		}
		perCustomer = append(perCustomer, sum/float64(len(rows)))
	}

	group := fmt.Sprintf("MAP@%d", in.K)
	return []core.Cell{
		{Group: group, Sub: "mean", Value: stat.Mean(perCustomer, nil)},
		{Group: group, Sub: "std", Value: stat.StdDev(perCustomer, nil)},
	}, nil
}
