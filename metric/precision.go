package metric

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/rushteam/evalkit/core"
)

// Precision 是 Precision@K 指标：每客户推荐命中率，再跨客户聚合。
// 每客户值 = 该客户推荐行中标签的均值；输出 mean/std（样本标准差）。
//
// 没有任何正样本的客户，每客户值为 0。
type Precision struct{}

func (m *Precision) Name() string { return "metric.precision" }

func (m *Precision) Compute(_ context.Context, in *Input) ([]core.Cell, error) {
	perCustomer := make([]float64, 0, len(in.Frame.Customers()))
	for _, cid := range in.Frame.Customers() {
		rows := in.Frame.RowsOf(cid)
		var sum float64
		for _, r := range rows {
			sum += r.Label
		}
		perCustomer = append(perCustomer, sum/float64(len(rows)))
	}

	group := fmt.Sprintf("Precision@%d", in.K)
	return []core.Cell{
		{Group: group, Sub: "mean", Value: stat.Mean(perCustomer, nil)},
		{Group: group, Sub: "std", Value: stat.StdDev(perCustomer, nil)},
	}, nil
}
