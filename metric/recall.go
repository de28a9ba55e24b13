package metric

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/rushteam/evalkit/core"
)

// recallDenominator 是每客户召回值的固定分母。
// 约定为常量 10，而非该客户的真实正样本数；这是既有口径，调整前保持原样。
const recallDenominator = 10.0

// Recall 是 Recall@K 指标：每客户命中数 ÷ 固定分母，再跨客户聚合。
// 输出 mean/std（样本标准差）。
type Recall struct{}

func (m *Recall) Name() string { return "metric.recall" }

func (m *Recall) Compute(_ context.Context, in *Input) ([]core.Cell, error) {
	perCustomer := make([]float64, 0, len(in.Frame.Customers()))
	for _, cid := range in.Frame.Customers() {
		var sum float64
		for _, r := range in.Frame.RowsOf(cid) {
			sum += r.Label
		}
		perCustomer = append(perCustomer, sum/recallDenominator)
	}

	group := fmt.Sprintf("Recall@%d", in.K)
	return []core.Cell{
		{Group: group, Sub: "mean", Value: stat.Mean(perCustomer, nil)},
		{Group: group, Sub: "std", Value: stat.StdDev(perCustomer, nil)},
	}, nil
}
