package metric

import (
	"context"
	"fmt"

	"github.com/rushteam/evalkit/core"
	"github.com/rushteam/evalkit/dataset"
	"github.com/rushteam/evalkit/feature"
)

// Input 是指标节点的输入：连接后的评估帧 + 物品特征表 + 截断值。
// 所有指标节点共享同一个 Input，节点之间不传递状态。
type Input struct {
	Frame *dataset.Frame
	Items *feature.Vectors
	K     int
}

// Metric 是指标链的最小可扩展单元。
// 统一采用"输入 Input -> 输出若干 Cell"的形态，自定义指标实现此接口即可插拔扩展。
type Metric interface {
	Name() string

	Compute(ctx context.Context, in *Input) ([]core.Cell, error)
}

// Builder 根据配置构建一个 Metric 实例。
type Builder func(map[string]interface{}) (Metric, error)

// Factory 用于根据配置构建 Metric 实例。
type Factory struct {
	builders map[string]Builder
}

func NewFactory() *Factory {
	return &Factory{
		builders: make(map[string]Builder),
	}
}

// Register 注册 Metric 构建器。
func (f *Factory) Register(metricType string, builder Builder) {
	f.builders[metricType] = builder
}

// Build 根据类型和配置构建 Metric。
func (f *Factory) Build(metricType string, config map[string]interface{}) (Metric, error) {
	builder, ok := f.builders[metricType]
	if !ok {
		return nil, fmt.Errorf("unknown metric type: %s", metricType)
	}
	return builder(config)
}
