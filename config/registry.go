package config

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rushteam/evalkit/metric"
)

// 使用配置驱动时，需在 main 或入口处 import _ "github.com/rushteam/evalkit/config/builders"
// 以触发内置指标（coverage、precision、recall、map、diversity）的 init 注册。

// MetricBuilder 与 metric.Builder 一致：根据 config 构建 Metric。
// 各指标在 init 中调用 Register(typeName, builder) 即可被配置驱动。
type MetricBuilder = metric.Builder

var (
	defaultBuilders   = make(map[string]MetricBuilder)
	defaultBuildersMu sync.RWMutex
)

// Register 注册一种 Metric 的构建逻辑，供 DefaultFactory 与配置驱动使用。
// 建议在各指标的 init 中调用，例如：func init() { config.Register("coverage", BuildCoverage) }
func Register(typeName string, builder MetricBuilder) {
	if typeName == "" || builder == nil {
		return
	}
	defaultBuildersMu.Lock()
	defer defaultBuildersMu.Unlock()
	defaultBuilders[typeName] = builder
}

// SupportedTypes 返回当前已注册的 Metric 类型列表（排序），用于错误提示与校验。
func SupportedTypes() []string {
	defaultBuildersMu.RLock()
	defer defaultBuildersMu.RUnlock()
	types := make([]string, 0, len(defaultBuilders))
	for t := range defaultBuilders {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// DefaultFactory 返回基于当前注册表构建的 Factory，包含所有通过 Register 注册的指标类型。
func DefaultFactory() *metric.Factory {
	defaultBuildersMu.RLock()
	defer defaultBuildersMu.RUnlock()
	f := metric.NewFactory()
	for typeName, builder := range defaultBuilders {
		f.Register(typeName, builder)
	}
	return f
}

// ValidateEvaluationConfig 校验配置中所有指标类型均已注册；
// 若有未支持类型则返回包含已支持列表的错误。
func ValidateEvaluationConfig(cfg *Config) error {
	if cfg == nil {
		return nil
	}
	for _, mc := range cfg.Evaluation.Metrics {
		defaultBuildersMu.RLock()
		_, ok := defaultBuilders[mc.Type]
		defaultBuildersMu.RUnlock()
		if !ok {
			return fmt.Errorf("unsupported metric type %q, supported: %s",
				mc.Type, strings.Join(SupportedTypes(), ", "))
		}
	}
	return nil
}

// BuildCalculator 根据配置构建 Calculator。
// Metrics 为空时使用默认指标链。
func (c *Config) BuildCalculator(factory *metric.Factory) (*metric.Calculator, error) {
	if len(c.Evaluation.Metrics) == 0 {
		return metric.NewCalculator(), nil
	}

	metrics := make([]metric.Metric, 0, len(c.Evaluation.Metrics))
	for _, mc := range c.Evaluation.Metrics {
		m, err := factory.Build(mc.Type, mc.Config)
		if err != nil {
			return nil, fmt.Errorf("build metric %s: %w", mc.Type, err)
		}
		metrics = append(metrics, m)
	}
	return metric.NewCalculator(metrics...), nil
}
