package builders

import (
	"github.com/rushteam/evalkit/config"
	"github.com/rushteam/evalkit/metric"
)

func init() {
	config.Register("coverage", BuildCoverage)
	config.Register("precision", BuildPrecision)
	config.Register("recall", BuildRecall)
	config.Register("map", BuildMAP)
	config.Register("diversity", BuildDiversity)
}

func BuildCoverage(_ map[string]interface{}) (metric.Metric, error) {
	return &metric.Coverage{}, nil
}

func BuildPrecision(_ map[string]interface{}) (metric.Metric, error) {
	return &metric.Precision{}, nil
}

func BuildRecall(_ map[string]interface{}) (metric.Metric, error) {
	return &metric.Recall{}, nil
}

func BuildMAP(_ map[string]interface{}) (metric.Metric, error) {
	return &metric.MAP{}, nil
}

func BuildDiversity(_ map[string]interface{}) (metric.Metric, error) {
	return &metric.Diversity{}, nil
}
