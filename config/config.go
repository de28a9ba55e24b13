package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName 是约定的配置文件名，默认与进程同目录。
const DefaultFileName = "configuration.yml"

// MetricConfig 是单个指标节点的配置。
type MetricConfig struct {
	Type   string                 `yaml:"type" json:"type"`     // coverage / precision / recall / map / diversity
	Config map[string]interface{} `yaml:"config" json:"config"` // Metric 特定配置
}

// EvaluationConfig 是评估链的配置段。
type EvaluationConfig struct {
	K          int            `yaml:"k" json:"k"`
	SortColumn string         `yaml:"sort_column" json:"sort_column"`
	Segment    string         `yaml:"segment" json:"segment"` // CEL 行筛选表达式，可为空
	Metrics    []MetricConfig `yaml:"metrics" json:"metrics"`
}

// Config 是配置文件的解析结果。
//
// Evaluation 段是本模块消费的结构化配置；Values 保留整个文件的
// 原始映射，不强制 schema，由各消费方按需解释（搭配 pkg/conv 取值）。
type Config struct {
	Evaluation EvaluationConfig `yaml:"evaluation"`

	Values map[string]interface{} `yaml:"-"`
}

// Load 从 YAML 文件加载配置。
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	values := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	cfg.Values = values

	return &cfg, nil
}

// LoadDefault 加载与可执行文件同目录的 configuration.yml。
// 定位失败时退回当前工作目录。
func LoadDefault() (*Config, error) {
	dir := ""
	if exe, err := os.Executable(); err == nil {
		dir = filepath.Dir(exe)
	}
	return Load(filepath.Join(dir, DefaultFileName))
}
