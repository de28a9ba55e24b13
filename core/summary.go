package core

import (
	"encoding/json"
	"math"
)

// Cell 是 Summary 中的一个指标单元，(Group, Sub) 二级列名 + 数值。
// 对应多级列的一列，例如 ("Precision@5", "mean")。
type Cell struct {
	Group string  `json:"group"` // 指标组，如 "General" / "Precision@5" / "Diversity"
	Sub   string  `json:"sub"`   // 子指标，如 "Catalog coverage (%)" / "mean" / "std"
	Value float64 `json:"value"`
}

// cellJSON 是 Cell 的序列化形态。Value 用指针承载：
// NaN（如单客户的样本标准差）序列化为 null，反序列化还原为 NaN。
type cellJSON struct {
	Group string   `json:"group"`
	Sub   string   `json:"sub"`
	Value *float64 `json:"value"`
}

func (c Cell) MarshalJSON() ([]byte, error) {
	out := cellJSON{Group: c.Group, Sub: c.Sub}
	if !math.IsNaN(c.Value) {
		v := c.Value
		out.Value = &v
	}
	return json.Marshal(out)
}

func (c *Cell) UnmarshalJSON(data []byte) error {
	var in cellJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	c.Group = in.Group
	c.Sub = in.Sub
	if in.Value != nil {
		c.Value = *in.Value
	} else {
		c.Value = math.NaN()
	}
	return nil
}

// Summary 是一次离线评估的汇总结果：一个引擎名 + 一行指标单元。
// Cells 的顺序即指标链的执行顺序，便于稳定输出与对比。
type Summary struct {
	Name  string `json:"name"` // 推荐引擎名称（行索引）
	Cells []Cell `json:"cells"`
}

// NewSummary 创建一个空的 Summary。
func NewSummary(name string) *Summary {
	return &Summary{
		Name:  name,
		Cells: make([]Cell, 0, 9),
	}
}

// Append 追加一个指标单元。
func (s *Summary) Append(group, sub string, value float64) {
	s.Cells = append(s.Cells, Cell{Group: group, Sub: sub, Value: value})
}

// Get 按 (group, sub) 查找指标值，找不到时返回 (0, false)。
func (s *Summary) Get(group, sub string) (float64, bool) {
	for _, c := range s.Cells {
		if c.Group == group && c.Sub == sub {
			return c.Value, true
		}
	}
	return 0, false
}

// Groups 返回出现过的指标组名（按首次出现顺序去重）。
func (s *Summary) Groups() []string {
	seen := make(map[string]bool, len(s.Cells))
	out := make([]string, 0, len(s.Cells))
	for _, c := range s.Cells {
		if seen[c.Group] {
			continue
		}
		seen[c.Group] = true
		out = append(out, c.Group)
	}
	return out
}

// Equal 比较两个 Summary 是否完全一致（NaN 视为相等，便于测试纯函数幂等性）。
func (s *Summary) Equal(other *Summary) bool {
	if other == nil || s.Name != other.Name || len(s.Cells) != len(other.Cells) {
		return false
	}
	for i, c := range s.Cells {
		o := other.Cells[i]
		if c.Group != o.Group || c.Sub != o.Sub {
			return false
		}
		if math.IsNaN(c.Value) && math.IsNaN(o.Value) {
			continue
		}
		if c.Value != o.Value {
			return false
		}
	}
	return true
}
