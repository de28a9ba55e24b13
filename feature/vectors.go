package feature

import (
	"fmt"

	"github.com/rushteam/evalkit/core"
)

// Vectors 是按 article_id 索引的定长特征向量表。
// 索引唯一（重复 Set 覆盖旧值），所有向量维度一致。
//
// 对应离线评估中的物品特征表：多样性指标依赖它计算两两相似度，
// 覆盖率指标以它的索引基数作为全量目录大小。
type Vectors struct {
	dim  int
	ids  []string // 插入顺序
	data map[string][]float64
}

// NewVectors 创建一个空的特征向量表。
func NewVectors() *Vectors {
	return &Vectors{
		data: make(map[string][]float64, 256),
	}
}

// Set 写入一个物品的特征向量。
// 首次写入确定维度，之后维度不一致返回 INVALID_INPUT。
func (v *Vectors) Set(articleID string, vec []float64) error {
	if len(vec) == 0 {
		return core.NewDomainError(core.ModuleFeature, core.ErrorCodeInvalidInput,
			fmt.Sprintf("empty feature vector for article %q", articleID))
	}
	if v.dim == 0 {
		v.dim = len(vec)
	} else if len(vec) != v.dim {
		return core.NewDomainError(core.ModuleFeature, core.ErrorCodeInvalidInput,
			fmt.Sprintf("vector dimension mismatch for article %q: want %d, got %d", articleID, v.dim, len(vec)))
	}

	if _, exists := v.data[articleID]; !exists {
		v.ids = append(v.ids, articleID)
	}
	cp := make([]float64, len(vec))
	copy(cp, vec)
	v.data[articleID] = cp
	return nil
}

// Get 读取一个物品的特征向量。
func (v *Vectors) Get(articleID string) ([]float64, bool) {
	vec, ok := v.data[articleID]
	return vec, ok
}

// Has 判断物品是否存在。
func (v *Vectors) Has(articleID string) bool {
	_, ok := v.data[articleID]
	return ok
}

// Len 返回索引基数（去重后的物品数）。
func (v *Vectors) Len() int { return len(v.ids) }

// Dim 返回向量维度，空表时为 0。
func (v *Vectors) Dim() int { return v.dim }

// IDs 返回全部物品 ID（插入顺序）。
func (v *Vectors) IDs() []string { return v.ids }
