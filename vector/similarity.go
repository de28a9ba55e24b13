package vector

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/rushteam/evalkit/feature"
)

// SimMatrix 是一组物品的两两余弦相似度矩阵。
// 对整个物品集合一次性计算（而非逐客户计算），之后按 (aid, aid) 查询。
type SimMatrix struct {
	index map[string]int
	ids   []string
	sims  [][]float64
}

// BuildCosine 对给定物品集合构建余弦相似度矩阵。
// 不在特征表中的物品被静默排除，之后 Lookup 返回 (0, false)。
func BuildCosine(items *feature.Vectors, articleIDs []string) *SimMatrix {
	m := &SimMatrix{
		index: make(map[string]int, len(articleIDs)),
	}
	if items == nil {
		return m
	}

	vecs := make([][]float64, 0, len(articleIDs))
	for _, aid := range articleIDs {
		if _, dup := m.index[aid]; dup {
			continue
		}
		vec, ok := items.Get(aid)
		if !ok {
			continue
		}
		m.index[aid] = len(m.ids)
		m.ids = append(m.ids, aid)
		vecs = append(vecs, vec)
	}

	n := len(vecs)
	norms := make([]float64, n)
	for i, v := range vecs {
		norms[i] = math.Sqrt(floats.Dot(v, v))
	}

	m.sims = make([][]float64, n)
	for i := range m.sims {
		m.sims[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var sim float64
			if norms[i] != 0 && norms[j] != 0 {
				sim = floats.Dot(vecs[i], vecs[j]) / (norms[i] * norms[j])
			}
			m.sims[i][j] = sim
			m.sims[j][i] = sim
		}
	}
	return m
}

// Len 返回进入矩阵的物品数。
func (m *SimMatrix) Len() int { return len(m.ids) }

// Has 判断物品是否进入了矩阵。
func (m *SimMatrix) Has(articleID string) bool {
	_, ok := m.index[articleID]
	return ok
}

// Lookup 查询两个物品的相似度，任一物品不在矩阵中时返回 (0, false)。
func (m *SimMatrix) Lookup(a, b string) (float64, bool) {
	i, ok := m.index[a]
	if !ok {
		return 0, false
	}
	j, ok := m.index[b]
	if !ok {
		return 0, false
	}
	return m.sims[i][j], true
}
