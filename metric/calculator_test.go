package metric

import (
	"context"
	"math"
	"testing"

	"github.com/rushteam/evalkit/core"
	"github.com/rushteam/evalkit/dataset"
	"github.com/rushteam/evalkit/feature"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func mustVectors(t *testing.T, vecs map[string][]float64, order []string) *feature.Vectors {
	t.Helper()
	v := feature.NewVectors()
	for _, aid := range order {
		if err := v.Set(aid, vecs[aid]); err != nil {
			t.Fatalf("Set(%s) error = %v", aid, err)
		}
	}
	return v
}

func rec(cid, aid string, score float64) dataset.Recommendation {
	return dataset.Recommendation{
		CustomerID: cid,
		ArticleID:  aid,
		Attrs:      map[string]float64{"score": score},
	}
}

// TestCalculator_WorkedExample 验证单客户两条推荐、命中排在首位的场景：
// precision = 0.5，MAP 按展开精度公式得 0.5，多样性为正交向量的 1。
func TestCalculator_WorkedExample(t *testing.T) {
	items := mustVectors(t, map[string][]float64{
		"A01": {1, 0},
		"A02": {0, 1},
		"A03": {1, 1},
	}, []string{"A01", "A02", "A03"})

	recs := []dataset.Recommendation{
		rec("1", "A01", 0.9), // 命中，排序在前
		rec("1", "A02", 0.4),
	}
	truth := []dataset.Interaction{{CustomerID: "1", ArticleID: "A01"}}

	calc := NewCalculator()
	summary, err := calc.Compute(context.Background(), &Request{
		Name:            "worked",
		Recommendations: recs,
		TrueLabels:      truth,
		Items:           items,
		SortColumn:      "score",
		K:               5,
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	tests := []struct {
		group string
		sub   string
		want  float64
	}{
		{"General", "Catalog coverage (%)", 66.6667}, // 2/3，4 位小数
		{"Precision@5", "mean", 0.5},
		{"Recall@5", "mean", 0.1}, // 1 命中 ÷ 固定分母 10
		{"MAP@5", "mean", 0.5},    // (1/1·1 + 1/2·0) / 2
		{"Diversity", "mean", 1},  // 正交向量，1 − 0
	}
	for _, tt := range tests {
		got, ok := summary.Get(tt.group, tt.sub)
		if !ok {
			t.Fatalf("missing cell (%s, %s)", tt.group, tt.sub)
		}
		if !almostEqual(got, tt.want) {
			t.Errorf("(%s, %s) = %v, want %v", tt.group, tt.sub, got, tt.want)
		}
	}

	// 单客户场景下样本标准差为 NaN（ddof=1）
	for _, group := range []string{"Precision@5", "Recall@5", "MAP@5", "Diversity"} {
		got, ok := summary.Get(group, "std")
		if !ok {
			t.Fatalf("missing cell (%s, std)", group)
		}
		if !math.IsNaN(got) {
			t.Errorf("(%s, std) = %v, want NaN for single customer", group, got)
		}
	}
}

// TestCalculator_CrossCustomerAggregation 验证跨客户的 mean/std 聚合
// 以及零命中客户贡献 0 的性质。
func TestCalculator_CrossCustomerAggregation(t *testing.T) {
	items := mustVectors(t, map[string][]float64{
		"A01": {1, 0},
		"A02": {0, 1},
		"A03": {1, 1},
		"A04": {1, 2},
	}, []string{"A01", "A02", "A03", "A04"})

	recs := []dataset.Recommendation{
		rec("1", "A01", 0.9), // 命中
		rec("1", "A02", 0.4),
		rec("2", "A03", 0.8), // 客户 2 零命中
		rec("2", "A04", 0.6),
	}
	truth := []dataset.Interaction{{CustomerID: "1", ArticleID: "A01"}}

	summary, err := NewCalculator().Compute(context.Background(), &Request{
		Name:            "agg",
		Recommendations: recs,
		TrueLabels:      truth,
		Items:           items,
		SortColumn:      "score",
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	// 覆盖率：4/4 推荐全目录，等于 100
	if got, _ := summary.Get("General", "Catalog coverage (%)"); !almostEqual(got, 100) {
		t.Errorf("coverage = %v, want 100", got)
	}

	// per-cid precision = {0.5, 0} → mean 0.25，样本标准差 sqrt(0.125)
	if got, _ := summary.Get("Precision@5", "mean"); !almostEqual(got, 0.25) {
		t.Errorf("precision mean = %v, want 0.25", got)
	}
	if got, _ := summary.Get("Precision@5", "std"); !almostEqual(got, math.Sqrt(0.125)) {
		t.Errorf("precision std = %v, want %v", got, math.Sqrt(0.125))
	}

	// per-cid recall = {0.1, 0} → mean 0.05
	if got, _ := summary.Get("Recall@5", "mean"); !almostEqual(got, 0.05) {
		t.Errorf("recall mean = %v, want 0.05", got)
	}

	// 零命中客户的 MAP 为 0：mean = (0.5 + 0) / 2
	if got, _ := summary.Get("MAP@5", "mean"); !almostEqual(got, 0.25) {
		t.Errorf("map mean = %v, want 0.25", got)
	}
}

// TestCalculator_Purity 相同输入两次计算产出完全一致的结果（纯函数）。
func TestCalculator_Purity(t *testing.T) {
	items := mustVectors(t, map[string][]float64{
		"A01": {1, 0},
		"A02": {0, 1},
	}, []string{"A01", "A02"})

	recs := []dataset.Recommendation{
		rec("1", "A01", 0.9),
		rec("1", "A02", 0.4),
	}
	truth := []dataset.Interaction{{CustomerID: "1", ArticleID: "A01"}}

	calc := NewCalculator()
	req := &Request{
		Name:            "pure",
		Recommendations: recs,
		TrueLabels:      truth,
		Items:           items,
		SortColumn:      "score",
	}

	first, err := calc.Compute(context.Background(), req)
	if err != nil {
		t.Fatalf("first Compute() error = %v", err)
	}
	second, err := calc.Compute(context.Background(), req)
	if err != nil {
		t.Fatalf("second Compute() error = %v", err)
	}
	if !first.Equal(second) {
		t.Errorf("summaries differ between identical runs:\n%+v\n%+v", first.Cells, second.Cells)
	}
}

func TestCalculator_DefaultK(t *testing.T) {
	items := mustVectors(t, map[string][]float64{"A01": {1}}, []string{"A01"})

	summary, err := NewCalculator().Compute(context.Background(), &Request{
		Name:            "default_k",
		Recommendations: []dataset.Recommendation{rec("1", "A01", 1)},
		TrueLabels:      nil,
		Items:           items,
		SortColumn:      "score",
		// K 未设置 → 5
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if _, ok := summary.Get("Precision@5", "mean"); !ok {
		t.Errorf("expected Precision@5 group, got groups %v", summary.Groups())
	}
}

func TestCalculator_InvalidInput(t *testing.T) {
	items := mustVectors(t, map[string][]float64{"A01": {1}}, []string{"A01"})

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "nil request", req: nil},
		{
			name: "nil items",
			req: &Request{
				Name:            "x",
				Recommendations: []dataset.Recommendation{rec("1", "A01", 1)},
				SortColumn:      "score",
			},
		},
		{
			name: "empty sort column",
			req: &Request{
				Name:            "x",
				Recommendations: []dataset.Recommendation{rec("1", "A01", 1)},
				Items:           items,
			},
		},
		{
			name: "missing sort column in rows",
			req: &Request{
				Name:            "x",
				Recommendations: []dataset.Recommendation{rec("1", "A01", 1)},
				Items:           items,
				SortColumn:      "rank",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCalculator().Compute(context.Background(), tt.req)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !core.IsInvalidInput(err) {
				t.Errorf("error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestCalculator_Segment(t *testing.T) {
	items := mustVectors(t, map[string][]float64{
		"A01": {1, 0},
		"A02": {0, 1},
	}, []string{"A01", "A02"})

	seg, err := dataset.NewSegment(`attrs.score >= 0.5`)
	if err != nil {
		t.Fatalf("NewSegment() error = %v", err)
	}

	summary, err := NewCalculator().Compute(context.Background(), &Request{
		Name: "segmented",
		Recommendations: []dataset.Recommendation{
			rec("1", "A01", 0.9),
			rec("1", "A02", 0.2), // 被筛掉
		},
		TrueLabels: []dataset.Interaction{{CustomerID: "1", ArticleID: "A01"}},
		Items:      items,
		SortColumn: "score",
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	full, _ := summary.Get("Precision@5", "mean")
	if !almostEqual(full, 0.5) {
		t.Fatalf("unfiltered precision = %v, want 0.5", full)
	}

	summarySeg, err := NewCalculator().Compute(context.Background(), &Request{
		Name: "segmented",
		Recommendations: []dataset.Recommendation{
			rec("1", "A01", 0.9),
			rec("1", "A02", 0.2),
		},
		TrueLabels: []dataset.Interaction{{CustomerID: "1", ArticleID: "A01"}},
		Items:      items,
		SortColumn: "score",
		Segment:    seg,
	})
	if err != nil {
		t.Fatalf("Compute() with segment error = %v", err)
	}
	if got, _ := summarySeg.Get("Precision@5", "mean"); !almostEqual(got, 1) {
		t.Errorf("segmented precision = %v, want 1 (only the hit row survives)", got)
	}
}
