package dataset

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量
func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		// 定义变量类型
		cel.Variable("cid", cel.StringType),
		cel.Variable("aid", cel.StringType),
		cel.Variable("attrs", cel.DynType),
	)
	return env, err
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	if celEnv == nil && err == nil {
		err = fmt.Errorf("cel env not initialized")
	}
	return celEnv, err
}

// Segment 是客群/行筛选器，使用 CEL (Common Expression Language) 实现。
// 表达式作用于单行推荐记录，返回 true 的行进入评估。
//
// 表达式语法（CEL 标准语法）：
//   - 按客户：cid == "42" / cid.startsWith("es_")
//   - 按物品：aid.startsWith("010")
//   - 按数值列：attrs.score > 0.7 / attrs.rank <= 3.0
//   - 逻辑组合：cid != "0" && attrs.score >= 0.5
//
// 示例：
//   - `attrs.score > 0.5` → 只评估高置信度推荐
//   - `aid.startsWith("010")` → 只评估某个品类分片
type Segment struct {
	expr string
	prg  cel.Program
}

// NewSegment 编译一个筛选表达式。表达式会被编译一次并缓存，
// 之后可以并发调用 Match / Filter。
func NewSegment(expr string) (*Segment, error) {
	if expr == "" {
		return &Segment{}, nil
	}

	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env error: %v", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %v", issues.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %v", err)
	}

	return &Segment{expr: expr, prg: prg}, nil
}

// Expr 返回原始表达式。
func (s *Segment) Expr() string { return s.expr }

// Match 判断一行推荐记录是否命中筛选条件。空表达式恒为 true。
func (s *Segment) Match(rec Recommendation) (bool, error) {
	if s.prg == nil {
		return true, nil
	}

	attrs := rec.Attrs
	if attrs == nil {
		attrs = map[string]float64{}
	}

	out, _, err := s.prg.Eval(map[string]interface{}{
		"cid":   rec.CustomerID,
		"aid":   rec.ArticleID,
		"attrs": attrs,
	})
	if err != nil {
		// 对于不存在的 key，CEL 会返回错误
		// 表达式应使用 "score" in attrs 检查存在性，而不是直接访问
		return false, fmt.Errorf("eval error: %v", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}
	return result, nil
}

// Filter 返回命中筛选条件的行（保持输入顺序）。
func (s *Segment) Filter(recs []Recommendation) ([]Recommendation, error) {
	if s.prg == nil {
		return recs, nil
	}

	out := make([]Recommendation, 0, len(recs))
	for _, r := range recs {
		ok, err := s.Match(r)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, r)
		}
	}
	return out, nil
}
