package batch

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/evalkit/core"
	"github.com/rushteam/evalkit/dataset"
	"github.com/rushteam/evalkit/feature"
	"github.com/rushteam/evalkit/metric"
)

// Job 是一个待评估的推荐引擎输入。
// 多个 Job 共享同一份物品特征表（Runner.Items）。
type Job struct {
	Name            string
	Recommendations []dataset.Recommendation
	TrueLabels      []dataset.Interaction
	SortColumn      string
	K               int
	Segment         *dataset.Segment
}

// Result 是单个 Job 的评估结果。Err 非 nil 时 Summary 为 nil。
type Result struct {
	Name    string
	Summary *core.Summary
	Err     error
}

// Runner 并发评估多个推荐引擎，用于横向对比（A/B 引擎、不同召回策略）。
// 支持超时、限流；单个任务失败不中断其他任务，错误记录在对应 Result 中。
type Runner struct {
	// Calculator 为 nil 时使用默认指标链
	Calculator *metric.Calculator

	// Items 各 Job 共享的物品特征表
	Items *feature.Vectors

	// Store 可选：非 nil 时评估成功的结果写入存储
	Store core.SummaryStore

	// Timeout 单个任务的超时时间（0 表示不限制）
	Timeout time.Duration

	// MaxConcurrent 最大并发数（0 表示无限制）
	MaxConcurrent int
}

// Run 执行全部任务，结果顺序与 jobs 一致。
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	if len(jobs) == 0 {
		return nil, nil
	}

	calc := r.Calculator
	if calc == nil {
		calc = metric.NewCalculator()
	}

	results := make([]Result, len(jobs))
	eg, egCtx := errgroup.WithContext(ctx)

	// 限流：使用 semaphore 控制并发数
	sem := make(chan struct{}, r.MaxConcurrent)
	if r.MaxConcurrent <= 0 {
		close(sem) // 无限制时直接关闭，避免阻塞
	}

	for i, job := range jobs {
		idx, j := i, job

		eg.Go(func() error {
			// 限流
			if r.MaxConcurrent > 0 {
				sem <- struct{}{}
				defer func() { <-sem }()
			}

			// 超时控制
			jobCtx := egCtx
			if r.Timeout > 0 {
				var cancel context.CancelFunc
				jobCtx, cancel = context.WithTimeout(egCtx, r.Timeout)
				defer cancel()
			}

			summary, err := calc.Compute(jobCtx, &metric.Request{
				Name:            j.Name,
				Recommendations: j.Recommendations,
				TrueLabels:      j.TrueLabels,
				Items:           r.Items,
				SortColumn:      j.SortColumn,
				K:               j.K,
				Segment:         j.Segment,
			})
			if err != nil {
				// 任务失败不中断其他任务
				results[idx] = Result{Name: j.Name, Err: err}
				return nil
			}

			if r.Store != nil {
				if err := r.Store.Save(jobCtx, summary); err != nil {
					results[idx] = Result{Name: j.Name, Summary: summary, Err: err}
					return nil
				}
			}

			results[idx] = Result{Name: j.Name, Summary: summary}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
