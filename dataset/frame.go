package dataset

import (
	"fmt"
	"sort"

	"github.com/rushteam/evalkit/core"
)

// Row 是推荐表左连接真值表之后的一行。
// Label 为 1 表示 (cid, aid) 命中正样本，未命中填 0（左连接补零语义）。
type Row struct {
	CustomerID string
	ArticleID  string
	Sort       float64 // 排序列取值
	Label      float64 // 0 或 1
}

// Frame 是一次评估的工作集：连接后的行 + 按客户分组的索引。
// 行顺序与输入推荐表一致；分组与去重都按首次出现顺序，保证结果稳定。
type Frame struct {
	rows       []Row
	customers  []string         // cid 首次出现顺序
	groups     map[string][]int // cid -> 行下标
	articleIDs []string         // 推荐 aid 去重，首次出现顺序
}

type pair struct {
	cid string
	aid string
}

// Join 将推荐表与真值表按 (cid, aid) 左连接，缺失标签填 0。
// sortColumn 在任一行缺失时返回 INVALID_INPUT（对应表格数据的缺列错误）。
func Join(recs []Recommendation, truth []Interaction, sortColumn string) (*Frame, error) {
	positives := make(map[pair]struct{}, len(truth))
	for _, t := range truth {
		positives[pair{cid: t.CustomerID, aid: t.ArticleID}] = struct{}{}
	}

	f := &Frame{
		rows:   make([]Row, 0, len(recs)),
		groups: make(map[string][]int, 64),
	}
	seenAid := make(map[string]bool, len(recs))

	for i, r := range recs {
		sortVal, ok := r.SortValue(sortColumn)
		if !ok {
			return nil, core.NewDomainError(core.ModuleDataset, core.ErrorCodeInvalidInput,
				fmt.Sprintf("sort column %q not found in recommendation row %d", sortColumn, i))
		}

		label := 0.0
		if _, hit := positives[pair{cid: r.CustomerID, aid: r.ArticleID}]; hit {
			label = 1.0
		}

		idx := len(f.rows)
		f.rows = append(f.rows, Row{
			CustomerID: r.CustomerID,
			ArticleID:  r.ArticleID,
			Sort:       sortVal,
			Label:      label,
		})

		if _, exists := f.groups[r.CustomerID]; !exists {
			f.customers = append(f.customers, r.CustomerID)
		}
		f.groups[r.CustomerID] = append(f.groups[r.CustomerID], idx)

		if !seenAid[r.ArticleID] {
			seenAid[r.ArticleID] = true
			f.articleIDs = append(f.articleIDs, r.ArticleID)
		}
	}

	return f, nil
}

// Len 返回连接后的行数。
func (f *Frame) Len() int { return len(f.rows) }

// Customers 返回客户列表（首次出现顺序）。
func (f *Frame) Customers() []string { return f.customers }

// ArticleIDs 返回推荐过的物品去重列表（首次出现顺序）。
func (f *Frame) ArticleIDs() []string { return f.articleIDs }

// RowsOf 返回某个客户的行（输入顺序）。
func (f *Frame) RowsOf(cid string) []Row {
	idxs, ok := f.groups[cid]
	if !ok {
		return nil
	}
	out := make([]Row, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, f.rows[i])
	}
	return out
}

// RankedRowsOf 返回某个客户按排序列降序排列的行。
// 稳定排序：排序值相同的行保持输入顺序。
func (f *Frame) RankedRowsOf(cid string) []Row {
	rows := f.RowsOf(cid)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Sort > rows[j].Sort
	})
	return rows
}
