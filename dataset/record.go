package dataset

// Recommendation 是一行推荐记录：一个客户的一个候选物品。
// 上游已完成 top-k 截断，本包不再截断。
//
// Attrs 承载数值列（rank / score / ctr 等），排序列名由调用方
// 通过 sortColumn 参数选择，对应表格数据中的"列名"语义。
type Recommendation struct {
	CustomerID string
	ArticleID  string
	Attrs      map[string]float64
}

// SortValue 按列名取排序值，列不存在时返回 (0, false)。
func (r Recommendation) SortValue(column string) (float64, bool) {
	if r.Attrs == nil {
		return 0, false
	}
	v, ok := r.Attrs[column]
	return v, ok
}

// Interaction 是一行真实消费记录：(cid, aid) 出现即为正样本。
// 真值表只包含正样本，负样本由连接时的缺失推出。
type Interaction struct {
	CustomerID string
	ArticleID  string
}
