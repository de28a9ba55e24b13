package feature

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// LoadCSV 从 CSV 文件加载物品特征向量表。
//
// 文件格式：首行为表头，第一列为 article_id，其余列为数值特征。
//
//	article_id,f0,f1,f2
//	0108775015,0.12,0.80,0.33
//
// 所有行的特征列数必须一致（由 Vectors 的维度校验保证）。
func LoadCSV(path string) (*Vectors, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("csv %s: need a header row and at least one data row", path)
	}

	vectors := NewVectors()
	for i, rec := range records[1:] {
		if len(rec) < 2 {
			return nil, fmt.Errorf("csv %s row %d: need article_id plus feature columns", path, i+2)
		}
		vec := make([]float64, 0, len(rec)-1)
		for j, cell := range rec[1:] {
			val, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("csv %s row %d col %d: %w", path, i+2, j+2, err)
			}
			vec = append(vec, val)
		}
		if err := vectors.Set(rec[0], vec); err != nil {
			return nil, err
		}
	}
	return vectors, nil
}
