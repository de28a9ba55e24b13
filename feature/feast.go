package feature

import (
	"context"
	"fmt"

	feastsdk "github.com/feast-dev/feast/sdk/go"
	feasttypes "github.com/feast-dev/feast/sdk/go/protos/feast/types"

	"github.com/rushteam/evalkit/core"
)

// FeastLoader 从 Feast Feature Store 在线存储拉取物品特征向量。
//
// 使用官方 SDK (github.com/feast-dev/feast/sdk/go) 提供的 gRPC 客户端。
//
// 使用场景：
//   - 物品向量由特征平台统一物化，离线评估直接复用线上同一份特征
//   - 避免评估与服务之间的特征口径漂移
//
// 特征引用形如 "article_stats:embed_0"，每个引用对应向量的一个分量，
// Features 的顺序即向量分量的顺序。
type FeastLoader struct {
	client *feastsdk.GrpcClient

	// Project 项目名称
	Project string

	// Features 特征引用列表，顺序决定向量分量顺序
	Features []string

	// EntityKey 实体键名，默认 "article_id"
	EntityKey string
}

// NewFeastLoader 创建一个 Feast 向量加载器。
// port 为 0 时使用默认 gRPC 端口 6565。
func NewFeastLoader(host string, port int, project string, features []string) (*FeastLoader, error) {
	if port == 0 {
		port = 6565 // 默认 gRPC 端口
	}
	if len(features) == 0 {
		return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeInvalidInput,
			"feature references are required")
	}

	client, err := feastsdk.NewGrpcClient(host, port)
	if err != nil {
		return nil, fmt.Errorf("create feast grpc client: %w", err)
	}

	return &FeastLoader{
		client:   client,
		Project:  project,
		Features: features,
	}, nil
}

// LoadVectors 按物品 ID 批量拉取特征，拼装为 Vectors。
// 某个物品的任一分量缺失或非数值时，该物品被跳过（评估侧按缺失物品处理）。
func (l *FeastLoader) LoadVectors(ctx context.Context, articleIDs []string) (*Vectors, error) {
	if len(articleIDs) == 0 {
		return NewVectors(), nil
	}

	entityKey := l.EntityKey
	if entityKey == "" {
		entityKey = "article_id"
	}

	entityRows := make([]feastsdk.Row, len(articleIDs))
	for i, aid := range articleIDs {
		entityRows[i] = feastsdk.Row{entityKey: feastsdk.StrVal(aid)}
	}

	req := &feastsdk.OnlineFeaturesRequest{
		Features: l.Features,
		Entities: entityRows,
		Project:  l.Project,
	}

	resp, err := l.client.GetOnlineFeatures(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("feast get online features failed: %w", err)
	}

	rows := resp.Rows()
	if len(rows) != len(articleIDs) {
		return nil, fmt.Errorf("response row count mismatch: expected %d, got %d", len(articleIDs), len(rows))
	}

	vectors := NewVectors()
	for i, row := range rows {
		vec := make([]float64, 0, len(l.Features))
		complete := true
		for _, ref := range l.Features {
			val, exists := row[ref]
			if !exists {
				complete = false
				break
			}
			f, ok := toFloat64(val)
			if !ok {
				complete = false
				break
			}
			vec = append(vec, f)
		}
		if !complete {
			continue
		}
		if err := vectors.Set(articleIDs[i], vec); err != nil {
			return nil, err
		}
	}
	return vectors, nil
}

// Close 关闭 gRPC 连接。
func (l *FeastLoader) Close() error {
	if l.client == nil {
		return nil
	}
	return l.client.Close()
}

// toFloat64 从 SDK 返回值提取数值。
// SDK 的 Row 值是 protobuf 的 *types.Value，按数值分支解包；
// 兼容已解包为 Go 原生数值的情况。
func toFloat64(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case *feasttypes.Value:
		if v == nil {
			return 0, false
		}
		switch inner := v.GetVal().(type) {
		case *feasttypes.Value_DoubleVal:
			return inner.DoubleVal, true
		case *feasttypes.Value_FloatVal:
			return float64(inner.FloatVal), true
		case *feasttypes.Value_Int64Val:
			return float64(inner.Int64Val), true
		case *feasttypes.Value_Int32Val:
			return float64(inner.Int32Val), true
		default:
			return 0, false
		}
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
