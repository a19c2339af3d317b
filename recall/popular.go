package recall

import (
	"context"
	"strconv"

	"github.com/rushteam/prodrec/core"
	"github.com/rushteam/prodrec/pkg/utils"
)

// DefaultPopularKey 是热门商品 zset 的默认 key。
const DefaultPopularKey = "popular:products"

// Popular 是热门商品召回源，冷启动（两路个性化信号都为空）时的回退路径。
//   - 如果配置了 KV，优先从有序集合读取（member=商品 ID，score=评分）
//   - 否则直接查实体存储的评分降序 TopN
//
// 候选分数即商品评分，reason 标签由上层融合逻辑统一打。
type Popular struct {
	Store core.EntityStore

	// KV 是可选的预计算缓存（Redis/内存 zset）。
	KV core.KeyValueStore

	// Key zset key，为空时使用 DefaultPopularKey。
	Key string

	// TopK 通过 Source 接口召回时返回的候选数；<=0 时默认 20。
	TopK int
}

func (r *Popular) Name() string {
	return "recall.popular"
}

// Recall 实现 Source 接口。
func (r *Popular) Recall(ctx context.Context, rctx *core.RecommendContext) ([]*core.Item, error) {
	topK := r.TopK
	if topK <= 0 {
		topK = 20
	}
	return r.RecommendForUser(ctx, 0, topK)
}

// RecommendForUser 返回评分最高的至多 n 个商品；userID 不参与计算。
func (r *Popular) RecommendForUser(ctx context.Context, _ int64, n int) ([]*core.Item, error) {
	if n <= 0 {
		return nil, nil
	}

	if items := r.fromCache(ctx, n); len(items) > 0 {
		return items, nil
	}

	if r.Store == nil {
		return nil, nil
	}
	products, err := r.Store.TopRatedProducts(ctx, n)
	if err != nil {
		return nil, err
	}
	out := make([]*core.Item, 0, len(products))
	for _, p := range products {
		it := core.NewItem(p.ID)
		it.Score = p.Rating
		it.PutLabel("recall_source", utils.Label{Value: "popular", Source: "recall"})
		out = append(out, it)
	}
	return out, nil
}

// fromCache 尝试从 zset 读取热门列表；缓存缺失或内容不可解析时返回 nil，
// 由调用方回退到实体存储。
func (r *Popular) fromCache(ctx context.Context, n int) []*core.Item {
	if r.KV == nil {
		return nil
	}
	key := r.Key
	if key == "" {
		key = DefaultPopularKey
	}
	members, err := r.KV.ZRange(ctx, key, 0, int64(n)-1)
	if err != nil || len(members) == 0 {
		return nil
	}
	out := make([]*core.Item, 0, len(members))
	for _, member := range members {
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			continue
		}
		it := core.NewItem(id)
		if score, err := r.KV.ZScore(ctx, key, member); err == nil {
			it.Score = score
		}
		it.PutLabel("recall_source", utils.Label{Value: "popular", Source: "recall"})
		out = append(out, it)
	}
	return out
}
