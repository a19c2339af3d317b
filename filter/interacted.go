package filter

import (
	"context"
	"sync"

	"github.com/rushteam/prodrec/core"
)

// Interacted 是已交互过滤器，兜底移除用户已经交互过的商品。
//
// 两路召回引擎内部已经用哨兵值排除了已交互商品；本过滤器用于
// Pipeline 中接入其他召回源（如热门）时保持同样的约束。
// 同一次请求内按用户缓存已交互集合，避免逐候选查询存储。
type Interacted struct {
	Store core.EntityStore

	mu    sync.Mutex
	cache map[int64]map[int64]struct{} // userID -> 已交互商品集合
}

func (f *Interacted) Name() string { return "filter.interacted" }

func (f *Interacted) ShouldFilter(ctx context.Context, rctx *core.RecommendContext, item *core.Item) (bool, error) {
	if f.Store == nil || rctx == nil || item == nil {
		return false, nil
	}
	set, err := f.interactedSet(ctx, rctx.UserID)
	if err != nil {
		return false, err
	}
	_, interacted := set[item.ID]
	return interacted, nil
}

func (f *Interacted) interactedSet(ctx context.Context, userID int64) (map[int64]struct{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cache == nil {
		f.cache = make(map[int64]map[int64]struct{})
	}
	if set, ok := f.cache[userID]; ok {
		return set, nil
	}

	interactions, err := f.Store.InteractionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	set := make(map[int64]struct{}, len(interactions))
	for _, in := range interactions {
		set[in.ProductID] = struct{}{}
	}
	f.cache[userID] = set
	return set, nil
}
