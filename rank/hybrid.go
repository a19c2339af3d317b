// Package rank 实现双信号融合排序：协同过滤与内容相似按固定权重加权，
// 并为每个候选打上 reason 标签记录来源。
package rank

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/prodrec/core"
	"github.com/rushteam/prodrec/pkg/utils"
	"github.com/rushteam/prodrec/recall"
)

// 默认融合权重：协同信号 0.6，内容信号 0.4。
const (
	DefaultCollaborativeWeight = 0.6
	DefaultContentWeight       = 0.4
)

// Hybrid 是混合推荐排序器。
//
// 流程：
//  1. 并发向协同与内容两路引擎各请求 2N 个候选
//  2. 融合分 = 0.6×协同分 + 0.4×内容分（缺席的一路按 0 计）
//  3. 融合分降序取 TopN，分数相同按商品 ID 升序
//  4. reason 标签：两路都出现 → collaborative_and_content；
//     只出现在一路 → collaborative / content。
//     候选必然来自至少一路，不存在也不需要其他兜底取值
//  5. 两路都为空 → 冷启动，回退到 Popular，按评分降序打 popular 标签
type Hybrid struct {
	Collaborative recall.Engine
	Content       recall.Engine
	Popular       recall.Engine

	// CollaborativeWeight / ContentWeight 融合权重；
	// 都为 0 时使用默认的 0.6 / 0.4。
	CollaborativeWeight float64
	ContentWeight       float64
}

// NewHybrid 用同一个实体存储组装三路引擎，使用默认权重。
func NewHybrid(store core.EntityStore, kv core.KeyValueStore) *Hybrid {
	return &Hybrid{
		Collaborative: &recall.Collaborative{Store: store},
		Content:       &recall.Content{Store: store},
		Popular:       &recall.Popular{Store: store, KV: kv},
	}
}

// Recommend 为目标用户返回至多 n 个候选，按融合分降序。
// 对结构上合法的 userID 永不报错成"无推荐"：无信号用户走冷启动路径。
func (h *Hybrid) Recommend(ctx context.Context, userID int64, n int) ([]*core.Item, error) {
	if n <= 0 {
		return nil, nil
	}

	var collab, content []*core.Item
	eg, gctx := errgroup.WithContext(ctx)
	if h.Collaborative != nil {
		eg.Go(func() error {
			var err error
			collab, err = h.Collaborative.RecommendForUser(gctx, userID, 2*n)
			return err
		})
	}
	if h.Content != nil {
		eg.Go(func() error {
			var err error
			content, err = h.Content.RecommendForUser(gctx, userID, 2*n)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// 冷启动：两路都没有信号
	if len(collab) == 0 && len(content) == 0 {
		return h.coldStart(ctx, n)
	}

	type blended struct {
		collabScore  float64
		contentScore float64
		inCollab     bool
		inContent    bool
	}
	combined := make(map[int64]*blended, len(collab)+len(content))
	for _, it := range collab {
		combined[it.ID] = &blended{collabScore: it.Score, inCollab: true}
	}
	for _, it := range content {
		b, ok := combined[it.ID]
		if !ok {
			b = &blended{}
			combined[it.ID] = b
		}
		b.contentScore = it.Score
		b.inContent = true
	}

	wc, wt := h.weights()
	out := make([]*core.Item, 0, len(combined))
	for id, b := range combined {
		it := core.NewItem(id)
		it.Score = wc*b.collabScore + wt*b.contentScore
		it.SetLabel(core.ReasonLabelKey, utils.Label{Value: reasonFor(b.inCollab, b.inContent), Source: "rank"})
		out = append(out, it)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (h *Hybrid) coldStart(ctx context.Context, n int) ([]*core.Item, error) {
	if h.Popular == nil {
		return nil, nil
	}
	items, err := h.Popular.RecommendForUser(ctx, 0, n)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		it.SetLabel(core.ReasonLabelKey, utils.Label{Value: core.ReasonPopular, Source: "rank"})
	}
	return items, nil
}

func (h *Hybrid) weights() (collab, content float64) {
	if h.CollaborativeWeight == 0 && h.ContentWeight == 0 {
		return DefaultCollaborativeWeight, DefaultContentWeight
	}
	return h.CollaborativeWeight, h.ContentWeight
}

func reasonFor(inCollab, inContent bool) string {
	switch {
	case inCollab && inContent:
		return core.ReasonBoth
	case inCollab:
		return core.ReasonCollaborative
	default:
		return core.ReasonContent
	}
}
