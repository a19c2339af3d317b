package rerank

import (
	"context"

	"github.com/rushteam/prodrec/core"
	"github.com/rushteam/prodrec/pipeline"
)

// Diversity 是一个简单的多样性 ReRank：按商品类目去重，保留每个类目
// 首个（也就是分数最高的）候选。类目来源优先级：
//   - label["category"].Value（由 feature.EnrichNode 注入）
//   - meta["category"] (string)
//
// 没有类目信息的候选原样保留。
type Diversity struct {
	// LabelKey 类目标签的 key，默认 "category"。
	LabelKey string
}

func (n *Diversity) Name() string        { return "rerank.diversity" }
func (n *Diversity) Kind() pipeline.Kind { return pipeline.KindReRank }

func (n *Diversity) Process(
	_ context.Context,
	_ *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if len(items) == 0 {
		return items, nil
	}

	key := n.LabelKey
	if key == "" {
		key = "category"
	}

	seen := make(map[string]bool, len(items))
	out := make([]*core.Item, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		category := ""
		if it.Labels != nil {
			if lbl, ok := it.Labels[key]; ok {
				category = lbl.Value
			}
		}
		if category == "" && it.Meta != nil {
			if s, ok := it.Meta[key].(string); ok {
				category = s
			}
		}

		if category == "" {
			out = append(out, it)
			continue
		}
		if seen[category] {
			continue
		}
		seen[category] = true
		out = append(out, it)
	}
	return out, nil
}
