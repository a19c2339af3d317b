// Package feature 实现候选商品的元信息注入。
package feature

import (
	"context"

	"github.com/rushteam/prodrec/core"
	"github.com/rushteam/prodrec/pipeline"
	"github.com/rushteam/prodrec/pkg/utils"
)

// EnrichNode 把商品的结构化属性注入到候选的 Meta 与 Labels 上，
// 供下游的规则过滤（filter.Rule）、多样性重排（rerank.Diversity）
// 与解释生成消费。
//
// 注入内容：
//   - Meta: name / category / price / rating / description / tags
//   - Label: category（多样性重排按它去重）
//
// 商品已不存在的候选原样透传，不注入也不报错。
type EnrichNode struct {
	Store core.EntityStore
}

func (n *EnrichNode) Name() string        { return "feature.enrich" }
func (n *EnrichNode) Kind() pipeline.Kind { return pipeline.KindPostProcess }

func (n *EnrichNode) Process(
	ctx context.Context,
	_ *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if n.Store == nil || len(items) == 0 {
		return items, nil
	}

	for _, it := range items {
		if it == nil {
			continue
		}
		p, err := n.Store.ProductByID(ctx, it.ID)
		if err != nil {
			if core.IsStoreNotFound(err) {
				continue
			}
			return nil, err
		}
		if it.Meta == nil {
			it.Meta = make(map[string]any)
		}
		it.Meta["name"] = p.Name
		it.Meta["description"] = p.Description
		it.Meta["category"] = p.Category
		it.Meta["price"] = p.Price
		it.Meta["rating"] = p.Rating
		it.Meta["tags"] = p.Tags
		it.SetLabel("category", utils.Label{Value: p.Category, Source: "feature"})
	}
	return items, nil
}
