package filter

import (
	"context"

	"github.com/rushteam/prodrec/core"
	"github.com/rushteam/prodrec/pkg/dsl"
)

// Rule 是业务规则过滤器：CEL 表达式命中的候选被移除。
//
// 表达式通常访问 feature.EnrichNode 注入的商品元信息，例如：
//   - `item.meta.price > 500.0` —— 移除高价商品
//   - `item.meta.category == "Food"` —— 移除指定类目
//
// 表达式求值失败时保留候选（过滤是调优手段，不该让整条链路失败）。
type Rule struct {
	// Expr CEL 表达式；为空时不过滤任何候选。
	Expr string
}

func (f *Rule) Name() string { return "filter.rule" }

func (f *Rule) ShouldFilter(_ context.Context, rctx *core.RecommendContext, item *core.Item) (bool, error) {
	if f.Expr == "" || item == nil {
		return false, nil
	}
	matched, err := dsl.NewEval(item, rctx).Evaluate(f.Expr)
	if err != nil {
		return false, err
	}
	return matched, nil
}
