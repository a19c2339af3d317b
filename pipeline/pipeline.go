// Package pipeline 提供推荐链路的编排抽象：Node 串联成 Pipeline。
package pipeline

import (
	"context"

	"github.com/rushteam/prodrec/core"
)

// Pipeline 把推荐逻辑拆成可组合的 Node 链：
// 典型链路为 rank.hybrid → feature.enrich → filter → rerank.topn。
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	cur := items
	for _, node := range p.Nodes {
		next, err := node.Process(ctx, rctx, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
