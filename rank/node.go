package rank

import (
	"context"

	"github.com/rushteam/prodrec/core"
	"github.com/rushteam/prodrec/pipeline"
)

// HybridNode 把 Hybrid 接入 Pipeline：忽略上游 items，
// 以 rctx.UserID 为目标产出融合排序后的候选列表。
type HybridNode struct {
	Hybrid *Hybrid

	// N 返回的候选数；<=0 时默认 10。
	N int
}

func (n *HybridNode) Name() string        { return "rank.hybrid" }
func (n *HybridNode) Kind() pipeline.Kind { return pipeline.KindRank }

func (n *HybridNode) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	if n.Hybrid == nil || rctx == nil {
		return nil, nil
	}
	topN := n.N
	if topN <= 0 {
		topN = 10
	}
	return n.Hybrid.Recommend(ctx, rctx.UserID, topN)
}
