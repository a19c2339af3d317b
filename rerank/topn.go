// Package rerank 实现排序结果上的截断与多样性调优。
package rerank

import (
	"context"

	"github.com/rushteam/prodrec/core"
	"github.com/rushteam/prodrec/pipeline"
)

// TopNNode 是 Top-N 截断节点，排序之后限制返回结果数量。
//
// 使用场景：
//   - 排序后只返回 Top 5/10/20 个结果
//   - 配合多样性重排使用（先多样性去重，再截断）
type TopNNode struct {
	// N 要保留的候选数量；N <= 0 时不截断。
	N int
}

func (n *TopNNode) Name() string        { return "rerank.topn" }
func (n *TopNNode) Kind() pipeline.Kind { return pipeline.KindReRank }

func (n *TopNNode) Process(
	_ context.Context,
	_ *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if n.N <= 0 || len(items) <= n.N {
		return items, nil
	}
	return items[:n.N], nil
}
