// Package recall 实现候选商品的召回源：协同过滤、内容相似、热门回退。
package recall

import (
	"context"

	"github.com/rushteam/prodrec/core"
)

// Source 表示一个可复用的召回源（协同/内容/热门/...）。
// 你可以把它理解为"可并发 fan-out 的策略单元"。
type Source interface {
	Name() string
	Recall(ctx context.Context, rctx *core.RecommendContext) ([]*core.Item, error)
}

// Engine 是按 (userID, n) 直接取 TopN 候选的打分引擎。
// rank.Hybrid 通过它向两路信号各要 2N 个候选再做加权融合。
//
// 契约：返回至多 n 个分数严格为正的候选，按分数降序；
// 分数相同按商品 ID 升序；绝不包含用户已交互过的商品；
// 用户无信号 / 语料为空时返回空列表，不是错误。
type Engine interface {
	Name() string
	RecommendForUser(ctx context.Context, userID int64, n int) ([]*core.Item, error)
}
