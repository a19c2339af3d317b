package recall

import (
	"context"

	"github.com/rushteam/prodrec/core"
	"github.com/rushteam/prodrec/matrix"
)

// Collaborative 是基于用户的协同过滤召回源（User-based CF）。
//
// 核心思想："兴趣相似的用户，喜欢相似的物品"
//
// 算法流程：
//  1. 全量行为记录 → user×product 加权交互矩阵（matrix.Build）
//  2. 目标用户行向量与所有用户行向量算余弦相似度
//  3. 商品得分 = 相似度行与该商品列的点积（相似用户的加权投票）
//  4. 排除目标用户已交互商品，取分数为正的 TopN
//
// 目标用户不在矩阵中（没有任何行为）或矩阵为空时返回空列表，不是错误——
// 这是冷启动的正常信号，由上层回退到热门召回。
type Collaborative struct {
	Store core.EntityStore

	// TopK 通过 Source 接口召回时返回的候选数；<=0 时默认 20。
	TopK int
}

func (r *Collaborative) Name() string {
	return "recall.collaborative"
}

// Recall 实现 Source 接口。
func (r *Collaborative) Recall(ctx context.Context, rctx *core.RecommendContext) ([]*core.Item, error) {
	if r.Store == nil || rctx == nil || rctx.UserID == 0 {
		return nil, nil
	}
	topK := r.TopK
	if topK <= 0 {
		topK = 20
	}
	return r.RecommendForUser(ctx, rctx.UserID, topK)
}

// RecommendForUser 为目标用户计算协同过滤 TopN 候选。
func (r *Collaborative) RecommendForUser(ctx context.Context, userID int64, n int) ([]*core.Item, error) {
	interactions, err := r.Store.AllInteractions(ctx)
	if err != nil {
		return nil, err
	}

	m := matrix.Build(interactions)
	if m.Empty() {
		return nil, nil
	}
	targetIdx, ok := m.UserIndex(userID)
	if !ok {
		return nil, nil
	}

	// 目标用户与每个用户的相似度（含自身，自身列只覆盖已交互商品，
	// 这些商品随后整体被哨兵值排除，不影响结果）
	targetRow := m.Weights[targetIdx]
	sims := make([]float64, len(m.UserIDs))
	for i, row := range m.Weights {
		sims[i] = cosineSimilarity(targetRow, row)
	}

	// 商品得分 = Σ_u sim(target, u) × weight(u, p)
	scores := make([]scoredProduct, len(m.ProductIDs))
	for j, productID := range m.ProductIDs {
		var score float64
		for i := range m.Weights {
			score += sims[i] * m.Weights[i][j]
		}
		if targetRow[j] > 0 {
			score = -1 // 已交互商品，排除
		}
		scores[j] = scoredProduct{productID: productID, score: score}
	}

	return topNItems(scores, n, "collaborative"), nil
}
