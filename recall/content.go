package recall

import (
	"context"
	"strings"

	"github.com/rushteam/prodrec/core"
	"github.com/rushteam/prodrec/model"
)

// Content 是基于内容的召回源（Content-Based Recommendation）。
//
// 核心思想："用户交互过的商品长什么样，就推荐长得像的商品"
//
// 算法流程：
//  1. 每个商品的 name + description + category + tags 拼成特征文档
//  2. 全目录 TF-IDF 向量化（英文停用词、词表上限 100）
//  3. 用户画像向量 = 已交互商品向量的逐元素均值
//  4. 候选得分 = 画像向量与商品向量的余弦相似度
//  5. 排除已交互商品，取分数为正的 TopN
//
// 用户无行为或目录为空时返回空列表，不是错误。
// 已交互商品都不在目录里时画像为零向量，余弦全为 0，同样得到空列表。
type Content struct {
	Store core.EntityStore

	// TopK 通过 Source 接口召回时返回的候选数；<=0 时默认 20。
	TopK int

	// MaxFeatures TF-IDF 词表上限；<=0 时默认 100。
	MaxFeatures int
}

func (r *Content) Name() string {
	return "recall.content"
}

// Recall 实现 Source 接口。
func (r *Content) Recall(ctx context.Context, rctx *core.RecommendContext) ([]*core.Item, error) {
	if r.Store == nil || rctx == nil || rctx.UserID == 0 {
		return nil, nil
	}
	topK := r.TopK
	if topK <= 0 {
		topK = 20
	}
	return r.RecommendForUser(ctx, rctx.UserID, topK)
}

// RecommendForUser 为目标用户计算内容相似 TopN 候选。
func (r *Content) RecommendForUser(ctx context.Context, userID int64, n int) ([]*core.Item, error) {
	interactions, err := r.Store.InteractionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(interactions) == 0 {
		return nil, nil
	}

	products, err := r.Store.AllProducts(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, nil
	}

	// 目录向量化（AllProducts 按 ID 升序，向量行序可复现）
	docs := make([]string, len(products))
	index := make(map[int64]int, len(products))
	for i, p := range products {
		docs[i] = featureDocument(p)
		index[p.ID] = i
	}
	vectorizer := model.NewTFIDFVectorizer(model.WithMaxFeatures(r.MaxFeatures))
	rows := vectorizer.FitTransform(docs)

	// 用户画像 = 已交互商品向量的均值
	interacted := make(map[int64]struct{}, len(interactions))
	var interactedRows []int
	for _, in := range interactions {
		if _, dup := interacted[in.ProductID]; dup {
			continue
		}
		interacted[in.ProductID] = struct{}{}
		if i, ok := index[in.ProductID]; ok {
			interactedRows = append(interactedRows, i)
		}
	}
	if len(interactedRows) == 0 {
		return nil, nil
	}
	profile := meanVector(rows, interactedRows)

	scores := make([]scoredProduct, len(products))
	for i, p := range products {
		score := cosineSimilarity(profile, rows[i])
		if _, ok := interacted[p.ID]; ok {
			score = -1 // 已交互商品，排除
		}
		scores[i] = scoredProduct{productID: p.ID, score: score}
	}

	return topNItems(scores, n, "content"), nil
}

// featureDocument 拼接商品的文本特征。
func featureDocument(p *core.Product) string {
	parts := []string{p.Name, p.Description, p.Category}
	parts = append(parts, p.Tags...)
	return strings.Join(parts, " ")
}

func meanVector(rows [][]float64, picks []int) []float64 {
	if len(picks) == 0 || len(rows) == 0 {
		return nil
	}
	dim := len(rows[picks[0]])
	mean := make([]float64, dim)
	for _, i := range picks {
		for j, x := range rows[i] {
			mean[j] += x
		}
	}
	for j := range mean {
		mean[j] /= float64(len(picks))
	}
	return mean
}
