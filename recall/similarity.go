package recall

import (
	"math"
	"sort"

	"github.com/rushteam/prodrec/core"
	"github.com/rushteam/prodrec/pkg/utils"
)

// cosineSimilarity 计算两个向量的余弦相似度。
// 任一向量为全零时定义为 0（不是 NaN、不报错）：
// 零向量代表"没有信号"，与任何向量都不相似。
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// scoredProduct 是打分中间结果；score 为 -1 的哨兵值表示
// "用户已交互，必须排除"，绝不会进入输出。
type scoredProduct struct {
	productID int64
	score     float64
}

// topNItems 取分数严格为正的前 n 个候选，封装成 Item。
// 分数降序，分数相同按商品 ID 升序，保证排序可复现。
func topNItems(scores []scoredProduct, n int, source string) []*core.Item {
	positive := make([]scoredProduct, 0, len(scores))
	for _, s := range scores {
		if s.score > 0 {
			positive = append(positive, s)
		}
	}
	sort.Slice(positive, func(i, j int) bool {
		if positive[i].score != positive[j].score {
			return positive[i].score > positive[j].score
		}
		return positive[i].productID < positive[j].productID
	})
	if n > 0 && len(positive) > n {
		positive = positive[:n]
	}

	out := make([]*core.Item, 0, len(positive))
	for _, s := range positive {
		it := core.NewItem(s.productID)
		it.Score = s.score
		it.PutLabel("recall_source", utils.Label{Value: source, Source: "recall"})
		out = append(out, it)
	}
	return out
}
