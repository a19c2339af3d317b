// Package behavior 从行为记录提取用户行为摘要，为解释生成提供上下文。
package behavior

import (
	"context"
	"sort"

	"github.com/rushteam/prodrec/core"
)

// Summarizer 按请求重建用户行为摘要，不缓存。
// 摘要的所有字段都是确定性的：相同的行为集合产出相同的摘要。
type Summarizer struct {
	Store core.EntityStore
}

// Summarize 返回用户的行为摘要。
// 无行为用户得到全零摘要，不是错误；商品已被下架/删除的行为
// 在类目与最近商品统计中被跳过，但仍计入总数与类型统计。
func (s *Summarizer) Summarize(ctx context.Context, userID int64) (*core.BehaviorSummary, error) {
	summary := core.NewBehaviorSummary()
	if s.Store == nil {
		return summary, nil
	}

	interactions, err := s.Store.InteractionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(interactions) == 0 {
		return summary, nil
	}

	summary.TotalInteractions = len(interactions)
	for _, in := range interactions {
		summary.TypeCounts[in.Type]++
	}

	products := s.resolveProducts(ctx, interactions)

	summary.TopCategories = topCategories(interactions, products, 3)
	summary.RecentProducts = recentProductNames(interactions, products, 5)
	return summary, nil
}

// resolveProducts 解析行为涉及的商品；不存在的商品直接缺席。
func (s *Summarizer) resolveProducts(ctx context.Context, interactions []*core.Interaction) map[int64]*core.Product {
	products := make(map[int64]*core.Product)
	for _, in := range interactions {
		if _, ok := products[in.ProductID]; ok {
			continue
		}
		p, err := s.Store.ProductByID(ctx, in.ProductID)
		if err != nil {
			continue
		}
		products[in.ProductID] = p
	}
	return products
}

// topCategories 统计每条行为对应商品的类目频次，
// 取频次最高的至多 limit 个；频次相同按类目名升序。
func topCategories(interactions []*core.Interaction, products map[int64]*core.Product, limit int) []string {
	counts := make(map[string]int)
	for _, in := range interactions {
		p, ok := products[in.ProductID]
		if !ok || p.Category == "" {
			continue
		}
		counts[p.Category]++
	}

	categories := make([]string, 0, len(counts))
	for c := range counts {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		if counts[categories[i]] != counts[categories[j]] {
			return counts[categories[i]] > counts[categories[j]]
		}
		return categories[i] < categories[j]
	})
	if len(categories) > limit {
		categories = categories[:limit]
	}
	return categories
}

// recentProductNames 取时间最近的至多 limit 条行为对应的商品名。
// 时间降序，时间相同按行为 ID 降序；商品无法解析的行为被跳过。
func recentProductNames(interactions []*core.Interaction, products map[int64]*core.Product, limit int) []string {
	sorted := make([]*core.Interaction, len(interactions))
	copy(sorted, interactions)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].Timestamp.Equal(sorted[j].Timestamp) {
			return sorted[i].Timestamp.After(sorted[j].Timestamp)
		}
		return sorted[i].ID > sorted[j].ID
	})

	names := make([]string, 0, limit)
	for _, in := range sorted {
		if len(names) == limit {
			break
		}
		p, ok := products[in.ProductID]
		if !ok {
			continue
		}
		names = append(names, p.Name)
	}
	return names
}
