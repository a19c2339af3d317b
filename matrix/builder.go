// Package matrix 把原始行为记录构建成稠密的 user×product 加权交互矩阵，
// 是协同过滤的输入。矩阵按请求从行为快照重建，不持久化、不增量更新。
package matrix

import (
	"sort"

	"github.com/rushteam/prodrec/core"
)

// Matrix 是稠密的 user×product 交互矩阵。
//
// 确定性保证：UserIDs / ProductIDs 一律按 ID 升序构建索引，
// 相同的行为集合在任何一次运行中都产出相同的索引顺序与矩阵内容。
// （从无序集合取序会破坏可复现性，这里显式排序。）
type Matrix struct {
	// Weights[i][j] 是第 i 个用户对第 j 个商品累计的加权交互强度。
	Weights [][]float64

	// UserIDs 是矩阵行对应的用户 ID，升序。
	UserIDs []int64

	// ProductIDs 是矩阵列对应的商品 ID，升序。
	ProductIDs []int64

	userIndex    map[int64]int
	productIndex map[int64]int
}

// Build 从行为记录构建交互矩阵。
//
// 单条行为的有效权重 = 行为类型基础权重 ×（显式评分/5，若有评分）。
// 同一 (user, product) 的多条行为在同一格子上累加：
// 重复互动是更强的信号，累加是有意为之，不是覆盖。
func Build(interactions []*core.Interaction) *Matrix {
	m := &Matrix{
		userIndex:    make(map[int64]int),
		productIndex: make(map[int64]int),
	}
	if len(interactions) == 0 {
		return m
	}

	userSet := make(map[int64]struct{})
	productSet := make(map[int64]struct{})
	for _, in := range interactions {
		userSet[in.UserID] = struct{}{}
		productSet[in.ProductID] = struct{}{}
	}

	m.UserIDs = sortedIDs(userSet)
	m.ProductIDs = sortedIDs(productSet)
	for i, id := range m.UserIDs {
		m.userIndex[id] = i
	}
	for j, id := range m.ProductIDs {
		m.productIndex[id] = j
	}

	m.Weights = make([][]float64, len(m.UserIDs))
	for i := range m.Weights {
		m.Weights[i] = make([]float64, len(m.ProductIDs))
	}
	for _, in := range interactions {
		i := m.userIndex[in.UserID]
		j := m.productIndex[in.ProductID]
		m.Weights[i][j] += in.EffectiveWeight()
	}

	return m
}

// Empty 报告矩阵是否没有任何行为数据。
func (m *Matrix) Empty() bool {
	return len(m.Weights) == 0
}

// UserIndex 返回用户在矩阵中的行号。
// 用户没有任何行为记录时不在矩阵中，返回 (0, false)。
func (m *Matrix) UserIndex(userID int64) (int, bool) {
	i, ok := m.userIndex[userID]
	return i, ok
}

// ProductIndex 返回商品在矩阵中的列号。
func (m *Matrix) ProductIndex(productID int64) (int, bool) {
	j, ok := m.productIndex[productID]
	return j, ok
}

// UserRow 返回用户的行向量（对各商品的累计权重）。
func (m *Matrix) UserRow(userID int64) ([]float64, bool) {
	i, ok := m.userIndex[userID]
	if !ok {
		return nil, false
	}
	return m.Weights[i], true
}

func sortedIDs(set map[int64]struct{}) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
