// Package prodrec 是一个商品推荐引擎（Product Recommender）。
//
// 设计要点：
// - 双信号混合：协同过滤（用户行为相似）+ 内容推荐（商品文本相似），按固定权重融合
// - Labels-first: 每个候选商品携带 reason 标签（collaborative / content /
//   collaborative_and_content / popular），支持 explain / 观测 / 策略驱动
// - Pipeline-first: 推荐链路可通过 Node 串联（Rank → Enrich → Filter → ReRank）
// - 冷启动：无任何行为信号时回退到按评分排序的热门商品
package prodrec

import "github.com/rushteam/prodrec/pipeline"

// 轻量 facade：便于用户直接 import "prodrec" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindRecall      = pipeline.KindRecall
	KindFilter      = pipeline.KindFilter
	KindRank        = pipeline.KindRank
	KindReRank      = pipeline.KindReRank
	KindPostProcess = pipeline.KindPostProcess
)
