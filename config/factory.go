// Package config 根据 YAML 配置组装推荐 Pipeline。
//
// 存储等运行时依赖无法放进配置文件，由 Deps 显式注入；
// Factory 返回的 NodeFactory 交给 pipeline.Config.BuildPipeline 使用。
package config

import (
	"context"

	"github.com/rushteam/prodrec/core"
	"github.com/rushteam/prodrec/feature"
	"github.com/rushteam/prodrec/filter"
	"github.com/rushteam/prodrec/pipeline"
	"github.com/rushteam/prodrec/pkg/conv"
	"github.com/rushteam/prodrec/rank"
	"github.com/rushteam/prodrec/recall"
	"github.com/rushteam/prodrec/rerank"
)

// Deps 是构建 Node 所需的运行时依赖。
type Deps struct {
	// Entities 实体存储，rank.hybrid / feature.enrich / filter.interacted 依赖。
	Entities core.EntityStore

	// KV 可选的预计算缓存（热门商品 zset）。
	KV core.KeyValueStore
}

// NewFactory 返回注册了全部内置 Node 的工厂。
//
// 支持的 Node 类型与配置项：
//   - rank.hybrid:      n、collaborative_weight、content_weight
//   - feature.enrich:   无
//   - filter.interacted: 无
//   - filter.rule:      expr（CEL 表达式）
//   - rerank.diversity: label_key
//   - rerank.topn:      n
func NewFactory(deps Deps) *pipeline.NodeFactory {
	f := pipeline.NewNodeFactory()

	f.Register("rank.hybrid", func(cfg map[string]any) (pipeline.Node, error) {
		hybrid := rank.NewHybrid(deps.Entities, deps.KV)
		if w, ok := conv.ToFloat64(cfg["collaborative_weight"]); ok {
			hybrid.CollaborativeWeight = w
		}
		if w, ok := conv.ToFloat64(cfg["content_weight"]); ok {
			hybrid.ContentWeight = w
		}
		return &rank.HybridNode{
			Hybrid: hybrid,
			N:      int(conv.ConfigGetInt64(cfg, "n", 10)),
		}, nil
	})

	f.Register("feature.enrich", func(_ map[string]any) (pipeline.Node, error) {
		return &feature.EnrichNode{Store: deps.Entities}, nil
	})

	f.Register("filter.interacted", func(_ map[string]any) (pipeline.Node, error) {
		return &filter.Node{Filters: []filter.Filter{
			&filter.Interacted{Store: deps.Entities},
		}}, nil
	})

	f.Register("filter.rule", func(cfg map[string]any) (pipeline.Node, error) {
		return &filter.Node{Filters: []filter.Filter{
			&filter.Rule{Expr: conv.ConfigGet[string](cfg, "expr", "")},
		}}, nil
	})

	f.Register("rerank.diversity", func(cfg map[string]any) (pipeline.Node, error) {
		return &rerank.Diversity{
			LabelKey: conv.ConfigGet[string](cfg, "label_key", ""),
		}, nil
	})

	f.Register("rerank.topn", func(cfg map[string]any) (pipeline.Node, error) {
		return &rerank.TopNNode{
			N: int(conv.ConfigGetInt64(cfg, "n", 0)),
		}, nil
	})

	// recall.popular 单独建链时可用（例如专门的热门页）
	f.Register("recall.popular", func(cfg map[string]any) (pipeline.Node, error) {
		return &popularNode{source: &recall.Popular{
			Store: deps.Entities,
			KV:    deps.KV,
			Key:   conv.ConfigGet[string](cfg, "key", ""),
			TopK:  int(conv.ConfigGetInt64(cfg, "n", 0)),
		}}, nil
	})

	return f
}

// popularNode 把 recall.Popular 适配成 Pipeline Node。
type popularNode struct {
	source *recall.Popular
}

func (n *popularNode) Name() string        { return n.source.Name() }
func (n *popularNode) Kind() pipeline.Kind { return pipeline.KindRecall }

func (n *popularNode) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	return n.source.Recall(ctx, rctx)
}
