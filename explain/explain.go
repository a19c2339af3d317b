// Package explain 为排好序的候选生成人类可读的推荐理由。
//
// 失败策略是 fail-closed-to-template：后端（LLM）超时、不可用或响应
// 不合法时，一律回退到按 reason 标签键控的确定性模板。错误绝不越过
// 本包边界传播，也绝不影响已经算好的排序。
package explain

import (
	"context"
	"strings"
	"time"

	"github.com/rushteam/prodrec/core"
)

// DefaultTimeout 是后端调用的默认超时。
const DefaultTimeout = 10 * time.Second

// Generator 是解释生成入口。Backend 为 nil 时始终使用模板，
// 便于在测试和无外部依赖的部署中运行。
//
// Generator 是显式注入的能力对象：进程启动时构建一次，
// 核心代码不引用任何全局客户端状态。
type Generator struct {
	Backend core.ExplainService

	// Timeout 后端调用超时；<=0 时使用 DefaultTimeout。
	Timeout time.Duration
}

// Explain 返回一段简短解释。任何后端失败都落到模板，本方法永不返回错误。
func (g *Generator) Explain(ctx context.Context, facts core.ProductFacts, summary *core.BehaviorSummary, reason string) string {
	if g == nil || g.Backend == nil {
		return fallbackExplanation(facts, summary, reason)
	}

	timeout := g.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text, err := g.Backend.Generate(ctx, &core.ExplainRequest{
		Product: facts,
		Summary: summary,
		Reason:  reason,
	})
	if err != nil || strings.TrimSpace(text) == "" {
		return fallbackExplanation(facts, summary, reason)
	}
	return strings.TrimSpace(text)
}
