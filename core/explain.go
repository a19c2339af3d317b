package core

import "context"

// ProductFacts 是解释生成所需的商品事实，推荐分数与排序不依赖它。
type ProductFacts struct {
	Name        string
	Description string
	Category    string
}

// ExplainRequest 是一次解释生成的完整输入：
// 商品事实 + 用户行为摘要 + 候选来源标签（reason）。
type ExplainRequest struct {
	Product ProductFacts
	Summary *BehaviorSummary
	Reason  string
}

// ExplainService 是解释生成后端的领域接口。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（service）实现
//   - 后端允许失败（超时、不可用、响应格式错误）；
//     explain.Generator 在边界处捕获一切失败并回退到确定性模板，
//     失败永远不会越过 Generator 传播，也不影响已经算好的排序
//
// 实现：
//   - service.LLMClient（OpenAI 兼容的 chat-completions 端点）
type ExplainService interface {
	// Generate 生成一段简短的人类可读解释。
	Generate(ctx context.Context, req *ExplainRequest) (string, error)

	// Close 关闭连接。
	Close(ctx context.Context) error
}

// ErrExplainUnavailable 表示解释后端不可用。
var ErrExplainUnavailable = NewDomainError(ModuleExplain, ErrorCodeUnavailable, "explain: backend unavailable")
