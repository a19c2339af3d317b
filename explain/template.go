package explain

import (
	"fmt"

	"github.com/rushteam/prodrec/core"
)

// fallbackExplanation 按 reason 标签生成确定性模板解释。
// 相同输入永远产出相同文案；未识别的 reason 落到通用模板。
func fallbackExplanation(facts core.ProductFacts, summary *core.BehaviorSummary, reason string) string {
	switch reason {
	case core.ReasonPopular:
		return fmt.Sprintf("This %s is highly rated and popular among our customers. It's a great choice to explore!", facts.Category)

	case core.ReasonCollaborative:
		return fmt.Sprintf("Based on your shopping patterns, users with similar interests loved this %s. We think you'll enjoy it too!", facts.Category)

	case core.ReasonContent:
		if top := summary.TopCategory(); top != "" {
			return fmt.Sprintf("Since you've shown interest in %s, this %s matches your preferences perfectly!", top, facts.Category)
		}
		return fmt.Sprintf("This %s aligns well with your browsing history and interests.", facts.Category)

	case core.ReasonBoth:
		return fmt.Sprintf("This %s is a perfect match! It's popular among users like you and matches your interests in %s.", facts.Name, facts.Category)

	default:
		return fmt.Sprintf("We recommend this %s based on your unique shopping profile and preferences.", facts.Category)
	}
}
