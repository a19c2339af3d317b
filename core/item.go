package core

import "github.com/rushteam/prodrec/pkg/utils"

// 候选来源（reason）标签值。融合逻辑保证四个取值互斥且穷尽：
// 出现在两路召回 → collaborative_and_content；只出现在一路 → 对应单值；
// 冷启动回退 → popular。不存在"默认兜底"取值。
const (
	ReasonCollaborative = "collaborative"
	ReasonContent       = "content"
	ReasonBoth          = "collaborative_and_content"
	ReasonPopular       = "popular"
)

// ReasonLabelKey 是候选商品上 reason 标签的 key。
const ReasonLabelKey = "reason"

// Item 是推荐链路中的统一承载结构：分数、元信息、标签。
// Labels 用于解释与策略驱动；Score 用于排序决策。
type Item struct {
	ID     int64
	Score  float64
	Meta   map[string]any
	Labels map[string]utils.Label
}

func NewItem(id int64) *Item {
	return &Item{
		ID:     id,
		Score:  0,
		Meta:   make(map[string]any),
		Labels: make(map[string]utils.Label),
	}
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (it *Item) PutLabel(key string, lbl utils.Label) {
	if it.Labels == nil {
		it.Labels = make(map[string]utils.Label)
	}
	if old, ok := it.Labels[key]; ok {
		it.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	it.Labels[key] = lbl
}

// SetLabel 覆盖写入 Label，不做 merge。reason 这类互斥标签用它。
func (it *Item) SetLabel(key string, lbl utils.Label) {
	if it.Labels == nil {
		it.Labels = make(map[string]utils.Label)
	}
	it.Labels[key] = lbl
}

// Reason 返回候选的来源标签值；未打标时返回空串。
func (it *Item) Reason() string {
	if it.Labels == nil {
		return ""
	}
	return it.Labels[ReasonLabelKey].Value
}
