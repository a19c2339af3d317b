package core

import "time"

// InteractionType 是用户行为类型。不同行为代表不同强度的兴趣信号。
type InteractionType string

const (
	InteractionView     InteractionType = "view"
	InteractionClick    InteractionType = "click"
	InteractionCart     InteractionType = "cart"
	InteractionWishlist InteractionType = "wishlist"
	InteractionPurchase InteractionType = "purchase"
)

// Weight 返回行为类型的基础权重：view=1 < click=2 < cart=3 < wishlist=4 < purchase=5。
// 未知类型按最弱信号（1）处理。
func (t InteractionType) Weight() float64 {
	switch t {
	case InteractionView:
		return 1
	case InteractionClick:
		return 2
	case InteractionCart:
		return 3
	case InteractionWishlist:
		return 4
	case InteractionPurchase:
		return 5
	default:
		return 1
	}
}

// Product 是商品实体。对推荐引擎而言读取后不可变：
// 所有打分都在一次请求内基于快照完成，不回写商品。
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"` // >= 0
	Tags        []string `json:"tags"`
}

// User 是用户实体。推荐引擎不修改用户。
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Preferences string `json:"preferences"` // 自由文本偏好
}

// Interaction 是一条用户-商品行为记录，由上游行为采集写入，此后不再变更。
// Rating 是可选的显式评分（0-5）；为 nil 表示没有评分。
type Interaction struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	ProductID int64           `json:"product_id"`
	Type      InteractionType `json:"interaction_type"`
	Rating    *float64        `json:"rating,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// EffectiveWeight 返回这条行为的有效权重：
// 基础权重 ×（显式评分/5）；无评分时直接使用基础权重。
func (i *Interaction) EffectiveWeight() float64 {
	w := i.Type.Weight()
	if i.Rating != nil {
		w *= *i.Rating / 5.0
	}
	return w
}

// BehaviorSummary 是用户行为的紧凑摘要，按请求重建、不缓存，
// 主要喂给解释生成（explain）作为上下文。
type BehaviorSummary struct {
	// TotalInteractions 是该用户的全部行为数。
	TotalInteractions int `json:"total_interactions"`

	// TopCategories 是行为覆盖的商品类目中频次最高的至多 3 个，
	// 频次相同时按类目名升序。
	TopCategories []string `json:"categories"`

	// RecentProducts 是最近 5 次行为对应的商品名，按时间倒序；
	// 时间相同时按行为 ID 倒序；商品已不存在的行为被跳过。
	RecentProducts []string `json:"recent_products"`

	// TypeCounts 是全部行为按类型的频次统计（不限于最近 5 次）。
	TypeCounts map[InteractionType]int `json:"interaction_types"`
}

// NewBehaviorSummary 返回一个全零摘要（无行为用户的合法结果，不是错误）。
func NewBehaviorSummary() *BehaviorSummary {
	return &BehaviorSummary{
		TopCategories:  []string{},
		RecentProducts: []string{},
		TypeCounts:     make(map[InteractionType]int),
	}
}

// TopCategory 返回频次最高的类目；无类目时返回空串。
func (s *BehaviorSummary) TopCategory() string {
	if s == nil || len(s.TopCategories) == 0 {
		return ""
	}
	return s.TopCategories[0]
}
