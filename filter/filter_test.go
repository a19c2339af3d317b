package filter

import (
	"context"
	"testing"
	"time"

	"github.com/rushteam/prodrec/core"
	"github.com/rushteam/prodrec/store"
)

func priced(id int64, price float64) *core.Item {
	it := core.NewItem(id)
	it.Meta["price"] = price
	return it
}

func TestRule_FiltersByExpression(t *testing.T) {
	rctx := &core.RecommendContext{UserID: 1}
	rule := &Rule{Expr: `item.meta.price > 500.0`}

	cases := []struct {
		name string
		item *core.Item
		want bool
	}{
		{"above threshold", priced(1, 999.9), true},
		{"below threshold", priced(2, 99.9), false},
		{"at threshold", priced(3, 500.0), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := rule.ShouldFilter(context.Background(), rctx, c.item)
			if err != nil {
				t.Fatal(err)
			}
			if got != c.want {
				t.Fatalf("ShouldFilter = %v, want %v", got, c.want)
			}
		})
	}
}

func TestRule_EmptyExprNeverFilters(t *testing.T) {
	rule := &Rule{}
	got, err := rule.ShouldFilter(context.Background(), &core.RecommendContext{UserID: 1}, priced(1, 999.9))
	if err != nil {
		t.Fatal(err)
	}
	if got {
		t.Fatal("empty expression must not filter anything")
	}
}

func TestRule_CategoryExpression(t *testing.T) {
	it := core.NewItem(1)
	it.Meta["category"] = "Food"
	rule := &Rule{Expr: `item.meta.category == "Food"`}
	got, err := rule.ShouldFilter(context.Background(), &core.RecommendContext{UserID: 1}, it)
	if err != nil {
		t.Fatal(err)
	}
	if !got {
		t.Fatal("category expression should match")
	}
}

func TestInteracted(t *testing.T) {
	s := store.NewMemory()
	s.AddProduct(&core.Product{ID: 1, Name: "A"})
	s.AddProduct(&core.Product{ID: 2, Name: "B"})
	s.AddInteraction(&core.Interaction{
		UserID: 1, ProductID: 1, Type: core.InteractionView, Timestamp: time.Now(),
	})

	f := &Interacted{Store: s}
	rctx := &core.RecommendContext{UserID: 1}

	got, err := f.ShouldFilter(context.Background(), rctx, core.NewItem(1))
	if err != nil {
		t.Fatal(err)
	}
	if !got {
		t.Fatal("interacted product 1 should be filtered")
	}

	got, err = f.ShouldFilter(context.Background(), rctx, core.NewItem(2))
	if err != nil {
		t.Fatal(err)
	}
	if got {
		t.Fatal("product 2 was never interacted, should be kept")
	}
}

func TestNode_RemovesMatchedAndLabels(t *testing.T) {
	node := &Node{Filters: []Filter{&Rule{Expr: `item.meta.price > 500.0`}}}

	cheap := priced(1, 10)
	expensive := priced(2, 1000)
	out, err := node.Process(context.Background(), &core.RecommendContext{UserID: 1}, []*core.Item{cheap, expensive})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].ID != 1 {
		t.Fatalf("out = %v, want only item 1", out)
	}
	if lbl := expensive.Labels["filtered"]; lbl.Value != "true" || lbl.Source != "filter.rule" {
		t.Fatalf("filtered label = %+v, want value=true source=filter.rule", lbl)
	}
}

func TestNode_FilterErrorKeepsItem(t *testing.T) {
	// 表达式不返回 bool → 求值失败 → 候选保留
	node := &Node{Filters: []Filter{&Rule{Expr: `item.meta.price`}}}
	it := priced(1, 1000)
	out, err := node.Process(context.Background(), &core.RecommendContext{UserID: 1}, []*core.Item{it})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("out = %v, want item kept on filter error", out)
	}
}
