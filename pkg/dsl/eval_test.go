package dsl

import (
	"testing"

	"github.com/rushteam/prodrec/core"
	"github.com/rushteam/prodrec/pkg/utils"
)

func testItem() *core.Item {
	it := core.NewItem(7)
	it.Score = 0.85
	it.Meta["price"] = 599.0
	it.Meta["category"] = "Electronics"
	it.SetLabel(core.ReasonLabelKey, utils.Label{Value: core.ReasonPopular, Source: "rank"})
	return it
}

func testRctx() *core.RecommendContext {
	return &core.RecommendContext{
		UserID: 42,
		Scene:  "homepage",
		Params: map[string]any{"experiment": "b"},
	}
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		expr string
		want bool
	}{
		{"empty expr", "", true},
		{"item id", `item.id == 7`, true},
		{"item score", `item.score > 0.8`, true},
		{"meta price", `item.meta.price > 500.0`, true},
		{"meta price below", `item.meta.price > 600.0`, false},
		{"meta category", `item.meta.category == "Electronics"`, true},
		{"label value", `label.reason == "popular"`, true},
		{"rctx user", `rctx.user_id == 42`, true},
		{"rctx scene", `rctx.scene == "homepage"`, true},
		{"rctx params", `rctx.params.experiment == "b"`, true},
		{"compound", `label.reason == "popular" && item.score < 4.0`, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := NewEval(testItem(), testRctx()).Evaluate(c.expr)
			if err != nil {
				t.Fatal(err)
			}
			if got != c.want {
				t.Fatalf("Evaluate(%q) = %v, want %v", c.expr, got, c.want)
			}
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	ev := NewEval(testItem(), testRctx())
	if _, err := ev.Evaluate(`item.score >`); err == nil {
		t.Fatal("syntax error should fail")
	}
	if _, err := ev.Evaluate(`item.score`); err == nil {
		t.Fatal("non-boolean result should fail")
	}
}

func TestEvaluate_NilInputs(t *testing.T) {
	got, err := NewEval(nil, nil).Evaluate(`true`)
	if err != nil {
		t.Fatal(err)
	}
	if !got {
		t.Fatal("constant true should evaluate with nil item and rctx")
	}
}
