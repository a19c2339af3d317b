package rerank

import (
	"context"
	"testing"

	"github.com/rushteam/prodrec/core"
	"github.com/rushteam/prodrec/pkg/utils"
)

func categorized(id int64, category string) *core.Item {
	it := core.NewItem(id)
	if category != "" {
		it.SetLabel("category", utils.Label{Value: category, Source: "feature"})
	}
	return it
}

func TestTopNNode(t *testing.T) {
	items := []*core.Item{core.NewItem(1), core.NewItem(2), core.NewItem(3)}

	cases := []struct {
		name string
		n    int
		want int
	}{
		{"truncate", 2, 2},
		{"larger than input", 10, 3},
		{"zero keeps all", 0, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := (&TopNNode{N: c.n}).Process(context.Background(), nil, items)
			if err != nil {
				t.Fatal(err)
			}
			if len(out) != c.want {
				t.Fatalf("len = %d, want %d", len(out), c.want)
			}
		})
	}
}

func TestDiversity_KeepsFirstPerCategory(t *testing.T) {
	items := []*core.Item{
		categorized(1, "Electronics"),
		categorized(2, "Electronics"),
		categorized(3, "Sports"),
		categorized(4, "Electronics"),
		categorized(5, "Food"),
	}
	out, err := (&Diversity{}).Process(context.Background(), nil, items)
	if err != nil {
		t.Fatal(err)
	}
	wantOrder := []int64{1, 3, 5}
	if len(out) != len(wantOrder) {
		t.Fatalf("len = %d, want %d", len(out), len(wantOrder))
	}
	for i, it := range out {
		if it.ID != wantOrder[i] {
			t.Fatalf("out[%d] = %d, want %v", i, it.ID, wantOrder)
		}
	}
}

func TestDiversity_FallsBackToMeta(t *testing.T) {
	a := core.NewItem(1)
	a.Meta["category"] = "Books"
	b := core.NewItem(2)
	b.Meta["category"] = "Books"

	out, err := (&Diversity{}).Process(context.Background(), nil, []*core.Item{a, b})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].ID != 1 {
		t.Fatalf("out = %v, want only item 1", out)
	}
}

func TestDiversity_KeepsUncategorized(t *testing.T) {
	items := []*core.Item{
		categorized(1, ""),
		categorized(2, ""),
		categorized(3, "Food"),
	}
	out, err := (&Diversity{}).Process(context.Background(), nil, items)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3 (uncategorized items always kept)", len(out))
	}
}
