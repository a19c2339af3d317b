package feature

import (
	"context"
	"testing"

	"github.com/rushteam/prodrec/core"
	"github.com/rushteam/prodrec/store"
)

func TestEnrichNode(t *testing.T) {
	s := store.NewMemory()
	s.AddProduct(&core.Product{
		ID: 1, Name: "Headphones", Description: "bluetooth headset",
		Category: "Electronics", Price: 199.9, Rating: 4.5, Tags: []string{"audio"},
	})

	items := []*core.Item{core.NewItem(1)}
	out, err := (&EnrichNode{Store: s}).Process(context.Background(), nil, items)
	if err != nil {
		t.Fatal(err)
	}

	it := out[0]
	if it.Meta["name"] != "Headphones" {
		t.Fatalf("meta.name = %v, want Headphones", it.Meta["name"])
	}
	if it.Meta["category"] != "Electronics" {
		t.Fatalf("meta.category = %v, want Electronics", it.Meta["category"])
	}
	if it.Meta["price"] != 199.9 {
		t.Fatalf("meta.price = %v, want 199.9", it.Meta["price"])
	}
	if lbl := it.Labels["category"]; lbl.Value != "Electronics" || lbl.Source != "feature" {
		t.Fatalf("category label = %+v", lbl)
	}
}

func TestEnrichNode_MissingProductPassesThrough(t *testing.T) {
	s := store.NewMemory()
	items := []*core.Item{core.NewItem(42)}
	out, err := (&EnrichNode{Store: s}).Process(context.Background(), nil, items)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].ID != 42 {
		t.Fatalf("out = %v, want missing product passed through", out)
	}
	if len(out[0].Meta) != 0 {
		t.Fatalf("meta = %v, want empty for a missing product", out[0].Meta)
	}
}
