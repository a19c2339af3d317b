package recall

import (
	"context"
	"testing"

	"github.com/rushteam/prodrec/core"
	"github.com/rushteam/prodrec/store"
)

func seedContentStore(t *testing.T) *store.Memory {
	t.Helper()
	s := store.NewMemory()
	s.AddProduct(&core.Product{
		ID: 1, Name: "Wireless Headphones",
		Description: "bluetooth audio music headset",
		Category:    "Electronics", Tags: []string{"audio", "wireless"},
	})
	s.AddProduct(&core.Product{
		ID: 2, Name: "Bluetooth Speaker",
		Description: "wireless audio music loudspeaker",
		Category:    "Electronics", Tags: []string{"audio", "wireless"},
	})
	s.AddProduct(&core.Product{
		ID: 3, Name: "Garden Shovel",
		Description: "digging soil gardening tool",
		Category:    "Garden", Tags: []string{"gardening"},
	})
	s.AddUser(&core.User{ID: 1, Username: "alice"})
	return s
}

func TestContent_RecommendsSimilarProducts(t *testing.T) {
	s := seedContentStore(t)
	addInteraction(s, 1, 1, core.InteractionView)

	eng := &Content{Store: s}
	items, err := eng.RecommendForUser(context.Background(), 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) == 0 {
		t.Fatal("expected content candidates, got none")
	}
	// 已交互的 P1 必须被排除
	for _, it := range items {
		if it.ID == 1 {
			t.Fatal("already interacted product 1 leaked into result")
		}
	}
	// 文本相近的 P2 应排在 P3 之前（若 P3 能拿到正分）
	if items[0].ID != 2 {
		t.Fatalf("top item = %d, want 2 (most similar text)", items[0].ID)
	}
	if items[0].Score <= 0 {
		t.Fatalf("score = %v, want strictly positive", items[0].Score)
	}
	if v := items[0].Labels["recall_source"].Value; v != "content" {
		t.Fatalf("recall_source = %q, want content", v)
	}
}

func TestContent_NoHistory(t *testing.T) {
	s := seedContentStore(t)
	eng := &Content{Store: s}
	items, err := eng.RecommendForUser(context.Background(), 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Fatalf("items = %v, want empty for a user without history", items)
	}
}

func TestContent_EmptyCatalog(t *testing.T) {
	s := store.NewMemory()
	s.AddUser(&core.User{ID: 1, Username: "alice"})
	addInteraction(s, 1, 99, core.InteractionView)

	eng := &Content{Store: s}
	items, err := eng.RecommendForUser(context.Background(), 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Fatalf("items = %v, want empty for an empty catalog", items)
	}
}

func TestContent_InteractedProductsNotInCatalog(t *testing.T) {
	s := seedContentStore(t)
	// 用户只交互过已下架的商品 → 画像无从谈起，返回空
	addInteraction(s, 1, 99, core.InteractionPurchase)

	eng := &Content{Store: s}
	items, err := eng.RecommendForUser(context.Background(), 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Fatalf("items = %v, want empty when profile has no resolvable products", items)
	}
}

func TestContent_Truncation(t *testing.T) {
	s := seedContentStore(t)
	addInteraction(s, 1, 1, core.InteractionView)

	eng := &Content{Store: s}
	items, err := eng.RecommendForUser(context.Background(), 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) > 1 {
		t.Fatalf("len = %d, want at most 1", len(items))
	}
}
