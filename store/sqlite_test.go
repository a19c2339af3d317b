package store

import (
	"context"
	"testing"
	"time"

	"github.com/rushteam/prodrec/core"
)

func openTestDB(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLite_RoundTrip(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()

	productID, err := s.CreateProduct(ctx, &core.Product{
		Name: "Headphones", Description: "bluetooth headset",
		Category: "Electronics", Price: 199.9, Rating: 4.5,
		Tags: []string{"audio", "wireless"},
	})
	if err != nil {
		t.Fatal(err)
	}
	userID, err := s.CreateUser(ctx, &core.User{Username: "alice", Preferences: "electronics"})
	if err != nil {
		t.Fatal(err)
	}

	rating := 4.0
	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	if _, err := s.CreateInteraction(ctx, &core.Interaction{
		UserID: userID, ProductID: productID,
		Type: core.InteractionPurchase, Rating: &rating, Timestamp: ts,
	}); err != nil {
		t.Fatal(err)
	}

	p, err := s.ProductByID(ctx, productID)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Headphones" || p.Category != "Electronics" {
		t.Fatalf("product = %+v", p)
	}
	if len(p.Tags) != 2 || p.Tags[0] != "audio" {
		t.Fatalf("tags = %v, want [audio wireless]", p.Tags)
	}

	u, err := s.UserByID(ctx, userID)
	if err != nil {
		t.Fatal(err)
	}
	if u.Username != "alice" {
		t.Fatalf("user = %+v", u)
	}

	mine, err := s.InteractionsByUser(ctx, userID)
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 1 {
		t.Fatalf("interactions = %d, want 1", len(mine))
	}
	in := mine[0]
	if in.Type != core.InteractionPurchase || in.Rating == nil || *in.Rating != 4.0 {
		t.Fatalf("interaction = %+v", in)
	}
	if !in.Timestamp.Equal(ts) {
		t.Fatalf("timestamp = %v, want %v", in.Timestamp, ts)
	}
}

func TestSQLite_NullRating(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()
	if _, err := s.CreateInteraction(ctx, &core.Interaction{
		UserID: 1, ProductID: 1, Type: core.InteractionView, Timestamp: time.Now(),
	}); err != nil {
		t.Fatal(err)
	}
	all, err := s.AllInteractions(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || all[0].Rating != nil {
		t.Fatalf("interactions = %+v, want single row with nil rating", all)
	}
}

func TestSQLite_OrderingContracts(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()
	for _, p := range []*core.Product{
		{Name: "A", Rating: 4.5},
		{Name: "B", Rating: 4.9},
		{Name: "C", Rating: 4.5},
	} {
		if _, err := s.CreateProduct(ctx, p); err != nil {
			t.Fatal(err)
		}
	}

	all, err := s.AllProducts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(all); i++ {
		if all[i].ID < all[i-1].ID {
			t.Fatal("AllProducts not ordered by ID ascending")
		}
	}

	top, err := s.TopRatedProducts(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	// B(4.9) 最前；4.5 并列按 ID 升序取 A
	if len(top) != 2 || top[0].Name != "B" || top[1].Name != "A" {
		t.Fatalf("TopRatedProducts = %v, want [B A]", top)
	}
}

func TestSQLite_NotFound(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()
	if _, err := s.ProductByID(ctx, 42); !core.IsStoreNotFound(err) {
		t.Fatalf("err = %v, want store not found", err)
	}
	if _, err := s.UserByID(ctx, 42); !core.IsStoreNotFound(err) {
		t.Fatalf("err = %v, want store not found", err)
	}
}
