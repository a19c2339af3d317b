package explain

import (
	"context"
	"errors"
	"testing"

	"github.com/rushteam/prodrec/core"
)

// fakeBackend 是可编程的解释后端。
type fakeBackend struct {
	text string
	err  error
}

func (f *fakeBackend) Generate(_ context.Context, _ *core.ExplainRequest) (string, error) {
	return f.text, f.err
}

func (f *fakeBackend) Close(_ context.Context) error { return nil }

func electronicsFacts() core.ProductFacts {
	return core.ProductFacts{Name: "Wireless Headphones", Category: "Electronics"}
}

func TestExplain_TemplateWithoutBackend(t *testing.T) {
	summary := core.NewBehaviorSummary()
	summary.TopCategories = []string{"Sports"}

	cases := []struct {
		reason string
		want   string
	}{
		{
			core.ReasonPopular,
			"This Electronics is highly rated and popular among our customers. It's a great choice to explore!",
		},
		{
			core.ReasonCollaborative,
			"Based on your shopping patterns, users with similar interests loved this Electronics. We think you'll enjoy it too!",
		},
		{
			core.ReasonContent,
			"Since you've shown interest in Sports, this Electronics matches your preferences perfectly!",
		},
		{
			core.ReasonBoth,
			"This Wireless Headphones is a perfect match! It's popular among users like you and matches your interests in Electronics.",
		},
		{
			"something-else",
			"We recommend this Electronics based on your unique shopping profile and preferences.",
		},
	}

	g := &Generator{}
	for _, c := range cases {
		t.Run(c.reason, func(t *testing.T) {
			got := g.Explain(context.Background(), electronicsFacts(), summary, c.reason)
			if got != c.want {
				t.Fatalf("Explain = %q, want %q", got, c.want)
			}
			// 确定性：重复调用产出相同文案
			if again := g.Explain(context.Background(), electronicsFacts(), summary, c.reason); again != got {
				t.Fatal("template explanation not deterministic")
			}
		})
	}
}

func TestExplain_ContentWithoutTopCategory(t *testing.T) {
	g := &Generator{}
	got := g.Explain(context.Background(), electronicsFacts(), core.NewBehaviorSummary(), core.ReasonContent)
	want := "This Electronics aligns well with your browsing history and interests."
	if got != want {
		t.Fatalf("Explain = %q, want %q", got, want)
	}
}

func TestExplain_BackendSuccess(t *testing.T) {
	g := &Generator{Backend: &fakeBackend{text: "  Great pick for music lovers.  "}}
	got := g.Explain(context.Background(), electronicsFacts(), core.NewBehaviorSummary(), core.ReasonPopular)
	if got != "Great pick for music lovers." {
		t.Fatalf("Explain = %q, want trimmed backend text", got)
	}
}

func TestExplain_BackendFailureFallsBackToTemplate(t *testing.T) {
	cases := []struct {
		name    string
		backend core.ExplainService
	}{
		{"error", &fakeBackend{err: errors.New("timeout")}},
		{"blank response", &fakeBackend{text: "   "}},
	}
	want := "This Electronics is highly rated and popular among our customers. It's a great choice to explore!"
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := &Generator{Backend: c.backend}
			got := g.Explain(context.Background(), electronicsFacts(), core.NewBehaviorSummary(), core.ReasonPopular)
			if got != want {
				t.Fatalf("Explain = %q, want template fallback %q", got, want)
			}
		})
	}
}

func TestExplain_NilGenerator(t *testing.T) {
	var g *Generator
	got := g.Explain(context.Background(), electronicsFacts(), core.NewBehaviorSummary(), core.ReasonPopular)
	if got == "" {
		t.Fatal("nil Generator should still produce a template explanation")
	}
}
