package core

import (
	"testing"

	"github.com/rushteam/prodrec/pkg/utils"
)

func TestItemPutLabelMerges(t *testing.T) {
	it := NewItem(1)
	it.PutLabel("recall_source", utils.Label{Value: "collaborative", Source: "recall"})
	it.PutLabel("recall_source", utils.Label{Value: "content", Source: "recall"})

	lbl := it.Labels["recall_source"]
	if lbl.Value != "collaborative|content" {
		t.Fatalf("merged value = %q, want collaborative|content", lbl.Value)
	}
	if lbl.Source != "recall,recall" {
		t.Fatalf("merged source = %q, want recall,recall", lbl.Source)
	}
}

func TestItemSetLabelOverwrites(t *testing.T) {
	it := NewItem(1)
	it.PutLabel(ReasonLabelKey, utils.Label{Value: ReasonContent, Source: "rank"})
	it.SetLabel(ReasonLabelKey, utils.Label{Value: ReasonPopular, Source: "rank"})

	if it.Reason() != ReasonPopular {
		t.Fatalf("reason = %q, want exactly %q (no merge)", it.Reason(), ReasonPopular)
	}
}

func TestItemReasonUnset(t *testing.T) {
	if (&Item{}).Reason() != "" {
		t.Fatal("unset reason should be empty")
	}
}

func TestDomainErrors(t *testing.T) {
	if !IsStoreNotFound(ErrStoreNotFound) {
		t.Fatal("ErrStoreNotFound not recognized")
	}
	if IsStoreNotFound(ErrExplainUnavailable) {
		t.Fatal("explain error must not match store not found")
	}
	if !IsUnavailable(ErrExplainUnavailable) {
		t.Fatal("ErrExplainUnavailable should be unavailable")
	}
	if IsNotFound(nil) {
		t.Fatal("nil error is not a domain error")
	}
}
