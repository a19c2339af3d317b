package utils

import "testing"

func TestMergeLabel(t *testing.T) {
	cases := []struct {
		name     string
		existing Label
		incoming Label
		want     Label
	}{
		{
			"both present",
			Label{Value: "a", Source: "recall"},
			Label{Value: "b", Source: "rank"},
			Label{Value: "a|b", Source: "recall,rank"},
		},
		{
			"empty existing",
			Label{},
			Label{Value: "b", Source: "rank"},
			Label{Value: "b", Source: "rank"},
		},
		{
			"empty incoming",
			Label{Value: "a", Source: "recall"},
			Label{},
			Label{Value: "a", Source: "recall"},
		},
		{
			"existing without source",
			Label{Value: "a"},
			Label{Value: "b", Source: "rank"},
			Label{Value: "a|b", Source: "rank"},
		},
		{
			"incoming without source",
			Label{Value: "a", Source: "recall"},
			Label{Value: "b"},
			Label{Value: "a|b", Source: "recall"},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := MergeLabel(c.existing, c.incoming); got != c.want {
				t.Fatalf("MergeLabel = %+v, want %+v", got, c.want)
			}
		})
	}
}
