package app_test

import (
	"testing"

	"venuefinder/internal/app"
	"venuefinder/internal/domain"
)

func scored(name string, score float64) domain.ScoredListing {
	return domain.ScoredListing{
		Listing: domain.Listing{Kind: domain.KindDining, Name: name},
		Score:   score,
	}
}

func names(ls []domain.ScoredListing) []string {
	out := make([]string, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.Name)
	}
	return out
}

func TestSelect_DeduplicatesNormalizedNames(t *testing.T) {
	in := []domain.ScoredListing{
		scored("Cafe One", 9),
		scored("  cafe one ", 8), // same name after trim+lowercase
		scored("CAFE ONE", 7),
		scored("Cafe Two", 6),
	}
	got := app.Select(in, 10, domain.KindDining)
	if len(got) != 2 || got[0].Name != "Cafe One" || got[1].Name != "Cafe Two" {
		t.Fatalf("got %v", names(got))
	}
}

func TestSelect_StableTieBreak(t *testing.T) {
	// Equal scores keep catalog order.
	in := []domain.ScoredListing{
		scored("A", 5), scored("B", 5), scored("C", 7), scored("D", 5),
	}
	got := app.Select(in, 4, domain.KindDining)
	want := []string{"C", "A", "B", "D"}
	for i, w := range want {
		if got[i].Name != w {
			t.Fatalf("got %v, want %v", names(got), want)
		}
	}
}

func TestSelect_LimitAndDistinctCount(t *testing.T) {
	in := []domain.ScoredListing{
		scored("A", 3), scored("B", 2), scored("a", 1), scored("C", 1),
	}
	if got := app.Select(in, 2, domain.KindDining); len(got) != 2 {
		t.Fatalf("limit 2: got %d", len(got))
	}
	// 3 distinct names, limit 10 -> 3 items.
	if got := app.Select(in, 10, domain.KindDining); len(got) != 3 {
		t.Fatalf("distinct count: got %d", len(got))
	}
	if got := app.Select(in, 0, domain.KindDining); got != nil {
		t.Fatalf("limit 0: got %v", names(got))
	}
}

func TestSelect_DoesNotMutateInput(t *testing.T) {
	in := []domain.ScoredListing{scored("A", 1), scored("B", 9)}
	_ = app.Select(in, 2, domain.KindDining)
	if in[0].Name != "A" || in[1].Name != "B" {
		t.Fatalf("input reordered: %v", names(in))
	}
}

func TestSelect_LodgingBackfillKeepsNameUniqueness(t *testing.T) {
	in := []domain.ScoredListing{
		scored("Stay One", 9),
		scored("Stay One", 8),
		scored("Stay Two", 7),
	}
	got := app.Select(in, 5, domain.KindLodging)
	if len(got) != 2 {
		t.Fatalf("got %v", names(got))
	}
	seen := map[string]bool{}
	for _, l := range got {
		if seen[l.Name] {
			t.Fatalf("duplicate name in selection: %v", names(got))
		}
		seen[l.Name] = true
	}
}
