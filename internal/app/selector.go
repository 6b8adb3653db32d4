package app

import (
	"sort"
	"strings"

	"venuefinder/internal/domain"
)

// Select orders scored listings by score (descending, stable: ties keep
// catalog order) and takes up to limit entries with distinct normalized
// names. It returns fewer than limit only when the input has fewer distinct
// names.
//
// For lodging a second pass backfills from the remainder under the same
// name-uniqueness rule; location uniqueness is aspirational, never enforced.
func Select(scored []domain.ScoredListing, limit int, kind domain.ListingKind) []domain.ScoredListing {
	if limit <= 0 || len(scored) == 0 {
		return nil
	}

	ordered := make([]domain.ScoredListing, len(scored))
	copy(ordered, scored)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Score > ordered[j].Score })

	selected := make([]domain.ScoredListing, 0, limit)
	seen := make(map[string]struct{}, limit)

	pick := func() {
		for _, sl := range ordered {
			if len(selected) >= limit {
				return
			}
			name := strings.ToLower(strings.TrimSpace(sl.Name))
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			selected = append(selected, sl)
		}
	}

	pick()
	if kind == domain.KindLodging && len(selected) < limit {
		pick()
	}
	return selected
}
