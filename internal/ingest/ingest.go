// Package ingest loads the raw dining and lodging datasets, cleans them, and
// derives the per-listing city and budget flag. It runs once at startup (and
// again on refresh); the engine only ever sees its finished listings.
package ingest

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"venuefinder/internal/adapters/observability"
	"venuefinder/internal/domain"
)

type Loader struct {
	kb domain.Knowledge
}

func NewLoader(kb domain.Knowledge) *Loader { return &Loader{kb: kb} }

// Load reads both datasets in parallel. Either path may be empty, yielding an
// empty collection for that kind.
func (ld *Loader) Load(ctx context.Context, diningPath, lodgingPath string) (dining, lodging []domain.Listing, err error) {
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		if diningPath == "" {
			return nil
		}
		rows, rerr := readFile(diningPath)
		if rerr != nil {
			return rerr
		}
		dining = ld.MapDining(rows)
		return nil
	})
	g.Go(func() error {
		if lodgingPath == "" {
			return nil
		}
		rows, rerr := readFile(lodgingPath)
		if rerr != nil {
			return rerr
		}
		lodging = ld.MapLodging(rows)
		return nil
	})
	if err = g.Wait(); err != nil {
		return nil, nil, err
	}
	log.Info().Int("dining", len(dining)).Int("lodging", len(lodging)).Msg("datasets loaded")
	return dining, lodging, nil
}

// LoadReaders is Load for already-open streams; used by tests and anywhere the
// datasets are not files on disk.
func (ld *Loader) LoadReaders(dining, lodging io.Reader) ([]domain.Listing, []domain.Listing, error) {
	var dls, lls []domain.Listing
	if dining != nil {
		rows, err := readRows(dining)
		if err != nil {
			return nil, nil, err
		}
		dls = ld.MapDining(rows)
	}
	if lodging != nil {
		rows, err := readRows(lodging)
		if err != nil {
			return nil, nil, err
		}
		lls = ld.MapLodging(rows)
	}
	return dls, lls, nil
}

func (ld *Loader) MapDining(rows []row) []domain.Listing {
	out := make([]domain.Listing, 0, len(rows))
	for _, r := range rows {
		name := r.field(diningAliases, "name")
		cost := extractCost(r.field(diningAliases, "cost"))
		if name == "" || cost <= 0 {
			observability.ObserveIngest("dining", "dropped")
			continue
		}
		location := r.field(diningAliases, "location")
		cityText := strings.ToLower(strings.Join([]string{
			location,
			r.field(diningAliases, "address"),
			r.field(diningAliases, "city"),
		}, " "))
		city := ld.detectCity(cityText)
		profile, err := ld.kb.Lookup(city)
		if err != nil {
			observability.ObserveIngest("dining", "dropped")
			continue
		}
		out = append(out, domain.Listing{
			Kind:         domain.KindDining,
			Name:         name,
			LocationText: location,
			City:         city,
			Rating:       extractRating(r.field(diningAliases, "rating")),
			Price:        cost,
			IsBudget:     cost <= profile.BudgetDining,
			CuisineText:  r.field(diningAliases, "cuisines"),
			Votes:        extractInt(r.field(diningAliases, "votes")),
		})
		observability.ObserveIngest("dining", "ok")
	}
	return out
}

func (ld *Loader) MapLodging(rows []row) []domain.Listing {
	out := make([]domain.Listing, 0, len(rows))
	for _, r := range rows {
		name := r.field(lodgingAliases, "name")
		price := extractCost(r.field(lodgingAliases, "price"))
		if name == "" || price <= 0 {
			observability.ObserveIngest("lodging", "dropped")
			continue
		}
		location := r.field(lodgingAliases, "location")
		city := ld.detectCity(strings.ToLower(location))
		profile, err := ld.kb.Lookup(city)
		if err != nil {
			observability.ObserveIngest("lodging", "dropped")
			continue
		}
		stars := extractInt(r.field(lodgingAliases, "stars"))
		if stars <= 0 {
			stars = 3
		}
		out = append(out, domain.Listing{
			Kind:         domain.KindLodging,
			Name:         name,
			LocationText: location,
			City:         city,
			Rating:       extractRating(r.field(lodgingAliases, "rating")),
			Price:        price,
			IsBudget:     price <= profile.BudgetLodging,
			StarRating:   stars,
		})
		observability.ObserveIngest("lodging", "ok")
	}
	return out
}

// detectCity resolves a row's city from its location text using the same
// first-match walk the query interpreter uses, falling back to the default.
func (ld *Loader) detectCity(text string) string {
	for _, c := range ld.kb.Cities() {
		if strings.Contains(text, c.ID) {
			return c.ID
		}
		for _, area := range c.Areas {
			if strings.Contains(text, area) {
				return c.ID
			}
		}
	}
	return ld.kb.DefaultCity()
}
