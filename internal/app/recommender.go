package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"venuefinder/internal/domain"
)

// Recommender composes interpreter, catalog filter, scoring and selection into
// one request/response cycle. It holds no per-query state: concurrent calls
// share only the immutable knowledge base and the snapshot store, so no
// coordination is needed.
type Recommender struct {
	interp   *Interpreter
	kb       domain.Knowledge
	catalog  domain.CatalogStore
	cache    domain.Cache // optional
	cacheTTL time.Duration
}

func NewRecommender(kb domain.Knowledge, catalog domain.CatalogStore, cache domain.Cache, ttl time.Duration) *Recommender {
	return &Recommender{
		interp:   NewInterpreter(kb),
		kb:       kb,
		catalog:  catalog,
		cache:    cache,
		cacheTTL: ttl,
	}
}

// Recommend runs one query. Zero matches yield an empty result list, never an
// error; the only caller-visible failure is ErrCatalogUnavailable. A panic
// inside a single query is contained here so the process stays serving.
func (r *Recommender) Recommend(ctx context.Context, query string, limit int) (rec domain.Recommendation, err error) {
	defer func() {
		if p := recover(); p != nil {
			log.Error().Interface("panic", p).Str("query", query).Msg("recommend panicked")
			rec, err = domain.Recommendation{}, fmt.Errorf("recommendation failed")
		}
	}()

	query = strings.ToLower(strings.TrimSpace(query))

	key := cacheKey(query, limit)
	if r.cache != nil {
		var cached domain.Recommendation
		if ok, _ := r.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}

	in := r.interp.Interpret(query)
	city, cerr := r.kb.Lookup(in.City)
	if cerr != nil {
		// Closed city set; reaching this means the table and the detector
		// disagree. Fail fast rather than guess.
		return domain.Recommendation{}, cerr
	}

	rec = domain.Recommendation{
		Results:     []domain.ScoredListing{},
		City:        in.City,
		Preferences: in.Prefs,
	}

	diningShare, lodgingShare := splitLimit(limit, in.WantsDining, in.WantsLodging)

	if in.WantsDining {
		ls, ferr := r.catalog.FilterDining(in.City, in.CityNamed, in.Prefs)
		if ferr != nil {
			return domain.Recommendation{}, ferr
		}
		scored := ScoreAll(ls, in.Prefs, city)
		rec.Results = append(rec.Results, Select(scored, diningShare, domain.KindDining)...)
	}
	if in.WantsLodging {
		ls, ferr := r.catalog.FilterLodging(in.City, in.CityNamed, in.Prefs)
		if ferr != nil {
			return domain.Recommendation{}, ferr
		}
		scored := ScoreAll(ls, in.Prefs, city)
		rec.Results = append(rec.Results, Select(scored, lodgingShare, domain.KindLodging)...)
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, key, rec, int(r.cacheTTL.Seconds()))
	}
	return rec, nil
}

// splitLimit gives each active intent its share of the requested count. With
// both intents active each gets the floor half; a kind that later yields
// nothing simply contributes an empty slice.
func splitLimit(limit int, dining, lodging bool) (int, int) {
	switch {
	case dining && lodging:
		return limit / 2, limit / 2
	case dining:
		return limit, 0
	default:
		return 0, limit
	}
}

func cacheKey(query string, limit int) string {
	sum := sha1.Sum([]byte(query))
	return fmt.Sprintf("recs:%s:%d", hex.EncodeToString(sum[:]), limit)
}
