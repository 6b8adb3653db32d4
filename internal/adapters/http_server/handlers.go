package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"venuefinder/internal/app"
	"venuefinder/internal/domain"
)

const maxLimit = 50

type Handlers struct {
	R            *app.Recommender
	KB           domain.Knowledge
	DefaultLimit int
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/v1/recommendations", h.recommend)
	s.mux.Get("/v1/cities", h.cities)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// ---- POST /v1/recommendations ----

type recommendRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

type resultJSON struct {
	Type           string  `json:"type"` // Restaurant|Hotel
	Name           string  `json:"name"`
	Location       string  `json:"location"`
	City           string  `json:"city"`
	Rating         string  `json:"rating"` // "4.5/5"
	Cost           string  `json:"cost,omitempty"`
	Cuisine        string  `json:"cuisine,omitempty"`
	Price          string  `json:"price,omitempty"`
	Stars          string  `json:"stars,omitempty"`
	BudgetFriendly bool    `json:"budget_friendly"`
	Score          float64 `json:"score"`
}

type recommendResponse struct {
	City        string             `json:"city"`
	Preferences domain.Preferences `json:"preferences"`
	Results     []resultJSON       `json:"results"`
}

func (h *Handlers) recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "body must be JSON with a query field")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid query", "query must not be empty")
		return
	}
	limit := req.Limit
	if limit <= 0 {
		limit = h.DefaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	rec, err := h.R.Recommend(r.Context(), req.Query, limit)
	if err != nil {
		if errors.Is(err, domain.ErrCatalogUnavailable) {
			writeProblem(w, http.StatusServiceUnavailable, "Catalog unavailable", "catalog has not been loaded yet")
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Internal error", "recommendation failed")
		return
	}

	resp := recommendResponse{
		City:        rec.City,
		Preferences: rec.Preferences,
		Results:     make([]resultJSON, 0, len(rec.Results)),
	}
	for _, sl := range rec.Results {
		resp.Results = append(resp.Results, formatResult(sl))
	}
	writeJSON(w, http.StatusOK, resp)
}

func formatResult(sl domain.ScoredListing) resultJSON {
	out := resultJSON{
		Name:           sl.Name,
		Location:       sl.LocationText,
		City:           titleCase(sl.City),
		Rating:         fmt.Sprintf("%g/5", sl.Rating),
		BudgetFriendly: sl.IsBudget,
		Score:          sl.Score,
	}
	switch sl.Kind {
	case domain.KindDining:
		out.Type = "Restaurant"
		out.Cost = fmt.Sprintf("Rs %d for two", sl.Price)
		out.Cuisine = sl.CuisineText
	case domain.KindLodging:
		out.Type = "Hotel"
		out.Price = fmt.Sprintf("Rs %d per night", sl.Price)
		out.Stars = fmt.Sprintf("%d star", sl.StarRating)
	}
	return out
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ---- GET /v1/cities ----

type cityJSON struct {
	ID                 string   `json:"id"`
	Areas              []string `json:"areas"`
	CuisineSpecialties []string `json:"cuisine_specialties"`
	KnownChains        []string `json:"known_chains"`
	BudgetDining       int      `json:"budget_threshold_dining"`
	BudgetLodging      int      `json:"budget_threshold_lodging"`
}

func (h *Handlers) cities(w http.ResponseWriter, r *http.Request) {
	cities := h.KB.Cities()
	out := make([]cityJSON, 0, len(cities))
	for _, c := range cities {
		out = append(out, cityJSON{
			ID:                 c.ID,
			Areas:              c.Areas,
			CuisineSpecialties: c.CuisineSpecialties,
			KnownChains:        c.KnownChains,
			BudgetDining:       c.BudgetDining,
			BudgetLodging:      c.BudgetLodging,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"default": h.KB.DefaultCity(), "cities": out})
}
