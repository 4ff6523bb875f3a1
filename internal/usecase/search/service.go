// Package search runs the query interpretation pipeline: layout correction,
// normalization, quantity extraction, index retrieval, and category-purity
// re-ranking.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/lavkatech/suggest/internal/domain"
	"github.com/lavkatech/suggest/internal/domain/query"
	"github.com/lavkatech/suggest/internal/domain/query/layout"
	"github.com/lavkatech/suggest/internal/domain/query/normalize"
	"github.com/lavkatech/suggest/internal/domain/query/numeric"
	"github.com/lavkatech/suggest/internal/domain/search/candidate"
	"github.com/lavkatech/suggest/internal/metrics"
)

// Default pipeline tuning.
const (
	DefaultOverfetchMultiplier = 5
	DefaultPurityWindow        = 10
	DefaultPurityPenalty       = 0.3
)

// Response carries the ranked results plus interpretation diagnostics.
type Response struct {
	Query            string
	LayoutFixedQuery string
	NormalizedQuery  string
	Filter           *numeric.Filter
	Results          []candidate.Candidate
}

// Service handles prefix search requests.
type Service struct {
	repo      Repository
	corrector *layout.Corrector

	overfetch     int
	purityWindow  int
	purityPenalty float64
}

// New creates a search service with default tuning.
func New(repo Repository) *Service {
	return &Service{
		repo:          repo,
		corrector:     layout.New(),
		overfetch:     DefaultOverfetchMultiplier,
		purityWindow:  DefaultPurityWindow,
		purityPenalty: DefaultPurityPenalty,
	}
}

// WithTuning overrides pipeline tuning. Non-positive values keep the defaults.
func (s *Service) WithTuning(overfetch, purityWindow int, purityPenalty float64) *Service {
	if overfetch > 0 {
		s.overfetch = overfetch
	}
	if purityWindow > 0 {
		s.purityWindow = purityWindow
	}
	if purityPenalty > 0 {
		s.purityPenalty = purityPenalty
	}
	return s
}

// Search interprets the query and returns up to TopK ranked candidates.
func (s *Service) Search(ctx context.Context, q query.Query) (*Response, error) {
	fixed := s.corrector.Fix(q.Text())
	normalized := normalize.Normalize(fixed)

	if normalized != normalize.Normalize(q.Text()) {
		metrics.LayoutFixesTotal.Inc()
	}

	resp := &Response{
		Query:            q.Text(),
		LayoutFixedQuery: fixed,
		NormalizedQuery:  normalized,
	}

	filter, remaining, found := numeric.Extract(normalized)
	var filterPtr *numeric.Filter
	if found {
		filterPtr = &filter
		resp.Filter = &filter
		metrics.NumericFiltersTotal.WithLabelValues(string(filter.Unit())).Inc()
	}

	tokens := strings.Fields(remaining)
	if len(tokens) == 0 && filterPtr == nil {
		// Nothing searchable survived interpretation.
		metrics.SearchRequestsTotal.WithLabelValues("ok").Inc()
		return resp, nil
	}

	candidates, err := s.repo.SearchPrefix(ctx, tokens, filterPtr, q.TopK()*s.overfetch)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %w", domain.ErrIndexUnavailable, err)
	}
	metrics.SearchCandidatesFetched.Observe(float64(len(candidates)))

	candidates, demoted := rerankByCategory(candidates, s.purityWindow, s.purityPenalty)
	if demoted > 0 {
		metrics.PurityDemotionsTotal.Add(float64(demoted))
	}

	if len(candidates) > q.TopK() {
		candidates = candidates[:q.TopK()]
	}
	resp.Results = candidates

	metrics.SearchRequestsTotal.WithLabelValues("ok").Inc()
	return resp, nil
}
