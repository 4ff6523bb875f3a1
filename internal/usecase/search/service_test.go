package search

import (
	"context"
	"errors"
	"testing"

	"github.com/lavkatech/suggest/internal/domain"
	"github.com/lavkatech/suggest/internal/domain/query"
	"github.com/lavkatech/suggest/internal/domain/query/numeric"
	"github.com/lavkatech/suggest/internal/domain/search/candidate"
)

// --- Mocks ---

type mockRepo struct {
	gotTokens []string
	gotFilter *numeric.Filter
	gotLimit  int

	result []candidate.Candidate
	err    error
	calls  int
}

func (m *mockRepo) SearchPrefix(
	_ context.Context, tokens []string, filter *numeric.Filter, limit int,
) ([]candidate.Candidate, error) {
	m.calls++
	m.gotTokens = tokens
	m.gotFilter = filter
	m.gotLimit = limit
	return m.result, m.err
}

func mustQuery(t *testing.T, text string, topK int) query.Query {
	t.Helper()
	q, err := query.New(text, topK)
	if err != nil {
		t.Fatalf("query.New: %v", err)
	}
	return q
}

// --- Tests ---

func TestSearch_FullPipeline(t *testing.T) {
	repo := &mockRepo{result: []candidate.Candidate{
		mkCandidate(t, "a1", "milk", 10, 0),
		mkCandidate(t, "a2", "milk", 9, 1),
	}}
	svc := New(repo)

	resp, err := svc.Search(context.Background(), mustQuery(t, "Vjkjrj 1л", 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.NormalizedQuery != "молоко 1л" {
		t.Errorf("normalized = %q, want %q", resp.NormalizedQuery, "молоко 1л")
	}
	if len(repo.gotTokens) != 1 || repo.gotTokens[0] != "молоко" {
		t.Errorf("tokens = %v, want [молоко]", repo.gotTokens)
	}
	if repo.gotFilter == nil {
		t.Fatal("expected a quantity filter")
	}
	if repo.gotFilter.Quantity() != 1 || repo.gotFilter.Unit() != numeric.Liter {
		t.Errorf("filter = %g %q, want 1 l", repo.gotFilter.Quantity(), repo.gotFilter.Unit())
	}
	if repo.gotLimit != 5*DefaultOverfetchMultiplier {
		t.Errorf("limit = %d, want %d", repo.gotLimit, 5*DefaultOverfetchMultiplier)
	}
	if resp.Filter == nil || resp.Filter.Unit() != numeric.Liter {
		t.Error("response must carry the extracted filter")
	}
	if len(resp.Results) != 2 {
		t.Errorf("got %d results, want 2", len(resp.Results))
	}
}

func TestSearch_TruncatesToTopK(t *testing.T) {
	repo := &mockRepo{result: []candidate.Candidate{
		mkCandidate(t, "a1", "milk", 10, 0),
		mkCandidate(t, "a2", "milk", 9, 1),
		mkCandidate(t, "a3", "milk", 8, 2),
		mkCandidate(t, "a4", "milk", 7, 3),
	}}
	svc := New(repo)

	resp, err := svc.Search(context.Background(), mustQuery(t, "молоко", 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertOrder(t, resp.Results, "a1", "a2")
}

func TestSearch_ReranksBeforeTruncation(t *testing.T) {
	// The off-category item sits inside the raw top 2 but must be pushed out
	// by an on-category item from below the cut.
	repo := &mockRepo{result: []candidate.Candidate{
		mkCandidate(t, "a1", "milk", 10, 0),
		mkCandidate(t, "b1", "snacks", 9, 1),
		mkCandidate(t, "a2", "milk", 8, 2),
	}}
	svc := New(repo)

	resp, err := svc.Search(context.Background(), mustQuery(t, "молоко", 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertOrder(t, resp.Results, "a1", "a2")
}

func TestSearch_FilterOnlyQuery(t *testing.T) {
	repo := &mockRepo{result: []candidate.Candidate{
		mkCandidate(t, "a1", "water", 10, 0),
	}}
	svc := New(repo)

	resp, err := svc.Search(context.Background(), mustQuery(t, "10л", 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.gotTokens) != 0 {
		t.Errorf("tokens = %v, want none", repo.gotTokens)
	}
	if repo.gotFilter == nil {
		t.Fatal("expected a quantity filter")
	}
	if len(resp.Results) != 1 {
		t.Errorf("got %d results, want 1", len(resp.Results))
	}
}

func TestSearch_NothingSearchable(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo)

	// Non-blank input that normalizes to nothing.
	resp, err := svc.Search(context.Background(), mustQuery(t, "?!...", 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls != 0 {
		t.Error("index must not be queried when nothing searchable remains")
	}
	if len(resp.Results) != 0 {
		t.Errorf("got %d results, want 0", len(resp.Results))
	}
}

func TestSearch_IndexError(t *testing.T) {
	repo := &mockRepo{err: errors.New("connection refused")}
	svc := New(repo)

	_, err := svc.Search(context.Background(), mustQuery(t, "молоко", 5))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, domain.ErrIndexUnavailable) {
		t.Errorf("expected ErrIndexUnavailable, got %v", err)
	}
}

func TestSearch_NoLayoutFixForNativeQuery(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo)

	resp, err := svc.Search(context.Background(), mustQuery(t, "молоко", 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.LayoutFixedQuery != "молоко" {
		t.Errorf("layout fixed = %q, want input unchanged", resp.LayoutFixedQuery)
	}
}

func TestWithTuning(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo).WithTuning(3, 7, 0.5)

	if _, err := svc.Search(context.Background(), mustQuery(t, "молоко", 4)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.gotLimit != 12 {
		t.Errorf("limit = %d, want 12 (top_k 4 x overfetch 3)", repo.gotLimit)
	}

	// Non-positive values keep previous tuning.
	svc.WithTuning(0, -1, 0)
	if _, err := svc.Search(context.Background(), mustQuery(t, "молоко", 4)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.gotLimit != 12 {
		t.Errorf("limit = %d, want 12 after no-op tuning", repo.gotLimit)
	}
}
