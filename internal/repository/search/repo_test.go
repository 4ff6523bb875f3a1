package search

import (
	"context"
	"errors"
	"testing"

	"github.com/lavkatech/suggest/internal/db"
	"github.com/lavkatech/suggest/internal/domain/query/numeric"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	searchFn func(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
}

func (m *mockStore) Search(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func newTestRepo() (*Repo, *mockStore) {
	ms := &mockStore{}
	return New(ms, "suggest:product:idx", "suggest:product:"), ms
}

func TestSearchPrefix_BuildsQuery(t *testing.T) {
	repo, ms := newTestRepo()

	var got *db.TextQuery
	ms.searchFn = func(_ context.Context, q *db.TextQuery) (*db.SearchResult, error) {
		got = q
		return &db.SearchResult{}, nil
	}

	filter := numeric.NewFilter(1.5, numeric.Liter)
	_, err := repo.SearchPrefix(context.Background(), []string{"вода"}, &filter, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.IndexName != "suggest:product:idx" {
		t.Errorf("index = %q", got.IndexName)
	}
	if len(got.Tokens) != 1 || got.Tokens[0] != "вода" {
		t.Errorf("tokens = %v", got.Tokens)
	}
	if got.TagEquals["weight_unit"] != "l" {
		t.Errorf("tag filter = %v", got.TagEquals)
	}
	if got.NumericEquals["weight_value"] != 1.5 {
		t.Errorf("numeric filter = %v", got.NumericEquals)
	}
	if got.Limit != 25 {
		t.Errorf("limit = %d, want 25", got.Limit)
	}
	if len(got.ReturnFields) == 0 {
		t.Error("return fields must be set")
	}
}

func TestSearchPrefix_NoFilter(t *testing.T) {
	repo, ms := newTestRepo()

	var got *db.TextQuery
	ms.searchFn = func(_ context.Context, q *db.TextQuery) (*db.SearchResult, error) {
		got = q
		return &db.SearchResult{}, nil
	}

	if _, err := repo.SearchPrefix(context.Background(), []string{"молоко"}, nil, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TagEquals != nil || got.NumericEquals != nil {
		t.Error("no filter clauses expected without a quantity filter")
	}
}

func TestSearchPrefix_EmptyInput(t *testing.T) {
	repo, ms := newTestRepo()
	ms.searchFn = func(_ context.Context, _ *db.TextQuery) (*db.SearchResult, error) {
		t.Fatal("index must not be queried")
		return nil, nil
	}

	out, err := repo.SearchPrefix(context.Background(), nil, nil, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("got %d candidates, want 0", len(out))
	}
}

func TestSearchPrefix_MapsEntries(t *testing.T) {
	repo, ms := newTestRepo()

	ms.searchFn = func(_ context.Context, _ *db.TextQuery) (*db.SearchResult, error) {
		return &db.SearchResult{Total: 2, Entries: []db.SearchEntry{
			{
				Key:   "suggest:product:p1",
				Score: 3.5,
				Fields: map[string]string{
					"name":         "Молоко Простоквашино",
					"category":     "Молочные продукты",
					"brand":        "Простоквашино",
					"price":        "89.9",
					"weight_value": "0.93",
					"weight_unit":  "l",
					"image_url":    "https://cdn.example.com/p1.jpg",
				},
			},
			{
				Key:    "suggest:product:p2",
				Score:  1.25,
				Fields: map[string]string{"name": "Молочный коктейль", "package_size": "6"},
			},
		}}, nil
	}

	out, err := repo.SearchPrefix(context.Background(), []string{"моло"}, nil, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d candidates, want 2", len(out))
	}

	p := out[0].Product()
	if p.ID() != "p1" {
		t.Errorf("id = %q, want p1 (prefix stripped)", p.ID())
	}
	if p.Price() != 89.9 || p.WeightValue() != 0.93 || p.WeightUnit() != "l" {
		t.Errorf("unexpected attributes: %+v", p)
	}
	if out[0].Score() != 3.5 || out[0].Rank() != 0 {
		t.Errorf("score/rank = %g/%d", out[0].Score(), out[0].Rank())
	}

	if out[1].Rank() != 1 {
		t.Errorf("second rank = %d, want 1", out[1].Rank())
	}
	if out[1].Product().PackageSize() != 6 {
		t.Errorf("package size = %d, want 6", out[1].Product().PackageSize())
	}
}

func TestSearchPrefix_SkipsMalformedEntries(t *testing.T) {
	repo, ms := newTestRepo()

	ms.searchFn = func(_ context.Context, _ *db.TextQuery) (*db.SearchResult, error) {
		return &db.SearchResult{Total: 2, Entries: []db.SearchEntry{
			{Key: "suggest:product:broken", Score: 5, Fields: map[string]string{}}, // no name
			{Key: "suggest:product:p2", Score: 1, Fields: map[string]string{"name": "Кефир"}},
		}}, nil
	}

	out, err := repo.SearchPrefix(context.Background(), []string{"к"}, nil, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Product().ID() != "p2" {
		t.Fatalf("expected only the valid entry, got %d", len(out))
	}
	// Rank follows position in the returned slice, not the raw reply.
	if out[0].Rank() != 0 {
		t.Errorf("rank = %d, want 0", out[0].Rank())
	}
}

func TestSearchPrefix_StoreError(t *testing.T) {
	repo, ms := newTestRepo()
	ms.searchFn = func(_ context.Context, _ *db.TextQuery) (*db.SearchResult, error) {
		return nil, &db.Error{Op: db.OpSearch, Err: errors.New("connection refused")}
	}

	_, err := repo.SearchPrefix(context.Background(), []string{"x"}, nil, 10)
	if err == nil {
		t.Fatal("expected error")
	}
	var dbErr *db.Error
	if !errors.As(err, &dbErr) {
		t.Errorf("expected wrapped db.Error, got %v", err)
	}
}
