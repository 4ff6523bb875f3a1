package db

// TextQuery is the input for a scored prefix search. Tokens are matched as
// prefixes against TextFields and combined as should-clauses (each token
// contributes to the score, none is mandatory). TagEquals and NumericEquals
// are non-scoring pre-filters that narrow the candidate set.
type TextQuery struct {
	IndexName     string
	Tokens        []string
	TextFields    []string
	TagEquals     map[string]string
	NumericEquals map[string]float64
	Limit         int
	ReturnFields  []string
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}
