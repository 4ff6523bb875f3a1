package search

import (
	"sort"

	"github.com/lavkatech/suggest/internal/domain/search/candidate"
)

// rerankByCategory demotes candidates outside the dominant category of the
// top window by multiplying their score by penalty, then re-sorts by score
// with engine rank as the stable tie-break. Off-category items are never
// removed, only pushed down. Returns the re-ranked slice and the number of
// demoted candidates.
func rerankByCategory(candidates []candidate.Candidate, window int, penalty float64) ([]candidate.Candidate, int) {
	if len(candidates) < 2 {
		return candidates, 0
	}

	dominant, ok := dominantCategory(candidates, window)
	if !ok {
		return candidates, 0
	}

	reranked := make([]candidate.Candidate, len(candidates))
	demoted := 0
	for i := range candidates {
		c := candidates[i]
		if c.Category() != dominant {
			c = c.WithScore(c.Score() * penalty)
			demoted++
		}
		reranked[i] = c
	}

	sort.SliceStable(reranked, func(i, j int) bool {
		if reranked[i].Score() != reranked[j].Score() {
			return reranked[i].Score() > reranked[j].Score()
		}
		return reranked[i].Rank() < reranked[j].Rank()
	})
	return reranked, demoted
}

// dominantCategory returns the most frequent category among the first window
// candidates. Ties resolve to the category seen earliest in engine order. A
// single distinct category reports !ok since no demotion can apply.
func dominantCategory(candidates []candidate.Candidate, window int) (string, bool) {
	if window > len(candidates) {
		window = len(candidates)
	}

	counts := make(map[string]int, window)
	firstSeen := make(map[string]int, window)
	for i := 0; i < window; i++ {
		cat := candidates[i].Category()
		counts[cat]++
		if _, ok := firstSeen[cat]; !ok {
			firstSeen[cat] = i
		}
	}
	if len(counts) < 2 {
		return "", false
	}

	dominant := ""
	best := -1
	for cat, n := range counts {
		if n > best || (n == best && firstSeen[cat] < firstSeen[dominant]) {
			dominant, best = cat, n
		}
	}
	return dominant, true
}
