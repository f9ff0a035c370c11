package service

import (
	"sort"

	"github.com/frankasd12/NibbleCheck/internal/catalog"
)

// BestMatch picks the candidate to report for a token. Only candidates
// scoring at least floor qualify. The worst severity wins, then the higher
// score; on a full tie the earlier candidate is kept.
func BestMatch(candidates []catalog.Candidate, floor float64) (catalog.Candidate, bool) {
	var best catalog.Candidate
	found := false
	for _, c := range candidates {
		if c.Score < floor {
			continue
		}
		if !found || outranks(c, best) {
			best = c
			found = true
		}
	}
	return best, found
}

func outranks(a, b catalog.Candidate) bool {
	if ra, rb := a.Status.Rank(), b.Status.Rank(); ra != rb {
		return ra > rb
	}
	return a.Score > b.Score
}

// AboveFloor returns the candidates scoring at least floor, highest score
// first. Equal scores keep their input order.
func AboveFloor(candidates []catalog.Candidate, floor float64) []catalog.Candidate {
	out := make([]catalog.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Score >= floor {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
