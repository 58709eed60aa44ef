package analysis

import "sort"

// CaseSummary is the total-TEV distribution of one case, the unit of
// ranking.
type CaseSummary struct {
	Case  string
	Acres float64
	TEV   Summary
}

type RankedCase struct {
	Rank int
	CaseSummary
}

// RankByMeanTEV sorts cases descending by mean total TEV and assigns ranks
// starting at 1. Ties keep their input order.
func RankByMeanTEV(cases []CaseSummary) []RankedCase {
	out := make([]RankedCase, 0, len(cases))
	for _, c := range cases {
		out = append(out, RankedCase{CaseSummary: c})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TEV.Mean > out[j].TEV.Mean
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
