package analysis

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{4, 1, 3, 2})

	// Population std of {1,2,3,4}: sqrt(5/4).
	if !almostEqual(s.Mean, 2.5, 1e-12) {
		t.Errorf("Mean = %v, want 2.5", s.Mean)
	}
	if !almostEqual(s.Std, math.Sqrt(1.25), 1e-12) {
		t.Errorf("Std = %v, want %v", s.Std, math.Sqrt(1.25))
	}
	if !almostEqual(s.Median, 2.5, 1e-12) {
		t.Errorf("Median = %v, want 2.5", s.Median)
	}
	if !almostEqual(s.P25, 1.75, 1e-12) {
		t.Errorf("P25 = %v, want 1.75", s.P25)
	}
	if !almostEqual(s.P75, 3.25, 1e-12) {
		t.Errorf("P75 = %v, want 3.25", s.P75)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if s := Summarize(nil); s != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero summary", s)
	}
}

func TestSummarizeSingle(t *testing.T) {
	s := Summarize([]float64{42})
	if s.Mean != 42 || s.Median != 42 || s.P25 != 42 || s.P75 != 42 {
		t.Errorf("Summarize single = %+v, want all stats 42", s)
	}
	if s.Std != 0 {
		t.Errorf("Std = %v, want 0 for a single sample", s.Std)
	}
}

func TestSummarizeConstant(t *testing.T) {
	s := Summarize([]float64{7, 7, 7, 7, 7})
	if s.Std != 0 {
		t.Errorf("Std = %v, want 0 for constant samples", s.Std)
	}
	if s.Mean != 7 || s.Median != 7 {
		t.Errorf("Summarize constant = %+v", s)
	}
}

func TestSummarizeDoesNotReorderInput(t *testing.T) {
	samples := []float64{3, 1, 2}
	Summarize(samples)
	if samples[0] != 3 || samples[1] != 1 || samples[2] != 2 {
		t.Errorf("input reordered: %v", samples)
	}
}

func TestPercentileSorted(t *testing.T) {
	sorted := []float64{10, 20, 30, 40, 50}
	tests := []struct {
		q    float64
		want float64
	}{
		{0, 10},
		{-0.5, 10},
		{1, 50},
		{1.5, 50},
		{0.5, 30},
		{0.25, 20},
		{0.1, 14}, // between the first two order stats
	}
	for _, tt := range tests {
		if got := percentileSorted(sorted, tt.q); !almostEqual(got, tt.want, 1e-12) {
			t.Errorf("percentileSorted(q=%v) = %v, want %v", tt.q, got, tt.want)
		}
	}

	if got := percentileSorted(nil, 0.5); got != 0 {
		t.Errorf("percentileSorted(empty) = %v, want 0", got)
	}
}

func TestRankByMeanTEV(t *testing.T) {
	cases := []CaseSummary{
		{Case: "EIA_CS1_LLP", Acres: 651.06, TEV: Summary{Mean: 120000}},
		{Case: "EIA_CS2_LLP", Acres: 937.02, TEV: Summary{Mean: 560000}},
		{Case: "EIA_CS3_LLP", Acres: 544.03, TEV: Summary{Mean: -40000}},
	}

	ranked := RankByMeanTEV(cases)
	if len(ranked) != 3 {
		t.Fatalf("RankByMeanTEV() has %d entries, want 3", len(ranked))
	}

	wantOrder := []string{"EIA_CS2_LLP", "EIA_CS1_LLP", "EIA_CS3_LLP"}
	for i, want := range wantOrder {
		if ranked[i].Case != want {
			t.Errorf("rank %d = %s, want %s", i+1, ranked[i].Case, want)
		}
		if ranked[i].Rank != i+1 {
			t.Errorf("rank field = %d, want %d", ranked[i].Rank, i+1)
		}
	}
}

func TestRankByMeanTEVStableOnTies(t *testing.T) {
	cases := []CaseSummary{
		{Case: "A", TEV: Summary{Mean: 100}},
		{Case: "B", TEV: Summary{Mean: 100}},
		{Case: "C", TEV: Summary{Mean: 200}},
	}
	ranked := RankByMeanTEV(cases)
	if ranked[0].Case != "C" || ranked[1].Case != "A" || ranked[2].Case != "B" {
		t.Errorf("tie order changed: %v, %v, %v", ranked[0].Case, ranked[1].Case, ranked[2].Case)
	}
}

func TestRankByMeanTEVDoesNotMutateInput(t *testing.T) {
	cases := []CaseSummary{
		{Case: "A", TEV: Summary{Mean: 1}},
		{Case: "B", TEV: Summary{Mean: 2}},
	}
	RankByMeanTEV(cases)
	if cases[0].Case != "A" || cases[1].Case != "B" {
		t.Errorf("input reordered: %v, %v", cases[0].Case, cases[1].Case)
	}
}
