package report

import "math"

// Disclaimer is attached to every computed score. Product requirement: the
// score is a reference value and must never be presented as a guarantee.
const Disclaimer = "본 점수는 공개 HTML 기반의 참고용 수치이며, 네이버 검색 노출이나 순위를 보장하지 않습니다."

// Scoring policy. Kept in one place so it can be audited and tuned without
// touching rule logic.
var statusFactor = map[Status]float64{
	StatusGood:             1.0,
	StatusRecommended:      0.5,
	StatusNeedsImprovement: 0.0,
}

type gradeBand struct {
	min   int
	grade string
}

var gradeBands = []gradeBand{
	{90, "A"},
	{80, "B"},
	{70, "C"},
	{60, "D"},
	{0, "F"},
}

// Aggregate groups evaluated entries into categories, tallies the summary,
// and derives the optimization score. Category order and item order follow
// the order of entries, which is catalog registration order.
func Aggregate(entries []Entry) *Report {
	rep := &Report{
		Categories: make([]Category, 0, 8),
	}

	index := make(map[string]int, 8)
	for _, e := range entries {
		i, ok := index[e.Category]
		if !ok {
			i = len(rep.Categories)
			index[e.Category] = i
			rep.Categories = append(rep.Categories, Category{Name: e.Category})
		}
		rep.Categories[i].Items = append(rep.Categories[i].Items, e.Item)

		rep.Summary.Total++
		switch e.Item.Status {
		case StatusGood:
			rep.Summary.Good++
		case StatusRecommended:
			rep.Summary.Recommended++
		default:
			rep.Summary.NeedsImprovement++
		}
	}

	rep.OptimizationScore = Score(entries)
	return rep
}

// Score computes the weighted 0-100 score over the given entries. Returns
// nil when there is nothing to score.
func Score(entries []Entry) *OptimizationScore {
	var earned, max float64
	for _, e := range entries {
		w := float64(e.Weight)
		max += w
		earned += w * statusFactor[e.Item.Status]
	}
	if max == 0 {
		return nil
	}

	total := int(math.Round(earned / max * 100))
	return &OptimizationScore{
		TotalScore: total,
		Grade:      GradeFor(total),
		Disclaimer: Disclaimer,
	}
}

// GradeFor buckets a score into its letter grade. Monotonic over the score.
func GradeFor(score int) string {
	for _, b := range gradeBands {
		if score >= b.min {
			return b.grade
		}
	}
	return "F"
}
