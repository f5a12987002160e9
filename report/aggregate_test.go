package report

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func entry(category string, weight int, status Status) Entry {
	return Entry{
		Category: category,
		Weight:   weight,
		Item: Item{
			Status:   status,
			Title:    "check",
			Message:  "message",
			GuideURL: "https://example.com/guide",
		},
	}
}

func TestAggregateSummaryInvariant(t *testing.T) {
	entries := []Entry{
		entry("a", 1, StatusGood),
		entry("a", 2, StatusRecommended),
		entry("b", 1, StatusNeedsImprovement),
		entry("b", 3, StatusGood),
		entry("c", 1, StatusRecommended),
	}

	rep := Aggregate(entries)

	require.Equal(t, 5, rep.Summary.Total)
	require.Equal(t, 2, rep.Summary.Good)
	require.Equal(t, 2, rep.Summary.Recommended)
	require.Equal(t, 1, rep.Summary.NeedsImprovement)
	require.Equal(t, rep.Summary.Total,
		rep.Summary.Good+rep.Summary.Recommended+rep.Summary.NeedsImprovement)

	itemCount := 0
	for _, cat := range rep.Categories {
		itemCount += len(cat.Items)
	}
	require.Equal(t, rep.Summary.Total, itemCount)
}

func TestAggregatePreservesOrder(t *testing.T) {
	entries := []Entry{
		entry("meta", 1, StatusGood),
		entry("structure", 1, StatusGood),
		entry("meta", 1, StatusNeedsImprovement),
		entry("links", 1, StatusGood),
	}

	rep := Aggregate(entries)

	require.Len(t, rep.Categories, 3)
	require.Equal(t, "meta", rep.Categories[0].Name)
	require.Equal(t, "structure", rep.Categories[1].Name)
	require.Equal(t, "links", rep.Categories[2].Name)

	// Second meta entry lands after the first, not resorted by severity.
	require.Len(t, rep.Categories[0].Items, 2)
	require.Equal(t, StatusGood, rep.Categories[0].Items[0].Status)
	require.Equal(t, StatusNeedsImprovement, rep.Categories[0].Items[1].Status)
}

func TestScoreBounds(t *testing.T) {
	allGood := []Entry{entry("a", 3, StatusGood), entry("a", 1, StatusGood)}
	score := Score(allGood)
	require.NotNil(t, score)
	require.Equal(t, 100, score.TotalScore)
	require.Equal(t, "A", score.Grade)

	allBad := []Entry{entry("a", 3, StatusNeedsImprovement), entry("a", 1, StatusNeedsImprovement)}
	score = Score(allBad)
	require.NotNil(t, score)
	require.Equal(t, 0, score.TotalScore)
	require.Equal(t, "F", score.Grade)
}

func TestScoreWeightsAndFactors(t *testing.T) {
	// good(3) + recommended(1)*0.5 = 3.5 of 4 -> 88 -> B
	entries := []Entry{
		entry("a", 3, StatusGood),
		entry("a", 1, StatusRecommended),
	}
	score := Score(entries)
	require.NotNil(t, score)
	require.Equal(t, 88, score.TotalScore)
	require.Equal(t, "B", score.Grade)
	require.Equal(t, Disclaimer, score.Disclaimer)
}

func TestScoreEmptyEntries(t *testing.T) {
	require.Nil(t, Score(nil))
}

func TestGradeMonotonic(t *testing.T) {
	order := map[string]int{"A": 5, "B": 4, "C": 3, "D": 2, "F": 1}

	prev := GradeFor(0)
	for score := 1; score <= 100; score++ {
		grade := GradeFor(score)
		require.GreaterOrEqual(t, order[grade], order[prev],
			"grade must never worsen as the score rises (score %d)", score)
		prev = grade
	}

	require.Equal(t, "A", GradeFor(90))
	require.Equal(t, "B", GradeFor(89))
	require.Equal(t, "D", GradeFor(60))
	require.Equal(t, "F", GradeFor(59))
}
