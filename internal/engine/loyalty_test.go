package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func summaryWith(visits int, spend float64) ClientSummary {
	return ClientSummary{VisitCount: visits, TotalSpend: spend}
}

// VIP scenario: 6 visits, spend three times the average, recent visit.
// visits 30 + spending 30 (capped) + recency 30 = 90.
func TestScoreClient_VIP(t *testing.T) {
	score, segment := ScoreClient(summaryWith(6, 3000), 1000, 20)

	assert.Equal(t, 90, score)
	assert.Equal(t, SegmentVIP, segment)
}

func TestScoreClient_NewPrecedesAtRisk(t *testing.T) {
	// One visit 200 days ago: New wins even though the recency says AtRisk.
	_, segment := ScoreClient(summaryWith(1, 500), 1000, 200)

	assert.Equal(t, SegmentNew, segment)
}

func TestScoreClient_AtRiskPrecedesVIP(t *testing.T) {
	_, segment := ScoreClient(summaryWith(8, 5000), 1000, 150)

	assert.Equal(t, SegmentAtRisk, segment)
}

func TestScoreClient_RegularDefault(t *testing.T) {
	_, segment := ScoreClient(summaryWith(4, 800), 1000, 45)

	assert.Equal(t, SegmentRegular, segment)
}

func TestScoreClient_ZeroAverageSpendTreatedAsRatioOne(t *testing.T) {
	score, _ := ScoreClient(summaryWith(3, 900), 0, 10)

	// visits 15 + spending 15 (ratio 1.0) + recency 30
	assert.Equal(t, 60, score)
}

func TestScoreClient_AlwaysWithinBounds(t *testing.T) {
	cases := []struct {
		visits    int
		spend     float64
		avg       float64
		daysSince int
	}{
		{0, 0, 0, 0},
		{1, 10, 5000, 500},
		{50, 100000, 100, 1},
		{12, 4000, 4000, 365},
	}

	for _, tc := range cases {
		score, _ := ScoreClient(summaryWith(tc.visits, tc.spend), tc.avg, tc.daysSince)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestSortClientSummaries(t *testing.T) {
	summaries := []ClientSummary{
		{ClientKey: "new", Segment: SegmentNew, Score: 95},
		{ClientKey: "regular-low", Segment: SegmentRegular, Score: 40},
		{ClientKey: "vip", Segment: SegmentVIP, Score: 80},
		{ClientKey: "regular-high", Segment: SegmentRegular, Score: 70},
		{ClientKey: "at-risk", Segment: SegmentAtRisk, Score: 55},
	}

	SortClientSummaries(summaries)

	got := make([]string, 0, len(summaries))
	for _, s := range summaries {
		got = append(got, s.ClientKey)
	}
	assert.Equal(t, []string{"vip", "at-risk", "regular-high", "regular-low", "new"}, got)
}
