package engine

import (
	"math"
	"sort"
)

type Segment string

const (
	SegmentNew     Segment = "new"
	SegmentRegular Segment = "regular"
	SegmentAtRisk  Segment = "at_risk"
	SegmentVIP     Segment = "vip"
)

// segmentPriority orders segments for display: VIP first, New last.
func segmentPriority(s Segment) int {
	switch s {
	case SegmentVIP:
		return 4
	case SegmentAtRisk:
		return 3
	case SegmentRegular:
		return 2
	default:
		return 1
	}
}

// ScoreClient computes the 0-100 loyalty score and segment for one client.
// The score sums three independently capped parts: visit frequency (up to
// 40), spend relative to the workshop average (up to 30) and recency (up to
// 30). A zero population average is treated as a 1.0 spending ratio.
func ScoreClient(summary ClientSummary, populationAverageSpend float64, daysSinceLastVisit int) (int, Segment) {
	visitsScore := summary.VisitCount * 5
	if visitsScore > 40 {
		visitsScore = 40
	}

	spendingRatio := 1.0
	if populationAverageSpend > 0 {
		spendingRatio = summary.TotalSpend / populationAverageSpend
	}
	spendingScore := int(math.Round(math.Min(30, spendingRatio*15)))

	score := visitsScore + spendingScore + recencyScore(daysSinceLastVisit)
	return score, classifySegment(summary, spendingRatio, daysSinceLastVisit)
}

func recencyScore(daysSinceLastVisit int) int {
	switch {
	case daysSinceLastVisit <= 30:
		return 30
	case daysSinceLastVisit <= 60:
		return 25
	case daysSinceLastVisit <= 90:
		return 20
	case daysSinceLastVisit <= 120:
		return 15
	case daysSinceLastVisit <= 180:
		return 10
	default:
		return 5
	}
}

// classifySegment applies the segment rules in precedence order: New wins
// over AtRisk, AtRisk over VIP, VIP over Regular.
func classifySegment(summary ClientSummary, spendingRatio float64, daysSinceLastVisit int) Segment {
	switch {
	case summary.VisitCount <= 2:
		return SegmentNew
	case daysSinceLastVisit > 120:
		return SegmentAtRisk
	case spendingRatio > 1.5 && summary.VisitCount >= 5:
		return SegmentVIP
	default:
		return SegmentRegular
	}
}

// SortClientSummaries orders scored summaries for display: segment priority
// descending, ties broken by score descending.
func SortClientSummaries(summaries []ClientSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		pi, pj := segmentPriority(summaries[i].Segment), segmentPriority(summaries[j].Segment)
		if pi != pj {
			return pi > pj
		}
		return summaries[i].Score > summaries[j].Score
	})
}
