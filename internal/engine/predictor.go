package engine

import (
	"math"
	"sort"
	"time"
)

// defaultServiceIntervalDays is assumed for clients with fewer than two
// visits, where no personal visit cadence can be derived yet.
const defaultServiceIntervalDays = 90

// Prediction estimates when a client is expected back. A negative remainder
// means the expected return date has already passed.
type Prediction struct {
	DaysUntilReturn int
	IsOverdue       bool
}

// PredictReturn estimates days until the client's next visit from the mean
// gap between past visits. This is a plain historical average, not a trend
// or seasonality model.
func PredictReturn(summary ClientSummary, now time.Time) Prediction {
	daysSince := daysBetween(summary.LastVisit, now)

	if summary.VisitCount < 2 {
		remaining := defaultServiceIntervalDays - daysSince
		return Prediction{DaysUntilReturn: remaining, IsOverdue: remaining < 0}
	}

	dates := make([]time.Time, 0, len(summary.History))
	for _, rec := range summary.History {
		dates = append(dates, rec.Date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	var totalGap float64
	for i := 1; i < len(dates); i++ {
		totalGap += dates[i].Sub(dates[i-1]).Hours() / 24
	}
	averageInterval := totalGap / float64(len(dates)-1)

	remaining := int(math.Round(averageInterval)) - daysSince
	return Prediction{DaysUntilReturn: remaining, IsOverdue: remaining < 0}
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
