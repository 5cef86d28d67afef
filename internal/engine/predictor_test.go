package engine

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"motorlog/internal/models"
)

func historySummary(visitDaysAgo ...int) ClientSummary {
	vehicleID := uuid.New()
	summary := ClientSummary{VisitCount: len(visitDaysAgo)}
	for _, daysAgo := range visitDaysAgo {
		rec := testRecord(vehicleID, "Oil change", 10000, daysAgo)
		summary.History = append(summary.History, rec)
		if summary.LastVisit.IsZero() || rec.Date.After(summary.LastVisit) {
			summary.LastVisit = rec.Date
		}
	}
	return summary
}

func TestPredictReturn_TwoVisitsThirtyDaysApart(t *testing.T) {
	summary := historySummary(40, 10)

	pred := PredictReturn(summary, testNow)

	assert.Equal(t, 20, pred.DaysUntilReturn)
	assert.False(t, pred.IsOverdue)
}

func TestPredictReturn_SingleVisitUsesDefaultInterval(t *testing.T) {
	summary := historySummary(25)

	pred := PredictReturn(summary, testNow)

	assert.Equal(t, 65, pred.DaysUntilReturn)
	assert.False(t, pred.IsOverdue)
}

func TestPredictReturn_SingleVisitOverdue(t *testing.T) {
	summary := historySummary(120)

	pred := PredictReturn(summary, testNow)

	assert.Equal(t, -30, pred.DaysUntilReturn)
	assert.True(t, pred.IsOverdue)
}

func TestPredictReturn_AveragesGapsOverUnsortedHistory(t *testing.T) {
	// Gaps of 60 and 30 days; history deliberately out of order.
	summary := historySummary(30, 120, 60)

	pred := PredictReturn(summary, testNow)

	// Mean gap 45, last visit 30 days ago.
	assert.Equal(t, 15, pred.DaysUntilReturn)
	assert.False(t, pred.IsOverdue)
}

func TestPredictReturn_OverdueRegular(t *testing.T) {
	summary := historySummary(100, 130, 160)

	pred := PredictReturn(summary, testNow)

	assert.Equal(t, -70, pred.DaysUntilReturn)
	assert.True(t, pred.IsOverdue)
}

func TestPredictReturn_IgnoresRecordOrderInHistorySlice(t *testing.T) {
	vehicleID := uuid.New()
	summary := ClientSummary{
		VisitCount: 2,
		History: []models.MaintenanceRecord{
			testRecord(vehicleID, "Brake pads", 12000, 10),
			testRecord(vehicleID, "Oil change", 9000, 40),
		},
		LastVisit: testNow.Add(-10 * 24 * time.Hour),
	}

	pred := PredictReturn(summary, testNow)

	assert.Equal(t, 20, pred.DaysUntilReturn)
}
