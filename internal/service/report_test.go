package service

import (
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"gopkg.in/guregu/null.v3"

	"fieldtrack.dev/backend/internal/model"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAggregateGeneric(t *testing.T) {
	rows := []*model.GenericReportRow{
		{ActivityID: 1, ActivityName: "Planting day", ActivityDate: date("2025-01-01"), Amount: null.FloatFrom(5)},
		{ActivityID: 2, ActivityName: "Follow-up", ActivityDate: date("2025-01-10"), Amount: null.FloatFrom(3)},
	}

	report := aggregateGeneric(rows)
	assert.Equal(t, float64(8), report.TotalAmount)
	assert.Len(t, report.Rows, 2)
	assert.Equal(t, 1, report.Rows[0].ActivityID, "detail rows keep their date order")
	assert.Equal(t, 2, report.Rows[1].ActivityID)
}

func TestAggregateGenericTreatsNullAmountAsZero(t *testing.T) {
	rows := []*model.GenericReportRow{
		{ActivityID: 1, ActivityDate: date("2025-02-01"), Amount: null.FloatFrom(4)},
		{ActivityID: 2, ActivityDate: date("2025-02-02")},
	}

	report := aggregateGeneric(rows)
	assert.Equal(t, float64(4), report.TotalAmount)
	assert.Len(t, report.Rows, 2, "unfilled rows still appear in the detail list")
}

func TestAggregatePredator(t *testing.T) {
	rows := []*model.PredatorReportRow{
		{ActivityID: 1, ActivityDate: date("2025-03-01"), SubType: "Traps Established", Measurement: null.FloatFrom(10)},
		{ActivityID: 2, ActivityDate: date("2025-03-02"), SubType: "Traps Checked", Measurement: null.FloatFrom(4)},
		{ActivityID: 3, ActivityDate: date("2025-03-03"), SubType: "Catches", Rats: null.IntFrom(2), Possums: null.IntFrom(1)},
		{ActivityID: 4, ActivityDate: date("2025-03-04"), SubType: "Bait stations refilled", Measurement: null.FloatFrom(99)},
	}

	report := aggregatePredator(rows)

	expectBreakdown := model.CatchesBreakdown{Rats: 2, Possums: 1, Mustelids: 0, Hedgehogs: 0, Others: 0}

	assert.Equal(t, float64(10), report.TrapsEstablishedTotal)
	assert.Equal(t, float64(4), report.TrapsCheckedTotal)
	assert.Equalf(t, expectBreakdown, report.CatchesBreakdown, "breakdown mismatch: %s", spew.Sdump(report.CatchesBreakdown))

	// the unrecognized sub-type feeds no total but stays in the detail list
	assert.Len(t, report.Rows, 4)
	assert.Equal(t, "Bait stations refilled", report.Rows[3].SubType)
}

func TestAggregatePredatorSubTypeMatchIsCaseInsensitive(t *testing.T) {
	rows := []*model.PredatorReportRow{
		{ActivityID: 1, ActivityDate: date("2025-04-01"), SubType: "TRAPS ESTABLISHED", Measurement: null.FloatFrom(3)},
		{ActivityID: 2, ActivityDate: date("2025-04-02"), SubType: "catches", Hedgehogs: null.IntFrom(5)},
	}

	report := aggregatePredator(rows)
	assert.Equal(t, float64(3), report.TrapsEstablishedTotal)
	assert.Equal(t, int64(5), report.CatchesBreakdown.Hedgehogs)
}
