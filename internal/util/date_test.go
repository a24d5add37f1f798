package util_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fieldtrack.dev/backend/internal/constant"
	"fieldtrack.dev/backend/internal/util"
)

func TestParseCalendarDate(t *testing.T) {
	type testCase struct {
		name   string
		arg    string
		expect time.Time
		valid  bool
	}

	testCases := []testCase{
		{
			name:   "plain calendar date",
			arg:    "2025-01-10",
			expect: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
			valid:  true,
		},
		{
			name:   "rfc3339 discards time of day using utc",
			arg:    "2025-01-10T23:45:00+13:00",
			expect: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
			valid:  true,
		},
		{
			name:  "empty",
			arg:   "",
			valid: false,
		},
		{
			name:  "garbage",
			arg:   "10/01/2025",
			valid: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := util.ParseCalendarDate(tc.arg)
			if !tc.valid {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, tc.expect.Equal(got), "expect %v, got %v", tc.expect, got)
		})
	}
}

func TestClampDateFloor(t *testing.T) {
	floor := constant.PredatorRecordEpoch

	before := time.Date(2018, time.June, 15, 0, 0, 0, 0, time.UTC)
	assert.True(t, floor.Equal(util.ClampDateFloor(before, floor)))

	on := floor
	assert.True(t, on.Equal(util.ClampDateFloor(on, floor)))

	after := time.Date(2020, time.March, 2, 8, 30, 0, 0, time.UTC)
	assert.True(t, time.Date(2020, time.March, 2, 0, 0, 0, 0, time.UTC).Equal(util.ClampDateFloor(after, floor)))
}
