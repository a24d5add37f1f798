package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/guregu/null.v3"
)

func TestRenameApplies(t *testing.T) {
	type testCase struct {
		name       string
		rename     null.String
		isReadOnly bool
		expect     bool
	}

	testCases := []testCase{
		{
			name:       "renames a mutable title",
			rename:     null.StringFrom("Working at height"),
			isReadOnly: false,
			expect:     true,
		},
		{
			name:       "read-only title keeps its name",
			rename:     null.StringFrom("Working at height"),
			isReadOnly: true,
			expect:     false,
		},
		{
			name:       "no rename submitted",
			rename:     null.String{},
			isReadOnly: false,
			expect:     false,
		},
		{
			name:       "no rename submitted on a read-only title",
			rename:     null.String{},
			isReadOnly: true,
			expect:     false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, renameApplies(tc.rename, tc.isReadOnly))
		})
	}
}

func TestChosenControlRows(t *testing.T) {
	t.Run("builds exactly the submitted set as checked rows", func(t *testing.T) {
		rows := chosenControlRows(7, []int{3, 5, 9})
		assert.Len(t, rows, 3)
		for i, controlId := range []int{3, 5, 9} {
			assert.Equal(t, 7, rows[i].ActivityID)
			assert.Equal(t, controlId, rows[i].RiskControlID)
			assert.True(t, rows[i].IsChecked)
			assert.Zero(t, rows[i].ActivityRiskControlID, "ids are assigned by the store, not here")
		}
	})

	t.Run("empty submission deselects everything", func(t *testing.T) {
		assert.Empty(t, chosenControlRows(7, nil))
		assert.Empty(t, chosenControlRows(7, []int{}))
	})

	t.Run("successive replacements depend only on the latest set", func(t *testing.T) {
		// first selection, then a full replacement with a disjoint set;
		// the scoped delete discards the first, so the reinserted rows
		// must carry no trace of it
		first := chosenControlRows(7, []int{1, 2})
		second := chosenControlRows(7, []int{4})

		assert.Len(t, second, 1)
		assert.Equal(t, 4, second[0].RiskControlID)
		for _, row := range second {
			for _, prior := range first {
				assert.NotEqual(t, prior.RiskControlID, row.RiskControlID)
			}
		}
	})
}
