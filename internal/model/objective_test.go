package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fieldtrack.dev/backend/internal/model"
)

func TestDeriveObjectiveCategory(t *testing.T) {
	type testCase struct {
		title  string
		expect model.ObjectiveCategory
	}

	testCases := []testCase{
		{"Predator Control", model.ObjectiveCategoryPredatorControl},
		{"predator control", model.ObjectiveCategoryPredatorControl},
		{"PREDATOR CONTROL - Northern Block", model.ObjectiveCategoryPredatorControl},
		{"Riparian predator control programme", model.ObjectiveCategoryPredatorControl},
		{"Weed Control", model.ObjectiveCategoryGeneral},
		{"Predator monitoring", model.ObjectiveCategoryGeneral},
		{"Fencing", model.ObjectiveCategoryGeneral},
		{"", model.ObjectiveCategoryGeneral},
	}

	for _, tc := range testCases {
		assert.Equalf(t, tc.expect, model.DeriveObjectiveCategory(tc.title), "title: %q", tc.title)
	}
}
