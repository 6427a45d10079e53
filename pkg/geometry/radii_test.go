package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_ReferenceCase(t *testing.T) {
	r := Solve(DefaultFirstWallArea, DefaultMajorRadius, DefaultThicknesses)
	require.Len(t, r, 8)

	want := []float64{
		188.70065761739428,
		188.80065761739428,
		189.80065761739428,
		191.80065761739428,
		192.80065761739428,
		195.80065761739428,
		295.8006576173943,
		298.8006576173943,
	}
	for i := range want {
		assert.InDelta(t, want[i], r[i], 1e-9, "radius %d", i)
	}
	for i, th := range r.Thicknesses() {
		assert.InDelta(t, DefaultThicknesses[i], th, 1e-9, "thickness %d", i)
	}
}

func TestMinorRadius_InvertsTorusArea(t *testing.T) {
	for _, tc := range []struct{ area, major float64 }{
		{DefaultFirstWallArea, DefaultMajorRadius},
		{1e6, 500},
		{42, 3.5},
	} {
		r := MinorRadius(tc.area, tc.major)
		assert.InDelta(t, tc.area, 4*math.Pi*math.Pi*tc.major*r, 1e-6*tc.area)
	}
}

func TestSolve_StrictlyIncreasing(t *testing.T) {
	for _, tc := range []struct{ area, major float64 }{
		{1, 1},
		{DefaultFirstWallArea, DefaultMajorRadius},
		{1e7, 1e3},
		{123.4, 0.5},
	} {
		r := Solve(tc.area, tc.major, DefaultThicknesses)
		assert.NoError(t, r.Validate(), "area=%g major=%g", tc.area, tc.major)
		for i := 1; i < len(r); i++ {
			assert.Greater(t, r[i], r[i-1])
		}
	}
}

func TestSolve_Deterministic(t *testing.T) {
	a := Solve(DefaultFirstWallArea, DefaultMajorRadius, DefaultThicknesses)
	b := Solve(DefaultFirstWallArea, DefaultMajorRadius, DefaultThicknesses)
	assert.Equal(t, a, b)
}

func TestSolve_DegenerateInputsPropagate(t *testing.T) {
	r := Solve(-1, DefaultMajorRadius, DefaultThicknesses)
	assert.Error(t, r.Validate(), "negative area yields a non-positive inner radius")
}

func TestSolveChecked(t *testing.T) {
	tests := []struct {
		name        string
		area, major float64
		thicknesses []float64
		wantErr     bool
	}{
		{"reference", DefaultFirstWallArea, DefaultMajorRadius, DefaultThicknesses, false},
		{"zero area", 0, DefaultMajorRadius, DefaultThicknesses, true},
		{"negative area", -5, DefaultMajorRadius, DefaultThicknesses, true},
		{"zero major", DefaultFirstWallArea, 0, DefaultThicknesses, true},
		{"nan major", DefaultFirstWallArea, math.NaN(), DefaultThicknesses, true},
		{"no thicknesses", DefaultFirstWallArea, DefaultMajorRadius, nil, true},
		{"zero thickness", DefaultFirstWallArea, DefaultMajorRadius, []float64{0.1, 0, 2}, true},
		{"negative thickness", DefaultFirstWallArea, DefaultMajorRadius, []float64{0.1, -1}, true},
		{"self-intersecting", DefaultFirstWallArea, DefaultMajorRadius, []float64{0.1, 1, 2, 1, 3, 200, 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := SolveChecked(tt.area, tt.major, tt.thicknesses)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.Len(t, r, len(tt.thicknesses)+1)
		})
	}
}
