package source

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/blanket/pkg/domain"
)

func TestFusion_Default(t *testing.T) {
	src, err := Fusion(DefaultParams(330))
	require.NoError(t, err)

	assert.Equal(t, 1.0, src.Strength)
	assert.Equal(t, 330.0, src.Space.Radius)
	assert.Zero(t, src.Space.Z)
	assert.Zero(t, src.Space.PhiMin)
	assert.InDelta(t, 2*math.Pi, src.Space.PhiMax, 1e-12)
	assert.Equal(t, [3]float64{}, src.Space.Origin)
	assert.Equal(t, domain.AngleIsotropic, src.Angle)
	assert.Equal(t, domain.MuirEnergy{E0: 14.08e6, MassRatio: 5, KT: 20000}, src.Energy)
}

func TestFusion_Rejects(t *testing.T) {
	for name, p := range map[string]Params{
		"ring":        {RingRadius: 0, PeakEnergy: 1, MassRatio: 1, Temperature: 1},
		"energy":      {RingRadius: 1, PeakEnergy: 0, MassRatio: 1, Temperature: 1},
		"mass ratio":  {RingRadius: 1, PeakEnergy: 1, MassRatio: -1, Temperature: 1},
		"temperature": {RingRadius: 1, PeakEnergy: 1, MassRatio: 1, Temperature: 0},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Fusion(p)
			assert.Error(t, err)
		})
	}
}

func TestSpectrumWidth(t *testing.T) {
	src, err := Fusion(DefaultParams(330))
	require.NoError(t, err)
	// sqrt(2 * 14.08e6 * 2e4 / 5) = sqrt(1.1264e11) ≈ 335618 eV
	assert.InDelta(t, 335618.8, SpectrumWidth(src.Energy), 1)
}
