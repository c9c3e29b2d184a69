package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBandParameters(t *testing.T) {
	{
		data := []byte(`
########################################
Title: "PMSM quarter model"
RotorGroups: [rotor_iron, magnets]
StatorGroups:
  - stator_iron
  - slots
AirGapGroup: airgap
Symmetry: 4
Kappa: [-1, 0]
OutputFile: band.yaml
########################################
`)
		var bp BandParameters
		require.NoError(t, bp.Parse(data))
		assert.Equal(t, "PMSM quarter model", bp.Title)
		assert.Equal(t, []string{"rotor_iron", "magnets"}, bp.RotorGroups)
		assert.Equal(t, []string{"stator_iron", "slots"}, bp.StatorGroups)
		assert.Equal(t, "airgap", bp.AirGapGroup)
		assert.Equal(t, 4, bp.SectorCount())
		assert.Equal(t, complex(-1, 0), bp.PeriodicityCoefficient())
		assert.Equal(t, "band.yaml", bp.OutputFile)
	}
	// Defaults for a full model
	{
		var bp BandParameters
		require.NoError(t, bp.Parse([]byte("RotorGroups: [rotor]\nAirGapGroup: gap\n")))
		assert.Equal(t, 1, bp.SectorCount())
		assert.Equal(t, complex128(1), bp.PeriodicityCoefficient())
	}
	{
		var bp BandParameters
		assert.Error(t, bp.Parse([]byte("AirGapGroup: gap\n")))
		assert.Error(t, bp.Parse([]byte("RotorGroups: [rotor]\n")))
		assert.Empty(t, bp.AirGapGroup, "a reused record keeps nothing from an earlier parse")
		assert.Error(t, bp.Parse([]byte("RotorGroups: [rotor]\nAirGapGroup: gap\nSymmetry: -2\n")))
		assert.Error(t, bp.Parse([]byte("RotorGroups: rotor: [\n")))
	}
}
