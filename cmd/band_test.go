/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ghodss/yaml"
	"github.com/notargets/movingband/movingband"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// One quarter of a machine: stator nodes 1-4, rotor nodes 5-9 every Pi/8, hub 10, stator back node 11
var quarterGrid = `$MeshFormat
2.2 0 8
$EndMeshFormat
$PhysicalNames
3
2 1 "rotor_iron"
2 2 "airgap"
2 3 "stator_iron"
$EndPhysicalNames
$Nodes
11
1 1 0 0
2 0.8660254037844387 0.49999999999999994 0
3 0.5000000000000001 0.8660254037844386 0
4 0 1 0
5 0.9 0 0
6 0.831491579260158 0.3444150891285808 0
7 0.6363961030678928 0.6363961030678927 0
8 0.3444150891285809 0.831491579260158 0
9 0 0.9 0
10 0 0 0
11 1.5 0.5 0
$EndNodes
$Elements
12
1 2 2 1 1 10 5 6
2 2 2 1 1 10 6 7
3 2 2 1 1 10 7 8
4 2 2 1 1 10 8 9
5 2 2 2 2 1 5 6
6 2 2 2 2 1 6 2
7 2 2 2 2 2 6 7
8 2 2 2 2 2 7 3
9 2 2 2 2 3 7 8
10 2 2 2 2 3 8 9
11 2 2 2 2 3 9 4
12 2 2 3 3 1 11 2
$EndElements
`

func writeInputs(t *testing.T, params string) (br *BandRun) {
	dir := t.TempDir()
	br = &BandRun{
		GridFile:  filepath.Join(dir, "quarter.msh"),
		InputFile: filepath.Join(dir, "band.yaml"),
	}
	require.NoError(t, os.WriteFile(br.GridFile, []byte(quarterGrid), 0644))
	require.NoError(t, os.WriteFile(br.InputFile, []byte(params), 0644))
	return
}

func TestRunBand(t *testing.T) {
	{ // Full model declared, the rotor boundary stays a quarter arc
		br := writeInputs(t, `
Title: Quarter, no symmetry
RotorGroups: [rotor_iron]
StatorGroups: [stator_iron]
AirGapGroup: airgap
`)
		bd, err := RunBand(br)
		require.NoError(t, err)
		d, ok := bd.(*movingband.PlainBandDescriptor)
		require.True(t, ok)
		assert.Equal(t, 4, d.Ns)
		assert.Equal(t, 5, d.Nr)
		assert.InDelta(t, 2*math.Pi/5, d.ShiftTol, 1.e-15)
	}
	{ // Four anti-periodic sectors, summary written to the file named in the parameters
		br := writeInputs(t, `
Title: Quarter model
RotorGroups: [rotor_iron]
StatorGroups: [stator_iron]
AirGapGroup: airgap
Symmetry: 4
Kappa: [-1, 0]
OutputFile: summary.yaml
`)
		br.OutFile = filepath.Join(filepath.Dir(br.InputFile), "summary.yaml")
		bd, err := RunBand(br)
		require.NoError(t, err)
		sd, ok := bd.(*movingband.SymmetricBandDescriptor)
		require.True(t, ok)
		assert.Equal(t, 16, sd.Nr)
		assert.Equal(t, 5, sd.NrBase)
		assert.InDelta(t, math.Pi/8, sd.ShiftTol, 1.e-15)

		data, err := os.ReadFile(br.OutFile)
		require.NoError(t, err)
		var s movingband.Summary
		require.NoError(t, yaml.Unmarshal(data, &s))
		assert.Equal(t, 16, s.RotorNodes)
		require.NotNil(t, s.Symmetry)
		assert.Equal(t, [2]float64{-1, 0}, s.Symmetry.Kappa)
		assert.Len(t, s.Symmetry.ElTable, 11)
	}
}

func TestRunBandErrors(t *testing.T) {
	{
		_, err := RunBand(&BandRun{})
		assert.Error(t, err)
		br := writeInputs(t, "RotorGroups: [rotor_iron]\nAirGapGroup: airgap\n")
		br.InputFile = ""
		_, err = RunBand(br)
		assert.Error(t, err)
	}
	{
		br := writeInputs(t, "RotorGroups: [magnets]\nAirGapGroup: airgap\n")
		_, err := RunBand(br)
		assert.Error(t, err)
	}
	{ // The air gap group cannot also be rotor iron
		br := writeInputs(t, "RotorGroups: [rotor_iron]\nStatorGroups: [airgap]\nAirGapGroup: rotor_iron\n")
		_, err := RunBand(br)
		assert.ErrorIs(t, err, movingband.ErrInconsistentInput)
	}
}

func TestBandCommand(t *testing.T) {
	br := writeInputs(t, "RotorGroups: [rotor_iron]\nAirGapGroup: airgap\nSymmetry: 4\n")
	out := filepath.Join(t.TempDir(), "out.yaml")
	rootCmd.SetArgs([]string{"band", "--log-level", "warn", "-F", br.GridFile, "-I", br.InputFile, "-o", out})
	require.NoError(t, rootCmd.Execute())
	_, err := os.Stat(out)
	assert.NoError(t, err)

	rootCmd.SetArgs([]string{"band", "--profile", "gpu", "-F", br.GridFile, "-I", br.InputFile})
	assert.Error(t, rootCmd.Execute())
}
