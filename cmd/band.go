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
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/notargets/movingband/InputParameters"
	"github.com/notargets/movingband/mesh"
	"github.com/notargets/movingband/movingband"
	"github.com/notargets/movingband/readfiles"
	"github.com/notargets/movingband/utils"
	"github.com/spf13/cobra"
)

type BandRun struct {
	GridFile  string
	InputFile string
	OutFile   string
	Graph     bool
	Delay     time.Duration
}

const exampleInputFile = `
########################################
Title: "PMSM quarter model"
RotorGroups: [rotor_iron, magnets]
StatorGroups: [stator_iron]
AirGapGroup: airgap
Symmetry: 4     # Omit or 1 for a full machine
Kappa: [-1, 0]  # Anti-periodic sectors
OutputFile: band.yaml
########################################
`

// BandCmd represents the band command
var BandCmd = &cobra.Command{
	Use:   "band",
	Short: "Build the moving band descriptor of a machine mesh",
	Long: `Reads a Gmsh 2.2 mesh of the machine cross-section and a YAML input parameters file naming
the rotor, stator and air gap physical groups, then builds the moving band descriptor`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			br = &BandRun{}
			dr int
		)
		if br.GridFile, err = cmd.Flags().GetString("gridFile"); err != nil {
			return
		}
		if br.InputFile, err = cmd.Flags().GetString("inputParametersFile"); err != nil {
			return
		}
		if br.OutFile, err = cmd.Flags().GetString("out"); err != nil {
			return
		}
		br.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ = cmd.Flags().GetInt("delay")
		br.Delay = time.Duration(dr) * time.Millisecond
		_, err = RunBand(br)
		return
	},
}

func init() {
	rootCmd.AddCommand(BandCmd)
	BandCmd.Flags().StringP("gridFile", "F", "", "Grid file to read in Gmsh 2.2 ASCII (.msh) format")
	BandCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file for input parameters like:\n\t- RotorGroups\n\t- AirGapGroup\n\t- Symmetry")
	BandCmd.Flags().StringP("out", "o", "", "YAML file receiving the descriptor summary, overrides OutputFile")
	BandCmd.Flags().BoolP("graph", "g", false, "display the air gap triangulation")
	BandCmd.Flags().IntP("delay", "d", 5000, "milliseconds to display the graph")
}

func processInput(br *BandRun) (bp *InputParameters.BandParameters, err error) {
	var (
		data []byte
	)
	if len(br.GridFile) == 0 {
		err = fmt.Errorf("must supply a grid file (-F, --gridFile) in Gmsh 2.2 (.msh) format")
		return
	}
	if len(br.InputFile) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputParametersFile), example file:%s",
			exampleInputFile)
		return
	}
	if data, err = os.ReadFile(br.InputFile); err != nil {
		return
	}
	bp = &InputParameters.BandParameters{}
	if err = bp.Parse(data); err != nil {
		err = fmt.Errorf("reading %s: %v", br.InputFile, err)
		return nil, err
	}
	return
}

// RunBand reads the mesh and input parameters of br and builds the band descriptor
func RunBand(br *BandRun) (bd movingband.BandDescriptor, err error) {
	var (
		bp                    *InputParameters.BandParameters
		msh                   *mesh.Mesh
		rotor, stator, airGap utils.Index
		tris                  [][3]int
	)
	if bp, err = processInput(br); err != nil {
		return
	}
	bp.Print()
	if msh, err = readfiles.ReadMeshFile(br.GridFile); err != nil {
		return
	}
	slog.Info("read mesh", "file", br.GridFile, "nodes", msh.NumVertices,
		"elements", msh.NumElements, "groups", msh.GroupNames())
	if err = msh.SetSymmetry(bp.SectorCount(), bp.PeriodicityCoefficient()); err != nil {
		return
	}
	if rotor, err = msh.GroupElements(bp.RotorGroups...); err != nil {
		return
	}
	if stator, err = msh.GroupElements(bp.StatorGroups...); err != nil {
		return
	}
	if airGap, err = msh.GroupElements(bp.AirGapGroup); err != nil {
		return
	}
	if tris, err = msh.Triangles(airGap); err != nil {
		return
	}
	if bd, err = movingband.NewBandDescriptor(msh, stator, rotor,
		movingband.ExplicitTriangulation{Tris: tris}); err != nil {
		return
	}

	s := movingband.Summarize(bd)
	s.Print()
	slog.Info("built band descriptor", "triangles", s.Elements, "stator", s.StatorNodes,
		"rotor", s.RotorNodes, "shiftTol", s.ShiftTol)
	outFile := br.OutFile
	if len(outFile) == 0 {
		outFile = bp.OutputFile
	}
	if len(outFile) != 0 {
		if err = s.WriteFile(outFile); err != nil {
			return
		}
		slog.Info("wrote band summary", "file", outFile)
	}
	if br.Graph {
		readfiles.PlotBand(bd, msh.P, br.Delay)
	}
	return
}
