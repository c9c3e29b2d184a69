package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// BandParameters are obtained from the YAML input file
type BandParameters struct {
	Title        string     `yaml:"Title"`
	RotorGroups  []string   `yaml:"RotorGroups"`  // Physical groups of rotor iron, magnets and shaft
	StatorGroups []string   `yaml:"StatorGroups"` // Physical groups of stator iron, windings and slots
	AirGapGroup  string     `yaml:"AirGapGroup"`  // Physical group holding the air gap triangulation
	Symmetry     int        `yaml:"Symmetry"`     // Number of sectors in the full machine, 0 or 1 for a full model
	Kappa        [2]float64 `yaml:"Kappa"`        // Periodicity coefficient [re, im] between adjacent sectors
	OutputFile   string     `yaml:"OutputFile"`
}

// Parse replaces the contents of bp with the parameters in data
func (bp *BandParameters) Parse(data []byte) (err error) {
	*bp = BandParameters{}
	if err = yaml.Unmarshal(data, bp); err != nil {
		return
	}
	return bp.Validate()
}

func (bp *BandParameters) Validate() (err error) {
	switch {
	case len(bp.RotorGroups) == 0:
		err = fmt.Errorf("input parameters must name at least one rotor group in RotorGroups")
	case len(bp.AirGapGroup) == 0:
		err = fmt.Errorf("input parameters must name the air gap group in AirGapGroup")
	case bp.Symmetry < 0:
		err = fmt.Errorf("Symmetry must be a sector count >= 1, have %d", bp.Symmetry)
	}
	return
}

// SectorCount returns the number of sectors, treating an omitted Symmetry as a full model
func (bp *BandParameters) SectorCount() int {
	if bp.Symmetry < 1 {
		return 1
	}
	return bp.Symmetry
}

// PeriodicityCoefficient returns Kappa, an omitted Kappa is the plain periodic case
func (bp *BandParameters) PeriodicityCoefficient() complex128 {
	if bp.Kappa == [2]float64{} {
		return 1
	}
	return complex(bp.Kappa[0], bp.Kappa[1])
}

func (bp *BandParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", bp.Title)
	fmt.Printf("%v\t\t= Rotor Groups\n", bp.RotorGroups)
	fmt.Printf("%v\t\t= Stator Groups\n", bp.StatorGroups)
	fmt.Printf("[%s]\t\t= Air Gap Group\n", bp.AirGapGroup)
	fmt.Printf("[%d]\t\t\t= Symmetry\n", bp.SectorCount())
	fmt.Printf("%v\t\t= Kappa\n", bp.PeriodicityCoefficient())
	if len(bp.OutputFile) != 0 {
		fmt.Printf("[%s]\t= Output File\n", bp.OutputFile)
	}
}
