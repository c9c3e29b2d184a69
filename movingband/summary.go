package movingband

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"
	"github.com/notargets/movingband/utils"
)

// Summary is an export friendly view of a band descriptor
type Summary struct {
	Elements               int              `json:"Elements"`
	StatorNodes            int              `json:"StatorNodes"`
	RotorNodes             int              `json:"RotorNodes"`
	ShiftTol               float64          `json:"ShiftTol"`
	AgNodesGlobal          utils.Index      `json:"AgNodesGlobal"`
	TAg                    utils.Index      `json:"TAg"`
	SortedNodesRotor       utils.Index      `json:"SortedNodesRotor"`
	OriginalPositionsRotor utils.Index      `json:"OriginalPositionsRotor"`
	IndsR                  utils.Index      `json:"IndsR"`
	Symmetry               *SymmetrySummary `json:"Symmetry,omitempty"`
}

type SymmetrySummary struct {
	Sectors        int          `json:"Sectors"`
	Kappa          [2]float64   `json:"Kappa"`
	RealRotorNodes int          `json:"RealRotorNodes"`
	VirtSectors    utils.Index  `json:"VirtSectors"`
	VirtIdentities utils.Index  `json:"VirtIdentities"`
	ElTable        []ElTableRow `json:"ElTable"`
}

type ElTableRow struct {
	Node     int     `json:"Node"`
	Identity int     `json:"Identity"`
	Re       float64 `json:"Re"`
	Im       float64 `json:"Im"`
}

func Summarize(bd BandDescriptor) (s *Summary) {
	d := bd.Plain()
	s = &Summary{
		Elements:               d.Ne,
		StatorNodes:            d.Ns,
		RotorNodes:             d.Nr,
		ShiftTol:               d.ShiftTol,
		AgNodesGlobal:          d.AgNodesGlobal,
		TAg:                    d.TAg,
		SortedNodesRotor:       d.SortedNodesRotor,
		OriginalPositionsRotor: d.OriginalPositionsRotor,
		IndsR:                  d.IndsR,
	}
	sd, ok := bd.(*SymmetricBandDescriptor)
	if !ok {
		return
	}
	s.Symmetry = &SymmetrySummary{
		Sectors:        sd.Symmetry,
		Kappa:          [2]float64{real(sd.Kappa), imag(sd.Kappa)},
		RealRotorNodes: sd.NrBase,
		VirtSectors:    sd.VirtSectors,
		VirtIdentities: sd.VirtIdentities,
		ElTable:        make([]ElTableRow, sd.ElTable.Len()),
	}
	for i, v := range sd.ElTable.Nodes {
		c := sd.ElTable.Coefficients[i]
		s.Symmetry.ElTable[i] = ElTableRow{
			Node:     v,
			Identity: sd.ElTable.Identities[i],
			Re:       real(c),
			Im:       imag(c),
		}
	}
	return
}

func (s *Summary) Print() {
	fmt.Printf("%d\t\t= Air gap triangles\n", s.Elements)
	fmt.Printf("%d\t\t= Stator nodes\n", s.StatorNodes)
	fmt.Printf("%d\t\t= Rotor nodes\n", s.RotorNodes)
	fmt.Printf("%8.5f\t= Shift tolerance [rad]\n", s.ShiftTol)
	if s.Symmetry != nil {
		fmt.Printf("%d\t\t= Symmetry sectors\n", s.Symmetry.Sectors)
		fmt.Printf("(%g,%g)\t= Kappa\n", s.Symmetry.Kappa[0], s.Symmetry.Kappa[1])
		fmt.Printf("%d\t\t= Rotor nodes in the modeled sector\n", s.Symmetry.RealRotorNodes)
		fmt.Printf("%d\t\t= Virtual rotor nodes\n", len(s.Symmetry.ElTable))
	}
}

func (s *Summary) Marshal() (data []byte, err error) {
	return yaml.Marshal(s)
}

func (s *Summary) WriteFile(filename string) (err error) {
	var (
		data []byte
	)
	if data, err = s.Marshal(); err != nil {
		return
	}
	if err = os.WriteFile(filename, data, 0644); err != nil {
		err = fmt.Errorf("unable to write band summary: %v", err)
	}
	return
}
