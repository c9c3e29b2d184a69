package movingband

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/notargets/movingband/mesh"
	"github.com/notargets/movingband/utils"
	"gonum.org/v1/gonum/mat"
)

// BandDescriptor is implemented by *PlainBandDescriptor and *SymmetricBandDescriptor
type BandDescriptor interface {
	Plain() *PlainBandDescriptor
}

/*
PlainBandDescriptor holds the lookup tables a rotation step needs to slide the rotor side of the
air gap triangulation without re-triangulating.

Local node numbering is the stator block [0, Ns) followed by the rotor block [Ns, Ns+Nr).
TAg stores the air gap triangles flattened, corner c of triangle e at position 3*e+c.
For every i, SortedNodesRotor[OriginalPositionsRotor[i]] == TAg[IndsR[i]].
*/
type PlainBandDescriptor struct {
	AgNodesGlobal          utils.Index // Local to global node map, real nodes only: Ns+NrBase entries for a symmetric band
	Ne, Ns, Nr             int         // Air gap triangles, stator nodes, rotor nodes
	TAg                    utils.Index // Air gap triangulation in local indices
	AgAnglesAll            []float64   // Angle in [0, 2Pi) per local node
	ShiftTol               float64     // Angular pitch of the rotor nodes, 2Pi/Nr
	SortedNodesRotor       utils.Index // Rotor local indices by ascending angle
	OriginalPositionsRotor utils.Index // Rank in SortedNodesRotor of each rotor corner listed in IndsR
	IndsR                  utils.Index // Positions in TAg holding a rotor node
}

func (d *PlainBandDescriptor) Plain() *PlainBandDescriptor { return d }

func (d *PlainBandDescriptor) Triangle(e int) (tri [3]int) {
	copy(tri[:], d.TAg[3*e:3*e+3])
	return
}

/*
SymmetricBandDescriptor extends the band of a mesh modeling one of Symmetry sectors with virtual
rotor nodes copied into the other sectors.

The local rotor block [Ns, Ns+NrBase) holds the real rotor nodes, in the same numbering as TAg.
Nodes [Ns+NrBase, Ns+Nr) are the surviving virtual copies. Nr, ShiftTol, SortedNodesRotor and
the rotor part of AgAnglesAll cover the whole expanded set, while AgNodesGlobal and TAg only
address real nodes, so len(AgNodesGlobal) == Ns+NrBase. Use VirtIdentities to map any node of
the expanded set to a global node.
*/
type SymmetricBandDescriptor struct {
	PlainBandDescriptor
	Symmetry       int
	Kappa          complex128
	NrBase         int         // Real rotor nodes in the modeled sector
	PAgVirt        *mat.Dense  // [2][Ns+Nr] coordinates of stator, real and virtual rotor nodes
	VirtSectors    utils.Index // Sector index per node, 0 for the modeled sector
	VirtIdentities utils.Index // Global node of the modeled sector each node is a copy of
	ElTable        ElTable
}

/*
NewBandDescriptor builds the moving band descriptor for the air gap of msh.

The air gap triangulation is supplied by exactly one source. Only ExplicitTriangulation is
supported, given in global node indices. Nodes of the air gap attached to any rotor element
are rotor nodes, all others are stator nodes. When msh declares more than one symmetry sector
the rotor boundary is expanded over the full circle.
*/
func NewBandDescriptor(msh *mesh.Mesh, statorElements, rotorElements utils.Index,
	sources ...TriangulationSource) (bd BandDescriptor, err error) {
	var (
		tris [][3]int
		c    *classification
	)
	if msh == nil || msh.P == nil {
		err = fmt.Errorf("%w: mesh has no node coordinates", ErrConfiguration)
		return
	}
	if tris, err = resolveTriangulation(sources); err != nil {
		return
	}
	if err = checkElementSets(msh, statorElements, rotorElements); err != nil {
		return
	}
	if c, err = classifyNodes(msh, rotorElements, tris); err != nil {
		return
	}
	slog.Debug("classified air gap nodes",
		"elements", len(tris), "stator", c.Ns, "rotor", c.Nr)

	var (
		pStator = gatherColumns(msh.P, c.statorGlobal())
		pRotor  = gatherColumns(msh.P, c.rotorGlobal())
		plain   = PlainBandDescriptor{
			AgNodesGlobal: c.agNodesGlobal,
			Ne:            len(tris),
			Ns:            c.Ns,
			TAg:           c.tAg,
		}
	)
	if !msh.HasSymmetry() {
		plain.Nr = c.Nr
		plain.AgAnglesAll = append(nodeAngles(pStator), nodeAngles(pRotor)...)
		if err = assemble(&plain); err != nil {
			return
		}
		bd = &plain
		return
	}

	var (
		ex *expansion
	)
	if ex, err = expandSymmetry(pStator, pRotor, c.statorGlobal(), c.rotorGlobal(), msh.Symmetry); err != nil {
		return
	}
	slog.Debug("expanded rotor over symmetry sectors",
		"sectors", msh.Symmetry, "rotorBase", c.Nr, "rotorExpanded", ex.Nr, "duplicatesRemoved", ex.removed)
	plain.Nr = ex.Nr
	plain.AgAnglesAll = nodeAngles(ex.pAgVirt)
	if err = assemble(&plain); err != nil {
		return
	}
	bd = &SymmetricBandDescriptor{
		PlainBandDescriptor: plain,
		Symmetry:            msh.Symmetry,
		Kappa:               msh.Kappa,
		NrBase:              c.Nr,
		PAgVirt:             ex.pAgVirt,
		VirtSectors:         ex.virtSectors,
		VirtIdentities:      ex.virtIdentities,
		ElTable:             newElTable(ex.virtSectors, ex.virtIdentities, msh.Kappa, msh.Symmetry),
	}
	return
}

// assemble fills the rotor ordering tables and the shift tolerance once Ns, Nr, TAg and AgAnglesAll are set
func assemble(d *PlainBandDescriptor) (err error) {
	var (
		rank utils.Index
	)
	if d.Nr == 0 {
		return fmt.Errorf("%w: no rotor nodes", ErrInconsistentInput)
	}
	d.SortedNodesRotor = sortByAngle(d.AgAnglesAll[d.Ns:d.Ns+d.Nr], d.Ns)
	if rank, err = d.SortedNodesRotor.Add(-d.Ns).Inverse(d.Nr); err != nil {
		return fmt.Errorf("%w: %v", ErrInconsistentInput, err)
	}
	d.IndsR = d.TAg.Find(utils.GreaterOrEqual, d.Ns)
	d.OriginalPositionsRotor = make(utils.Index, len(d.IndsR))
	for i, p := range d.IndsR {
		r := d.TAg[p] - d.Ns
		if r >= d.Nr || rank[r] < 0 {
			return fmt.Errorf("%w: rotor corner at position %d (local node %d) is missing from the sorted rotor nodes",
				ErrInconsistentInput, p, d.TAg[p])
		}
		d.OriginalPositionsRotor[i] = rank[r]
	}
	d.ShiftTol = 2 * math.Pi / float64(d.Nr)
	return
}

func gatherColumns(P *mat.Dense, cols utils.Index) (G *mat.Dense) {
	G = mat.NewDense(2, len(cols), nil)
	for j, col := range cols {
		G.Set(0, j, P.At(0, col))
		G.Set(1, j, P.At(1, col))
	}
	return
}
