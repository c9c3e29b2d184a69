package movingband

import (
	"fmt"
	"math"

	"github.com/notargets/movingband/geometry2D"
	"github.com/notargets/movingband/utils"
	"gonum.org/v1/gonum/mat"
)

// expansion holds the stator nodes of the modeled sector followed by the rotor nodes
// of all sectors, with coincident copies at the sector joins removed
type expansion struct {
	pAgVirt        *mat.Dense  // [2][Ns+Nr]
	virtSectors    utils.Index // Sector of each node, 0 is the modeled sector
	virtIdentities utils.Index // Global node each node is a copy of
	Nr             int         // Surviving rotor nodes over all sectors
	removed        int         // Copies dropped as duplicates
}

// pointHash finds previously inserted points within a tolerance box of a query point
type pointHash struct {
	tol   float64
	cells map[[2]int64][]int
	xy    [][2]float64
}

func newPointHash(tol float64, capacity int) *pointHash {
	return &pointHash{
		tol:   tol,
		cells: make(map[[2]int64][]int, capacity),
		xy:    make([][2]float64, 0, capacity),
	}
}

func (ph *pointHash) cell(x, y float64) [2]int64 {
	return [2]int64{int64(math.Floor(x / ph.tol)), int64(math.Floor(y / ph.tol))}
}

func (ph *pointHash) insert(x, y float64) {
	key := ph.cell(x, y)
	ph.cells[key] = append(ph.cells[key], len(ph.xy))
	ph.xy = append(ph.xy, [2]float64{x, y})
}

func (ph *pointHash) contains(x, y float64) bool {
	key := ph.cell(x, y)
	for di := int64(-1); di <= 1; di++ {
		for dj := int64(-1); dj <= 1; dj++ {
			for _, n := range ph.cells[[2]int64{key[0] + di, key[1] + dj}] {
				if math.Abs(ph.xy[n][0]-x) <= ph.tol && math.Abs(ph.xy[n][1]-y) <= ph.tol {
					return true
				}
			}
		}
	}
	return false
}

// coincidenceTol is a fraction of the smallest distance between angularly adjacent rotor nodes,
// so sector boundary nodes that are not exact rotations of each other still match.
// It never drops below COINCIDENTTOL*rMax.
func coincidenceTol(pRotor mat.Matrix, rMax float64) (tol float64) {
	var (
		_, N       = pRotor.Dims()
		order      = sortByAngle(nodeAngles(pRotor), 0)
		minSpacing = math.Inf(1)
	)
	tol = utils.COINCIDENTTOL * rMax
	for i := 1; i < N; i++ {
		a, b := order[i-1], order[i]
		minSpacing = math.Min(minSpacing,
			math.Hypot(pRotor.At(0, a)-pRotor.At(0, b), pRotor.At(1, a)-pRotor.At(1, b)))
	}
	if N > 1 {
		tol = math.Max(tol, utils.SPACINGFRACTION*minSpacing)
	}
	return
}

// expandSymmetry replicates the rotor nodes of the modeled sector into all symm sectors.
// Sector k is the base rotor boundary rotated by k*2Pi/symm. The base sector survives whole;
// a copy that lands on an already kept rotor node is dropped, which removes the first node of
// every later sector and the final node that closes the cycle onto the base sector.
func expandSymmetry(pStator, pRotor mat.Matrix, statorGlobal, rotorGlobal utils.Index, symm int) (ex *expansion, err error) {
	var (
		Ns     = len(statorGlobal)
		NrBase = len(rotorGlobal)
		rMax   = geometry2D.MaxRadius(pRotor)
	)
	if symm < 2 {
		err = fmt.Errorf("%w: symmetry expansion needs at least 2 sectors, have %d", ErrConfiguration, symm)
		return
	}
	if rMax == 0 {
		err = fmt.Errorf("%w: rotor air gap nodes all lie on the rotation axis", ErrInconsistentInput)
		return
	}
	var (
		ph      = newPointHash(coincidenceTol(pRotor, rMax), symm*NrBase)
		kept    = make([][2]float64, 0, symm*NrBase)
		sectors = make(utils.Index, 0, symm*NrBase)
		ids     = make(utils.Index, 0, symm*NrBase)
	)
	for k := 0; k < symm; k++ {
		pk := geometry2D.RotatePoints(pRotor, float64(k)*2*math.Pi/float64(symm))
		for r := 0; r < NrBase; r++ {
			x, y := pk.At(0, r), pk.At(1, r)
			if k > 0 && ph.contains(x, y) {
				continue
			}
			ph.insert(x, y)
			kept = append(kept, [2]float64{x, y})
			sectors = append(sectors, k)
			ids = append(ids, rotorGlobal[r])
		}
	}

	ex = &expansion{
		pAgVirt:        mat.NewDense(2, Ns+len(kept), nil),
		virtSectors:    append(make(utils.Index, Ns), sectors...),
		virtIdentities: append(statorGlobal.Copy(), ids...),
		Nr:             len(kept),
		removed:        symm*NrBase - len(kept),
	}
	for j := 0; j < Ns; j++ {
		ex.pAgVirt.Set(0, j, pStator.At(0, j))
		ex.pAgVirt.Set(1, j, pStator.At(1, j))
	}
	for j, xy := range kept {
		ex.pAgVirt.Set(0, Ns+j, xy[0])
		ex.pAgVirt.Set(1, Ns+j, xy[1])
	}
	return
}
