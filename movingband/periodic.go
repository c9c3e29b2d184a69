package movingband

import (
	"fmt"
	"sort"

	"github.com/notargets/movingband/utils"
)

/*
ElTable maps every virtual node of a symmetric band back to the node of the modeled sector it
copies. The field value at Nodes[i] is Coefficients[i] times the value at global node Identities[i].
*/
type ElTable struct {
	Nodes        utils.Index  // Node index in PAgVirt, ascending
	Identities   utils.Index  // Global node of the modeled sector
	Coefficients []complex128 // Kappa^sector
}

func newElTable(sectors, identities utils.Index, kappa complex128, symm int) (et ElTable) {
	var (
		powers = kappaPowers(kappa, symm)
	)
	et.Nodes = sectors.Find(utils.Greater, 0)
	et.Identities = identities.Subset(et.Nodes)
	et.Coefficients = make([]complex128, len(et.Nodes))
	for i, v := range et.Nodes {
		et.Coefficients[i] = powers[sectors[v]]
	}
	return
}

// kappaPowers returns Kappa^k for k in [0, symm), by repeated multiplication so that powers of +-1 and +-i stay exact
func kappaPowers(kappa complex128, symm int) (powers []complex128) {
	powers = make([]complex128, symm)
	powers[0] = 1
	for k := 1; k < symm; k++ {
		powers[k] = powers[k-1] * kappa
	}
	return
}

func (et ElTable) Len() int { return len(et.Nodes) }

// Coefficient returns the multiplier applied to the modeled sector value for a virtual node
func (et ElTable) Coefficient(node int) (coeff complex128, identity int, ok bool) {
	i := sort.SearchInts(et.Nodes, node)
	if i == len(et.Nodes) || et.Nodes[i] != node {
		return
	}
	return et.Coefficients[i], et.Identities[i], true
}

/*
PeriodicOperator returns the real and imaginary parts of the (Ns+Nr) x nGlobal matrix taking nodal
values of the modeled sector, indexed by global node, to values at every stator, real rotor and
virtual rotor node of the band. Row v has the single entry Kappa^VirtSectors[v] in column VirtIdentities[v].
*/
func (d *SymmetricBandDescriptor) PeriodicOperator(nGlobal int) (Re, Im utils.CSR, err error) {
	var (
		nv     = d.Ns + d.Nr
		powers = kappaPowers(d.Kappa, d.Symmetry)
	)
	if nGlobal <= d.VirtIdentities.Max() {
		err = fmt.Errorf("%w: %d global nodes cannot hold band node identity %d",
			ErrConfiguration, nGlobal, d.VirtIdentities.Max())
		return
	}
	ReD, ImD := utils.NewDOK(nv, nGlobal), utils.NewDOK(nv, nGlobal)
	for v := 0; v < nv; v++ {
		coeff := powers[d.VirtSectors[v]]
		if real(coeff) != 0 {
			ReD.Set(v, d.VirtIdentities[v], real(coeff))
		}
		if imag(coeff) != 0 {
			ImD.Set(v, d.VirtIdentities[v], imag(coeff))
		}
	}
	ReD.SetReadOnly("PeriodicOperatorRe")
	ImD.SetReadOnly("PeriodicOperatorIm")
	Re, Im = ReD.ToCSR(), ImD.ToCSR()
	return
}

// ReconstructVirtual returns the field value at every node of the band given the modeled sector solution by global node
func (d *SymmetricBandDescriptor) ReconstructVirtual(base []complex128) (values []complex128, err error) {
	var (
		Re, Im         utils.CSR
		rr, ri, ir, ii []float64
		baseRe         = make([]float64, len(base))
		baseIm         = make([]float64, len(base))
	)
	if Re, Im, err = d.PeriodicOperator(len(base)); err != nil {
		return
	}
	for i, u := range base {
		baseRe[i], baseIm[i] = real(u), imag(u)
	}
	for _, prod := range []struct {
		dst *[]float64
		A   utils.CSR
		x   []float64
	}{{&rr, Re, baseRe}, {&ri, Re, baseIm}, {&ir, Im, baseRe}, {&ii, Im, baseIm}} {
		if *prod.dst, err = prod.A.MulVec(prod.x); err != nil {
			return
		}
	}
	values = make([]complex128, len(rr))
	for v := range values {
		values[v] = complex(rr[v]-ii[v], ri[v]+ir[v])
	}
	return
}
