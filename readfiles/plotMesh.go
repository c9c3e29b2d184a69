package readfiles

import (
	"time"

	"github.com/notargets/avs/chart2d"
	"github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"
	"github.com/notargets/movingband/geometry2D"
	"github.com/notargets/movingband/movingband"
	"gonum.org/v1/gonum/mat"
)

// BandTriMesh converts the air gap triangulation of a band descriptor into an AVS TriMesh.
// P holds the global node coordinates of the mesh the descriptor was built from.
func BandTriMesh(bd movingband.BandDescriptor, P mat.Matrix) (gm geometry.TriMesh) {
	var (
		d  = bd.Plain()
		nl = len(d.AgNodesGlobal)
	)
	gm.XY = make([]float32, 2*nl)
	for l, g := range d.AgNodesGlobal {
		gm.XY[2*l+0] = float32(P.At(0, g))
		gm.XY[2*l+1] = float32(P.At(1, g))
	}
	gm.TriVerts = make([][3]int64, d.Ne)
	for e := range gm.TriVerts {
		for c := 0; c < 3; c++ {
			gm.TriVerts[e][c] = int64(d.TAg[3*e+c])
		}
	}
	return
}

// RotorRing returns line segments joining the rotor nodes in angular order, closing the circle
// when the descriptor covers all sectors
func RotorRing(bd movingband.BandDescriptor, P mat.Matrix) (line []float32) {
	var (
		d      = bd.Plain()
		coords = func(l int) (x, y float32) {
			g := d.AgNodesGlobal[l]
			return float32(P.At(0, g)), float32(P.At(1, g))
		}
		closed bool
	)
	if sd, ok := bd.(*movingband.SymmetricBandDescriptor); ok {
		coords = func(l int) (x, y float32) {
			return float32(sd.PAgVirt.At(0, l)), float32(sd.PAgVirt.At(1, l))
		}
		closed = true
	}
	nSeg := d.Nr - 1
	if closed {
		nSeg = d.Nr
	}
	for i := 0; i < nSeg; i++ {
		x1, y1 := coords(d.SortedNodesRotor[i])
		x2, y2 := coords(d.SortedNodesRotor[(i+1)%d.Nr])
		line = append(line, x1, y1, x2, y2)
	}
	return
}

// BandCoordinates returns the [2][N] coordinates of the band nodes in local numbering, including
// the virtual rotor nodes of a symmetric band
func BandCoordinates(bd movingband.BandDescriptor, P mat.Matrix) (Pb *mat.Dense) {
	if sd, ok := bd.(*movingband.SymmetricBandDescriptor); ok {
		return sd.PAgVirt
	}
	d := bd.Plain()
	Pb = mat.NewDense(2, len(d.AgNodesGlobal), nil)
	for l, g := range d.AgNodesGlobal {
		Pb.Set(0, l, P.At(0, g))
		Pb.Set(1, l, P.At(1, g))
	}
	return
}

// PlotBand displays the air gap triangulation with the rotor ring overlaid, then waits for delay
func PlotBand(bd movingband.BandDescriptor, P mat.Matrix, delay time.Duration) {
	var (
		gm   = BandTriMesh(bd, P)
		line = RotorRing(bd, P)
		box  = geometry2D.NewBoundingBoxFromMatrix(BandCoordinates(bd, P)).Scale(1.1).Square()
	)
	ch := chart2d.NewChart2D(
		float32(box.XMin[0]), float32(box.XMax[0]), float32(box.XMin[1]), float32(box.XMax[1]),
		1024, 1024, utils2.WHITE, utils2.BLACK)
	ch.AddTriMesh(gm)
	if len(line) != 0 {
		ch.AddLine(line, utils2.RED)
	}
	time.Sleep(delay)
}
