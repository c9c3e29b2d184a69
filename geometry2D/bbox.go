package geometry2D

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

type BoundingBox struct {
	XMin [2]float64
	XMax [2]float64
}

func NewBoundingBox(Geometry []Point) (Box *BoundingBox) {
	if len(Geometry) == 0 {
		return nil
	}
	Box = new(BoundingBox)
	Box.XMin = Geometry[0].X
	Box.XMax = Geometry[0].X
	for _, point := range Geometry {
		for i := 0; i < 2; i++ {
			Box.XMin[i] = math.Min(Box.XMin[i], point.X[i])
			Box.XMax[i] = math.Max(Box.XMax[i], point.X[i])
		}
	}
	return Box
}

// NewBoundingBoxFromMatrix bounds the columns of a 2xN coordinate matrix
func NewBoundingBoxFromMatrix(P mat.Matrix) (Box *BoundingBox) {
	var (
		_, N = P.Dims()
	)
	if N == 0 {
		return nil
	}
	pts := make([]Point, N)
	for j := range pts {
		pts[j].X = [2]float64{P.At(0, j), P.At(1, j)}
	}
	return NewBoundingBox(pts)
}

func (bb *BoundingBox) Centroid() (centroid *Point) {
	return &Point{X: [2]float64{
		0.5 * (bb.XMax[0] + bb.XMin[0]),
		0.5 * (bb.XMax[1] + bb.XMin[1]),
	}}
}

func (bb *BoundingBox) Scale(scale float64) (bbOut *BoundingBox) {
	bbOut = new(BoundingBox)
	for i := 0; i < 2; i++ {
		xRange := bb.XMax[i] - bb.XMin[i]
		centroid := bb.XMin[i] + 0.5*xRange
		bbOut.XMin[i] = scale*(bb.XMin[i]-centroid) + centroid
		bbOut.XMax[i] = scale*(bb.XMax[i]-centroid) + centroid
	}
	return bbOut
}

// Square expands the shorter side so both axes share the longer range
func (bb *BoundingBox) Square() (bbOut *BoundingBox) {
	var (
		ct    = bb.Centroid()
		width = math.Max(bb.XMax[0]-bb.XMin[0], bb.XMax[1]-bb.XMin[1])
	)
	bbOut = new(BoundingBox)
	for i := 0; i < 2; i++ {
		bbOut.XMin[i] = ct.X[i] - 0.5*width
		bbOut.XMax[i] = ct.X[i] + 0.5*width
	}
	return bbOut
}
