package geometry2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestAngle(t *testing.T) {
	var (
		tol = 1.e-12
	)
	assert.InDelta(t, 0, Angle(1, 0), tol)
	assert.InDelta(t, 0.5*math.Pi, Angle(0, 2), tol)
	assert.InDelta(t, math.Pi, Angle(-1, 0), tol)
	assert.InDelta(t, 1.5*math.Pi, Angle(0, -1), tol)
	assert.InDelta(t, 1.75*math.Pi, Angle(1, -1), tol)
	// Negative zero and tiny negative angles stay inside [0, 2Pi)
	{
		theta := Angle(1, -1.e-300)
		assert.True(t, theta >= 0 && theta < 2*math.Pi)
		theta = Angle(1, math.Copysign(0, -1))
		assert.True(t, theta >= 0 && theta < 2*math.Pi)
	}
	{
		P := mat.NewDense(2, 3, []float64{
			1, 0, -1,
			0, 1, 0,
		})
		assert.True(t, floats.EqualApprox([]float64{0, 0.5 * math.Pi, math.Pi}, Angles(P), tol))
		assert.InDelta(t, 1, MaxRadius(P), tol)
	}
}

func TestRotatePoints(t *testing.T) {
	var (
		tol = 1.e-12
	)
	P := mat.NewDense(2, 2, []float64{
		1, 0,
		0, 2,
	})
	Pr := RotatePoints(P, 0.5*math.Pi)
	assert.InDelta(t, 0, Pr.At(0, 0), tol)
	assert.InDelta(t, 1, Pr.At(1, 0), tol)
	assert.InDelta(t, -2, Pr.At(0, 1), tol)
	assert.InDelta(t, 0, Pr.At(1, 1), tol)
	// Input is left untouched
	assert.Equal(t, 1., P.At(0, 0))
	// Rotation by a full turn is the identity
	Pr = RotatePoints(P, 2*math.Pi)
	assert.True(t, mat.EqualApprox(P, Pr, tol))
}

func TestBoundingBox(t *testing.T) {
	P := mat.NewDense(2, 3, []float64{
		-1, 2, 0,
		0, 1, 3,
	})
	bb := NewBoundingBoxFromMatrix(P)
	assert.Equal(t, [2]float64{-1, 0}, bb.XMin)
	assert.Equal(t, [2]float64{2, 3}, bb.XMax)
	assert.Equal(t, [2]float64{0.5, 1.5}, bb.Centroid().X)
	sq := bb.Square()
	assert.InDelta(t, sq.XMax[0]-sq.XMin[0], sq.XMax[1]-sq.XMin[1], 1.e-12)
	sc := bb.Scale(2)
	assert.Equal(t, [2]float64{-2.5, -1.5}, sc.XMin)
	assert.Nil(t, NewBoundingBoxFromMatrix(&mat.Dense{}))
}
