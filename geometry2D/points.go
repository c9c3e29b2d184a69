package geometry2D

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

type Point struct {
	X [2]float64
}

// Angle returns the polar angle of (x, y) normalized into [0, 2Pi)
func Angle(x, y float64) (theta float64) {
	theta = math.Atan2(y, x)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	// A tiny negative angle can round up to exactly 2Pi
	if theta >= 2*math.Pi {
		theta = 0
	}
	return
}

// Angles returns the polar angle of every column of a 2xN coordinate matrix
func Angles(P mat.Matrix) (theta []float64) {
	var (
		_, N = P.Dims()
	)
	theta = make([]float64, N)
	for j := 0; j < N; j++ {
		theta[j] = Angle(P.At(0, j), P.At(1, j))
	}
	return
}

// MaxRadius returns the largest distance from the origin over the columns of a 2xN coordinate matrix
func MaxRadius(P mat.Matrix) (rMax float64) {
	var (
		_, N = P.Dims()
	)
	for j := 0; j < N; j++ {
		rMax = math.Max(rMax, math.Hypot(P.At(0, j), P.At(1, j)))
	}
	return
}

func RotationMatrix(theta float64) (R *mat.Dense) {
	var (
		c, s = math.Cos(theta), math.Sin(theta)
	)
	R = mat.NewDense(2, 2, []float64{
		c, -s,
		s, c,
	})
	return
}

// RotatePoints rotates every column of a 2xN coordinate matrix counter-clockwise about the origin
func RotatePoints(P mat.Matrix, theta float64) (Pr *mat.Dense) {
	var (
		_, N = P.Dims()
	)
	if N == 0 {
		return &mat.Dense{}
	}
	Pr = mat.NewDense(2, N, nil)
	Pr.Mul(RotationMatrix(theta), P)
	return
}
