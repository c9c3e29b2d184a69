package movingband

import (
	"math"
	"math/rand"
	"testing"

	"github.com/notargets/movingband/mesh"
	"github.com/notargets/movingband/utils"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// polarMesh builds a mesh whose node i sits at radius R[i] and angle Theta[i]
func polarMesh(t *testing.T, R, Theta []float64, EToV [][3]int) *mesh.Mesh {
	n := len(R)
	P := mat.NewDense(2, n, nil)
	for i := 0; i < n; i++ {
		P.Set(0, i, R[i]*math.Cos(Theta[i]))
		P.Set(1, i, R[i]*math.Sin(Theta[i]))
	}
	msh, err := mesh.NewMeshFromArrays(P, EToV)
	require.NoError(t, err)
	return msh
}

/*
fullCircleMesh is a rotor square inside a stator square:
rotor nodes 0..3 at radius 0.9 and angles Pi/4 + i*Pi/2, stator nodes 4..7 at radius 1 and angles
i*Pi/2, hub node 8 at the origin. Elements 0..3 are rotor iron, the air gap triangles follow.
*/
func fullCircleMesh(t *testing.T) (msh *mesh.Mesh, rotor utils.Index, airGap [][3]int) {
	var (
		R     = []float64{.9, .9, .9, .9, 1, 1, 1, 1, 0}
		Theta = make([]float64, 9)
		EToV  [][3]int
	)
	for i := 0; i < 4; i++ {
		Theta[i] = math.Pi/4 + float64(i)*math.Pi/2
		Theta[4+i] = float64(i) * math.Pi / 2
	}
	for i := 0; i < 4; i++ {
		EToV = append(EToV, [3]int{8, i, (i + 1) % 4})
	}
	for i := 0; i < 4; i++ {
		si, sn, ri, rn := 4+i, 4+(i+1)%4, i, (i+1)%4
		airGap = append(airGap, [3]int{si, sn, ri}, [3]int{ri, sn, rn})
	}
	EToV = append(EToV, airGap...)
	msh = polarMesh(t, R, Theta, EToV)
	rotor = utils.NewRange(0, 3)
	return
}

/*
quarterMesh models one of four sectors: stator nodes 0..3 at radius 1 and angles 0, Pi/6, Pi/3,
Pi/2, rotor nodes 4..8 at radius 0.9 and angles k*Pi/8, hub node 9. Elements 0..3 are rotor iron.
*/
func quarterMesh(t *testing.T) (msh *mesh.Mesh, rotor utils.Index, airGap [][3]int) {
	var (
		R     = []float64{1, 1, 1, 1, .9, .9, .9, .9, .9, 0}
		Theta = []float64{0, math.Pi / 6, math.Pi / 3, math.Pi / 2, 0, math.Pi / 8, math.Pi / 4, 3 * math.Pi / 8, math.Pi / 2, 0}
		EToV  [][3]int
	)
	for k := 0; k < 4; k++ {
		EToV = append(EToV, [3]int{9, 4 + k, 5 + k})
	}
	airGap = [][3]int{{0, 4, 5}, {0, 5, 1}, {1, 5, 6}, {1, 6, 2}, {2, 6, 7}, {2, 7, 8}, {2, 8, 3}}
	EToV = append(EToV, airGap...)
	msh = polarMesh(t, R, Theta, EToV)
	rotor = utils.NewRange(0, 3)
	return
}

/*
ringMesh builds an air gap between Ns stator nodes at radius 1 and Nr rotor nodes at radius 0.9
rotated by theta, triangulated by walking both rings in angular order. Global node numbers are
shuffled so the classification cannot rely on input order. The hub is the last node.
*/
func ringMesh(t *testing.T, rng *rand.Rand, Ns, Nr int, theta float64) (msh *mesh.Mesh, rotor utils.Index, airGap [][3]int) {
	var (
		n     = Ns + Nr + 1
		perm  = rng.Perm(Ns + Nr)
		R     = make([]float64, n)
		Theta = make([]float64, n)
		EToV  [][3]int
	)
	s := func(i int) int { return perm[i%Ns] }
	r := func(j int) int { return perm[Ns+j%Nr] }
	hub := Ns + Nr
	for i := 0; i < Ns; i++ {
		R[s(i)], Theta[s(i)] = 1, 2*math.Pi*float64(i)/float64(Ns)
	}
	for j := 0; j < Nr; j++ {
		R[r(j)], Theta[r(j)] = .9, 2*math.Pi*float64(j)/float64(Nr)+theta
	}
	for j := 0; j < Nr; j++ {
		EToV = append(EToV, [3]int{hub, r(j), r(j + 1)})
	}
	nextS := func(i int) float64 { return 2 * math.Pi * float64(i+1) / float64(Ns) }
	nextR := func(j int) float64 { return 2*math.Pi*float64(j+1)/float64(Nr) + theta }
	for i, j := 0, 0; i < Ns || j < Nr; {
		if j == Nr || (i < Ns && nextS(i) <= nextR(j)) {
			airGap = append(airGap, [3]int{s(i), s(i + 1), r(j)})
			i++
		} else {
			airGap = append(airGap, [3]int{s(i), r(j), r(j + 1)})
			j++
		}
	}
	EToV = append(EToV, airGap...)
	msh = polarMesh(t, R, Theta, EToV)
	rotor = utils.NewRange(0, Nr-1)
	return
}
