package movingband

import (
	"sort"

	"github.com/notargets/movingband/geometry2D"
	"github.com/notargets/movingband/utils"
	"gonum.org/v1/gonum/mat"
)

// nodeAngles returns the angle in [0, 2Pi) of every column of a 2xN coordinate matrix
func nodeAngles(P mat.Matrix) []float64 {
	return geometry2D.Angles(P)
}

// sortByAngle returns offset+i for each node i, ordered by ascending angle.
// Nodes sharing an angle keep ascending index order.
func sortByAngle(angles []float64, offset int) (order utils.Index) {
	order = utils.NewRange(0, len(angles)-1)
	sort.SliceStable(order, func(i, j int) bool {
		return angles[order[i]] < angles[order[j]]
	})
	return order.Add(offset)
}
