package movingband

import (
	"fmt"

	"github.com/notargets/movingband/mesh"
	"github.com/notargets/movingband/utils"
)

// classification is the stator / rotor split of the air gap nodes in local indexing
type classification struct {
	agNodesGlobal utils.Index // Local to global, stator block then rotor block
	Ns, Nr        int
	tAg           utils.Index // Air gap triangles in local indices, flattened 3 per element
}

func (c *classification) statorGlobal() utils.Index { return c.agNodesGlobal[:c.Ns] }
func (c *classification) rotorGlobal() utils.Index { return c.agNodesGlobal[c.Ns:] }

// checkElementSets verifies the stator and rotor element sets address the mesh and do not overlap
func checkElementSets(msh *mesh.Mesh, statorElements, rotorElements utils.Index) (err error) {
	var (
		K = len(msh.EToV)
	)
	if err = statorElements.CheckBounds(K); err != nil {
		return fmt.Errorf("%w: stator elements: %v", ErrInconsistentInput, err)
	}
	if err = rotorElements.CheckBounds(K); err != nil {
		return fmt.Errorf("%w: rotor elements: %v", ErrInconsistentInput, err)
	}
	isRotor := make([]bool, K)
	for _, k := range rotorElements {
		isRotor[k] = true
	}
	for _, k := range statorElements {
		if isRotor[k] {
			return fmt.Errorf("%w: element %d is listed as both stator and rotor", ErrInconsistentInput, k)
		}
	}
	return
}

// classifyNodes splits the air gap nodes into stator nodes and nodes attached to a rotor element,
// then re-expresses the triangulation in the local numbering
func classifyNodes(msh *mesh.Mesh, rotorElements utils.Index, tris [][3]int) (c *classification, err error) {
	var (
		Nv      = msh.NumVertices
		isRotor = make([]bool, Nv)
		corners = make(utils.Index, 0, 3*len(tris))
	)
	for _, k := range rotorElements {
		for _, v := range msh.EToV[k] {
			isRotor[v] = true
		}
	}
	for e, tri := range tris {
		for i, v := range tri {
			if v < 0 || v >= Nv {
				err = fmt.Errorf("%w: air gap triangle %d references node %d, mesh has %d nodes",
					ErrInconsistentInput, e, v, Nv)
				return
			}
			if tri[(i+1)%3] == v {
				err = fmt.Errorf("%w: air gap triangle %d is degenerate %v", ErrInconsistentInput, e, tri)
				return
			}
		}
		corners = append(corners, tri[:]...)
	}

	c = &classification{}
	agNodes := corners.Unique()
	stator := make(utils.Index, 0, len(agNodes))
	rotor := make(utils.Index, 0, len(agNodes))
	for _, v := range agNodes {
		if isRotor[v] {
			rotor = append(rotor, v)
		} else {
			stator = append(stator, v)
		}
	}
	c.Ns, c.Nr = len(stator), len(rotor)
	switch {
	case c.Nr == 0:
		err = fmt.Errorf("%w: air gap triangulation touches no rotor element node", ErrInconsistentInput)
		return nil, err
	case c.Ns == 0:
		err = fmt.Errorf("%w: air gap triangulation touches no stator node", ErrInconsistentInput)
		return nil, err
	}
	c.agNodesGlobal = append(stator, rotor...)

	globalToLocal := make(map[int]int, len(c.agNodesGlobal))
	for local, global := range c.agNodesGlobal {
		globalToLocal[global] = local
	}
	c.tAg = make(utils.Index, len(corners))
	for p, global := range corners {
		local, ok := globalToLocal[global]
		if !ok {
			err = fmt.Errorf("%w: air gap corner %d (global node %d) is not a classified air gap node",
				ErrInconsistentInput, p, global)
			return nil, err
		}
		c.tAg[p] = local
	}
	return
}
