package mesh

import (
	"fmt"
	"sort"

	"github.com/notargets/movingband/utils"
	"gonum.org/v1/gonum/mat"
)

// ElementGroup is a named physical region of the machine cross-section, e.g. "rotor_iron" or "airgap"
type ElementGroup struct {
	Dimension int
	Tag       int
	Name      string
	Elements  utils.Index // Indices into Mesh.EToV
}

// Mesh is a 2D triangle mesh of a machine cross-section
type Mesh struct {
	// Geometry
	P *mat.Dense // Node coordinates [2][NumVertices], built by Finalize

	// Element data
	EToV          [][3]int              // Triangle to vertex connectivity, zero based
	ElementTypes  []utils.ElementType   // Source element type, linear or quadratic triangle
	ElementTags   [][]int               // Tags read for each element, physical group first
	ElementGroups map[int]*ElementGroup // Physical groups by tag
	NodeIDMap     map[int]int           // File node ID to array index
	vertices      [][2]float64          // Staging for P while reading

	// Periodicity of the modeled sector
	Symmetry int        // Number of sectors in the full machine, <= 1 when the full machine is modeled
	Kappa    complex128 // Periodicity coefficient between adjacent sectors

	// File metadata
	FormatVersion string
	IsBinary      bool
	DataSize      int

	NumElements int
	NumVertices int
}

func NewMesh() *Mesh {
	return &Mesh{
		ElementGroups: make(map[int]*ElementGroup),
		NodeIDMap:     make(map[int]int),
		Symmetry:      1,
		Kappa:         1,
	}
}

// NewMeshFromArrays builds a mesh from a 2xN coordinate matrix and zero based triangle connectivity
func NewMeshFromArrays(P *mat.Dense, EToV [][3]int) (m *Mesh, err error) {
	var (
		nr, nc = P.Dims()
	)
	if nr != 2 {
		err = fmt.Errorf("node coordinates must be 2xN, have %dx%d", nr, nc)
		return
	}
	m = NewMesh()
	m.P = P
	m.NumVertices = nc
	m.EToV = EToV
	m.NumElements = len(EToV)
	m.ElementTypes = make([]utils.ElementType, len(EToV))
	m.ElementTags = make([][]int, len(EToV))
	for k, tri := range EToV {
		for _, v := range tri {
			if v < 0 || v >= nc {
				err = fmt.Errorf("element %d references vertex %d, mesh has %d vertices", k, v, nc)
				return nil, err
			}
		}
		m.ElementTypes[k] = utils.Triangle
		m.ElementTags[k] = []int{0}
	}
	return
}

func (m *Mesh) AddNode(nodeID int, coords []float64) {
	var (
		xy [2]float64
	)
	copy(xy[:], coords)
	m.NodeIDMap[nodeID] = len(m.vertices)
	m.vertices = append(m.vertices, xy)
	m.NumVertices = len(m.vertices)
}

func (m *Mesh) GetNodeIndex(nodeID int) (idx int, ok bool) {
	idx, ok = m.NodeIDMap[nodeID]
	return
}

// AddElement appends a triangle given by file node IDs, quadratic triangles keep their corner nodes
func (m *Mesh) AddElement(elemID int, etype utils.ElementType, tags []int, nodeIDs []int) (err error) {
	var (
		tri [3]int
	)
	if !etype.IsTriangle() {
		err = fmt.Errorf("element %d: unsupported element type %v, only triangles are supported", elemID, etype)
		return
	}
	if len(nodeIDs) < 3 {
		err = fmt.Errorf("element %d: expected 3 corner nodes, got %d", elemID, len(nodeIDs))
		return
	}
	for i := 0; i < 3; i++ {
		idx, ok := m.GetNodeIndex(nodeIDs[i])
		if !ok {
			err = fmt.Errorf("element %d references unknown node %d", elemID, nodeIDs[i])
			return
		}
		tri[i] = idx
	}
	k := len(m.EToV)
	m.EToV = append(m.EToV, tri)
	m.ElementTypes = append(m.ElementTypes, etype)
	m.ElementTags = append(m.ElementTags, tags)
	m.NumElements = len(m.EToV)

	var physicalTag int
	if len(tags) > 0 {
		physicalTag = tags[0]
	}
	group, ok := m.ElementGroups[physicalTag]
	if !ok {
		group = &ElementGroup{
			Dimension: 2,
			Tag:       physicalTag,
			Name:      fmt.Sprintf("group_%d", physicalTag),
		}
		m.ElementGroups[physicalTag] = group
	}
	group.Elements = append(group.Elements, k)
	return
}

// Finalize moves the staged vertices into the coordinate matrix
func (m *Mesh) Finalize() (err error) {
	if len(m.vertices) == 0 {
		err = fmt.Errorf("mesh has no vertices")
		return
	}
	m.P = mat.NewDense(2, len(m.vertices), nil)
	for j, xy := range m.vertices {
		m.P.Set(0, j, xy[0])
		m.P.Set(1, j, xy[1])
	}
	m.NumVertices = len(m.vertices)
	m.vertices = nil
	return
}

// SetSymmetry declares that the mesh models one of symm identical sectors of the machine
func (m *Mesh) SetSymmetry(symm int, kappa complex128) (err error) {
	if symm < 1 {
		err = fmt.Errorf("sector count must be at least 1, have %d", symm)
		return
	}
	m.Symmetry = symm
	m.Kappa = kappa
	return
}

func (m *Mesh) HasSymmetry() bool {
	return m.Symmetry > 1
}

// GroupByName returns the physical group with the given name
func (m *Mesh) GroupByName(name string) (group *ElementGroup, ok bool) {
	for _, g := range m.ElementGroups {
		if g.Name == name {
			return g, true
		}
	}
	return nil, false
}

// GroupElements returns the sorted union of elements belonging to the named groups
func (m *Mesh) GroupElements(names ...string) (elements utils.Index, err error) {
	elements = utils.Index{}
	for _, name := range names {
		group, ok := m.GroupByName(name)
		if !ok {
			err = fmt.Errorf("no element group named %q, have %v", name, m.GroupNames())
			return nil, err
		}
		elements = append(elements, group.Elements...)
	}
	elements = elements.Unique()
	return
}

func (m *Mesh) GroupNames() (names []string) {
	for _, g := range m.ElementGroups {
		names = append(names, g.Name)
	}
	sort.Strings(names)
	return
}

// Triangles returns the connectivity of the listed elements
func (m *Mesh) Triangles(elements utils.Index) (tris [][3]int, err error) {
	if err = elements.CheckBounds(len(m.EToV)); err != nil {
		err = fmt.Errorf("element list: %w", err)
		return
	}
	tris = make([][3]int, len(elements))
	for i, k := range elements {
		tris[i] = m.EToV[k]
	}
	return
}
