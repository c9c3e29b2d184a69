package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/notargets/movingband/mesh"
	"github.com/notargets/movingband/utils"
)

// gmshElementType22 maps Gmsh element type numbers to element types
var gmshElementType22 = map[int]utils.ElementType{
	1:  utils.Line,
	2:  utils.Triangle,
	3:  utils.Quad,
	8:  utils.Line3,
	9:  utils.Triangle6,
	10: utils.Quad9,
	15: utils.Point,
	16: utils.Quad8,
}

// ReadMeshFile reads a mesh file based on extension
func ReadMeshFile(filename string) (*mesh.Mesh, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".msh":
		return ReadGmsh22(filename)
	default:
		return nil, fmt.Errorf("unsupported mesh format: %s", ext)
	}
}

// ReadGmsh22 reads a 2D machine cross-section from a Gmsh MSH file format version 2.2
func ReadGmsh22(filename string) (*mesh.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ParseGmsh22(file)
}

func ParseGmsh22(r io.Reader) (*mesh.Mesh, error) {
	scanner := bufio.NewScanner(r)
	msh := mesh.NewMesh()
	var haveNodes bool

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "$MeshFormat":
			if err := readMeshFormat22(scanner, msh); err != nil {
				return nil, err
			}

		case "$PhysicalNames":
			if err := readPhysicalNames(scanner, msh); err != nil {
				return nil, err
			}

		case "$Nodes":
			if err := readNodes22(scanner, msh); err != nil {
				return nil, err
			}
			haveNodes = true

		case "$Elements":
			if !haveNodes {
				return nil, fmt.Errorf("$Elements section before $Nodes")
			}
			if err := readElements22(scanner, msh); err != nil {
				return nil, err
			}

		default:
			// Skip $Periodic and data sections
			if strings.HasPrefix(line, "$") && !strings.HasPrefix(line, "$End") {
				if err := skipSection(scanner, "$End"+line[1:]); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %v", err)
	}
	if err := msh.Finalize(); err != nil {
		return nil, err
	}
	if msh.NumElements == 0 {
		return nil, fmt.Errorf("mesh has no triangle elements")
	}
	return msh, nil
}

func skipSection(scanner *bufio.Scanner, endMarker string) error {
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == endMarker {
			return nil
		}
	}
	return fmt.Errorf("unexpected EOF looking for %s", endMarker)
}

// readMeshFormat22 reads the MeshFormat section
func readMeshFormat22(scanner *bufio.Scanner, msh *mesh.Mesh) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in MeshFormat")
	}

	parts := strings.Fields(scanner.Text())
	if len(parts) < 3 {
		return fmt.Errorf("invalid MeshFormat line")
	}

	msh.FormatVersion = parts[0]
	if !strings.HasPrefix(msh.FormatVersion, "2.") {
		return fmt.Errorf("unsupported Gmsh format version %s, need 2.2", msh.FormatVersion)
	}
	fileType, _ := strconv.Atoi(parts[1])
	msh.IsBinary = fileType == 1
	if msh.IsBinary {
		return fmt.Errorf("binary Gmsh files are not supported, save the mesh as ASCII")
	}
	msh.DataSize, _ = strconv.Atoi(parts[2])

	return skipSection(scanner, "$EndMeshFormat")
}

// readPhysicalNames reads physical group names
func readPhysicalNames(scanner *bufio.Scanner, msh *mesh.Mesh) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in PhysicalNames")
	}

	numNames, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return fmt.Errorf("invalid PhysicalNames count: %v", err)
	}

	for i := 0; i < numNames; i++ {
		if !scanner.Scan() {
			return fmt.Errorf("unexpected EOF reading physical names")
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) < 3 {
			continue
		}
		dimension, _ := strconv.Atoi(parts[0])
		tag, _ := strconv.Atoi(parts[1])
		name := strings.Trim(parts[2], "\"")

		// Join remaining parts if name contains spaces
		for j := 3; j < len(parts); j++ {
			name += " " + strings.Trim(parts[j], "\"")
		}
		// Only surface groups carry elements of a 2D mesh
		if dimension != 2 {
			continue
		}

		msh.ElementGroups[tag] = &mesh.ElementGroup{
			Dimension: dimension,
			Tag:       tag,
			Name:      name,
			Elements:  utils.Index{},
		}
	}

	return skipSection(scanner, "$EndPhysicalNames")
}

// readNodes22 reads nodes in v2.2 format, z is ignored
func readNodes22(scanner *bufio.Scanner, msh *mesh.Mesh) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in Nodes")
	}

	numNodes, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return fmt.Errorf("invalid Nodes count: %v", err)
	}

	for i := 0; i < numNodes; i++ {
		if !scanner.Scan() {
			return fmt.Errorf("unexpected EOF reading nodes")
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) < 3 {
			return fmt.Errorf("invalid node line: %s", scanner.Text())
		}

		nodeID, err := strconv.Atoi(parts[0])
		if err != nil {
			return fmt.Errorf("invalid node id in line %q: %v", scanner.Text(), err)
		}
		var xy [2]float64
		for j := range xy {
			if xy[j], err = strconv.ParseFloat(parts[1+j], 64); err != nil {
				return fmt.Errorf("invalid coordinate in node %d: %v", nodeID, err)
			}
		}

		msh.AddNode(nodeID, xy[:])
	}

	return skipSection(scanner, "$EndNodes")
}

// readElements22 reads the triangles of a v2.2 file, points and lines are skipped
func readElements22(scanner *bufio.Scanner, msh *mesh.Mesh) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in Elements")
	}

	numElements, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return fmt.Errorf("invalid Elements count: %v", err)
	}

	for i := 0; i < numElements; i++ {
		if !scanner.Scan() {
			return fmt.Errorf("unexpected EOF reading elements")
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) < 4 {
			return fmt.Errorf("invalid element line: %s", scanner.Text())
		}

		elemID, _ := strconv.Atoi(parts[0])
		elemType, _ := strconv.Atoi(parts[1])
		numTags, _ := strconv.Atoi(parts[2])

		if len(parts) < 3+numTags {
			return fmt.Errorf("element %d: invalid element tags", elemID)
		}

		tags := make([]int, numTags)
		for j := 0; j < numTags; j++ {
			tags[j], _ = strconv.Atoi(parts[3+j])
		}

		etype, ok := gmshElementType22[elemType]
		if !ok {
			return fmt.Errorf("element %d: unsupported Gmsh element type %d", elemID, elemType)
		}
		if etype.GetDimension() < 2 {
			continue
		}

		expectedNodes := etype.GetNumNodes()
		nodeStart := 3 + numTags
		if len(parts) < nodeStart+expectedNodes {
			return fmt.Errorf("element %d: expected %d nodes, got %d",
				elemID, expectedNodes, len(parts)-nodeStart)
		}

		nodeIDs := make([]int, expectedNodes)
		for j := 0; j < expectedNodes; j++ {
			nodeIDs[j], _ = strconv.Atoi(parts[nodeStart+j])
		}

		if err := msh.AddElement(elemID, etype, tags, nodeIDs); err != nil {
			return err
		}
	}

	return skipSection(scanner, "$EndElements")
}
