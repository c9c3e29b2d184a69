package movingband

import "fmt"

// TriangulationSource selects where the air gap triangulation comes from
type TriangulationSource interface {
	triangulationSource()
}

// ExplicitTriangulation is an air gap triangulation given in global mesh node indices
type ExplicitTriangulation struct {
	Tris [][3]int
}

// Dimensions describes the air gap of a machine for automatic band generation
type Dimensions struct {
	RotorRadius  float64
	StatorRadius float64
}

// AutoGenerate requests an air gap triangulation derived from the machine dimensions
type AutoGenerate struct {
	Dimensions Dimensions
}

func (ExplicitTriangulation) triangulationSource() {}
func (AutoGenerate) triangulationSource() {}

func resolveTriangulation(sources []TriangulationSource) (tris [][3]int, err error) {
	if len(sources) != 1 {
		err = fmt.Errorf("%w: expected exactly one air gap triangulation source, have %d",
			ErrConfiguration, len(sources))
		return
	}
	switch src := sources[0].(type) {
	case ExplicitTriangulation:
		if len(src.Tris) == 0 {
			err = fmt.Errorf("%w: explicit air gap triangulation is empty", ErrConfiguration)
			return
		}
		tris = src.Tris
	case *ExplicitTriangulation:
		if src == nil {
			err = fmt.Errorf("%w: nil air gap triangulation", ErrConfiguration)
			return
		}
		return resolveTriangulation([]TriangulationSource{*src})
	case AutoGenerate, *AutoGenerate:
		err = fmt.Errorf("%w: air gap triangulation from machine dimensions", ErrNotImplemented)
	default:
		err = fmt.Errorf("%w: unknown triangulation source %T", ErrConfiguration, src)
	}
	return
}
