package shape

import (
	"fmt"
)

// ElementType represents the reference finite elements with polynomial shape
// functions

type ElementType int

const (
	Unknown ElementType = iota
	// 1D elements
	Line
	Line3 // 3-node line (quadratic)
	// 2D elements
	Triangle
	Quad
	Triangle6 // 6-node triangle (quadratic)
	Quad9     // 9-node quad (biquadratic)
)

var elementNames = []string{
	"Unknown",
	"Line", "Line3",
	"Triangle", "Quad", "Triangle6", "Quad9",
}

// String representation of element types
func (e ElementType) String() string {
	if int(e) >= 0 && int(e) < len(elementNames) {
		return elementNames[e]
	}
	return "Invalid"
}

// NewElementType looks an element type up by its String name, case sensitive.
func NewElementType(label string) (ElementType, error) {
	for i, name := range elementNames {
		if i != 0 && name == label {
			return ElementType(i), nil
		}
	}
	return Unknown, fmt.Errorf("unknown element type %q, want one of %v", label, elementNames[1:])
}

// GetDimension returns the spatial dimension of the element
func (e ElementType) GetDimension() int {
	switch e {
	case Line, Line3:
		return 1
	case Triangle, Quad, Triangle6, Quad9:
		return 2
	default:
		return -1
	}
}

// GetNumNodes returns the number of nodes for each element type
func (e ElementType) GetNumNodes() int {
	switch e {
	case Line:
		return 2
	case Line3:
		return 3
	case Triangle:
		return 3
	case Quad:
		return 4
	case Triangle6:
		return 6
	case Quad9:
		return 9
	default:
		return -1
	}
}

// GetOrder is the polynomial order of the shape functions
func (e ElementType) GetOrder() int {
	switch e {
	case Line, Triangle, Quad:
		return 1
	case Line3, Triangle6, Quad9:
		return 2
	default:
		return -1
	}
}

// Domain is the reference domain an element is integrated over.
type Domain uint8

const (
	Interval Domain = iota // r in [-1,1]
	Square                 // (r,s) in [-1,1]^2
	Simplex                // r,s >= 0, r+s <= 1
)

func (e ElementType) GetDomain() Domain {
	switch e {
	case Triangle, Triangle6:
		return Simplex
	case Quad, Quad9:
		return Square
	default:
		return Interval
	}
}

// GetNodes returns the natural coordinates of the nodes, corners first.
func (e ElementType) GetNodes() (nodes [][]float64) {
	switch e {
	case Line:
		nodes = [][]float64{{-1}, {1}}
	case Line3:
		nodes = [][]float64{{-1}, {1}, {0}}
	case Triangle:
		nodes = [][]float64{{0, 0}, {1, 0}, {0, 1}}
	case Triangle6:
		nodes = [][]float64{{0, 0}, {1, 0}, {0, 1}, {0.5, 0}, {0.5, 0.5}, {0, 0.5}}
	case Quad:
		nodes = [][]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	case Quad9:
		nodes = [][]float64{
			{-1, -1}, {1, -1}, {1, 1}, {-1, 1},
			{0, -1}, {1, 0}, {0, 1}, {-1, 0},
			{0, 0},
		}
	}
	return
}
