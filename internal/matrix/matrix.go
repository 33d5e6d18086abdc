// Package matrix expands YAML-defined parameter matrices into concrete
// combinations, one per cross-product tuple of the axis values.
package matrix

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/QPC-github/secmgr/internal/errorlist"
	"github.com/QPC-github/secmgr/internal/generators"
)

// Axis is one named dimension of a matrix.
type Axis struct {
	Name   string
	Values []any
}

// Matrix holds axes in name order plus exclusion rules. Each exclude entry
// maps axis names to values; a combination matching every pair of an entry
// is skipped.
type Matrix struct {
	Axes     []Axis
	Excludes []map[string]any
}

func (m Matrix) axisNames() []string {
	names := make([]string, len(m.Axes))
	for i, axis := range m.Axes {
		names[i] = axis.Name
	}
	return names
}

// Check validates the matrix, reporting as many problems as possible in a
// single pass.
func (m Matrix) Check() error {
	list := errorlist.New("invalid matrix")
	names := mapset.NewSet[string]()
	for _, axis := range m.Axes {
		if "" == axis.Name {
			list.Append(fmt.Errorf("axis with empty name"))
			continue
		}
		if !names.Add(axis.Name) {
			list.Append(fmt.Errorf("duplicate axis %q", axis.Name))
		}
		if 0 == len(axis.Values) {
			list.Append(fmt.Errorf("axis %q has no values", axis.Name))
		}
	}
	for i, exclude := range m.Excludes {
		if 0 == len(exclude) {
			list.Append(fmt.Errorf("exclude %d is empty", i))
		}
		for name := range exclude {
			if !names.Contains(name) {
				list.Append(fmt.Errorf("exclude %d references unknown axis %q", i, name))
			}
		}
	}
	if list.Len() > 0 {
		return list
	}
	return nil
}

// Generator composes one literal generator per axis into a cross product.
// The last axis varies fastest.
func (m Matrix) Generator() generators.Generator[[]any] {
	factors := make([]generators.Generator[any], 0, len(m.Axes))
	for _, axis := range m.Axes {
		factors = append(factors, generators.Of(axis.Values...))
	}
	g, err := generators.Cross(factors...)
	if err != nil {
		// Of never returns nil generators.
		panic(err)
	}
	return g
}
