package matrix

import (
	"fmt"
	"iter"
	"strings"

	"github.com/gosimple/slug"

	"github.com/QPC-github/secmgr/internal/generators"
)

// Combination is one tuple of the expansion. Names and Values are parallel,
// in matrix axis order.
type Combination struct {
	Names  []string
	Values []any
}

func (c Combination) Map() map[string]any {
	out := make(map[string]any, len(c.Names))
	for i, name := range c.Names {
		out[name] = c.Values[i]
	}
	return out
}

// String renders space-separated name=value pairs.
func (c Combination) String() string {
	b := strings.Builder{}
	for i, name := range c.Names {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", name, c.Values[i])
	}
	return b.String()
}

// Slug renders a DNS-friendly identifier for the combination, usable as a
// CI job name.
func (c Combination) Slug() string {
	parts := make([]string, len(c.Values))
	for i, value := range c.Values {
		parts[i] = fmt.Sprintf("%v", value)
	}
	return slug.Make(strings.Join(parts, " "))
}

// Combinations lazily expands the matrix, skipping excluded combinations.
func (m Matrix) Combinations() iter.Seq[Combination] {
	names := m.axisNames()
	return func(yield func(Combination) bool) {
		for tuple := range generators.All(m.Generator()) {
			c := Combination{Names: names, Values: tuple}
			if m.excluded(c) {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// excluded reports whether any exclude entry fully matches c. Values
// compare by string rendition, so YAML 16 matches "16".
func (m Matrix) excluded(c Combination) bool {
	values := c.Map()
	for _, exclude := range m.Excludes {
		if 0 == len(exclude) {
			continue
		}
		matched := true
		for name, want := range exclude {
			if fmt.Sprintf("%v", values[name]) != fmt.Sprintf("%v", want) {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

// Count returns the number of combinations after exclusion.
func (m Matrix) Count() (count int) {
	for range m.Combinations() {
		count++
	}
	return
}
