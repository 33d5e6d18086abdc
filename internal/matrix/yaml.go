package matrix

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	kmaps "github.com/knadh/koanf/maps"
	"github.com/mitchellh/mapstructure"
	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"
)

// ReadYaml unmarshals YAML from file path or stdin if path is -.
func ReadYaml(path string) (values any, err error) {
	var fo io.ReadCloser
	if path == "-" {
		slog.Info("Reading matrix from standard input.")
		fo = os.Stdin
	} else {
		fo, err = os.Open(path)
		if err != nil {
			return
		}
	}
	defer fo.Close() //nolint:errcheck
	dec := yaml.NewDecoder(fo)
	err = dec.Decode(&values)
	return
}

type yamlDocument struct {
	Matrix  map[string]any   `mapstructure:"matrix"`
	Exclude []map[string]any `mapstructure:"exclude"`
}

// Decode builds a Matrix from untyped YAML values. Nested axis mappings
// flatten to dotted names. Axes sort by name; untyped YAML decoding does
// not preserve document order of mappings.
func Decode(values any) (m Matrix, err error) {
	var doc yamlDocument
	err = mapstructure.Decode(values, &doc)
	if err != nil {
		return m, fmt.Errorf("YAML: %w", err)
	}

	flat, _ := kmaps.Flatten(doc.Matrix, nil, ".")
	names := maps.Keys(flat)
	slices.Sort(names)
	for _, name := range names {
		values, ok := flat[name].([]any)
		if !ok {
			// A scalar axis pins a single value.
			values = []any{flat[name]}
		}
		m.Axes = append(m.Axes, Axis{Name: name, Values: dedupe(values)})
	}
	m.Excludes = doc.Exclude
	return
}

// dedupe drops repeated values, first occurrence wins.
func dedupe(values []any) (out []any) {
	seen := mapset.NewSet[string]()
	for _, value := range values {
		if seen.Add(fmt.Sprintf("%v", value)) {
			out = append(out, value)
		}
	}
	return
}
