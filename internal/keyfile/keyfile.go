// SPDX-License-Identifier: MIT

// Package keyfile reads key layers from YAML files and key matrices from the
// compact "3 3; 2 5" command-line form.
//
// File format:
//
//	layers:
//	  - key: [[3, 3], [2, 5]]
//	    modulus: 29
//	  - key: [[1, 2], [0, 1]]   # modulus omitted: the caller's default applies
//
// Layers are listed in the order they are applied when encoding.
package keyfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/hillcipher/hill"
	"github.com/katalvlaran/hillcipher/matrix"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoLayers indicates a file without any layer.
	ErrNoLayers = errors.New("keyfile: no layers")

	// ErrMalformedKey indicates key text that is not a rectangular list of integers.
	ErrMalformedKey = errors.New("keyfile: malformed key")
)

// File is the YAML document.
type File struct {
	Layers []LayerSpec `yaml:"layers"`
}

// LayerSpec is one layer as written in a file.
type LayerSpec struct {
	Key     [][]int64 `yaml:"key"`
	Modulus int64     `yaml:"modulus,omitempty"`
}

// Parse decodes data and validates every layer. A layer without a modulus
// uses defaultModulus. Unknown fields are rejected.
func Parse(data []byte, defaultModulus int64) ([]hill.Layer, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("keyfile: decode: %w", err)
	}
	if len(f.Layers) == 0 {
		return nil, ErrNoLayers
	}

	out := make([]hill.Layer, 0, len(f.Layers))
	for i, ls := range f.Layers {
		mod := ls.Modulus
		if mod == 0 {
			mod = defaultModulus
		}
		key, err := matrix.NewFromRows(ls.Key)
		if err != nil {
			return nil, fmt.Errorf("keyfile: layer %d: %w: %w", i, ErrMalformedKey, err)
		}
		l, err := hill.NewLayer(key, mod)
		if err != nil {
			return nil, fmt.Errorf("keyfile: layer %d: %w", i, err)
		}
		out = append(out, l)
	}

	return out, nil
}

// Load reads and parses the file at path.
func Load(path string, defaultModulus int64) ([]hill.Layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keyfile: %w", err)
	}

	return Parse(data, defaultModulus)
}

// ParseKey reads a matrix written row by row: rows are separated by ';' and
// entries by whitespace or commas, e.g. "3 3; 2 5".
func ParseKey(s string) (*matrix.Dense, error) {
	var rows [][]int64
	for i, line := range strings.Split(s, ";") {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) == 0 {
			return nil, fmt.Errorf("%w: row %d is empty", ErrMalformedKey, i)
		}
		row := make([]int64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %q is not an integer", ErrMalformedKey, i, f)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedKey, err)
	}

	return m, nil
}
