// SPDX-License-Identifier: MIT

package hill

import (
	"fmt"

	"github.com/katalvlaran/hillcipher/matrix"
)

// Layer is one applied encoding: the key matrix and the modulus used with it.
type Layer struct {
	Key     *matrix.Dense
	Modulus int64
}

// NewLayer copies key into a Layer so later changes to key do not alter it.
func NewLayer(key matrix.Matrix, modulus int64) (Layer, error) {
	if err := validateKey(key, modulus); err != nil {
		return Layer{}, err
	}
	d, err := matrix.ToDense(key)
	if err != nil {
		return Layer{}, err
	}

	return Layer{Key: d, Modulus: modulus}, nil
}

// Dimension returns the key size n.
func (l Layer) Dimension() int {
	if l.Key == nil {
		return 0
	}

	return l.Key.Rows()
}

// clone returns l with its own copy of the key.
func (l Layer) clone() Layer {
	if l.Key == nil {
		return l
	}
	d, err := matrix.ToDense(l.Key)
	if err != nil {
		return Layer{Modulus: l.Modulus}
	}

	return Layer{Key: d, Modulus: l.Modulus}
}

// Chain is a LIFO stack of layers. The zero value is an empty chain.
// Chain is owned by the caller; it is not safe for concurrent mutation.
type Chain struct {
	layers []Layer
}

// Push records a layer on top of the chain. The key is copied.
func (c *Chain) Push(key matrix.Matrix, modulus int64) error {
	l, err := NewLayer(key, modulus)
	if err != nil {
		return engineErrorf(opPush, err)
	}
	c.layers = append(c.layers, l)

	return nil
}

// Pop removes and returns the most recent layer. ok is false on an empty chain.
func (c *Chain) Pop() (l Layer, ok bool) {
	if len(c.layers) == 0 {
		return Layer{}, false
	}
	last := len(c.layers) - 1
	l = c.layers[last]
	c.layers[last] = Layer{}
	c.layers = c.layers[:last]

	return l, true
}

// Peek returns a copy of the most recent layer without removing it.
func (c *Chain) Peek() (l Layer, ok bool) {
	if len(c.layers) == 0 {
		return Layer{}, false
	}

	return c.layers[len(c.layers)-1].clone(), true
}

// Len returns the number of layers.
func (c *Chain) Len() int { return len(c.layers) }

// Empty reports whether no layer is left to decode.
func (c *Chain) Empty() bool { return len(c.layers) == 0 }

// Layers returns a copy of the layers, bottom (first applied) first.
// Keys are copied too, so the chain cannot be changed through the result.
func (c *Chain) Layers() []Layer {
	out := make([]Layer, len(c.layers))
	for i, l := range c.layers {
		out[i] = l.clone()
	}

	return out
}

// EncodeLayers applies layers to message in order, first layer first.
// On error the returned string is empty and the error names the failing layer.
func (e *Engine) EncodeLayers(message string, layers []Layer) (string, error) {
	var err error
	for i, l := range layers {
		if message, err = e.Encode(message, l.Key, l.Modulus); err != nil {
			return "", fmt.Errorf("layer %d: %w", i, err)
		}
	}

	return message, nil
}

// DecodeLayers undoes EncodeLayers by decoding with the layers in reverse order.
func (e *Engine) DecodeLayers(message string, layers []Layer) (string, error) {
	var err error
	for i := len(layers) - 1; i >= 0; i-- {
		if message, err = e.Decode(message, layers[i].Key, layers[i].Modulus); err != nil {
			return "", fmt.Errorf("layer %d: %w", i, err)
		}
	}

	return message, nil
}
