// SPDX-License-Identifier: MIT

package hill

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hillcipher/matrix"
)

// Session tracks a message through successive encodings so they can be
// peeled off again in reverse order. It pairs a shared Engine with a
// caller-owned Chain and the current text.
//
// A failed Encode or Decode leaves the chain and the text unchanged.
type Session struct {
	engine *Engine
	chain  Chain
	text   string
}

// NewSession starts a session at plaintext (stored uppercased). A nil engine
// is replaced by New().
func NewSession(engine *Engine, plaintext string) *Session {
	if engine == nil {
		engine = New()
	}

	return &Session{engine: engine, text: strings.ToUpper(plaintext)}
}

// Encode adds one layer: key must be invertible under modulus, otherwise the
// layer could never be decoded and ErrNotInvertible is returned.
func (s *Session) Encode(key matrix.Matrix, modulus int64) (string, error) {
	if !s.engine.IsValidEncodingMatrix(key, modulus) {
		// DecodingMatrix reports the precise reason (shape, modulus, gcd).
		if _, err := s.engine.DecodingMatrix(key, modulus); err != nil {
			return "", engineErrorf(opEncode, err)
		}
		return "", engineErrorf(opEncode, ErrNotInvertible)
	}
	layer, err := NewLayer(key, modulus)
	if err != nil {
		return "", engineErrorf(opEncode, err)
	}
	out, err := s.engine.Encode(s.text, layer.Key, layer.Modulus)
	if err != nil {
		return "", err
	}
	s.chain.layers = append(s.chain.layers, layer)
	s.text = out

	return out, nil
}

// Decode removes the most recent layer and returns the text beneath it.
// ErrChainEmpty is returned once the original plaintext is reached.
func (s *Session) Decode() (string, error) {
	layer, ok := s.chain.Peek()
	if !ok {
		return "", engineErrorf(opDecode, ErrChainEmpty)
	}
	out, err := s.engine.Decode(s.text, layer.Key, layer.Modulus)
	if err != nil {
		return "", fmt.Errorf("layer %d: %w", s.chain.Len()-1, err)
	}
	s.chain.Pop()
	s.text = out

	return out, nil
}

// Text returns the current message.
func (s *Session) Text() string { return s.text }

// Depth returns the number of layers currently applied.
func (s *Session) Depth() int { return s.chain.Len() }

// CanDecode reports whether at least one layer can be removed.
func (s *Session) CanDecode() bool { return !s.chain.Empty() }

// Layers returns a copy of the applied layers, first applied first.
func (s *Session) Layers() []Layer { return s.chain.Layers() }

// Reset discards every layer and starts over at plaintext.
func (s *Session) Reset(plaintext string) {
	s.chain = Chain{}
	s.text = strings.ToUpper(plaintext)
}
