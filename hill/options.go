// SPDX-License-Identifier: MIT

package hill

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/hillcipher/matrix"
)

// Stage names the intermediate matrix handed to a TraceFunc.
type Stage string

const (
	// StageKey is the key matrix applied by Encode, reduced modulo the
	// modulus (the decoding matrix when called through Decode).
	StageKey Stage = "key"

	// StageBlock is the message reshaped column-major into n rows.
	StageBlock Stage = "block"

	// StageProduct is key × block before modular reduction.
	StageProduct Stage = "product"

	// StageDecodingMatrix is the derived inverse key, reduced modulo the modulus.
	StageDecodingMatrix Stage = "decoding matrix"
)

// TraceFunc observes intermediate matrices. It receives a private copy and
// may keep it.
type TraceFunc func(stage Stage, m *matrix.Dense)

// Options configures an Engine.
//
// Logger – receives debug-level records for each stage (never nil after New).
// Trace  – optional hook receiving intermediate matrices; nil disables tracing.
type Options struct {
	Logger *log.Logger
	Trace  TraceFunc
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithLogger routes engine diagnostics to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTrace installs a hook that receives the key, the reshaped block, the
// raw product and the decoding matrix as they are computed.
func WithTrace(fn TraceFunc) Option {
	return func(o *Options) {
		o.Trace = fn
	}
}

// DefaultOptions returns Options with a discarding logger and no trace hook.
func DefaultOptions() Options {
	return Options{
		Logger: log.New(io.Discard),
	}
}
