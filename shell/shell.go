// SPDX-License-Identifier: MIT

// Package shell runs the interactive request/validate/retry console around a
// hill.Session. It reads lines from an io.Reader and writes to an io.Writer,
// so any terminal, pipe or test buffer can drive it.
//
// Flow:
//
//  1. dimension n, modulus m, the n×n key row by row, the message;
//  2. the message is encoded and the action loop starts:
//     encode (new modulus and key of the same size), decode (undo the latest
//     layer), restart, exit.
//
// Every prompt repeats until its input is valid. End of input ends the
// session cleanly.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/katalvlaran/hillcipher/alphabet"
	"github.com/katalvlaran/hillcipher/hill"
	"github.com/katalvlaran/hillcipher/matrix"
)

// MaxDimension is the largest key size the console accepts.
const MaxDimension = 64

// Styles renders the different kinds of output.
type Styles struct {
	Title  lipgloss.Style
	Prompt lipgloss.Style
	Result lipgloss.Style
	Error  lipgloss.Style
	Matrix lipgloss.Style
}

// PlainStyles renders text unchanged.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()

	return Styles{Title: s, Prompt: s, Result: s, Error: s, Matrix: s}
}

// Options configures a Shell.
type Options struct {
	Styles Styles
	Logger *log.Logger
	// Trace prints the key, product and decoding matrices as they are computed.
	Trace bool
}

// Option represents a functional option for configuring a Shell.
type Option func(*Options)

// WithStyles sets the output styles.
func WithStyles(s Styles) Option { return func(o *Options) { o.Styles = s } }

// WithLogger passes l on to the engine. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTrace enables matrix tracing.
func WithTrace(on bool) Option { return func(o *Options) { o.Trace = on } }

// DefaultOptions returns plain styles, no logger and no tracing.
func DefaultOptions() Options { return Options{Styles: PlainStyles()} }

// action is the outcome of one pass through the action loop.
type action int

const (
	actionExit action = iota
	actionRestart
)

// Shell is one interactive console. It is not safe for concurrent use.
type Shell struct {
	in     *bufio.Scanner
	out    io.Writer
	opts   Options
	engine *hill.Engine
}

// New returns a Shell reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Shell {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	s := &Shell{in: bufio.NewScanner(in), out: out, opts: o}

	var engineOpts []hill.Option
	engineOpts = append(engineOpts, hill.WithLogger(o.Logger))
	if o.Trace {
		engineOpts = append(engineOpts, hill.WithTrace(s.traceMatrix))
	}
	s.engine = hill.New(engineOpts...)

	return s
}

// Run drives the console until the user exits, input ends or ctx is done.
// Only read and write failures and ctx errors are returned.
func (s *Shell) Run(ctx context.Context) error {
	for {
		act, err := s.session(ctx)
		if errors.Is(err, io.EOF) {
			s.println("")
			return nil
		}
		if err != nil {
			return err
		}
		if act == actionExit {
			s.println(s.opts.Styles.Title.Render("Goodbye."))
			return nil
		}
	}
}

// session runs from the first prompt until exit or restart.
func (s *Shell) session(ctx context.Context) (action, error) {
	s.println(s.opts.Styles.Title.Render("Hill cipher console"))

	n, err := s.promptDimension(ctx)
	if err != nil {
		return actionExit, err
	}
	m, err := s.promptInt(ctx, "Modulus applied to every entry (e.g. 29):")
	if err != nil {
		return actionExit, err
	}
	key, err := s.promptKey(ctx, n, m)
	if err != nil {
		return actionExit, err
	}
	msg, err := s.promptMessage(ctx, n)
	if err != nil {
		return actionExit, err
	}

	sess := hill.NewSession(s.engine, msg)
	out, err := sess.Encode(key, m)
	if err != nil {
		s.errorf("Encoding failed: %v. Choose another modulus or key.", err)
		if err := s.encodeLayer(ctx, sess, n); err != nil {
			return actionExit, err
		}
	} else {
		s.println(s.opts.Styles.Result.Render("Encoded message: " + out))
	}

	return s.actions(ctx, sess, n)
}

// promptDimension reads a key size between 1 and MaxDimension.
func (s *Shell) promptDimension(ctx context.Context) (int, error) {
	for {
		dim, err := s.promptInt(ctx, "Width of the square key matrix (e.g. 2):")
		if err != nil {
			return 0, err
		}
		if dim > MaxDimension {
			s.errorf("%d is larger than the maximum key size %d. Try again.", dim, MaxDimension)
			continue
		}

		return int(dim), nil
	}
}

// promptMessage reads a message of valid symbols whose length is a multiple of n.
func (s *Shell) promptMessage(ctx context.Context, n int) (string, error) {
	for {
		line, err := s.ask(ctx, fmt.Sprintf(
			"Message to encode (A-Z, space, '.', '!'; length divisible by %d):", n))
		if err != nil {
			return "", err
		}
		msg := strings.ToUpper(line)
		if err := validateMessage(msg, n); err != nil {
			s.errorf("%v. Try again.", err)
			continue
		}

		return msg, nil
	}
}

// validateMessage checks symbols and length before any layer is applied.
func validateMessage(msg string, n int) error {
	runes := []rune(msg)
	for i, r := range runes {
		if _, err := alphabet.IndexOf(r); err != nil {
			return fmt.Errorf("character %q at position %d is not in the alphabet", r, i)
		}
	}
	if len(runes)%n != 0 {
		return fmt.Errorf("the message has %d characters, which is not divisible by %d", len(runes), n)
	}

	return nil
}

// encodeLayer asks for a modulus and key and applies them, repeating until
// the session accepts the layer.
func (s *Shell) encodeLayer(ctx context.Context, sess *hill.Session, n int) error {
	for {
		m, err := s.promptInt(ctx, "Modulus applied to every entry (e.g. 29):")
		if err != nil {
			return err
		}
		key, err := s.promptKey(ctx, n, m)
		if err != nil {
			return err
		}
		out, err := sess.Encode(key, m)
		if err != nil {
			s.errorf("Encoding failed: %v. Choose another modulus or key.", err)
			continue
		}
		s.println(s.opts.Styles.Result.Render("Encoded message: " + out))

		return nil
	}
}

// promptKey reads n rows and repeats the whole matrix when it cannot be
// inverted modulo m.
func (s *Shell) promptKey(ctx context.Context, n int, m int64) (*matrix.Dense, error) {
	for {
		s.println(s.opts.Styles.Prompt.Render(fmt.Sprintf(
			"Enter the %dx%d key one row per line, numbers separated by spaces (e.g. \"1 2\"):", n, n)))
		rows := make([][]int64, n)
		for i := range rows {
			row, err := s.promptRow(ctx, n)
			if err != nil {
				return nil, err
			}
			rows[i] = row
		}
		key, err := matrix.NewFromRows(rows)
		if err != nil {
			return nil, err
		}
		if !s.engine.IsValidEncodingMatrix(key, m) {
			s.errorf("That matrix cannot be inverted modulo %d. Try again.", m)
			continue
		}
		s.println(s.opts.Styles.Result.Render("Key matrix:"))
		s.println(s.opts.Styles.Matrix.Render(strings.TrimRight(key.String(), "\n")))

		return key, nil
	}
}

// promptRow reads one row of exactly n integers.
func (s *Shell) promptRow(ctx context.Context, n int) ([]int64, error) {
	for {
		line, err := s.read(ctx)
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) != n {
			s.errorf("Each row needs exactly %d numbers. Enter the row again:", n)
			continue
		}
		row := make([]int64, n)
		ok := true
		for j, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				s.errorf("%q is not an integer. Enter the row again:", f)
				ok = false
				break
			}
			row[j] = v
		}
		if ok {
			return row, nil
		}
	}
}

// promptInt reads a positive integer.
func (s *Shell) promptInt(ctx context.Context, prompt string) (int64, error) {
	for {
		line, err := s.ask(ctx, prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil || v < 1 {
			s.errorf("%q is not a positive whole number. Try again.", line)
			continue
		}

		return v, nil
	}
}

// actions is the encode/decode/restart/exit loop.
func (s *Shell) actions(ctx context.Context, sess *hill.Session, n int) (action, error) {
	for {
		choices := "encode/restart/exit"
		if sess.CanDecode() {
			choices = "encode/decode/restart/exit"
		}
		line, err := s.ask(ctx, fmt.Sprintf("What next? %s", choices))
		if err != nil {
			return actionExit, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "exit":
			return actionExit, nil
		case "restart":
			return actionRestart, nil
		case "encode":
			if err := s.encodeLayer(ctx, sess, n); err != nil {
				return actionExit, err
			}
		case "decode":
			if !sess.CanDecode() {
				s.errorf("Already back at the original message. Type \"encode\", \"restart\" or \"exit\".")
				continue
			}
			out, err := sess.Decode()
			if err != nil {
				s.errorf("Decoding failed: %v", err)
				continue
			}
			s.println(s.opts.Styles.Result.Render("Decoded message: " + out))
		default:
			s.errorf("%q is not a valid choice. Type one of %s.", line, choices)
		}
	}
}

// traceMatrix prints intermediate matrices from the engine.
func (s *Shell) traceMatrix(stage hill.Stage, m *matrix.Dense) {
	if stage == hill.StageBlock {
		return
	}
	s.println(s.opts.Styles.Prompt.Render(fmt.Sprintf("[trace] %s:", stage)))
	s.println(s.opts.Styles.Matrix.Render(strings.TrimRight(m.String(), "\n")))
}

// ask prints prompt and reads the answer.
func (s *Shell) ask(ctx context.Context, prompt string) (string, error) {
	s.println(s.opts.Styles.Prompt.Render(prompt))

	return s.read(ctx)
}

// read returns the next line without its terminator, or io.EOF.
func (s *Shell) read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimRight(s.in.Text(), "\r"), nil
}

func (s *Shell) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Shell) errorf(format string, args ...any) {
	s.println(s.opts.Styles.Error.Render(fmt.Sprintf(format, args...)))
}
