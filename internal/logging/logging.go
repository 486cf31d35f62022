// SPDX-License-Identifier: MIT

// Package logging owns the process-wide logger used by the hillcipher binary.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. It writes to stderr at info level until
// SetLevel or SetOutput is called.
var L = clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "hillcipher"})

// ParseLevel maps a level name (any case) to a log level. An empty name
// means info and "warning" is accepted for warn.
func ParseLevel(s string) (clog.Level, error) {
	switch name := strings.ToLower(strings.TrimSpace(s)); name {
	case "":
		return clog.InfoLevel, nil
	case "warning":
		return clog.WarnLevel, nil
	default:
		lvl, err := clog.ParseLevel(name)
		if err != nil {
			return clog.InfoLevel, fmt.Errorf("logging: %w", err)
		}
		return lvl, nil
	}
}

// SetLevel sets the level of L. An unknown level leaves L unchanged.
func SetLevel(s string) error {
	lvl, err := ParseLevel(s)
	if err != nil {
		return err
	}
	L.SetLevel(lvl)

	return nil
}

// SetOutput redirects L.
func SetOutput(w io.Writer) { L.SetOutput(w) }
