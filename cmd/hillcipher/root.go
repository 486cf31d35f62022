// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/katalvlaran/hillcipher/hill"
	"github.com/katalvlaran/hillcipher/internal/config"
	"github.com/katalvlaran/hillcipher/internal/logging"
	"github.com/katalvlaran/hillcipher/matrix"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	cfgFile string
	cfg     config.Config
	logger  *log.Logger
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "hillcipher",
		Short: "Hill cipher over A-Z, space, '.' and '!'",
		Long: TitleStyle.Render("hillcipher") + SubtitleStyle.Render(" - Hill cipher over a 29-symbol alphabet") + `

Messages are encoded with a square key matrix and a modulus. A key can be
undone only when its determinant is invertible modulo the modulus.

` + SubtitleStyle.Render("Examples:") + `
  hillcipher encode -m "HELLO!" --key "3 3; 2 5"       Encode with a 2x2 key (modulus 29)
  hillcipher decode -m "EFITKX" --key "3 3; 2 5"       Decode it again
  hillcipher check --key "2 4; 6 8" --modulus 26       Explain why a key is unusable
  hillcipher encode -m "HELLO!" --keyfile layers.yaml  Apply several layers in order
  hillcipher shell                                     Start the interactive console`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is <user config dir>/hillcipher/hillcipher.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")
	root.PersistentFlags().Bool("trace", false, "print intermediate matrices")

	root.AddCommand(newEncodeCmd(a))
	root.AddCommand(newDecodeCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newShellCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// setup resolves configuration and the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags(), a.cfgFile)
	if err != nil {
		return failed(err)
	}
	logging.SetOutput(cmd.ErrOrStderr())
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		return failed(err)
	}
	a.cfg = cfg
	a.logger = logging.L
	a.logger.Debug("configuration loaded", "modulus", cfg.Modulus, "trace", cfg.Trace)

	return nil
}

// engine returns a hill engine wired to the logger and, with --trace, to w.
func (a *app) engine(w io.Writer) *hill.Engine {
	opts := []hill.Option{hill.WithLogger(a.logger)}
	if a.cfg.Trace {
		opts = append(opts, hill.WithTrace(func(stage hill.Stage, m *matrix.Dense) {
			fmt.Fprintln(w, VerboseStyle.Render(fmt.Sprintf("[trace] %s:", stage)))
			fmt.Fprintln(w, MatrixStyle.Render(strings.TrimRight(m.String(), "\n")))
		}))
	}

	return hill.New(opts...)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command through fang and exits with the code carried
// by an ExitError, or 1 for any other error.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
