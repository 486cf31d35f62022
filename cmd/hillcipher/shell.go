// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/hillcipher/shell"
	"github.com/spf13/cobra"
)

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive console",
		Long: `Start the interactive console.

The console asks for a key size, a modulus, the key and a message, then
lets you add more layers, peel them off again, restart or exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sh := shell.New(cmd.InOrStdin(), cmd.OutOrStdout(),
				shell.WithStyles(consoleStyles()),
				shell.WithLogger(a.logger),
				shell.WithTrace(a.cfg.Trace),
			)

			return failed(sh.Run(cmd.Context()))
		},
	}
}
