// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hillcipher/internal/keyfile"
	"github.com/katalvlaran/hillcipher/matrix"
	"github.com/katalvlaran/hillcipher/modular"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	var keyText string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report whether a key can be used under a modulus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := keyfile.ParseKey(keyText)
			if err != nil {
				return failed(err)
			}
			m := a.cfg.Modulus
			w := cmd.OutOrStdout()
			e := a.engine(cmd.ErrOrStderr())

			fmt.Fprintln(w, SubtitleStyle.Render("key:"))
			fmt.Fprintln(w, MatrixStyle.Render(strings.TrimRight(key.String(), "\n")))

			det, err := matrix.Determinant(key)
			if err != nil {
				return failed(err)
			}
			res := modular.Mod(det, m)
			fmt.Fprintf(w, "%s %d\n", SubtitleStyle.Render("determinant:"), det)
			fmt.Fprintf(w, "%s %d (mod %d)\n", SubtitleStyle.Render("residue:"), res, m)

			dec, err := e.DecodingMatrix(key, m)
			if err != nil {
				fmt.Fprintf(w, "%s gcd(%d, %d) = %d\n", ErrorStyle.Render("not valid:"),
					res, m, modular.GCD(res, m))
				return failed(err)
			}
			inv, _ := modular.Inverse(det, m)
			fmt.Fprintf(w, "%s %d\n", SubtitleStyle.Render("inverse:"), inv)
			fmt.Fprintln(w, SubtitleStyle.Render("decoding matrix:"))
			fmt.Fprintln(w, MatrixStyle.Render(strings.TrimRight(dec.String(), "\n")))
			fmt.Fprintln(w, SuccessStyle.Render("valid"))

			return nil
		},
	}
	cmd.Flags().StringVarP(&keyText, "key", "k", "", `key matrix, rows separated by ';' (e.g. "3 3; 2 5")`)
	cmd.Flags().Int64("modulus", 29, "modulus")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}
