// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/hillcipher/hill"
	"github.com/katalvlaran/hillcipher/internal/keyfile"
	"github.com/spf13/cobra"
)

// errNoKey is returned when neither --key nor --keyfile was given.
var errNoKey = errors.New("one of --key or --keyfile is required")

// cipherFlags are shared by encode and decode.
type cipherFlags struct {
	message string
	key     string
	keyFile string
}

func (f *cipherFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.message, "message", "m", "", "message to process (read from stdin when omitted)")
	cmd.Flags().StringVarP(&f.key, "key", "k", "", `key matrix, rows separated by ';' (e.g. "3 3; 2 5")`)
	cmd.Flags().StringVar(&f.keyFile, "keyfile", "", "YAML file listing key layers")
	cmd.Flags().Int64("modulus", 29, "modulus for --key and for layers without one")
	cmd.MarkFlagsMutuallyExclusive("key", "keyfile")
}

// readMessage returns --message, or stdin without its trailing line break.
func (f *cipherFlags) readMessage(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("message") {
		return f.message, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read message: %w", err)
	}

	return strings.TrimRight(string(data), "\r\n"), nil
}

// layers resolves the key layers from --keyfile or --key.
func (f *cipherFlags) layers(modulus int64) ([]hill.Layer, error) {
	switch {
	case f.keyFile != "":
		return keyfile.Load(f.keyFile, modulus)
	case f.key != "":
		key, err := keyfile.ParseKey(f.key)
		if err != nil {
			return nil, err
		}
		l, err := hill.NewLayer(key, modulus)
		if err != nil {
			return nil, err
		}
		return []hill.Layer{l}, nil
	default:
		return nil, errNoKey
	}
}

func newEncodeCmd(a *app) *cobra.Command {
	f := &cipherFlags{}
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a message with one or more key layers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			msg, err := f.readMessage(cmd)
			if err != nil {
				return failed(err)
			}
			layers, err := f.layers(a.cfg.Modulus)
			if err != nil {
				return failed(err)
			}
			e := a.engine(cmd.ErrOrStderr())
			for i, l := range layers {
				if !e.IsValidEncodingMatrix(l.Key, l.Modulus) {
					a.logger.Warn("key cannot be decoded", "layer", i, "modulus", l.Modulus)
				}
			}
			out, err := e.EncodeLayers(msg, layers)
			if err != nil {
				return failed(err)
			}
			a.logger.Debug("encoded", "layers", len(layers), "length", len(out))
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
	f.register(cmd)

	return cmd
}

func newDecodeCmd(a *app) *cobra.Command {
	f := &cipherFlags{}
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a message, undoing key layers in reverse order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			msg, err := f.readMessage(cmd)
			if err != nil {
				return failed(err)
			}
			layers, err := f.layers(a.cfg.Modulus)
			if err != nil {
				return failed(err)
			}
			out, err := a.engine(cmd.ErrOrStderr()).DecodeLayers(msg, layers)
			if err != nil {
				return failed(err)
			}
			a.logger.Debug("decoded", "layers", len(layers), "length", len(out))
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
	f.register(cmd)

	return cmd
}
