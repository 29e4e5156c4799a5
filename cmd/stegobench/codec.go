package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/yyyoichi/stegotext"
)

var embedCmd = &cobra.Command{
	Use:   "embed <secret>",
	Short: "Hide a secret in a cover text read from stdin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codec, err := codecFromFlags(cmd)
		if err != nil {
			return err
		}
		cover, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read cover: %w", err)
		}
		if !utf8.Valid(cover) {
			return errors.New("cover is not valid UTF-8")
		}
		_, err = io.WriteString(cmd.OutOrStdout(), codec.Embed(string(cover), args[0]))
		return err
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Recover a secret from a text read from stdin",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		codec, err := codecFromFlags(cmd)
		if err != nil {
			return err
		}
		text, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read text: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), codec.Extract(string(text)))
		return err
	},
}

func init() {
	for _, c := range []*cobra.Command{embedCmd, extractCmd} {
		c.Flags().StringP("method", "m", "space", "embedding method: space or zero-width")
		rootCmd.AddCommand(c)
	}
}

func codecFromFlags(cmd *cobra.Command) (stegotext.Codec, error) {
	name, _ := cmd.Flags().GetString("method")
	for _, m := range stegotext.Methods() {
		if strings.EqualFold(name, string(m)) {
			return stegotext.New(m)
		}
	}
	return nil, fmt.Errorf("%w: %q (want space or zero-width)", stegotext.ErrUnknownMethod, name)
}
