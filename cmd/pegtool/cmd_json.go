package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/outpeg/peg/grammars/jsongrammar"
)

func newJSONCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "json",
		Short: "Parse a JSON value and print its decoded form",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJSON(cmd, file)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read input from this file instead of stdin")
	return cmd
}

func runJSON(cmd *cobra.Command, file string) error {
	text, err := readInput(cmd, file)
	if err != nil {
		return err
	}

	ast, err := jsongrammar.Parse(text)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return err
	}

	out, err := json.MarshalIndent(ast, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func readInput(cmd *cobra.Command, file string) (string, error) {
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(b), nil
}
