package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/outpeg/peg/grammars/arith"
)

func newArithCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "arith",
		Short: "Parse and evaluate an arithmetic expression",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArith(cmd, file)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read input from this file instead of stdin")
	return cmd
}

func runArith(cmd *cobra.Command, file string) error {
	text, err := readInput(cmd, file)
	if err != nil {
		return err
	}

	ast, err := arith.Parse(text)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return err
	}

	result, err := arith.Eval(ast)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
