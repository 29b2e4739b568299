// Command pegtool drives the bundled example grammars end-to-end, the way
// _examples/dhamidi-sai/cmd/sai/main.go wires its subcommands onto a
// cobra root command.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pegtool",
		Short: "Parse text against the bundled peg example grammars",
	}

	rootCmd.AddCommand(newJSONCmd())
	rootCmd.AddCommand(newArithCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
