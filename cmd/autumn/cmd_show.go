package main

import (
	"fmt"
	"os"

	"github.com/ncellar/autumn4/format"
	"github.com/ncellar/autumn4/parse"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var grammarName string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the parser tree of a bundled grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var root parse.Parser
			switch grammarName {
			case "recall":
				root = newRecallGrammar()
			case "calc":
				root = newCalculator().root
			default:
				return fmt.Errorf("unknown grammar: %s", grammarName)
			}
			return format.NewEncoder(os.Stdout).Encode(root)
		},
	}

	cmd.Flags().StringVarP(&grammarName, "grammar", "g", "recall", "grammar to print (recall, calc)")

	return cmd
}
