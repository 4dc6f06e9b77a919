package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <input>",
		Short: "Tokenize the input with the bundled lexicon and print the tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lexemes, err := newLexer().scan(args[0])
			if err != nil {
				return fmt.Errorf("tokenize: %w", err)
			}
			log.Debugf("scanned %d tokens", len(lexemes))

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"#", "Kind", "Start", "End", "Text"})
			for i, lx := range lexemes {
				table.Append([]string{
					fmt.Sprint(i),
					lx.kind,
					fmt.Sprint(lx.start),
					fmt.Sprint(lx.end),
					fmt.Sprintf("%q", lx.text),
				})
			}
			table.Render()
			return nil
		},
	}
}
