package main

import (
	"fmt"
	"strings"

	"github.com/ncellar/autumn4/parse"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var grammarName string

	cmd := &cobra.Command{
		Use:   "parse <input>",
		Short: "Run a bundled grammar over the input and report the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]

			var root parse.Parser
			switch grammarName {
			case "recall":
				root = newRecallGrammar()
			case "calc":
				calc := newCalculator()
				root = calc.root
				input = strings.ReplaceAll(input, " ", "")
			default:
				return fmt.Errorf("unknown grammar: %s", grammarName)
			}

			p := parse.New(input)
			ok := root.Parse(p)
			log.Debugf("parse finished: ok=%v pos=%d stack=%d", ok, p.Pos, p.StackSize())

			if !ok {
				fmt.Println("rejected")
				return nil
			}
			if p.Pos != len(p.Input) {
				fmt.Printf("matched prefix, stopped at offset %d of %d\n", p.Pos, len(p.Input))
			} else {
				fmt.Println("accepted")
			}
			for i, v := range p.Stack() {
				fmt.Printf("stack[%d] = %v\n", i, v)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&grammarName, "grammar", "g", "recall", "grammar to run (recall, calc)")

	return cmd
}
