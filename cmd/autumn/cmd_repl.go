package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive left-associative calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			calc := newCalculator()

			line := liner.NewLiner()
			defer line.Close()
			line.SetCtrlCAborts(true)

			historyPath := replHistoryPath()
			loadHistory(line, historyPath)
			defer saveHistory(line, historyPath)

			for {
				input, err := line.Prompt("calc> ")
				if err == liner.ErrPromptAborted || err == io.EOF {
					return nil
				}
				if err != nil {
					return fmt.Errorf("read line: %w", err)
				}

				input = strings.TrimSpace(input)
				if input == "" {
					continue
				}
				if input == "exit" || input == "quit" {
					return nil
				}
				line.AppendHistory(input)

				result, err := evaluate(calc, strings.ReplaceAll(input, " ", ""))
				if err != nil {
					fmt.Println("error:", err)
					continue
				}
				fmt.Println(result)
			}
		},
	}
}

// evaluate runs the calculator, turning a fatal engine abort into an
// error instead of crashing the REPL.
func evaluate(calc *calculator, input string) (result int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fatal: %v", r)
		}
	}()
	return calc.eval(input)
}

func replHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".autumn_history")
}

func loadHistory(line *liner.State, path string) {
	if path == "" {
		return
	}
	if f, err := os.Open(path); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
}

func saveHistory(line *liner.State, path string) {
	if path == "" {
		return
	}
	if f, err := os.Create(path); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}
