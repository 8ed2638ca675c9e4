package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rkaroki/signstream/internal/analyze"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <session.json> [other.json]",
	Short: "Summarize a recorded session, or compare two",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(args)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(args []string) error {
	first, err := analyze.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Print(first.Summary())

	if len(args) == 1 {
		return nil
	}

	second, err := analyze.Load(args[1])
	if err != nil {
		return err
	}
	fmt.Print(second.Summary())
	fmt.Print(analyze.Compare(first, second))
	return nil
}
