package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/rkaroki/signstream/internal/app"
	"github.com/rkaroki/signstream/internal/record"
)

var batchAttempts int

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Record the full gesture catalog and write a session manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(cmd)
	},
}

func init() {
	batchCmd.Flags().IntVar(&batchAttempts, "attempts", record.DefaultAttempts, "Takes per gesture")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command) error {
	plan := record.DefaultPlan()
	plan.Attempts = batchAttempts
	plan.Countdown = time.Duration(cfg.Recording.CountdownSeconds) * time.Second
	plan.Duration = time.Duration(cfg.Recording.DurationSeconds * float64(time.Second))

	fmt.Printf("Batch recording: %d gestures x %d attempts = %d takes\n",
		record.TotalGestures(), plan.Attempts, plan.TotalRecordings())
	fmt.Printf("Estimated time: %s\n\n", plan.EstimatedTime().Round(time.Minute))

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	a := app.New(cfg, st)
	if err := a.DiscoverHooks(); err != nil {
		fmt.Fprintf(os.Stderr, "Hook discovery failed: %v\n", err)
	}
	if err := a.Start(); err != nil {
		return err
	}
	defer a.Stop()

	ctx := cmd.Context()
	stdin := bufio.NewReader(os.Stdin)
	var recordings []string

	for _, category := range record.Catalog {
		fmt.Printf("== %s ==\n", category.Name)

		for _, g := range category.Gestures {
			fmt.Printf("\n%s: %s\n", g.Name, g.Description)
			fmt.Print("Press Enter when ready...")
			if _, err := stdin.ReadString('\n'); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}

			for attempt := 1; attempt <= plan.Attempts; attempt++ {
				fmt.Printf("Attempt %d/%d\n", attempt, plan.Attempts)

				result, err := runTake(ctx, a, g.Name, attempt)
				if err != nil {
					if tooShort(err) {
						fmt.Fprintf(os.Stderr, "Take discarded: %v\n", err)
						continue
					}
					return err
				}

				printResult(result)
				recordings = append(recordings, filepath.Base(result.FilePath))
			}
		}
		fmt.Println()
	}

	manifest := record.NewManifest(recordings, time.Now())
	manifestPath := record.OutputPath(cfg.Recording.DataDir, record.ManifestFilename)
	if err := manifest.WriteFile(manifestPath); err != nil {
		return err
	}

	fmt.Printf("Done: %d recordings, manifest at %s\n", len(recordings), manifestPath)
	return nil
}
