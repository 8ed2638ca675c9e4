package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/rkaroki/signstream/internal/app"
	"github.com/rkaroki/signstream/internal/record"
)

var recordCmd = &cobra.Command{
	Use:   "record <gesture>",
	Short: "Record a single gesture session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecord(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(recordCmd)
}

func runRecord(ctx context.Context, gestureName string) error {
	if g, category, ok := record.FindGesture(gestureName); ok {
		fmt.Printf("Gesture: %s (%s)\n", g.Name, category)
		fmt.Printf("  %s\n", g.Description)
	} else {
		fmt.Printf("Gesture: %s (not in catalog)\n", gestureName)
	}

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

	result, err := runTake(ctx, a, gestureName, 0)
	if err != nil {
		return err
	}

	printResult(result)
	return nil
}

// runTake performs one countdown-then-record cycle and returns the
// exported session.
func runTake(ctx context.Context, a *app.App, gestureName string, attempt int) (*app.ExportResult, error) {
	for i := cfg.Recording.CountdownSeconds; i > 0; i-- {
		fmt.Printf("  %d...\n", i)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Second):
		}
	}

	if err := a.StartRecordingAttempt(gestureName, attempt); err != nil {
		return nil, err
	}

	duration := time.Duration(cfg.Recording.DurationSeconds * float64(time.Second))
	steps := int(duration / (100 * time.Millisecond))
	bar := progressbar.NewOptions(steps,
		progressbar.OptionSetDescription("● Recording "+gestureName),
		progressbar.OptionSetWriter(os.Stderr),
	)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			a.CancelRecording()
			return nil, ctx.Err()
		case <-ticker.C:
			bar.Add(1)
		}
	}
	bar.Finish()
	fmt.Fprintln(os.Stderr)

	return a.StopRecording()
}

func printResult(result *app.ExportResult) {
	meta := result.Record.Metadata
	fmt.Printf("Saved %s\n", result.FilePath)
	fmt.Printf("  frames: %d  duration: %.2fs  fps: %.1f  quality: %.2f\n",
		meta.TotalFrames, meta.DurationSeconds, meta.AverageFPS, result.Quality.Score)
	for _, w := range result.Quality.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
}

// tooShort reports whether a take failed only because it was under the
// minimum frame count.
func tooShort(err error) bool {
	return errors.Is(err, app.ErrRecordingTooShort)
}
