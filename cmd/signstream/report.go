package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rkaroki/signstream/internal/analyze"
	"github.com/rkaroki/signstream/internal/record"
)

var reportOut string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a markdown quality report for a recorded dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport()
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "dataset_summary.md", "Report output path")
	rootCmd.AddCommand(reportCmd)
}

func runReport() error {
	manifestPath := record.OutputPath(cfg.Recording.DataDir, record.ManifestFilename)
	manifest, err := record.LoadManifest(manifestPath)
	if err != nil {
		return fmt.Errorf("no manifest found, run a batch session first: %w", err)
	}

	// The manifest lists base filenames relative to the data directory.
	for i, rec := range manifest.Recordings {
		if !filepath.IsAbs(rec) {
			manifest.Recordings[i] = record.OutputPath(cfg.Recording.DataDir, rec)
		}
	}

	report := analyze.AnalyzeDataset(manifest)
	if err := os.WriteFile(reportOut, []byte(report.Markdown(manifest)), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	fmt.Printf("Report written to %s\n", reportOut)
	return nil
}
