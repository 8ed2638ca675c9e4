// Command signstream records and analyzes hand motion descriptor
// sessions from a webcam.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rkaroki/signstream/internal/config"
)

// Version is the application version.
const Version = "0.1.0"

var (
	cfg     *config.Config
	cfgPath string
)

var rootCmd = &cobra.Command{
	Use:     "signstream",
	Short:   "Hand motion descriptor recorder and analyzer",
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return nil
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultCfg := ""
	if home, err := os.UserHomeDir(); err == nil {
		defaultCfg = filepath.Join(home, ".signstream", "config.toml")
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultCfg, "Path to TOML config file")
}
