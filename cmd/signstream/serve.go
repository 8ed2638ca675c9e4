package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rkaroki/signstream/internal/app"
	"github.com/rkaroki/signstream/internal/server"
	"github.com/rkaroki/signstream/internal/store"
	"github.com/rkaroki/signstream/internal/tray"
)

var serveTray bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the capture daemon with the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveTray, "tray", false, "Show the system tray menu")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	a := app.New(cfg, st)
	if err := a.DiscoverHooks(); err != nil {
		log.Printf("Hook discovery failed: %v", err)
	}

	if err := a.Start(); err != nil {
		return err
	}
	defer a.Stop()

	srv := server.New(server.Config{Store: st, App: a})
	errCh := make(chan error, 1)
	go func() {
		log.Printf("API listening on %s", cfg.Server.Addr)
		errCh <- srv.ListenAndServe(cfg.Server.Addr)
	}()

	if serveTray {
		runTray(a)
		return nil
	}

	select {
	case <-cmd.Context().Done():
		log.Println("Shutting down")
		return nil
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	}
}

// runTray blocks in the systray loop, forwarding menu actions to the
// app and the last classified primitive back to the menu.
func runTray(a *app.App) {
	t := tray.New()

	t.OnStartStop(func(recording bool) {
		if recording {
			if err := a.StartRecording("freeform"); err != nil {
				log.Printf("Start recording failed: %v", err)
				t.SetRecording(false)
			}
			return
		}
		if _, err := a.StopRecording(); err != nil {
			log.Printf("Stop recording failed: %v", err)
		}
	})
	t.OnCancel(func() {
		if err := a.CancelRecording(); err != nil {
			log.Printf("Cancel failed: %v", err)
		}
	})
	t.OnQuit(func() {
		log.Println("Quit from tray")
	})

	descriptors, cancel := a.Subscribe()
	defer cancel()
	go func() {
		for d := range descriptors {
			t.SetPrimitive(string(d.Primitive))
		}
	}()

	t.Run()
}

// openStore opens the session index, creating its directory on first
// run.
func openStore() (*store.Store, error) {
	if dir := filepath.Dir(cfg.Recording.StorePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}
	return store.New(cfg.Recording.StorePath)
}
