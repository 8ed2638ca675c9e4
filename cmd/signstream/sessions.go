package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rkaroki/signstream/internal/store"
)

var sessionsGesture string

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded sessions from the index",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSessions()
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-gesture recording statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats()
	},
}

func init() {
	sessionsCmd.Flags().StringVar(&sessionsGesture, "gesture", "", "Only sessions for this gesture")
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(statsCmd)
}

func runSessions() error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	var sessions []*store.Session
	if sessionsGesture != "" {
		sessions, err = st.Sessions().ListByGesture(sessionsGesture)
	} else {
		sessions, err = st.Sessions().List()
	}
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RECORDED\tGESTURE\tFRAMES\tFPS\tQUALITY\tID")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.1f\t%.2f\t%s\n",
			s.RecordedAt.Format("2006-01-02 15:04:05"), s.GestureName,
			s.TotalFrames, s.AverageFPS, s.QualityScore, s.ID)
	}
	return w.Flush()
}

func runStats() error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	stats, err := st.Sessions().Stats()
	if err != nil {
		return err
	}

	if len(stats) == 0 {
		fmt.Println("No sessions recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "GESTURE\tSESSIONS\tFRAMES\tAVG DURATION\tAVG QUALITY")
	for _, gs := range stats {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.2fs\t%.2f\n",
			gs.GestureName, gs.Sessions, gs.TotalFrames, gs.AvgDuration, gs.AvgQuality)
	}
	return w.Flush()
}
