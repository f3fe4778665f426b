package cli

import (
	"fmt"
	"runtime"
	"strconv"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/knightly/knightly/internal/mission"
	"github.com/knightly/knightly/internal/status"
	"github.com/knightly/knightly/internal/tui"
)

func runDashboard(cmd *cobra.Command, opts *rootOptions) error {
	logger := log.FromContext(cmd.Context())

	missions, err := opts.loadMissions()
	if err != nil {
		return err
	}
	store, err := opts.openProgress()
	if err != nil {
		return err
	}
	tracker, kv, err := opts.openStatus(logger)
	if err != nil {
		return err
	}
	defer kv.Close()

	app, err := tui.NewApp(missions, store, tracker, tui.Options{
		CelebrationDuration: opts.cfg.CelebrationDuration(),
		BarWidth:            opts.cfg.UI.BarWidth,
		Logger:              logger,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	logger.Info("starting TUI", "missions", len(missions))
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "err", err)
		return fmt.Errorf("TUI error: %w", err)
	}
	logger.Info("shutting down")
	return nil
}

func newMissionsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "missions",
		Aliases: []string{"ls"},
		Short:   "List missions with their progress",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			missions, err := opts.loadMissions()
			if err != nil {
				return err
			}
			store, err := opts.openProgress()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, m := range store.Apply(missions) {
				p := m.Value()
				state := ""
				if p.Complete() {
					state = "done"
				}
				fmt.Fprintf(w, "%s\t%s\t%.0f%%\t%s XP\t%s\n",
					m.ID, p, p.Percentage(), humanize.Comma(int64(m.XP)), state)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			completed, total, pct := store.OverallProgress(missions)
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d/%d missions complete (%.0f%%), %s XP earned\n",
				completed, total, pct, humanize.Comma(int64(store.EarnedXP(missions))))
			return nil
		},
	}
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "status [online|away]",
		Short:     "Show or set the player status",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(status.Online), string(status.Away)},
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, kv, err := opts.openStatus(log.FromContext(cmd.Context()))
			if err != nil {
				return err
			}
			defer kv.Close()

			if len(args) == 1 {
				s, err := status.ParseStatus(args[0])
				if err != nil {
					return err
				}
				if err := tracker.Set(s); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), tracker.Current())
			return nil
		},
	}
}

func newAdvanceCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "advance <mission-id> [n]",
		Short: "Record progress on a mission (default 1)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.FromContext(cmd.Context())

			n := 1
			if len(args) == 2 {
				v, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid amount %q: %w", args[1], err)
				}
				n = v
			}

			missions, err := opts.loadMissions()
			if err != nil {
				return err
			}
			m, ok := mission.Find(missions, args[0])
			if !ok {
				return fmt.Errorf("unknown mission %q", args[0])
			}
			store, err := opts.openProgress()
			if err != nil {
				return err
			}

			before := store.Value(m)
			states := mission.NewTracker()
			states.Observe(m.ID, before)

			after := store.Advance(m, n)
			if err := store.Save(); err != nil {
				return err
			}
			logger.Info("progress recorded", "mission", m.ID, "from", before.String(), "to", after.String())

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%.0f%%)\n", m.ID, after, after.Percentage())
			if states.Observe(m.ID, after) {
				fmt.Fprintf(cmd.OutOrStdout(), "completed! +%s XP\n", humanize.Comma(int64(m.XP)))
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Print the version number of knightly",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "knightly version: %s %s/%s\n", Version, runtime.GOOS, runtime.GOARCH)
		},
	}
}
