package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/knightly/knightly/internal/config"
	"github.com/knightly/knightly/internal/logging"
	"github.com/knightly/knightly/internal/mission"
	"github.com/knightly/knightly/internal/progress"
	"github.com/knightly/knightly/internal/status"
)

// Version is set at build time via -ldflags
var Version = "dev"

type rootOptions struct {
	configPath string
	dataDir    string
	missions   string

	cfg     *config.Config
	closers []io.Closer
}

// Execute runs the knightly command line.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "knightly",
		Short:         "Track chess training missions from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return opts.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/knightly/config.yaml)")
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "directory for progress and settings")
	root.PersistentFlags().StringVar(&opts.missions, "missions", "", "mission catalogue file (JSON or YAML)")

	root.AddCommand(
		newMissionsCmd(opts),
		newStatusCmd(opts),
		newAdvanceCmd(opts),
		newVersionCmd(),
	)
	return root
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if o.dataDir != "" {
		cfg.Data.Dir = o.dataDir
	}
	if o.missions != "" {
		cfg.Data.Missions = o.missions
	}
	o.cfg = cfg

	logger, closer, err := logging.Setup(cfg.LogPath(), cfg.Logging.Level)
	if err != nil {
		// Fall back to a silent logger if file logging fails
		logger = logging.Discard()
	} else {
		o.closers = append(o.closers, closer)
	}
	cmd.SetContext(log.WithContext(cmd.Context(), logger))
	logger.Debug("starting", "command", cmd.Name(), "version", Version)
	return nil
}

func (o *rootOptions) teardown() error {
	var errs []error
	for i := len(o.closers) - 1; i >= 0; i-- {
		errs = append(errs, o.closers[i].Close())
	}
	o.closers = nil
	return errors.Join(errs...)
}

func (o *rootOptions) loadMissions() ([]mission.Mission, error) {
	if o.cfg.Data.Missions != "" {
		return mission.LoadFromFile(o.cfg.Data.Missions)
	}
	return mission.Default()
}

func (o *rootOptions) openProgress() (*progress.Store, error) {
	store, err := progress.New(o.cfg.ProgressDir())
	if err != nil {
		return nil, fmt.Errorf("loading progress: %w", err)
	}
	return store, nil
}

// openStatus opens the settings database; the caller closes it.
func (o *rootOptions) openStatus(logger *log.Logger) (*status.Tracker, io.Closer, error) {
	kv, err := status.OpenBolt(o.cfg.SettingsPath())
	if err != nil {
		return nil, nil, err
	}
	tracker, err := status.NewTracker(kv, o.cfg.Status.Key, logger)
	if err != nil {
		kv.Close()
		return nil, nil, err
	}
	return tracker, kv, nil
}
