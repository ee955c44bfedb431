// Package commands implements the swaygroup CLI commands.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/swaygroup/swaygroup/internal/app"
	"github.com/swaygroup/swaygroup/internal/config"
	"github.com/swaygroup/swaygroup/internal/ipc"
	"github.com/swaygroup/swaygroup/internal/state"
)

var versionInfo struct {
	version string
	commit  string
	date    string
}

// SetVersionInfo sets version information from main (populated by goreleaser).
func SetVersionInfo(version, commit, date string) {
	versionInfo.version = version
	versionInfo.commit = commit
	versionInfo.date = date
}

// Global flags
var (
	debugMode  bool
	dryRun     bool
	configPath string
)

// dialIPC connects to the window manager. Replaced in tests.
var dialIPC = func(ctx context.Context, socketPath string) (ipc.Client, error) {
	return ipc.Dial(ctx, socketPath)
}

var rootCmd = &cobra.Command{
	Use:   "swaygroup",
	Short: "Navigate sway workspaces in two groups",
	Long: `swaygroup splits numbered sway workspaces into two groups by the first
digit of their name (1x and 2x) and moves between them.

It remembers the last workspace used in each group, so toggling between
groups lands where you left off, and the workspace you came from within a
group, so cycle bounces back to it.

State is kept in $XDG_STATE_HOME/swaygroup/state.json.`,
	Example: `  # bindsym $mod+Tab exec swaygroup cycle
  swaygroup next
  swaygroup goto 3
  swaygroup move
  swaygroup --dry-run --debug toggle-group`,
	// Don't show usage/errors on errors from subcommands (main.go handles errors)
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Decide and report without switching focus or saving state")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Use an alternate config file")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s", versionInfo.version, versionInfo.commit, versionInfo.date)),
	)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: rootCmd.Name(),
		Level:  log.WarnLevel,
	})
	if debugMode {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func loadConfig() (*config.Config, error) {
	config.SetPath(configPath)

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", config.GetPath(), err)
	}
	return cfg, nil
}

// withApp loads the config, connects to sway, and hands the assembled App to
// fn under the configured IPC timeout.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger()

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout())
	defer cancel()

	client, err := dialIPC(ctx, cfg.SocketPath)
	if err != nil {
		return err
	}

	a := &app.App{
		IPC:    client,
		Store:  state.NewStore(cfg.StatePath()),
		Logger: logger,
		DryRun: dryRun,
		Lock:   cfg.LockEnabled(),
	}
	logger.Debug("config", "path", config.GetPath(), "state", a.Store.Path, "dry_run", dryRun)

	return fn(ctx, a)
}
