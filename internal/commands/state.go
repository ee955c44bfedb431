package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swaygroup/swaygroup/internal/state"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect the stored navigation state",
}

var statePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the state file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := stateStore()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), store.Path)
		return nil
	},
}

var stateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored state as JSON",
	Long: `Print the stored state as JSON.

A missing or unreadable state file prints the default state.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := stateStore()
		if err != nil {
			return err
		}
		st, err := store.LoadOrDefault()
		if err != nil {
			newLogger().Debug("using default state", "path", store.Path, "err", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprint(out, marshalJSONOrFallback(st, isTerminal(out)))
		return nil
	},
}

var stateResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget all remembered workspaces",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := stateStore()
		if err != nil {
			return err
		}
		if dryRun {
			fmt.Fprintf(cmd.OutOrStdout(), "Would remove %s\n", store.Path)
			return nil
		}
		if err := store.Remove(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", store.Path)
		return nil
	},
}

func init() {
	stateCmd.AddCommand(statePathCmd, stateShowCmd, stateResetCmd)
	rootCmd.AddCommand(stateCmd)
}

func stateStore() (*state.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return state.NewStore(cfg.StatePath()), nil
}
