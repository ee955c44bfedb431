package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swaygroup/swaygroup/internal/app"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the focused workspace and group ids as JSON",
	Example: `  swaygroup info
  {"current_workspace_id":12,"current_group_id":1}`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			info, err := a.Info(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, marshalJSONOrFallback(info, isTerminal(out)))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
