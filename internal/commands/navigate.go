package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/swaygroup/swaygroup/internal/actions"
	"github.com/swaygroup/swaygroup/internal/app"
)

var prevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Switch to the previous workspace within the current group",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return navigate(cmd, switchDecision(actions.Prev))
	},
}

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Switch to the next workspace within the current group",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return navigate(cmd, switchDecision(actions.Next))
	},
}

var toggleGroupCmd = &cobra.Command{
	Use:   "toggle-group",
	Short: "Toggle between both groups",
	Long: `Switch to the last used workspace of the other group.

From a workspace outside groups 1 and 2, go to the last used group instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return navigate(cmd, toggleDecision(false))
	},
}

var gotoCmd = &cobra.Command{
	Use:   "goto <offset>",
	Short: "Go to workspace offset within the current group",
	Example: `  # From workspace 21, go to 23
  swaygroup goto 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		offset, err := parseOffset(args[0])
		if err != nil {
			return err
		}
		return navigate(cmd, gotoDecision(offset, false))
	},
}

var moveCmd = &cobra.Command{
	Use:   "move [offset]",
	Short: "Move the focused container to a workspace offset within the current group",
	Long: `Move the focused container to workspace offset within the current group
and follow it.

Without an offset, move the container to the last used workspace of the
other group.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return navigate(cmd, toggleDecision(true))
		}
		offset, err := parseOffset(args[0])
		if err != nil {
			return err
		}
		return navigate(cmd, gotoDecision(offset, true))
	},
}

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Cycle back to the previously used workspace within the current group",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return navigate(cmd, func(c *actions.Context) (app.Action, error) {
			ws, err := actions.Cycle(c)
			return app.Action{Target: ws}, err
		})
	},
}

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the currently selected workspace to state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return navigate(cmd, func(*actions.Context) (app.Action, error) {
			return app.Action{}, nil
		})
	},
}

func init() {
	rootCmd.AddCommand(prevCmd, nextCmd, toggleGroupCmd, gotoCmd, moveCmd, cycleCmd, saveCmd)
}

func navigate(cmd *cobra.Command, decide app.Decision) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		return a.Run(ctx, decide)
	})
}

func switchDecision(dir actions.Direction) app.Decision {
	return func(c *actions.Context) (app.Action, error) {
		ws, err := actions.Switch(c, dir)
		return app.Action{Target: ws}, err
	}
}

func toggleDecision(moveContainer bool) app.Decision {
	return func(c *actions.Context) (app.Action, error) {
		ws, err := actions.GroupToggle(c)
		return app.Action{Target: ws, MoveContainer: moveContainer}, err
	}
}

func gotoDecision(offset uint32, moveContainer bool) app.Decision {
	return func(c *actions.Context) (app.Action, error) {
		ws, err := actions.GotoOffset(c, offset)
		return app.Action{Target: ws, MoveContainer: moveContainer}, err
	}
}

// Offsets address workspaces group*10+offset, so they stay a single digit.
const (
	minOffset = 1
	maxOffset = 9
)

func parseOffset(arg string) (uint32, error) {
	offset, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || offset < minOffset || offset > maxOffset {
		return 0, fmt.Errorf("invalid offset %q: must be between %d and %d", arg, minOffset, maxOffset)
	}
	return uint32(offset), nil
}
