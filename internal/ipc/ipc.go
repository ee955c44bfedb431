// Package ipc talks to the sway window manager.
//
// Only the two operations the navigator needs are exposed: listing
// workspaces and running a command. Command replies that report failure are
// turned into errors wrapping ErrIPC.
package ipc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sway "github.com/joshuarubin/go-sway"

	"github.com/swaygroup/swaygroup/internal/workspace"
)

// ErrIPC is returned when the window manager cannot be reached or rejects a command.
var ErrIPC = errors.New("sway ipc")

// Client is the window manager surface used by the navigator.
type Client interface {
	Workspaces(ctx context.Context) ([]workspace.Workspace, error)
	RunCommand(ctx context.Context, command string) error
}

// Conn is a Client backed by the sway IPC socket.
type Conn struct {
	sway sway.Client
}

// Dial connects to sway. An empty socketPath uses $SWAYSOCK.
func Dial(ctx context.Context, socketPath string) (*Conn, error) {
	var opts []sway.Option
	if socketPath != "" {
		opts = append(opts, sway.WithSocketPath(socketPath))
	}

	c, err := sway.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to connect to sway socket: %w", ErrIPC, err)
	}
	return &Conn{sway: c}, nil
}

// Workspaces returns all workspaces in sway's native order.
func (c *Conn) Workspaces(ctx context.Context) ([]workspace.Workspace, error) {
	list, err := c.sway.GetWorkspaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch workspaces: %w", ErrIPC, err)
	}

	out := make([]workspace.Workspace, 0, len(list))
	for _, ws := range list {
		out = append(out, workspace.Workspace{
			Name:    ws.Name,
			Focused: ws.Focused,
		})
	}
	return out, nil
}

// RunCommand runs a sway command and fails if any of its replies failed.
func (c *Conn) RunCommand(ctx context.Context, command string) error {
	replies, err := c.sway.RunCommand(ctx, command)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrIPC, command, err)
	}

	var failures []string
	for _, r := range replies {
		if !r.Success {
			failures = append(failures, r.Error)
		}
	}
	if len(failures) > 0 {
		return fmt.Errorf("%w: %s: %s", ErrIPC, command, strings.Join(failures, "; "))
	}
	return nil
}

// Focused returns the focused workspace from list.
func Focused(list []workspace.Workspace) (workspace.Workspace, error) {
	for _, ws := range list {
		if ws.Focused {
			return ws, nil
		}
	}
	return workspace.Workspace{}, errors.New("cannot find focused workspace")
}

// FocusCommand returns the command switching focus to the named workspace.
func FocusCommand(name string) string {
	return "workspace " + name
}

// MoveContainerCommand returns the command moving the focused container to
// the named workspace.
func MoveContainerCommand(name string) string {
	return "move container to workspace " + name
}
