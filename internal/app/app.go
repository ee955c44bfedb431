// Package app gathers the navigation context from sway and commits the
// decisions made by the actions package.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/swaygroup/swaygroup/internal/actions"
	"github.com/swaygroup/swaygroup/internal/ipc"
	"github.com/swaygroup/swaygroup/internal/state"
	"github.com/swaygroup/swaygroup/internal/workspace"
)

// LockWait bounds how long Run waits for another invocation's state lock
// before going on without it.
var LockWait = 500 * time.Millisecond

// Action is a decided navigation.
type Action struct {
	// Target is the workspace to go to. Nil means nothing to do.
	Target *workspace.Workspace

	// MoveContainer moves the focused container along to Target.
	MoveContainer bool
}

// Decision computes an Action from the navigation context.
type Decision func(*actions.Context) (Action, error)

// App ties the window manager, the state store, and the actions together.
type App struct {
	IPC    ipc.Client
	Store  *state.Store
	Logger *log.Logger

	// DryRun skips the focus switch and the state write.
	DryRun bool

	// Lock holds the state file lock from the state read through the commit.
	Lock bool
}

// Context reads the workspaces and stored state.
func (a *App) Context(ctx context.Context) (*actions.Context, error) {
	workspaces, err := a.IPC.Workspaces(ctx)
	if err != nil {
		return nil, err
	}

	current, err := ipc.Focused(workspaces)
	if err != nil {
		return nil, err
	}

	st, err := a.Store.LoadOrDefault()
	if err != nil {
		a.Logger.Debug("using default state", "path", a.Store.Path, "err", err)
	}

	return &actions.Context{
		Current:    current,
		Workspaces: workspaces,
		State:      st,
	}, nil
}

// Run reads the navigation context, applies decide, and commits the result.
func (a *App) Run(ctx context.Context, decide Decision) error {
	if a.Lock && !a.DryRun {
		lockCtx, cancel := context.WithTimeout(ctx, LockWait)
		unlock, err := a.Store.Lock(lockCtx)
		cancel()
		if err != nil {
			a.Logger.Debug("running without state lock", "err", err)
		} else {
			defer unlock()
		}
	}

	nav, err := a.Context(ctx)
	if err != nil {
		return err
	}

	action, err := decide(nav)
	if err != nil {
		return err
	}

	_, err = a.Commit(ctx, action, nav)
	return err
}

// Commit applies action and records it in the state. It returns the new
// state, or nil when the state was left untouched.
func (a *App) Commit(ctx context.Context, action Action, nav *actions.Context) (*state.State, error) {
	a.Logger.Debug("action", "target", targetName(action.Target), "move_container", action.MoveContainer)

	target := action.Target
	if target == nil {
		return nil, nil
	}

	cur, err := locate(nav.Current)
	if err != nil {
		return nil, fmt.Errorf("current workspace: %w", err)
	}
	next, err := locate(*target)
	if err != nil {
		return nil, fmt.Errorf("target workspace: %w", err)
	}

	a.Logger.Debug("commit: goto workspace", "name", target.Name)

	if action.MoveContainer {
		if err := a.IPC.RunCommand(ctx, ipc.MoveContainerCommand(target.Name)); err != nil {
			return nil, err
		}
	}
	if !a.DryRun {
		if err := a.IPC.RunCommand(ctx, ipc.FocusCommand(target.Name)); err != nil {
			return nil, err
		}
	}

	if next == cur {
		return nil, nil
	}

	st := Reconcile(nav.State, cur, next)

	if !a.DryRun {
		if err := a.Store.Save(st); err != nil {
			return nil, err
		}
	}

	a.Logger.Debug("new state", "offset", st.Offset, "cycle_offset", st.CycleOffset, "last_group", st.LastGroup)
	return st, nil
}

// Position is a workspace located by group and workspace id.
type Position struct {
	Group       workspace.Group
	GroupID     uint32
	WorkspaceID uint32
}

func locate(ws workspace.Workspace) (Position, error) {
	group, err := ws.Group()
	if err != nil {
		return Position{}, err
	}
	gid, err := group.ID()
	if err != nil {
		return Position{}, err
	}
	id, err := ws.ID()
	if err != nil {
		return Position{}, err
	}
	return Position{Group: group, GroupID: gid, WorkspaceID: id}, nil
}

// Reconcile returns a copy of prev updated for a move from cur to next.
// The target becomes the remembered workspace of its group. A move within a
// group also records where it came from as that group's cycle target.
func Reconcile(prev *state.State, cur, next Position) *state.State {
	st := prev.Clone()

	st.Offset[next.GroupID] = next.WorkspaceID
	if next.Group.IsValid() {
		st.LastGroup = next.GroupID
	}
	if next.GroupID == cur.GroupID {
		st.CycleOffset[cur.GroupID] = cur.WorkspaceID
	}

	return st
}

// Info describes the focused workspace.
type Info struct {
	CurrentWorkspaceID uint32 `json:"current_workspace_id"`
	CurrentGroupID     uint32 `json:"current_group_id"`
}

// Info returns the ids of the focused workspace.
func (a *App) Info(ctx context.Context) (*Info, error) {
	workspaces, err := a.IPC.Workspaces(ctx)
	if err != nil {
		return nil, err
	}
	current, err := ipc.Focused(workspaces)
	if err != nil {
		return nil, err
	}

	pos, err := locate(current)
	if err != nil {
		return nil, err
	}
	return &Info{
		CurrentWorkspaceID: pos.WorkspaceID,
		CurrentGroupID:     pos.GroupID,
	}, nil
}

func targetName(ws *workspace.Workspace) string {
	if ws == nil {
		return ""
	}
	return ws.Name
}
