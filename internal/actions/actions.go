// Package actions decides which workspace to go to next.
//
// Every function here is pure: it reads the navigation context and returns
// the target workspace, or nil when there is nothing to do. Applying the
// result is the caller's job.
package actions

import (
	"slices"

	"github.com/swaygroup/swaygroup/internal/state"
	"github.com/swaygroup/swaygroup/internal/workspace"
)

// Direction to move in when switching within a group.
type Direction int

const (
	Next Direction = iota
	Prev
)

func (d Direction) String() string {
	if d == Prev {
		return "prev"
	}
	return "next"
}

// Context is the snapshot the actions decide on.
type Context struct {
	Current    workspace.Workspace
	Workspaces []workspace.Workspace
	State      *state.State
}

// Switch moves to the next or previous workspace in the current group, in the
// order the window manager listed them. It never wraps around.
func Switch(ctx *Context, dir Direction) (*workspace.Workspace, error) {
	group, err := ctx.Current.Group()
	if err != nil {
		return nil, err
	}

	var members []workspace.Workspace
	for _, ws := range ctx.Workspaces {
		g, err := ws.Group()
		if err != nil {
			continue
		}
		if g.Char() == group.Char() {
			members = append(members, ws)
		}
	}

	if dir == Prev {
		slices.Reverse(members)
	}

	i := slices.IndexFunc(members, func(ws workspace.Workspace) bool { return ws.Focused })
	if i < 0 || i+1 >= len(members) {
		return nil, nil
	}

	next := members[i+1]
	return &next, nil
}

// GroupToggle moves to the last used workspace of the other group. From an
// invalid group it goes to the last valid group instead.
func GroupToggle(ctx *Context) (*workspace.Workspace, error) {
	group, err := ctx.Current.Group()
	if err != nil {
		return nil, err
	}

	target := group.Toggle()
	if !group.IsValid() {
		target = workspace.GroupFromID(ctx.State.LastGroup)
	}

	gid, err := target.ID()
	if err != nil {
		return nil, err
	}

	id, ok := ctx.State.Offset[gid]
	if !ok {
		id = gid*10 + 1
	}

	ws := workspace.New(id)
	return &ws, nil
}

// GotoOffset moves to workspace offset of the current group, or of the last
// valid group when the current one is invalid.
func GotoOffset(ctx *Context, offset uint32) (*workspace.Workspace, error) {
	group, err := ctx.Current.Group()
	if err != nil {
		return nil, err
	}
	gid, err := group.ID()
	if err != nil {
		return nil, err
	}

	if !group.IsValid() {
		gid = ctx.State.LastGroup
	}

	ws := workspace.New(gid*10 + offset)
	return &ws, nil
}

// Cycle bounces back to the workspace recorded as the cycle target of the
// current group. From an invalid group it behaves like GroupToggle.
func Cycle(ctx *Context) (*workspace.Workspace, error) {
	group, err := ctx.Current.Group()
	if err != nil {
		return nil, err
	}
	gid, err := group.ID()
	if err != nil {
		return nil, err
	}

	if !group.IsValid() {
		return GroupToggle(ctx)
	}

	id, ok := ctx.State.CycleOffset[gid]
	if !ok {
		id = gid*10 + 1
	}

	ws := workspace.New(id)
	return &ws, nil
}
