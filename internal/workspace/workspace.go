// Package workspace defines the workspace and group value types used by the
// navigation engine.
//
// A group is the first character of a workspace name. Only groups '1' and '2'
// are valid; every other group is tracked but navigation falls back to the
// last valid group for it.
package workspace

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

var (
	// ErrGroupUndeterminable is returned when a workspace name is empty.
	ErrGroupUndeterminable = errors.New("workspace group cannot be determined")

	// ErrGroupIDInvalidDigit is returned when a group character is not a decimal digit.
	ErrGroupIDInvalidDigit = errors.New("workspace group is not a digit")

	// ErrWorkspaceIDUnparsable is returned when a workspace name is not numeric.
	ErrWorkspaceIDUnparsable = errors.New("workspace name is not numeric")
)

// Workspace is a window manager workspace as seen by the navigation engine.
type Workspace struct {
	Name    string `json:"name"`
	Focused bool   `json:"focused"`
}

// New returns a focused workspace named after id.
func New(id uint32) Workspace {
	return Workspace{
		Name:    strconv.FormatUint(uint64(id), 10),
		Focused: true,
	}
}

// ID returns the workspace name as a number.
func (w Workspace) ID() (uint32, error) {
	id, err := strconv.ParseUint(w.Name, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrWorkspaceIDUnparsable, w.Name)
	}
	return uint32(id), nil
}

// Group returns the group of the workspace, derived from the first character
// of its name.
func (w Workspace) Group() (Group, error) {
	r, size := utf8.DecodeRuneInString(w.Name)
	if size == 0 {
		return 0, ErrGroupUndeterminable
	}
	return Group(r), nil
}

// Group identifies a set of workspaces by the leading character of their names.
type Group rune

const (
	Group1 Group = '1'
	Group2 Group = '2'
)

// GroupFromID returns the group for a numeric group id. Only the leading digit
// of id is used, so callers must pass single digit ids.
func GroupFromID(id uint32) Group {
	s := strconv.FormatUint(uint64(id), 10)
	return Group(s[0])
}

// ID returns the group as a single decimal digit.
func (g Group) ID() (uint32, error) {
	if g < '0' || g > '9' {
		return 0, fmt.Errorf("%w: %q", ErrGroupIDInvalidDigit, rune(g))
	}
	return uint32(g - '0'), nil
}

// IsValid reports whether g is one of the two navigable groups.
func (g Group) IsValid() bool {
	id, err := g.ID()
	if err != nil {
		return false
	}
	return id == 1 || id == 2
}

// Toggle returns the other navigable group. Group1 maps to Group2 and every
// other group, valid or not, maps to Group1.
func (g Group) Toggle() Group {
	if g == Group1 {
		return Group2
	}
	return Group1
}

// Char returns the character identifying the group.
func (g Group) Char() rune {
	return rune(g)
}

func (g Group) String() string {
	return string(rune(g))
}
