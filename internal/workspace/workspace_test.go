package workspace

import (
	"errors"
	"testing"
)

func TestWorkspaceID(t *testing.T) {
	tests := []struct {
		name    string
		wsName  string
		want    uint32
		wantErr bool
	}{
		{"two digits", "12", 12, false},
		{"single digit", "1", 1, false},
		{"zero", "0", 0, false},
		{"letters", "mail", 0, true},
		{"mixed", "1:web", 0, true},
		{"negative", "-1", 0, true},
		{"empty", "", 0, true},
		{"overflow", "4294967296", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Workspace{Name: tt.wsName}.ID()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrWorkspaceIDUnparsable) {
					t.Errorf("ID() error = %v, want ErrWorkspaceIDUnparsable", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ID() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWorkspaceGroup(t *testing.T) {
	tests := []struct {
		wsName string
		want   Group
	}{
		{"11", Group1},
		{"25", Group2},
		{"98", Group('9')},
		{"mail", Group('m')},
		{"1:web", Group1},
	}

	for _, tt := range tests {
		got, err := Workspace{Name: tt.wsName}.Group()
		if err != nil {
			t.Fatalf("Group(%q) error: %v", tt.wsName, err)
		}
		if got != tt.want {
			t.Errorf("Group(%q) = %q, want %q", tt.wsName, got, tt.want)
		}
	}
}

func TestWorkspaceGroup_Empty(t *testing.T) {
	_, err := Workspace{}.Group()
	if !errors.Is(err, ErrGroupUndeterminable) {
		t.Errorf("Group() error = %v, want ErrGroupUndeterminable", err)
	}
}

func TestGroupID(t *testing.T) {
	for r := '0'; r <= '9'; r++ {
		id, err := Group(r).ID()
		if err != nil {
			t.Fatalf("Group(%q).ID() error: %v", r, err)
		}
		if id != uint32(r-'0') {
			t.Errorf("Group(%q).ID() = %d", r, id)
		}
	}

	if _, err := Group('a').ID(); !errors.Is(err, ErrGroupIDInvalidDigit) {
		t.Errorf("Group('a').ID() error = %v, want ErrGroupIDInvalidDigit", err)
	}
}

func TestGroupIsValid(t *testing.T) {
	tests := []struct {
		group Group
		want  bool
	}{
		{Group1, true},
		{Group2, true},
		{Group('0'), false},
		{Group('3'), false},
		{Group('9'), false},
		{Group('x'), false},
	}

	for _, tt := range tests {
		if got := tt.group.IsValid(); got != tt.want {
			t.Errorf("Group(%q).IsValid() = %v, want %v", tt.group, got, tt.want)
		}
	}
}

func TestGroupToggle(t *testing.T) {
	tests := []struct {
		group Group
		want  Group
	}{
		{Group1, Group2},
		{Group2, Group1},
		{Group('9'), Group1},
		{Group('m'), Group1},
	}

	for _, tt := range tests {
		if got := tt.group.Toggle(); got != tt.want {
			t.Errorf("Group(%q).Toggle() = %q, want %q", tt.group, got, tt.want)
		}
	}
}

// Toggling an invalid group twice lands on Group2, not on the original group.
func TestGroupToggle_NotInvolutionForInvalid(t *testing.T) {
	if got := Group('9').Toggle().Toggle(); got != Group2 {
		t.Errorf("toggle(toggle('9')) = %q, want '2'", got)
	}
	for _, g := range []Group{Group1, Group2} {
		if got := g.Toggle().Toggle(); got != g {
			t.Errorf("toggle(toggle(%q)) = %q", g, got)
		}
	}
}

func TestGroupFromID(t *testing.T) {
	tests := []struct {
		id   uint32
		want Group
	}{
		{1, Group1},
		{2, Group2},
		{0, Group('0')},
		{9, Group('9')},
		{25, Group2},
		{123, Group1},
	}

	for _, tt := range tests {
		if got := GroupFromID(tt.id); got != tt.want {
			t.Errorf("GroupFromID(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	ws := New(21)
	if ws.Name != "21" || !ws.Focused {
		t.Errorf("New(21) = %+v", ws)
	}
}
