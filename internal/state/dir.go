package state

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName returns the name of the application state subdirectory, which is
// the base name of the running executable.
func AppName() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Base(os.Args[0])
	}
	return filepath.Base(exe)
}

// Dir returns the state directory for this application, usually
// ~/.local/state/<app>. XDG_STATE_HOME is honored when set.
func Dir() string {
	return filepath.Join(xdg.StateHome, AppName())
}
