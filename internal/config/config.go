// Package config handles the swaygroup configuration file.
//
// The file lives at $XDG_CONFIG_HOME/swaygroup/config.yaml and contains:
//
//	socket_path: "/run/user/1000/sway-ipc.sock"  - sway socket (default: $SWAYSOCK)
//	state_dir: "/home/me/.local/state/swaygroup" - where state.json is kept
//	ipc_timeout: 2s                               - deadline for sway IPC calls
//	lock: true                                    - lock the state file while navigating
//
// A .env file next to config.yaml is loaded first. SWAYGROUP_SOCKET and
// SWAYGROUP_STATE_DIR override the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/swaygroup/swaygroup/internal/state"
)

const (
	// DirName is the config subdirectory under XDG_CONFIG_HOME.
	DirName = "swaygroup"

	// FileName is the name of the configuration file.
	FileName = "config.yaml"

	// DefaultIPCTimeout bounds a whole invocation's sway IPC.
	DefaultIPCTimeout = 2 * time.Second
)

// Environment overrides.
const (
	EnvSocket   = "SWAYGROUP_SOCKET"
	EnvStateDir = "SWAYGROUP_STATE_DIR"
)

// customPath holds an optional custom config file path.
var customPath string

// SetPath sets a custom config file path for Load() to use.
// Pass an empty string to reset to the default path.
func SetPath(path string) {
	customPath = path
}

// GetPath returns the current config file path.
func GetPath() string {
	if customPath != "" {
		return customPath
	}
	return filepath.Join(xdg.ConfigHome, DirName, FileName)
}

// Config represents the configuration file.
type Config struct {
	SocketPath string        `yaml:"socket_path,omitempty"`
	StateDir   string        `yaml:"state_dir,omitempty"`
	IPCTimeout time.Duration `yaml:"ipc_timeout,omitempty"`
	Lock       *bool         `yaml:"lock,omitempty"`
}

// LockEnabled reports whether the state file should be locked. Defaults to true.
func (c *Config) LockEnabled() bool {
	if c.Lock == nil {
		return true
	}
	return *c.Lock
}

// Timeout returns the IPC timeout, or DefaultIPCTimeout when unset.
func (c *Config) Timeout() time.Duration {
	if c.IPCTimeout == 0 {
		return DefaultIPCTimeout
	}
	return c.IPCTimeout
}

// StatePath returns the state directory, falling back to the XDG state dir.
func (c *Config) StatePath() string {
	if c.StateDir != "" {
		return c.StateDir
	}
	return state.Dir()
}

// Load reads the configuration file, returning defaults when it doesn't exist.
func Load() (*Config, error) {
	path := GetPath()
	loadDotenvBestEffort(filepath.Dir(path))

	cfg, err := LoadFrom(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		cfg = &Config{}
	}

	cfg.applyEnv()
	return cfg, nil
}

// LoadFrom reads and parses a configuration file from a specific path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err // Return unwrapped for os.IsNotExist() checks
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// loadDotenvBestEffort sets variables from dir/.env that are unset or empty
// in the environment.
func loadDotenvBestEffort(dir string) {
	env, err := godotenv.Read(filepath.Join(dir, ".env"))
	if err != nil {
		return
	}
	for k, v := range env {
		if os.Getenv(k) == "" {
			_ = os.Setenv(k, v)
		}
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvSocket); v != "" {
		c.SocketPath = v
	}
	if v := os.Getenv(EnvStateDir); v != "" {
		c.StateDir = v
	}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.IPCTimeout < 0 {
		return fmt.Errorf("ipc_timeout must not be negative")
	}
	if c.StateDir != "" && !filepath.IsAbs(c.StateDir) {
		return fmt.Errorf("state_dir must be an absolute path")
	}
	if c.SocketPath != "" && !filepath.IsAbs(c.SocketPath) {
		return fmt.Errorf("socket_path must be an absolute path")
	}
	return nil
}
