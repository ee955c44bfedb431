package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	SetPath(path)
	t.Cleanup(func() { SetPath("") })
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvSocket, "")
	t.Setenv(EnvStateDir, "")
	writeConfig(t, `socket_path: "/run/user/1000/sway-ipc.sock"
state_dir: "/tmp/swaygroup-state"
ipc_timeout: 500ms
lock: false
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.SocketPath != "/run/user/1000/sway-ipc.sock" {
		t.Errorf("SocketPath = %q", cfg.SocketPath)
	}
	if cfg.StatePath() != "/tmp/swaygroup-state" {
		t.Errorf("StatePath() = %q", cfg.StatePath())
	}
	if cfg.Timeout() != 500*time.Millisecond {
		t.Errorf("Timeout() = %v, want 500ms", cfg.Timeout())
	}
	if cfg.LockEnabled() {
		t.Error("LockEnabled() = true, want false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvSocket, "")
	t.Setenv(EnvStateDir, "")
	SetPath(filepath.Join(t.TempDir(), "missing", FileName))
	defer SetPath("")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.SocketPath != "" || cfg.StateDir != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
	if cfg.Timeout() != DefaultIPCTimeout {
		t.Errorf("Timeout() = %v, want %v", cfg.Timeout(), DefaultIPCTimeout)
	}
	if !cfg.LockEnabled() {
		t.Error("LockEnabled() should default to true")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	writeConfig(t, "socket_path: [unterminated\n")

	if _, err := Load(); err == nil {
		t.Error("Load() should fail on invalid YAML")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvSocket, "/tmp/env.sock")
	t.Setenv(EnvStateDir, "/tmp/env-state")
	writeConfig(t, `socket_path: "/tmp/file.sock"
state_dir: "/tmp/file-state"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.SocketPath != "/tmp/env.sock" {
		t.Errorf("SocketPath = %q, want env override", cfg.SocketPath)
	}
	if cfg.StateDir != "/tmp/env-state" {
		t.Errorf("StateDir = %q, want env override", cfg.StateDir)
	}
}

func TestLoad_DotenvNextToConfig(t *testing.T) {
	t.Setenv(EnvSocket, "")
	t.Setenv(EnvStateDir, "")
	path := writeConfig(t, "lock: true\n")

	if err := os.WriteFile(filepath.Join(filepath.Dir(path), ".env"), []byte(EnvStateDir+"=/tmp/dotenv-state\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.StateDir != "/tmp/dotenv-state" {
		t.Errorf("StateDir = %q, want value from .env", cfg.StateDir)
	}
}

func TestLoad_DotenvDoesNotOverrideEnv(t *testing.T) {
	t.Setenv(EnvSocket, "")
	t.Setenv(EnvStateDir, "/tmp/exported-state")
	path := writeConfig(t, "lock: true\n")

	if err := os.WriteFile(filepath.Join(filepath.Dir(path), ".env"), []byte(EnvStateDir+"=/tmp/dotenv-state\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.StateDir != "/tmp/exported-state" {
		t.Errorf("StateDir = %q, want exported value", cfg.StateDir)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty", Config{}, false},
		{"negative timeout", Config{IPCTimeout: -time.Second}, true},
		{"relative state dir", Config{StateDir: "state"}, true},
		{"relative socket", Config{SocketPath: "sway.sock"}, true},
		{"absolute paths", Config{StateDir: "/tmp/s", SocketPath: "/tmp/sway.sock"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetPath(t *testing.T) {
	SetPath("/tmp/custom.yaml")
	if got := GetPath(); got != "/tmp/custom.yaml" {
		t.Errorf("GetPath() = %q", got)
	}
	SetPath("")
	if got := GetPath(); filepath.Base(got) != FileName || filepath.Base(filepath.Dir(got)) != DirName {
		t.Errorf("GetPath() = %q", got)
	}
}
