package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewSSHServerBadHostKeyDirOpensNoStore(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(blocker, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "runner.db")

	if _, err := NewSSHServer(cfg); err == nil {
		t.Fatal("expected an error when the host key directory cannot be created")
	}
	if _, err := os.Stat(cfg.DBPath); !os.IsNotExist(err) {
		t.Errorf("runs database should not be opened on a failed start, stat err = %v", err)
	}
}
