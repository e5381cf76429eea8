package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProjectConfig(t *testing.T) {
	t.Run("valid config loads", func(t *testing.T) {
		cfg, err := LoadProjectConfig(filepath.Join("testdata", "valid_config.yaml"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Account != "Jane#12345" {
			t.Fatalf("expected account, got %q", cfg.Account)
		}
		if cfg.TopLimit != 5 || cfg.OutputDir != "./reports" {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	t.Run("missing account without input", func(t *testing.T) {
		path := writeTempConfig(t, "version: 1\nwow_root: /wow\noutput_dir: out\n")
		if _, err := LoadProjectConfig(path); !errors.Is(err, ErrMissingAccount) {
			t.Fatalf("expected ErrMissingAccount, got %v", err)
		}
	})

	t.Run("explicit input makes account optional", func(t *testing.T) {
		path := writeTempConfig(t, "version: 1\ninput: ./dump.lua\n")
		cfg, err := LoadProjectConfig(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.OutputDir != "output" {
			t.Fatalf("expected default output dir, got %q", cfg.OutputDir)
		}
	})

	t.Run("unsupported version", func(t *testing.T) {
		path := writeTempConfig(t, "version: 2\naccount: a\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("negative top limit", func(t *testing.T) {
		path := writeTempConfig(t, "version: 1\naccount: a\ntop_limit: -1\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unknown database scheme", func(t *testing.T) {
		path := writeTempConfig(t, "version: 1\naccount: a\ndatabase:\n  dsn: mysql://localhost/toys\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("file not found", func(t *testing.T) {
		if _, err := LoadProjectConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeTempConfig(t, "account: [\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv(AccountEnv, "")
		cfg, err := Load(DefaultConfigFile)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.OutputDir != "output" || cfg.TopLimit != 10 || cfg.Version != 1 {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Chdir(t.TempDir())
		path := writeTempConfig(t, "version: 1\naccount: FromFile#1\noutput_dir: file-out\n")
		t.Setenv(AccountEnv, "FromEnv#2")
		t.Setenv("TOYTRACKER_OUTPUT_DIR", "env-out")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Account != "FromEnv#2" {
			t.Fatalf("expected env account, got %q", cfg.Account)
		}
		if cfg.OutputDir != "env-out" {
			t.Fatalf("expected env output dir, got %q", cfg.OutputDir)
		}
	})

	t.Run("file values without env", func(t *testing.T) {
		path := filepath.Join(mustAbs(t, "testdata"), "valid_config.yaml")
		t.Chdir(t.TempDir())
		t.Setenv(AccountEnv, "")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Database.DSN != "sqlite://./toys.db" {
			t.Fatalf("unexpected dsn %q", cfg.Database.DSN)
		}
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		t.Chdir(t.TempDir())
		path := writeTempConfig(t, "account: [\n")
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestSavedVariablesPath(t *testing.T) {
	t.Run("derived from account", func(t *testing.T) {
		cfg := Default()
		cfg.WowRoot = "/wow"
		cfg.Account = "Jane#12345"
		path, err := cfg.SavedVariablesPath()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		want := filepath.Join("/wow", "_retail_", "WTF", "Account", "Jane#12345", "SavedVariables", "ATT_ToyTracker.lua")
		if path != want {
			t.Fatalf("expected %q, got %q", want, path)
		}
	})

	t.Run("explicit input wins", func(t *testing.T) {
		cfg := Default()
		cfg.Account = "Jane#12345"
		cfg.Input = "dump.lua"
		path, err := cfg.SavedVariablesPath()
		if err != nil || path != "dump.lua" {
			t.Fatalf("expected dump.lua, got %q (%v)", path, err)
		}
	})

	t.Run("no account", func(t *testing.T) {
		cfg := Default()
		if _, err := cfg.SavedVariablesPath(); !errors.Is(err, ErrMissingAccount) {
			t.Fatalf("expected ErrMissingAccount, got %v", err)
		}
	})
}

func TestMarshal_RoundTripsThroughLoadProjectConfig(t *testing.T) {
	cfg := Default()
	cfg.Account = "Jane#12345"
	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := writeTempConfig(t, string(data))
	loaded, err := LoadProjectConfig(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if *loaded != cfg {
		t.Fatalf("expected %+v, got %+v", cfg, *loaded)
	}
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func mustAbs(t *testing.T, path string) string {
	t.Helper()
	abs, err := filepath.Abs(path)
	if err != nil {
		t.Fatalf("abs: %v", err)
	}
	return abs
}
