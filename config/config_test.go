package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	d := Default()
	if d.AsyncPoolSize != 4 || d.HandleStoreCapacity != 64 || d.LogLevel != "error" {
		t.Fatalf("defaults = %+v", d)
	}
}

func TestParse(t *testing.T) {
	opts, err := Parse([]byte("async_pool_size: 8\nlog_level: debug\n"))
	if err != nil {
		t.Fatal(err)
	}
	if opts.AsyncPoolSize != 8 {
		t.Errorf("pool = %d", opts.AsyncPoolSize)
	}
	if opts.LogLevel != "debug" {
		t.Errorf("level = %q", opts.LogLevel)
	}
	// Unset fields keep defaults.
	if opts.HandleStoreCapacity != 64 {
		t.Errorf("capacity = %d", opts.HandleStoreCapacity)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte(":\tnot yaml")); err == nil {
		t.Fatal("bad yaml accepted")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "napi.yaml")
	if err := os.WriteFile(path, []byte("tsfn_queue_size: 32\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	opts, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if opts.TSFNQueueSize != 32 {
		t.Errorf("queue = %d", opts.TSFNQueueSize)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("missing file accepted")
	}
}
