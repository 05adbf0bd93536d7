package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Entry.Port != DefaultPort {
		t.Fatalf("port = %d, want %d", cfg.Entry.Port, DefaultPort)
	}
	if cfg.Entry.DataDir != DefaultDataDir {
		t.Fatalf("data dir = %q, want %q", cfg.Entry.DataDir, DefaultDataDir)
	}
	if cfg.Metadata.Title == "" || cfg.Metadata.License == "" {
		t.Fatal("default metadata incomplete")
	}
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse([]byte(`
metadata:
  title: Custom Title
entry:
  port: 9000
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Metadata.Title != "Custom Title" {
		t.Fatalf("title = %q, want Custom Title", cfg.Metadata.Title)
	}
	if cfg.Entry.Port != 9000 {
		t.Fatalf("port = %d, want 9000", cfg.Entry.Port)
	}

	// Everything not named in the file keeps its default.
	if cfg.Metadata.License != Default().Metadata.License {
		t.Fatalf("license = %q, want default", cfg.Metadata.License)
	}
	if cfg.Entry.DataDir != DefaultDataDir {
		t.Fatalf("data dir = %q, want default", cfg.Entry.DataDir)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Entry.Port != DefaultPort {
		t.Fatalf("port = %d, want default", cfg.Entry.Port)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("metadata:\n  nonsense: true\n"))
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"port zero", "entry:\n  port: 0\n"},
		{"port too large", "entry:\n  port: 70000\n"},
		{"relative data dir", "entry:\n  data_dir: data\n"},
		{"empty binary", "entry:\n  binary: \"\"\n"},
		{"port as string", "entry:\n  port: \"8095\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); !errors.Is(err, ErrConfig) {
				t.Fatalf("err = %v, want ErrConfig", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "massbuild.yaml")
	if err := os.WriteFile(path, []byte("entry:\n  port: 8096\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Entry.Port != 8096 {
		t.Fatalf("port = %d, want 8096", cfg.Entry.Port)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); !errors.Is(err, ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}
}

func TestEntrypoint(t *testing.T) {
	e := Default().Entry
	got := e.Entrypoint()
	want := []string{"mass", "--config", "/data"}
	if len(got) != len(want) {
		t.Fatalf("entrypoint = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entrypoint[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPortSpec(t *testing.T) {
	if got := Default().Entry.PortSpec(); got != "8095/tcp" {
		t.Fatalf("port spec = %q, want 8095/tcp", got)
	}
}
