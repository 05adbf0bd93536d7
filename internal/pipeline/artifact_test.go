package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeWheel(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("stub"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveArtifact(t *testing.T) {
	dir := t.TempDir()
	writeWheel(t, dir, "music_assistant-2.5.1-py3-none-any.whl")
	writeWheel(t, dir, "music_assistant-2.5.0-py3-none-any.whl")

	spec := validSpec()
	spec.Dist = dir

	got, err := ResolveArtifact(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(dir, "music_assistant-2.5.1-py3-none-any.whl")
	if got != want {
		t.Fatalf("wheel = %q, want %q", got, want)
	}
}

func TestResolveArtifactNoMatch(t *testing.T) {
	dir := t.TempDir()
	writeWheel(t, dir, "music_assistant-2.5.0-py3-none-any.whl")

	spec := validSpec()
	spec.Dist = dir
	spec.AppVersion = "2.5.1"

	if _, err := ResolveArtifact(spec); !errors.Is(err, ErrArtifact) {
		t.Fatalf("err = %v, want ErrArtifact", err)
	}
}

func TestResolveArtifactEmptyDir(t *testing.T) {
	spec := validSpec()
	spec.Dist = t.TempDir()

	if _, err := ResolveArtifact(spec); !errors.Is(err, ErrArtifact) {
		t.Fatalf("err = %v, want ErrArtifact", err)
	}
}

func TestResolveArtifactAmbiguous(t *testing.T) {
	dir := t.TempDir()
	writeWheel(t, dir, "music_assistant-2.5.1-py3-none-any.whl")
	writeWheel(t, dir, "music_assistant-2.5.1-py3-none-musllinux_1_2_x86_64.whl")

	spec := validSpec()
	spec.Dist = dir

	if _, err := ResolveArtifact(spec); !errors.Is(err, ErrArtifact) {
		t.Fatalf("err = %v, want ErrArtifact", err)
	}
}

func TestResolveArtifactIgnoresNonWheels(t *testing.T) {
	dir := t.TempDir()
	writeWheel(t, dir, "music_assistant-2.5.1-py3-none-any.whl")
	writeWheel(t, dir, "music_assistant-2.5.1.tar.gz")

	spec := validSpec()
	spec.Dist = dir

	if _, err := ResolveArtifact(spec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
