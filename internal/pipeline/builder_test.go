package pipeline

import (
	"slices"
	"strings"
	"testing"
)

func TestVenvCommand(t *testing.T) {
	cmd := venvCommand()
	if cmd[0] != pythonBin {
		t.Fatalf("cmd[0] = %q, want %q", cmd[0], pythonBin)
	}
	if cmd[len(cmd)-1] != envRoot {
		t.Fatalf("venv target = %q, want %q", cmd[len(cmd)-1], envRoot)
	}
}

func TestInstallManifestCommand(t *testing.T) {
	cmd := installManifestCommand("https://wheels.example.org/", stagedManifest)

	if cmd[0] != pipBin {
		t.Fatalf("cmd[0] = %q, want the environment's own pip", cmd[0])
	}

	// The default index must be cut off so the pinned mirror is the only
	// package source.
	if !slices.Contains(cmd, "--no-index") {
		t.Fatalf("cmd = %v, missing --no-index", cmd)
	}

	i := slices.Index(cmd, "--find-links")
	if i < 0 || i+1 >= len(cmd) || cmd[i+1] != "https://wheels.example.org/" {
		t.Fatalf("cmd = %v, mirror not wired to --find-links", cmd)
	}

	j := slices.Index(cmd, "--requirement")
	if j < 0 || j+1 >= len(cmd) || cmd[j+1] != stagedManifest {
		t.Fatalf("cmd = %v, manifest not wired to --requirement", cmd)
	}
}

func TestInstallWheelCommand(t *testing.T) {
	wheel := stagingDir + "/music_assistant-2.5.1-py3-none-any.whl"
	cmd := installWheelCommand("/tmp/massbuild/mirror", wheel)

	if cmd[len(cmd)-1] != wheel {
		t.Fatalf("cmd = %v, wheel must be the install target", cmd)
	}
	if !slices.Contains(cmd, "--no-index") {
		t.Fatalf("cmd = %v, missing --no-index", cmd)
	}
	if !slices.Contains(cmd, "--no-cache-dir") {
		t.Fatalf("cmd = %v, missing --no-cache-dir", cmd)
	}
}

func TestStagingOutsideEnvironment(t *testing.T) {
	// Staged inputs must never live under the environment root: the broad
	// permission overlay would pick them up and the assembler would copy
	// them into the final image.
	if strings.HasPrefix(stagingDir, envRoot) {
		t.Fatalf("staging dir %q is inside the environment root %q", stagingDir, envRoot)
	}
	if !strings.HasPrefix(stagedManifest, stagingDir) {
		t.Fatalf("staged manifest %q is outside the staging dir", stagedManifest)
	}
}
