package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/music-assistant/massbuild/internal/runtime"
)

const (

	// Root of the isolated dependency environment. The path is fixed so the
	// assembler's copy step never needs to discover it.
	envRoot = "/app"

	// In-container staging area for build inputs (manifest, wheel, local
	// mirror). Staged under /tmp, outside the environment root: the builder
	// container is never exported, so nothing staged here can leak into the
	// final image.
	stagingDir = "/tmp/massbuild"

	// Permission overlay applied to the environment so the server can run
	// under any non-root UID.
	overlayMode = "777"

	// Interpreter and package installer of the base runtime image.
	pythonBin = "python3"
	pipBin    = envRoot + "/bin/pip"
)

// Executes the builder phase.
//
// A container is started from the base archive and the isolated dependency
// environment is populated at the fixed path: first a virtual environment,
// then the full dependency manifest resolved exclusively against the pinned
// mirror, then the application wheel by exact version. Installing the
// manifest before the wheel keeps the expensive dependency layer reusable
// when only the application version changes. The broad recursive permission
// overlay runs strictly last; any file created after it would come up with
// the wrong mode, and a second recursive pass in a later phase would rewrite
// the whole tree into a new layer.
//
// The returned container is left running; the assembler reads the finished
// environment out of it.
func (p *pipeline) runBuilder(ctx context.Context, in inputs) (*runtime.Container, error) {
	ctr, err := p.startContainer(ctx, "builder")
	if err != nil {
		return nil, err
	}

	findLinks, err := p.stageInputs(ctx, ctr, in)
	if err != nil {
		return nil, err
	}

	slog.Info("creating isolated environment", "path", envRoot)
	if _, err := p.exec(ctx, ctr, ErrBuild, venvCommand()...); err != nil {
		return nil, err
	}

	slog.Info("installing dependency manifest",
		"packages", len(in.manifest),
		"mirror", p.spec.Mirror,
	)
	if _, err := p.exec(ctx, ctr, ErrResolution, installManifestCommand(findLinks, stagedManifest)...); err != nil {
		return nil, err
	}

	slog.Info("installing application artifact", "wheel", filepath.Base(in.wheel))
	stagedWheel := stagingDir + "/" + filepath.Base(in.wheel)
	if _, err := p.exec(ctx, ctr, ErrArtifact, installWheelCommand(findLinks, stagedWheel)...); err != nil {
		return nil, err
	}

	// Strictly last: every file of the environment now exists.
	slog.Info("applying permission overlay", "path", envRoot, "mode", overlayMode)
	if err := ctr.ChmodTree(ctx, envRoot, overlayMode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuild, err)
	}

	return ctr, nil
}

// In-container path of the staged dependency manifest.
const stagedManifest = stagingDir + "/requirements.txt"

// Copies the build inputs into the builder container's staging area.
//
// Returns the find-links location pip should resolve against: the mirror URL
// itself when the mirror is remote, or the staged copy when the mirror is a
// directory on the build host (which the container cannot see).
func (p *pipeline) stageInputs(ctx context.Context, ctr *runtime.Container, in inputs) (string, error) {
	if err := copyToContainer(ctx, ctr, p.spec.Requirements, stagedManifest); err != nil {
		return "", err
	}

	if err := copyToContainer(ctx, ctr, in.wheel, stagingDir+"/"+filepath.Base(in.wheel)); err != nil {
		return "", err
	}

	if p.spec.RemoteMirror() {
		return p.spec.Mirror, nil
	}

	stagedMirror := stagingDir + "/mirror"
	if err := copyToContainer(ctx, ctr, p.spec.Mirror, stagedMirror); err != nil {
		return "", err
	}
	return stagedMirror, nil
}

// Returns the command that creates the virtual environment at the fixed
// environment root.
func venvCommand() []string {
	return []string{pythonBin, "-m", "venv", envRoot}
}

// Returns the command that installs the dependency manifest.
//
// --no-index cuts off the default package index, leaving the pinned mirror
// as the only source, so a given manifest and mirror snapshot always resolve
// to identical contents.
func installManifestCommand(findLinks, manifestPath string) []string {
	return []string{
		pipBin, "install",
		"--no-cache-dir",
		"--no-index",
		"--find-links", findLinks,
		"--requirement", manifestPath,
	}
}

// Returns the command that installs the application wheel.
//
// The mirror stays reachable so the wheel's own dependency pins can resolve,
// though a complete manifest normally leaves nothing to fetch.
func installWheelCommand(findLinks, wheelPath string) []string {
	return []string{
		pipBin, "install",
		"--no-cache-dir",
		"--no-index",
		"--find-links", findLinks,
		wheelPath,
	}
}
