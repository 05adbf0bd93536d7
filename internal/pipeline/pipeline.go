package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	goruntime "runtime"
	"strings"

	"github.com/music-assistant/massbuild/internal/config"
	"github.com/music-assistant/massbuild/internal/paths"
	"github.com/music-assistant/massbuild/internal/runtime"
)

// Controls a pipeline run.
type Options struct {
	Spec   Spec          // Build parameters; the single source of truth for versions.
	Config config.Config // Image metadata and entry contract.
	Output string        // Directory for the exported image.
}

// Returned after a successful pipeline run.
type Result struct {
	Output string // Directory containing the exported image.
	Wheel  string // Resolved application artifact path.
}

// Executes the two-phase build pipeline against the container runtime.
//
// The builder phase populates the isolated dependency environment from the
// pinned mirror and applies the permission overlay; the assembler phase
// copies the finished environment into a fresh base image and exports the
// final archive with metadata and the entry contract attached. The phases
// run strictly in sequence and every failure aborts the whole pipeline: no
// partial image is ever produced.
func Run(ctx context.Context, rt *runtime.Runtime, opts Options) (*Result, error) {
	if opts.Spec.Platform == "" {
		opts.Spec.Platform = "linux/" + goruntime.GOARCH
	}

	in, err := preflight(opts.Spec)
	if err != nil {
		return nil, err
	}

	slog.Info("executing build",
		"package", opts.Spec.Package,
		"version", opts.Spec.AppVersion,
		"base", opts.Spec.BaseVersion,
		"platform", opts.Spec.Platform,
		"output", opts.Output,
	)

	if err := os.MkdirAll(opts.Output, paths.DefaultDirMode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	p := &pipeline{
		rt:     rt,
		spec:   opts.Spec,
		cfg:    opts.Config,
		output: opts.Output,
	}
	defer p.destroyContainers(ctx)

	builder, err := p.runBuilder(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("%w: builder phase: %w", ErrBuild, err)
	}

	if err := p.runAssembler(ctx, builder); err != nil {
		return nil, fmt.Errorf("%w: assembler phase: %w", ErrBuild, err)
	}

	return &Result{Output: p.output, Wheel: in.wheel}, nil
}

// Holds shared state for one pipeline run.
type pipeline struct {
	rt         *runtime.Runtime     // Container runtime for image and container operations.
	spec       Spec                 // Build parameters.
	cfg        config.Config        // Image metadata and entry contract.
	output     string               // Output directory for the final image archive.
	containers []*runtime.Container // Phase containers, destroyed after the run completes.
}

// Build inputs resolved before any container is started.
type inputs struct {
	wheel    string        // Path of the application wheel in the dist directory.
	manifest []Requirement // Parsed dependency manifest.
}

// Resolves and checks every external input of the build.
//
// Resolution is deterministic, so anything that fails here would fail inside
// the phases too; checking up front means no container is started and no
// partial environment ever surfaces downstream.
func preflight(spec Spec) (inputs, error) {
	if err := spec.Validate(); err != nil {
		return inputs{}, err
	}

	manifest, err := LoadManifest(spec.Requirements)
	if err != nil {
		return inputs{}, err
	}

	wheel, err := ResolveArtifact(spec)
	if err != nil {
		return inputs{}, err
	}

	if _, err := os.Stat(spec.BaseArchive()); err != nil {
		return inputs{}, fmt.Errorf("%w: base archive for version %s: %w", ErrSpec, spec.BaseVersion, err)
	}

	if !spec.RemoteMirror() {
		if _, err := os.Stat(spec.Mirror); err != nil {
			return inputs{}, fmt.Errorf("%w: mirror directory: %w", ErrSpec, err)
		}
	}

	return inputs{wheel: wheel, manifest: manifest}, nil
}

// Starts a phase container from the base archive both phases share.
func (p *pipeline) startContainer(ctx context.Context, phase string) (*runtime.Container, error) {
	ctr, err := p.rt.StartContainer(ctx, p.spec.BaseArchive(), p.containerID(phase), p.spec.Platform)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", runtime.ErrRuntime, err)
	}

	p.containers = append(p.containers, ctr)
	return ctr, nil
}

// Runs a command inside a phase container, classifying a non-zero exit under
// the given sentinel error.
func (p *pipeline) exec(ctx context.Context, ctr *runtime.Container, sentinel error, args ...string) (*runtime.ExecResult, error) {
	result, err := ctr.Exec(ctx, nil, "", args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", sentinel, err)
	}
	if result.ExitCode != 0 {
		return nil, fmt.Errorf("%w: exit code %d: %s", sentinel, result.ExitCode, result.Stderr)
	}
	return result, nil
}

// Destroys all phase containers.
func (p *pipeline) destroyContainers(ctx context.Context) {
	for _, ctr := range p.containers {
		ctr.Destroy(ctx)
	}
}

// Returns a unique container ID for a phase, scoped to this platform.
func (p *pipeline) containerID(phase string) string {
	return fmt.Sprintf("massbuild-%s-%s", platformSlug(p.spec.Platform), phase)
}

// Converts a platform string to a filesystem-safe slug.
//
// Replaces slashes with dashes (e.g., "linux/amd64" becomes "linux-amd64").
func platformSlug(platform string) string {
	return strings.ReplaceAll(platform, "/", "-")
}
