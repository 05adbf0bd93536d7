package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/music-assistant/massbuild/internal/runtime"
)

// Executes the assembler phase.
//
// A fresh container is started from the same base archive the builder used,
// and the finished dependency environment is streamed into it verbatim. Only
// the environment crosses the phase boundary: the builder's staging area,
// pip caches, and any other intermediate state stay behind. The copy loses
// the ownership metadata on the environment root itself, so a narrow,
// non-recursive permission fix is applied to that one directory; the
// contents already carry the builder's overlay and are not touched again.
// The container is then stopped and exported with the image metadata and
// the entry contract applied.
func (p *pipeline) runAssembler(ctx context.Context, builder *runtime.Container) error {
	ctr, err := p.startContainer(ctx, "assembler")
	if err != nil {
		return err
	}

	slog.Info("copying environment", "from", builder.ID(), "path", envRoot)
	if err := copyEnvironment(ctx, builder, ctr); err != nil {
		return err
	}

	// Mount-point fix only; the tree below already has its overlay.
	if err := ctr.Chmod(ctx, envRoot, overlayMode); err != nil {
		return fmt.Errorf("%w: %w", ErrBuild, err)
	}

	if err := ctr.Stop(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrBuild, err)
	}

	return p.export(ctx, ctr)
}

// Streams the isolated dependency environment from the builder container
// into the assembler container at an identical path.
//
// The tar stream is piped directly from the builder's CopyFrom to the
// assembler's CopyTo; the environment is treated as one opaque unit and is
// never partially merged.
func copyEnvironment(ctx context.Context, from, to *runtime.Container) error {
	pr, pw := io.Pipe()

	errc := make(chan error, 1)
	go func() {
		errc <- from.CopyFrom(ctx, pw, envRoot)
		pw.Close()
	}()

	if err := to.CopyTo(ctx, pr, filepath.Dir(envRoot)); err != nil {
		return fmt.Errorf("%w: %w", ErrCopy, err)
	}

	if err := <-errc; err != nil {
		return fmt.Errorf("%w: %w", ErrCopy, err)
	}

	return nil
}

// Commits the assembler container and exports the final image.
//
// The metadata record and the entry contract are applied to the image
// configuration during export. The entry contract is fixed: the port, data
// mount, and process invocation never vary with the target platform.
func (p *pipeline) export(ctx context.Context, ctr *runtime.Container) error {
	entry := p.cfg.Entry

	return ctr.Export(ctx, p.output, runtime.ImageConfig{
		Entrypoint:   entry.Entrypoint(),
		ExposedPorts: []string{entry.PortSpec()},
		Volumes:      []string{entry.DataDir},
		Labels:       imageLabels(p.spec, p.cfg.Metadata),
	})
}
