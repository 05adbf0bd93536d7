package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/music-assistant/massbuild/internal"
	"github.com/music-assistant/massbuild/internal/config"
	"github.com/music-assistant/massbuild/internal/paths"
	"github.com/music-assistant/massbuild/internal/pipeline"
	"github.com/music-assistant/massbuild/internal/protocol"
)

// Runs a build request through the two-phase pipeline and reports the
// resulting image path.
func (s *Server) handleBuild(ctx context.Context, conn net.Conn, payload json.RawMessage) {
	req, err := protocol.DecodePayload[protocol.BuildRequest](payload)
	if err != nil {
		s.respond(conn, protocol.CmdError, &protocol.ErrorResult{Message: err.Error()})
		return
	}

	cfg := config.Default()
	if req.Config != "" {
		cfg, err = config.Load(req.Config)
		if err != nil {
			s.respond(conn, protocol.CmdError, &protocol.ErrorResult{Message: err.Error()})
			return
		}
	}

	spec := pipeline.Spec{
		Package:      req.Package,
		AppVersion:   req.AppVersion,
		BaseVersion:  req.BaseVersion,
		Platform:     req.Platform,
		Mirror:       req.Mirror,
		Requirements: req.Requirements,
		Dist:         req.Dist,
		Bases:        req.Bases,
	}

	output := req.Output
	if output == "" {
		output = filepath.Join(paths.Images(), spec.Package+"-"+spec.AppVersion)
	}

	slog.Info("build started", "package", spec.Package, "version", spec.AppVersion, "platform", spec.Platform)

	result, err := pipeline.Run(ctx, s.runtime, pipeline.Options{
		Spec:   spec,
		Config: cfg,
		Output: output,
	})
	if err != nil {
		slog.Error("build failed", "package", spec.Package, "error", err)
		s.respond(conn, protocol.CmdError, &protocol.ErrorResult{Message: err.Error()})
		return
	}

	s.mu.Lock()
	s.builds++
	s.mu.Unlock()

	slog.Info("build finished", "output", result.Output)

	s.respond(conn, protocol.CmdOK, &protocol.BuildResult{
		Output: result.Output,
		Wheel:  result.Wheel,
	})
}

// Reports daemon version, PID, uptime, and build counters.
func (s *Server) handleStatus(_ context.Context, conn net.Conn) {
	s.mu.Lock()
	builds := s.builds
	s.mu.Unlock()

	s.respond(conn, protocol.CmdOK, &protocol.StatusResult{
		Version:   internal.VersionString(),
		PID:       os.Getpid(),
		UptimeSec: int64(time.Since(s.startedAt).Seconds()),
		Builds:    builds,
	})
}

// Acknowledges the request and stops the server.
func (s *Server) handleShutdown(_ context.Context, conn net.Conn) {
	s.respond(conn, protocol.CmdOK, nil)
	s.Stop()
}
