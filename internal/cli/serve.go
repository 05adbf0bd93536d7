package cli

import (
	"context"
	"log/slog"

	"github.com/music-assistant/massbuild/internal/server"
)

// Represents the 'massbuild serve' command.
type ServeCmd struct {
	ContainerdAddress   string `help:"Containerd socket address." default:"${containerd_address}" placeholder:"PATH"`
	ContainerdNamespace string `help:"Containerd namespace." default:"${containerd_namespace}"`
}

// Executes the serve command.
//
// Starts the build daemon on a Unix domain socket and blocks until the
// context is cancelled (e.g. via SIGINT or SIGTERM) or a shutdown command
// arrives over the socket.
func (c *ServeCmd) Run(ctx context.Context) error {
	srv, err := server.New(server.Config{
		SocketPath:          RootCmd.Socket,
		ContainerdAddress:   c.ContainerdAddress,
		ContainerdNamespace: c.ContainerdNamespace,
	})
	if err != nil {
		return err
	}

	if err := srv.Start(); err != nil {
		return err
	}

	slog.Info("massbuild daemon is running")

	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case <-srv.Done():
	}

	return srv.Stop()
}
