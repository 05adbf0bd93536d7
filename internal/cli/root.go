package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/music-assistant/massbuild/internal"
	"github.com/music-assistant/massbuild/internal/server"
)

// Represents the root command for the massbuild tool.
var RootCmd struct {
	Quiet    bool        `short:"q" help:"Suppress informational output."`
	Verbose  bool        `short:"v" help:"Enable verbose output."`
	Debug    bool        `short:"d" help:"Enable debug output."`
	Socket   string      `short:"s" help:"Override the default Unix socket path." placeholder:"PATH"`
	Build    BuildCmd    `cmd:"" help:"Build a server image."`
	Serve    ServeCmd    `cmd:"" help:"Run the build daemon."`
	Status   StatusCmd   `cmd:"" help:"Show daemon status."`
	Shutdown ShutdownCmd `cmd:"" help:"Stop the daemon."`
	Version  VersionCmd  `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("The Music Assistant image build tool.\n\nPackages the server wheel and its pinned dependencies into a minimal container image."),
		kong.UsageOnError(),
		kong.Vars{
			"version":              internal.VersionString(),
			"containerd_address":   server.DefaultContainerdAddress,
			"containerd_namespace": server.DefaultContainerdNamespace,
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Configures the global logger based on CLI flags.
func configureLogger() {
	debug := RootCmd.Debug || internal.IsDebug()
	quiet := RootCmd.Quiet || internal.IsQuiet()
	verbose := RootCmd.Verbose || internal.IsVerbose()

	level := new(slog.LevelVar)
	switch {
	case debug:
		level.Set(slog.LevelDebug)
	case quiet:
		level.Set(slog.LevelWarn)
	default:
		level.Set(slog.LevelInfo)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: verbose,
	})))
}
