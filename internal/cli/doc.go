// Parses flags and dispatches massbuild subcommands.
//
// The tool accepts the following global flags:
//
//	-q, --quiet     Suppress informational output.
//	-v, --verbose   Enable verbose output.
//	-d, --debug     Enable debug output.
//	-s, --socket    Unix socket path.
//
// Flags override build-time defaults set via linker flags. After parsing, the
// global logger is reconfigured to reflect the final level and verbosity before
// the selected subcommand runs. The build command runs the pipeline directly
// against containerd; status and shutdown talk to a running daemon over its
// Unix socket.
package cli
