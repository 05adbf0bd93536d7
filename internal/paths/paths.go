package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	toolName = "massbuild"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the directory for runtime files (sockets, PIDs).
//
//	Linux:   $XDG_RUNTIME_DIR/massbuild or /run/user/<uid>/massbuild
//	macOS:   ~/Library/Caches/massbuild/run
func Runtime() string {
	if xdg.RuntimeDir != "" {
		return filepath.Join(xdg.RuntimeDir, toolName)
	}
	return filepath.Join(xdg.CacheHome, toolName, "run")
}

// Default path to the Unix domain socket for CI-to-daemon communication.
//
//	Linux:   $XDG_RUNTIME_DIR/massbuild/massbuild.sock
//	macOS:   ~/Library/Caches/massbuild/run/massbuild.sock
func Socket() string {
	return filepath.Join(Runtime(), toolName+".sock")
}

// Default path to the PID file.
//
//	Linux:   $XDG_RUNTIME_DIR/massbuild/massbuild.pid
//	macOS:   ~/Library/Caches/massbuild/run/massbuild.pid
func PIDFile() string {
	return filepath.Join(Runtime(), toolName+".pid")
}

// Default directory for exported image archives when the build invocation
// does not name one.
//
//	Linux:   ~/.cache/massbuild/images
//	macOS:   ~/Library/Caches/massbuild/images
func Images() string {
	return filepath.Join(xdg.CacheHome, toolName, "images")
}
