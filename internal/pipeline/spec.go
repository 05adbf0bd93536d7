package pipeline

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/containerd/platforms"
)

const (

	// Filename of the base runtime OCI archives, parameterized by version.
	baseArchivePattern = "mass-base-%s.tar"

	// Wheel platform compatibility tag suffix produced by the release
	// pipeline for the pure-Python server package.
	wheelSuffix = ".whl"
)

// Matches characters that PEP 427 escapes to underscores in wheel filenames.
var wheelEscape = regexp.MustCompile(`[^A-Za-z0-9.]+`)

// Parameters of a single build invocation.
//
// The spec is the single source of truth for every identifier used more than
// once during the build: the application version selects the wheel and is
// embedded in the image metadata, the base version resolves the one base
// archive both phases start from, and the platform selects the manifest in
// multi-platform base archives.
type Spec struct {
	Package      string // Application distribution name (e.g., "music-assistant").
	AppVersion   string // Application version (e.g., "2.5.1").
	BaseVersion  string // Base runtime image version tag.
	Platform     string // Target OCI platform (e.g., "linux/amd64").
	Mirror       string // Pinned package mirror: an https URL or a host directory.
	Requirements string // Path to the dependency manifest file.
	Dist         string // Directory holding the pre-built application wheel.
	Bases        string // Directory holding base runtime OCI archives.
}

// Checks that every parameter required for a deterministic build is present
// and well-formed.
func (s Spec) Validate() error {
	switch {
	case s.Package == "":
		return fmt.Errorf("%w: package name is required", ErrSpec)
	case s.AppVersion == "":
		return fmt.Errorf("%w: application version is required", ErrSpec)
	case s.BaseVersion == "":
		return fmt.Errorf("%w: base version is required", ErrSpec)
	case s.Mirror == "":
		return fmt.Errorf("%w: package mirror is required", ErrSpec)
	case s.Requirements == "":
		return fmt.Errorf("%w: requirements manifest is required", ErrSpec)
	case s.Dist == "":
		return fmt.Errorf("%w: dist directory is required", ErrSpec)
	case s.Bases == "":
		return fmt.Errorf("%w: base archive directory is required", ErrSpec)
	}

	if _, err := platforms.Parse(s.Platform); err != nil {
		return fmt.Errorf("%w: platform %q: %w", ErrSpec, s.Platform, err)
	}

	return nil
}

// Resolves the base runtime OCI archive for the spec's base version.
//
// Both phases receive this same resolved path, so builder-produced binaries
// are always ABI-compatible with the assembler's runtime.
func (s Spec) BaseArchive() string {
	return filepath.Join(s.Bases, fmt.Sprintf(baseArchivePattern, s.BaseVersion))
}

// Returns the wheel filename prefix for this package and version,
// with the distribution name escaped per the wheel naming convention
// (e.g., "music-assistant" 2.5.1 becomes "music_assistant-2.5.1").
func (s Spec) WheelPrefix() string {
	return wheelEscape.ReplaceAllString(s.Package, "_") + "-" + s.AppVersion
}

// Returns the architecture half of the target platform (e.g., "amd64"),
// used for the platform classification label.
func (s Spec) Arch() string {
	if _, arch, ok := strings.Cut(s.Platform, "/"); ok {
		return arch
	}
	return s.Platform
}

// Reports whether the pinned mirror is a remote index rather than a
// directory on the build host.
func (s Spec) RemoteMirror() bool {
	return strings.HasPrefix(s.Mirror, "https://") || strings.HasPrefix(s.Mirror, "http://")
}
