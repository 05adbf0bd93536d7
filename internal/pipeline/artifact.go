package pipeline

import (
	"fmt"
	"path/filepath"
)

// Resolves the pre-built application wheel for the spec's exact version.
//
// The dist directory is searched for files matching
// "<package>-<version>-<compatibility-tags>.whl". Exactly one file must
// match: zero matches means the version parameter does not correspond to any
// released artifact, more than one means the dist directory is ambiguous.
// Both are build misconfigurations, not transient faults, so the build fails
// immediately and is not retried.
func ResolveArtifact(spec Spec) (string, error) {
	pattern := filepath.Join(spec.Dist, spec.WheelPrefix()+"-*"+wheelSuffix)

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrArtifact, err)
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: no wheel for %s version %s in %s",
			ErrArtifact, spec.Package, spec.AppVersion, spec.Dist)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %d wheels match version %s in %s",
			ErrArtifact, len(matches), spec.AppVersion, spec.Dist)
	}
}
