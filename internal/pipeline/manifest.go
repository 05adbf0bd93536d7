package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// Matches a valid package distribution name (PEP 508).
var requirementName = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)

// Characters that end the name part of a requirement line: version operators,
// extras brackets, and environment markers.
const requirementDelims = "=<>!~[; \t"

// A single entry of the dependency manifest: a package name and the version
// constraint it must be resolved under.
type Requirement struct {
	Name       string
	Constraint string
}

// Reads and parses the dependency manifest file.
func LoadManifest(path string) ([]Requirement, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	defer fh.Close()

	reqs, err := ParseManifest(fh)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return reqs, nil
}

// Parses a requirements manifest into (name, constraint) pairs.
//
// Blank lines and comment lines are skipped; trailing comments are stripped.
// Option lines (anything starting with "-") are rejected: the manifest must
// contain only package pins so that resolution against the pinned mirror
// stays deterministic. A malformed package name fails the whole manifest.
func ParseManifest(r io.Reader) ([]Requirement, error) {
	var reqs []Requirement

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := stripComment(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "-") {
			return nil, fmt.Errorf("%w: line %d: option %q not allowed in manifest", ErrManifest, lineNo, line)
		}

		req, err := parseRequirement(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrManifest, lineNo, err)
		}
		reqs = append(reqs, req)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}

	return reqs, nil
}

// Splits a requirement line into the package name and everything after it
// (version constraint, extras, environment markers).
func parseRequirement(line string) (Requirement, error) {
	i := strings.IndexAny(line, requirementDelims)

	name := line
	constraint := ""
	if i >= 0 {
		name = line[:i]
		constraint = strings.TrimSpace(line[i:])
	}

	if !requirementName.MatchString(name) {
		return Requirement{}, fmt.Errorf("invalid package name %q", name)
	}

	return Requirement{Name: name, Constraint: constraint}, nil
}

// Removes a trailing comment and surrounding whitespace from a manifest line.
//
// A "#" only starts a comment at the beginning of the line or after
// whitespace; URLs containing fragments inside constraints are unaffected.
func stripComment(line string) string {
	if i := strings.Index(line, "#"); i == 0 {
		return ""
	} else if i > 0 && (line[i-1] == ' ' || line[i-1] == '\t') {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}
