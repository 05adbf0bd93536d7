package pipeline

import "errors"

var (
	ErrSpec                = errors.New("invalid build spec")
	ErrManifest            = errors.New("invalid dependency manifest")
	ErrResolution          = errors.New("dependency resolution failed")
	ErrArtifact            = errors.New("application artifact not found")
	ErrCopy                = errors.New("environment copy failed")
	ErrBuild               = errors.New("build failed")
	ErrFileSystemOperation = errors.New("file system operation failed")
)
