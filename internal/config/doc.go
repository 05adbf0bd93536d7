// Package config loads the image configuration for a build.
//
// The configuration names the descriptive metadata attached to the final
// image and the entry contract it declares (port, data mount, entrypoint
// binary). Values come from an optional massbuild.yaml file validated
// against an embedded JSON schema; anything not named in the file falls
// back to the Music Assistant Server defaults.
//
// The application version is intentionally not part of the configuration.
// It is supplied as a build parameter and threaded through artifact
// selection and metadata from a single value.
package config
