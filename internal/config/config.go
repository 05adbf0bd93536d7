package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrConfig = errors.New("invalid configuration")

// Default entry contract for the Music Assistant Server image.
//
// These values are part of the runtime-facing API of the produced image and
// do not vary with the target platform.
const (
	DefaultPort    = 8095    // TCP port the server listens on.
	DefaultDataDir = "/data" // Persisted-state mount path.
	DefaultBinary  = "mass"  // Server binary installed by the application wheel.
)

// Configuration for the assembled image, read from massbuild.yaml.
//
// All descriptive metadata is resolved at build time; nothing here is
// mutable at runtime. The application version is deliberately absent: it is
// a build parameter, never a config value, so it cannot drift from the
// version used to select the wheel.
type Config struct {
	Metadata Metadata `yaml:"metadata"`
	Entry    Entry    `yaml:"entry"`
}

// Descriptive metadata attached to the final image as OCI labels.
type Metadata struct {
	Title         string `yaml:"title"`
	Description   string `yaml:"description"`
	Source        string `yaml:"source"`
	Authors       string `yaml:"authors"`
	Documentation string `yaml:"documentation"`
	License       string `yaml:"license"`
	AddonType     string `yaml:"addon_type"`
}

// Runtime entry contract declared on the final image.
type Entry struct {
	Port    int    `yaml:"port"`
	DataDir string `yaml:"data_dir"`
	Binary  string `yaml:"binary"`
}

// Returns the configuration used when no config file is given.
func Default() Config {
	return Config{
		Metadata: Metadata{
			Title:         "Music Assistant Server",
			Description:   "Music Assistant Server/Core",
			Source:        "https://github.com/music-assistant/server",
			Authors:       "The Music Assistant Team",
			Documentation: "https://www.music-assistant.io",
			License:       "Apache-2.0",
			AddonType:     "addon",
		},
		Entry: Entry{
			Port:    DefaultPort,
			DataDir: DefaultDataDir,
			Binary:  DefaultBinary,
		},
	}
}

// Loads the configuration from a YAML file.
//
// The document is validated against the embedded schema before it is
// decoded. Fields left empty in the file keep their default values, so a
// config file only needs to name what it changes.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return Parse(data)
}

// Parses and validates a YAML configuration document.
func Parse(data []byte) (Config, error) {
	if err := validateSchema(data); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	if err := cfg.check(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Rejects values the schema cannot express.
func (c Config) check() error {
	if c.Entry.Port <= 0 || c.Entry.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrConfig, c.Entry.Port)
	}
	if c.Entry.DataDir == "" || c.Entry.DataDir[0] != '/' {
		return fmt.Errorf("%w: data_dir %q must be an absolute path", ErrConfig, c.Entry.DataDir)
	}
	if c.Entry.Binary == "" {
		return fmt.Errorf("%w: binary must not be empty", ErrConfig)
	}
	return nil
}

// Returns the fixed process invocation for the image entrypoint.
//
// The server always reads its configuration from the persisted-state mount
// path.
func (e Entry) Entrypoint() []string {
	return []string{e.Binary, "--config", e.DataDir}
}

// Returns the exposed port in OCI notation (e.g., "8095/tcp").
func (e Entry) PortSpec() string {
	return fmt.Sprintf("%d/tcp", e.Port)
}
