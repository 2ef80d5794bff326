package webconfig

import (
	"fmt"
	"strings"
)

// RenderFormat selects how a web configuration is written out
type RenderFormat int

const (
	RenderFormatJS RenderFormat = iota
	RenderFormatJSON
	RenderFormatUnknown
)

// String returns the string representation of the render format
func (f RenderFormat) String() string {
	switch f {
	case RenderFormatJS:
		return "js"
	case RenderFormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseRenderFormat parses a string to RenderFormat
func ParseRenderFormat(s string) RenderFormat {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "js", "javascript":
		return RenderFormatJS
	case "json":
		return RenderFormatJSON
	default:
		return RenderFormatUnknown
	}
}

// DefaultEnvFile is the env file read when none is configured; only it may be absent
const DefaultEnvFile = ".env"

// Settings is the tool configuration, separate from the web config it manages
type Settings struct {
	Logging LoggingConfig `yaml:"logging"`
	Source  SourceConfig  `yaml:"source"`
	Admin   AdminConfig   `yaml:"admin"`
	Render  RenderConfig  `yaml:"render"`
}

// SourceConfig names optional files the web config is read from
type SourceConfig struct {
	EnvFile  string `yaml:"env_file" default:".env"`
	JSONFile string `yaml:"json_file"` // console-exported web config
}

// AdminConfig controls Firebase Admin SDK app initialization
type AdminConfig struct {
	Enabled           bool   `yaml:"enabled"`
	CredentialsPath   string `yaml:"credentials_path"`
	CredentialsBase64 string `yaml:"credentials_base64"`
}

// RenderConfig controls output of the web snippet
type RenderConfig struct {
	Format string `yaml:"format" default:"js"`
	Output string `yaml:"output"` // empty means stdout
}

// Validate validates the settings
func (s *Settings) Validate() error {
	switch strings.ToLower(s.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrConfigurationError, s.Logging.Level)
	}

	if ParseRenderFormat(s.Render.Format) == RenderFormatUnknown {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, s.Render.Format)
	}

	return nil
}
