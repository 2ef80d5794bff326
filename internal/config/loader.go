package config

import (
	"fmt"
	"os"

	"firebaseconfig/internal/webconfig"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// Loader handles settings loading from a YAML file and environment variables
type Loader struct {
	configPath string
	envPrefix  string
	yamlData   map[string]any
}

// NewLoader creates a new settings loader
func NewLoader(configPath, envPrefix string) *Loader {
	return &Loader{
		configPath: configPath,
		envPrefix:  envPrefix,
	}
}

// Load reads the YAML file, fills defaults, then applies environment overrides
func (l *Loader) Load() (*webconfig.Settings, error) {
	settings := &webconfig.Settings{}

	if l.configPath != "" {
		if err := l.loadFromYAML(settings); err != nil {
			return nil, fmt.Errorf("failed to load YAML config: %w", err)
		}
	}

	if err := defaults.Set(settings); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	l.applyEnvOverrides(settings)

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return settings, nil
}

// YAMLData returns the raw document read by Load, for key based lookups
func (l *Loader) YAMLData() map[string]any {
	if l.yamlData == nil {
		return make(map[string]any)
	}
	return l.yamlData
}

// KeyLoader returns an EnvConfigLoader sharing this loader's prefix and YAML document
func (l *Loader) KeyLoader() *EnvConfigLoader {
	return NewEnvConfigLoader(l.envPrefix, l.YAMLData())
}

func (l *Loader) loadFromYAML(settings *webconfig.Settings) error {
	if _, err := os.Stat(l.configPath); os.IsNotExist(err) {
		return nil // Config file is optional
	}

	data, err := os.ReadFile(l.configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	raw := make(map[string]any)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}
	l.yamlData = raw

	return nil
}

// applyEnvOverrides reads PREFIX_* variables through an environment-only key loader
func (l *Loader) applyEnvOverrides(settings *webconfig.Settings) {
	env := NewEnvConfigLoader(l.envPrefix, nil)

	settings.Logging.Level = env.GetWithDefault("log.level", settings.Logging.Level)
	settings.Logging.Format = env.GetWithDefault("log.format", settings.Logging.Format)

	settings.Source.EnvFile = env.GetWithDefault("env.file", settings.Source.EnvFile)
	settings.Source.JSONFile = env.GetWithDefault("json.file", settings.Source.JSONFile)

	settings.Admin.Enabled = env.GetBoolWithDefault("admin.enabled", settings.Admin.Enabled)
	settings.Admin.CredentialsPath = env.GetWithDefault("admin.credentials_path", settings.Admin.CredentialsPath)
	settings.Admin.CredentialsBase64 = env.GetWithDefault("admin.credentials_base64", settings.Admin.CredentialsBase64)

	settings.Render.Format = env.GetWithDefault("render.format", settings.Render.Format)
	settings.Render.Output = env.GetWithDefault("render.output", settings.Render.Output)
}
