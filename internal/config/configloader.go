package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvConfigLoader implements webconfig.ConfigLoader using environment variables and YAML
type EnvConfigLoader struct {
	envPrefix string
	yamlData  map[string]any
}

// NewEnvConfigLoader creates a new environment-based config loader
func NewEnvConfigLoader(envPrefix string, yamlData map[string]any) *EnvConfigLoader {
	if yamlData == nil {
		yamlData = make(map[string]any)
	}

	return &EnvConfigLoader{
		envPrefix: envPrefix,
		yamlData:  yamlData,
	}
}

// Get retrieves a configuration value by key, environment first
func (e *EnvConfigLoader) Get(key string) (string, bool) {
	if value := strings.TrimSpace(os.Getenv(e.buildEnvKey(key))); value != "" {
		return value, true
	}

	if value := e.getFromYAML(key); value != "" {
		return value, true
	}

	return "", false
}

// GetWithDefault retrieves a configuration value with a default fallback
func (e *EnvConfigLoader) GetWithDefault(key, defaultValue string) string {
	if value, ok := e.Get(key); ok {
		return value
	}
	return defaultValue
}

// GetBool retrieves a boolean configuration value
func (e *EnvConfigLoader) GetBool(key string) (bool, bool) {
	value, ok := e.Get(key)
	if !ok {
		return false, false
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false, false
	}

	return boolValue, true
}

// GetBoolWithDefault retrieves a boolean configuration value with default
func (e *EnvConfigLoader) GetBoolWithDefault(key string, defaultValue bool) bool {
	if value, ok := e.GetBool(key); ok {
		return value
	}
	return defaultValue
}

// HasPrefix returns all keys that start with the given prefix
func (e *EnvConfigLoader) HasPrefix(prefix string) map[string]string {
	result := make(map[string]string)

	// YAML first so environment values win
	e.collectYAMLWithPrefix(prefix, "", e.yamlData, result)

	envPrefix := e.buildEnvKey(prefix)
	for _, env := range os.Environ() {
		envKey, value, ok := strings.Cut(env, "=")
		value = strings.TrimSpace(value)
		if !ok || value == "" {
			continue
		}
		if strings.HasPrefix(envKey, envPrefix) {
			result[e.envKeyToConfigKey(envKey)] = value
		}
	}

	return result
}

// buildEnvKey turns "firebase.api_key" into "PREFIX_FIREBASE_API_KEY"
func (e *EnvConfigLoader) buildEnvKey(key string) string {
	envKey := strings.ReplaceAll(key, ".", "_")
	envKey = strings.ReplaceAll(envKey, "-", "_")
	envKey = strings.ToUpper(envKey)

	if e.envPrefix != "" {
		return e.envPrefix + "_" + envKey
	}

	return envKey
}

// envKeyToConfigKey is the lossy inverse of buildEnvKey: only the first
// underscore after the prefix becomes a dot.
func (e *EnvConfigLoader) envKeyToConfigKey(envKey string) string {
	configKey := envKey
	if e.envPrefix != "" {
		configKey = strings.TrimPrefix(configKey, e.envPrefix+"_")
	}

	configKey = strings.ToLower(configKey)
	return strings.Replace(configKey, "_", ".", 1)
}

// getFromYAML retrieves a scalar from YAML data using dot notation
func (e *EnvConfigLoader) getFromYAML(key string) string {
	parts := strings.Split(key, ".")
	current := e.yamlData

	for i, part := range parts {
		value, ok := current[part]
		if !ok {
			return ""
		}

		if i == len(parts)-1 {
			return scalarString(value)
		}

		next, ok := value.(map[string]any)
		if !ok {
			return ""
		}
		current = next
	}

	return ""
}

// collectYAMLWithPrefix collects all scalar YAML keys with a given prefix
func (e *EnvConfigLoader) collectYAMLWithPrefix(prefix, currentPath string, data map[string]any, result map[string]string) {
	for key, value := range data {
		fullPath := key
		if currentPath != "" {
			fullPath = currentPath + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			e.collectYAMLWithPrefix(prefix, fullPath, nested, result)
			continue
		}

		if strings.HasPrefix(fullPath, prefix) {
			if s := scalarString(value); s != "" {
				result[fullPath] = s
			}
		}
	}
}

func scalarString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int, int64, uint64, float64, bool:
		return fmt.Sprint(v)
	default:
		return ""
	}
}
