package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testYAMLData() map[string]any {
	return map[string]any{
		"firebase": map[string]any{
			"api_key":             "yaml-key",
			"project_id":          "yaml-project",
			"messaging_sender_id": 123456789012,
		},
		"admin": map[string]any{
			"enabled": true,
			"retries": 3,
		},
		"top": "level",
	}
}

func TestNewEnvConfigLoader(t *testing.T) {
	loader := NewEnvConfigLoader("APP", nil)

	assert.Equal(t, "APP", loader.envPrefix)
	assert.NotNil(t, loader.yamlData)
}

func TestEnvConfigLoader_Get(t *testing.T) {
	t.Setenv("APP_FIREBASE_API_KEY", "env-key")
	loader := NewEnvConfigLoader("APP", testYAMLData())

	tests := []struct {
		name  string
		key   string
		value string
		found bool
	}{
		{name: "Environment wins over YAML", key: "firebase.api_key", value: "env-key", found: true},
		{name: "YAML string", key: "firebase.project_id", value: "yaml-project", found: true},
		{name: "YAML integer", key: "firebase.messaging_sender_id", value: "123456789012", found: true},
		{name: "YAML bool", key: "admin.enabled", value: "true", found: true},
		{name: "Top level", key: "top", value: "level", found: true},
		{name: "Missing leaf", key: "firebase.app_id", found: false},
		{name: "Path through scalar", key: "top.deeper", found: false},
		{name: "Map is not a value", key: "firebase", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, found := loader.Get(tt.key)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestEnvConfigLoader_TypedGetters(t *testing.T) {
	t.Setenv("APP_ADMIN_DEBUG", " TRUE ")
	t.Setenv("APP_ADMIN_VERBOSE", "maybe")
	loader := NewEnvConfigLoader("APP", testYAMLData())

	enabled, ok := loader.GetBool("admin.enabled")
	assert.True(t, ok)
	assert.True(t, enabled)

	_, ok = loader.GetBool("firebase.api_key")
	assert.False(t, ok)
	assert.True(t, loader.GetBoolWithDefault("missing", true))

	debug, ok := loader.GetBool("admin.debug")
	assert.True(t, ok)
	assert.True(t, debug)

	_, ok = loader.GetBool("admin.verbose")
	assert.False(t, ok)
	assert.False(t, loader.GetBoolWithDefault("admin.verbose", false))

	assert.Equal(t, "fallback", loader.GetWithDefault("nope", "fallback"))
}

func TestEnvConfigLoader_BuildEnvKey(t *testing.T) {
	assert.Equal(t, "APP_FIREBASE_API_KEY", NewEnvConfigLoader("APP", nil).buildEnvKey("firebase.api_key"))
	assert.Equal(t, "FIREBASE_AUTH_DOMAIN", NewEnvConfigLoader("", nil).buildEnvKey("firebase.auth-domain"))
}

func TestEnvConfigLoader_HasPrefix(t *testing.T) {
	t.Setenv("APP_FIREBASE_APP_ID", "env-app")
	t.Setenv("APP_FIREBASE_API_KEY", "env-key")
	loader := NewEnvConfigLoader("APP", testYAMLData())

	result := loader.HasPrefix("firebase.")

	assert.Equal(t, "env-app", result["firebase.app_id"])
	assert.Equal(t, "env-key", result["firebase.api_key"])
	assert.Equal(t, "yaml-project", result["firebase.project_id"])
	assert.Equal(t, "123456789012", result["firebase.messaging_sender_id"])
	assert.NotContains(t, result, "admin.enabled")
}
