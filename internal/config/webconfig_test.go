package config

import (
	"path/filepath"
	"testing"

	"firebaseconfig/internal/testutil"
	"firebaseconfig/internal/webconfig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWebConfig_EmitsNoticeOnce(t *testing.T) {
	logger := testutil.MockLogger()
	logger.On("Notice", webconfig.LoadedNotice).Return()

	cfg, err := LoadWebConfig(testutil.MapConfigLoader{}, "", logger)

	require.NoError(t, err)
	assert.Equal(t, &webconfig.WebConfig{}, cfg)
	logger.AssertExpectations(t)
	assert.Len(t, logger.Calls, 1)
}

func TestLoadWebConfig_FromKeys(t *testing.T) {
	logger := testutil.MockLogger()
	logger.On("Notice", webconfig.LoadedNotice).Return()

	loader := testutil.MapConfigLoader{
		"firebase.api_key":             "AIzaSyD-test-key",
		"firebase.auth_domain":         "demo-app.firebaseapp.com",
		"firebase.project_id":          "demo-app",
		"firebase.storage_bucket":      "demo-app.appspot.com",
		"firebase.messaging_sender_id": "123456789012",
		"firebase.app_id":              "1:123456789012:web:abcdef",
	}

	cfg, err := LoadWebConfig(loader, "", logger)

	require.NoError(t, err)
	testutil.AssertWebConfigEqual(t, testutil.TestWebConfig(), cfg)
	assert.True(t, cfg.Populated())
	logger.AssertNumberOfCalls(t, "Notice", 1)
}

func TestLoadWebConfig_KeysOverrideJSONFile(t *testing.T) {
	jsonFile := writeFile(t, "firebase.json", `{
		"apiKey": "json-key",
		"projectId": "json-project",
		"measurementId": "G-JSON"
	}`)

	logger := testutil.MockLogger()
	logger.On("Notice", webconfig.LoadedNotice).Return()

	cfg, err := LoadWebConfig(testutil.MapConfigLoader{"firebase.project_id": "key-project"}, jsonFile, logger)

	require.NoError(t, err)
	assert.Equal(t, "json-key", cfg.APIKey)
	assert.Equal(t, "key-project", cfg.ProjectID)
	assert.Equal(t, "G-JSON", cfg.MeasurementID)
}

func TestLoadWebConfig_WithEnvConfigLoader(t *testing.T) {
	t.Setenv("TEST_FIREBASE_APP_ID", "env-app")
	loader := NewEnvConfigLoader("TEST", map[string]any{
		"firebase": map[string]any{"app_id": "yaml-app", "api_key": "yaml-key"},
	})

	logger := testutil.MockLogger()
	logger.On("Notice", webconfig.LoadedNotice).Return()

	cfg, err := LoadWebConfig(loader, "", logger)

	require.NoError(t, err)
	assert.Equal(t, "env-app", cfg.AppID)
	assert.Equal(t, "yaml-key", cfg.APIKey)
}

func TestLoadWebConfig_UnknownFirebaseKey(t *testing.T) {
	tests := []struct {
		name   string
		loader webconfig.ConfigLoader
	}{
		{
			name:   "Map loader",
			loader: testutil.MapConfigLoader{"firebase.project_id": "demo-app", "firebase.api_secret": "x"},
		},
		{
			name: "YAML key",
			loader: NewEnvConfigLoader("TEST", map[string]any{
				"firebase": map[string]any{"project_id": "demo-app", "apikey": "typo"},
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := testutil.MockLogger()
			logger.On("Notice", webconfig.LoadedNotice).Return()

			cfg, err := LoadWebConfig(tt.loader, "", logger)

			assert.ErrorIs(t, err, webconfig.ErrUnknownField)
			assert.Nil(t, cfg)
			logger.AssertNumberOfCalls(t, "Notice", 1)
		})
	}
}

func TestLoadWebConfig_UnknownFirebaseEnvKey(t *testing.T) {
	t.Setenv("TEST_FIREBASE_REGION", "europe-west1")
	logger := testutil.MockLogger()
	logger.On("Notice", webconfig.LoadedNotice).Return()

	_, err := LoadWebConfig(NewEnvConfigLoader("TEST", nil), "", logger)

	assert.ErrorIs(t, err, webconfig.ErrUnknownField)
	assert.Contains(t, err.Error(), "firebase.region")
}

func TestLoadWebConfig_JSONErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "Missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.json") },
		},
		{
			name: "Malformed file",
			path: func(t *testing.T) string { return writeFile(t, "bad.json", "{apiKey:") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := testutil.MockLogger()
			logger.On("Notice", webconfig.LoadedNotice).Return()

			cfg, err := LoadWebConfig(testutil.MapConfigLoader{}, tt.path(t), logger)

			assert.Error(t, err)
			assert.Nil(t, cfg)
			logger.AssertNumberOfCalls(t, "Notice", 1)
		})
	}
}
