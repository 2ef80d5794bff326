// Package testutil provides common utilities and helpers for testing
package testutil

import (
	"strings"
	"testing"

	"firebaseconfig/internal/webconfig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestWebConfig returns a fully populated web configuration
func TestWebConfig() *webconfig.WebConfig {
	return &webconfig.WebConfig{
		APIKey:            "AIzaSyD-test-key",
		AuthDomain:        "demo-app.firebaseapp.com",
		ProjectID:         "demo-app",
		StorageBucket:     "demo-app.appspot.com",
		MessagingSenderID: "123456789012",
		AppID:             "1:123456789012:web:abcdef",
	}
}

// AssertWebConfigEqual compares the fields that the web client consumes
func AssertWebConfigEqual(t *testing.T, expected, actual *webconfig.WebConfig) {
	t.Helper()
	for _, f := range webconfig.Fields() {
		want, _ := expected.Get(f.Name)
		got, _ := actual.Get(f.Name)
		assert.Equal(t, want, got, "field %s", f.Name)
	}
}

// MapConfigLoader is an in-memory webconfig.ConfigLoader
type MapConfigLoader map[string]string

func (m MapConfigLoader) Get(key string) (string, bool) {
	v, ok := m[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (m MapConfigLoader) HasPrefix(prefix string) map[string]string {
	out := make(map[string]string)
	for k, v := range m {
		if strings.HasPrefix(k, prefix) {
			out[k] = v
		}
	}
	return out
}

// MockLogger creates a mock logger for testing
func MockLogger() *MockLoggerImpl {
	return &MockLoggerImpl{}
}

// MockLoggerImpl is a mock implementation of Logger for testing
type MockLoggerImpl struct {
	mock.Mock
}

func (m *MockLoggerImpl) Info(msg string, keysAndValues ...any) {
	args := []any{msg}
	args = append(args, keysAndValues...)
	m.Called(args...)
}

func (m *MockLoggerImpl) Debug(msg string, keysAndValues ...any) {
	args := []any{msg}
	args = append(args, keysAndValues...)
	m.Called(args...)
}

func (m *MockLoggerImpl) Error(msg string, keysAndValues ...any) {
	args := []any{msg}
	args = append(args, keysAndValues...)
	m.Called(args...)
}

func (m *MockLoggerImpl) Warn(msg string, keysAndValues ...any) {
	args := []any{msg}
	args = append(args, keysAndValues...)
	m.Called(args...)
}

func (m *MockLoggerImpl) Notice(msg string, keysAndValues ...any) {
	args := []any{msg}
	args = append(args, keysAndValues...)
	m.Called(args...)
}

func (m *MockLoggerImpl) With(keysAndValues ...any) webconfig.Logger {
	args := m.Called(keysAndValues)
	return args.Get(0).(webconfig.Logger)
}

// MustNotPanic ensures that a function doesn't panic
func MustNotPanic(t *testing.T, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Function panicked: %v", r)
		}
	}()
	fn()
}
