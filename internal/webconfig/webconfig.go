// Package webconfig holds the Firebase web app configuration and the settings
// used to load, check and render it.
package webconfig

import (
	"encoding/json"
	"fmt"
	"strings"
)

// LoadedNotice is emitted once every time a web configuration is loaded.
const LoadedNotice = "Firebase configuration file loaded. Please update with your project credentials."

// WebConfig is the flat credential mapping handed to the Firebase web client
type WebConfig struct {
	APIKey            string `json:"apiKey" yaml:"api_key"`
	AuthDomain        string `json:"authDomain" yaml:"auth_domain"`
	ProjectID         string `json:"projectId" yaml:"project_id"`
	StorageBucket     string `json:"storageBucket" yaml:"storage_bucket"`
	MessagingSenderID string `json:"messagingSenderId" yaml:"messaging_sender_id"`
	AppID             string `json:"appId" yaml:"app_id"`
	DatabaseURL       string `json:"databaseURL,omitempty" yaml:"database_url"`
	MeasurementID     string `json:"measurementId,omitempty" yaml:"measurement_id"`
}

// Field describes one entry of the web configuration
type Field struct {
	Name        string // name used by the web SDK, e.g. "apiKey"
	Key         string // config key below the "firebase." prefix, e.g. "api_key"
	Required    bool
	Placeholder string
}

var fields = []Field{
	{Name: "apiKey", Key: "api_key", Required: true, Placeholder: "your-api-key"},
	{Name: "authDomain", Key: "auth_domain", Required: true, Placeholder: "your-project.firebaseapp.com"},
	{Name: "projectId", Key: "project_id", Required: true, Placeholder: "your-project-id"},
	{Name: "storageBucket", Key: "storage_bucket", Required: true, Placeholder: "your-project.appspot.com"},
	{Name: "messagingSenderId", Key: "messaging_sender_id", Required: true, Placeholder: "your-sender-id"},
	{Name: "appId", Key: "app_id", Required: true, Placeholder: "your-app-id"},
	{Name: "databaseURL", Key: "database_url"},
	{Name: "measurementId", Key: "measurement_id"},
}

// Fields returns the field descriptors in web snippet order
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// FieldByName looks up a field descriptor by its web name
func FieldByName(name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Example returns the scaffold configuration with every required field set to its placeholder
func Example() *WebConfig {
	cfg := &WebConfig{}
	for _, f := range fields {
		if f.Required {
			_ = cfg.Set(f.Name, f.Placeholder)
		}
	}
	return cfg
}

// ParseJSON decodes a web configuration object as exported from the Firebase console
func ParseJSON(data []byte) (*WebConfig, error) {
	var cfg WebConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse web config JSON: %w", err)
	}
	return &cfg, nil
}

func (c *WebConfig) ref(name string) *string {
	switch name {
	case "apiKey":
		return &c.APIKey
	case "authDomain":
		return &c.AuthDomain
	case "projectId":
		return &c.ProjectID
	case "storageBucket":
		return &c.StorageBucket
	case "messagingSenderId":
		return &c.MessagingSenderID
	case "appId":
		return &c.AppID
	case "databaseURL":
		return &c.DatabaseURL
	case "measurementId":
		return &c.MeasurementID
	default:
		return nil
	}
}

// Get returns the value of a field by its web name
func (c *WebConfig) Get(name string) (string, error) {
	p := c.ref(name)
	if p == nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return *p, nil
}

// Set assigns a field by its web name
func (c *WebConfig) Set(name, value string) error {
	p := c.ref(name)
	if p == nil {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	*p = value
	return nil
}

// Merge copies every non-empty field of other into c
func (c *WebConfig) Merge(other *WebConfig) {
	if other == nil {
		return
	}
	for _, f := range fields {
		if v := *other.ref(f.Name); v != "" {
			*c.ref(f.Name) = v
		}
	}
}

// Missing returns the web names of required fields that are empty
func (c *WebConfig) Missing() []string {
	var missing []string
	for _, f := range fields {
		if f.Required && strings.TrimSpace(*c.ref(f.Name)) == "" {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// Placeholders returns the web names of fields still holding scaffold values
func (c *WebConfig) Placeholders() []string {
	var found []string
	for _, f := range fields {
		if IsPlaceholder(f, *c.ref(f.Name)) {
			found = append(found, f.Name)
		}
	}
	return found
}

// IsPlaceholder reports whether value is the scaffold example for f or an
// obvious "your-..." stand-in.
func IsPlaceholder(f Field, value string) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return false
	}
	if f.Placeholder != "" && v == f.Placeholder {
		return true
	}
	return strings.HasPrefix(strings.ToLower(v), "your-")
}

// Populated reports whether the configuration is ready to hand to the web client
func (c *WebConfig) Populated() bool {
	return len(c.Missing()) == 0 && len(c.Placeholders()) == 0
}

// Validate checks that every required field is set to a real value
func (c *WebConfig) Validate() error {
	missing := c.Missing()
	placeholders := c.Placeholders()
	if len(missing) == 0 && len(placeholders) == 0 {
		return nil
	}
	return &ValidationError{Missing: missing, Placeholders: placeholders}
}
