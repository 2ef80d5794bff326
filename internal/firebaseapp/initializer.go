// Package firebaseapp performs the initializeApp step for a web configuration
// using the Firebase Admin SDK.
package firebaseapp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"firebaseconfig/internal/webconfig"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// Initializer builds Firebase apps from a web configuration and admin credentials
type Initializer struct {
	config *webconfig.AdminConfig
	logger webconfig.Logger
	newApp func(ctx context.Context, config *firebase.Config, opts ...option.ClientOption) (*firebase.App, error)
}

// NewInitializer creates an Initializer
func NewInitializer(config *webconfig.AdminConfig, logger webconfig.Logger) *Initializer {
	return &Initializer{
		config: config,
		logger: logger.With("component", "firebaseapp"),
		newApp: firebase.NewApp,
	}
}

// Initialize creates the Firebase app for cfg. No service client is opened.
func (i *Initializer) Initialize(ctx context.Context, cfg *webconfig.WebConfig) (*firebase.App, error) {
	appConfig, err := i.AppConfig(cfg)
	if err != nil {
		return nil, err
	}

	opts, err := i.ClientOptions()
	if err != nil {
		return nil, err
	}

	app, err := i.newApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	i.logger.Info("firebase app initialized", "project_id", appConfig.ProjectID)
	return app, nil
}

// AppConfig maps the web configuration onto the Admin SDK config. The
// project ID falls back to the one embedded in base64 credentials.
func (i *Initializer) AppConfig(cfg *webconfig.WebConfig) (*firebase.Config, error) {
	projectID := cfg.ProjectID

	if !usable("projectId", projectID) && i.config.CredentialsBase64 != "" {
		if extracted, err := ProjectIDFromCredentials(i.config.CredentialsBase64); err == nil {
			i.logger.Debug("using project ID from credentials", "project_id", extracted)
			projectID = extracted
		}
	}

	if !usable("projectId", projectID) {
		return nil, webconfig.ErrMissingProjectID
	}

	appConfig := &firebase.Config{ProjectID: projectID}
	if usable("storageBucket", cfg.StorageBucket) {
		appConfig.StorageBucket = cfg.StorageBucket
	}
	if usable("databaseURL", cfg.DatabaseURL) {
		appConfig.DatabaseURL = cfg.DatabaseURL
	}

	return appConfig, nil
}

// ClientOptions returns the credential options. With no credentials set, the
// SDK falls back to application default credentials.
func (i *Initializer) ClientOptions() ([]option.ClientOption, error) {
	var opts []option.ClientOption

	if i.config.CredentialsBase64 != "" {
		credentialsJSON, err := base64.StdEncoding.DecodeString(i.config.CredentialsBase64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode Firebase credentials: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(credentialsJSON))
	} else if i.config.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(i.config.CredentialsPath))
	}

	return opts, nil
}

// ProjectIDFromCredentials extracts project_id from base64 encoded service account JSON
func ProjectIDFromCredentials(credentialsBase64 string) (string, error) {
	credentialsJSON, err := base64.StdEncoding.DecodeString(credentialsBase64)
	if err != nil {
		return "", fmt.Errorf("failed to decode Firebase credentials: %w", err)
	}

	var credentials struct {
		ProjectID string `json:"project_id"`
	}

	if err := json.Unmarshal(credentialsJSON, &credentials); err != nil {
		return "", fmt.Errorf("failed to parse Firebase credentials JSON: %w", err)
	}

	if credentials.ProjectID == "" {
		return "", fmt.Errorf("project_id not found in Firebase credentials")
	}

	return credentials.ProjectID, nil
}

// usable reports whether value is set and is not a scaffold placeholder
func usable(name, value string) bool {
	f, _ := webconfig.FieldByName(name)
	return value != "" && !webconfig.IsPlaceholder(f, value)
}
