package config

import (
	"fmt"
	"os"

	"firebaseconfig/internal/webconfig"
)

// FirebaseKeyPrefix is the config key namespace holding web config fields
const FirebaseKeyPrefix = "firebase."

var _ webconfig.ConfigLoader = (*EnvConfigLoader)(nil)

// LoadWebConfig assembles the Firebase web configuration. Values from the
// optional console-exported JSON file are overlaid by "firebase.*" keys from
// loader; an unrecognised "firebase.*" key is an error. Every call logs
// webconfig.LoadedNotice exactly once, whatever the log level, and nothing else.
func LoadWebConfig(loader webconfig.ConfigLoader, jsonFile string, logger webconfig.Logger) (*webconfig.WebConfig, error) {
	cfg, err := buildWebConfig(loader, jsonFile)
	logger.Notice(webconfig.LoadedNotice)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildWebConfig(loader webconfig.ConfigLoader, jsonFile string) (*webconfig.WebConfig, error) {
	cfg := &webconfig.WebConfig{}

	if jsonFile != "" {
		data, err := os.ReadFile(jsonFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read web config file: %w", err)
		}
		fromFile, err := webconfig.ParseJSON(data)
		if err != nil {
			return nil, err
		}
		cfg.Merge(fromFile)
	}

	known := make(map[string]bool)
	for _, f := range webconfig.Fields() {
		known[FirebaseKeyPrefix+f.Key] = true
	}
	for key := range loader.HasPrefix(FirebaseKeyPrefix) {
		if !known[key] {
			return nil, fmt.Errorf("%w: %s", webconfig.ErrUnknownField, key)
		}
	}

	for _, f := range webconfig.Fields() {
		if value, ok := loader.Get(FirebaseKeyPrefix + f.Key); ok {
			if err := cfg.Set(f.Name, value); err != nil {
				return nil, err
			}
		}
	}

	return cfg, nil
}
