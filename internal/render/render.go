// Package render writes a web configuration in the forms the Firebase web
// client consumes.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"text/template"

	"firebaseconfig/internal/webconfig"
)

type entry struct {
	Name  string
	Value string
}

var jsTemplate = template.Must(template.New("firebase-config.js").Parse(
	`import { initializeApp } from 'firebase/app';

const firebaseConfig = {
{{- range $i, $e := .}}{{if $i}},{{end}}
  {{$e.Name}}: {{$e.Value}}
{{- end}}
};

// Initialize Firebase
const app = initializeApp(firebaseConfig);

export { app, firebaseConfig };
`))

// JS renders the ES module that initializes the Firebase web app.
// Required fields are always present; optional ones only when set.
func JS(cfg *webconfig.WebConfig) ([]byte, error) {
	var entries []entry
	for _, f := range webconfig.Fields() {
		value, err := cfg.Get(f.Name)
		if err != nil {
			return nil, err
		}
		if !f.Required && value == "" {
			continue
		}
		quoted, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("failed to quote %s: %w", f.Name, err)
		}
		entries = append(entries, entry{Name: f.Name, Value: string(quoted)})
	}

	var buf bytes.Buffer
	if err := jsTemplate.Execute(&buf, entries); err != nil {
		return nil, fmt.Errorf("failed to render web config: %w", err)
	}
	return buf.Bytes(), nil
}

// JSON renders the configuration object with web field names
func JSON(cfg *webconfig.WebConfig) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode web config: %w", err)
	}
	return append(data, '\n'), nil
}

// Write renders cfg in the given format to w
func Write(w io.Writer, format webconfig.RenderFormat, cfg *webconfig.WebConfig) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case webconfig.RenderFormatJS:
		data, err = JS(cfg)
	case webconfig.RenderFormatJSON:
		data, err = JSON(cfg)
	default:
		return fmt.Errorf("%w: %s", webconfig.ErrUnknownFormat, format)
	}
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	return err
}
