package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"firebaseconfig/internal/config"
	"firebaseconfig/internal/firebaseapp"
	"firebaseconfig/internal/logging"
	"firebaseconfig/internal/render"
	"firebaseconfig/internal/webconfig"
)

// errStrict marks a run that stopped because the web config is incomplete
var errStrict = errors.New("web config is not populated")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errStrict) {
			fmt.Fprintf(os.Stderr, "firebaseconfig: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("firebaseconfig", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configFile = fs.String("config", "", "Path to configuration file")
		envPrefix  = fs.String("env-prefix", "FIREBASECONFIG", "Environment variable prefix")
		envFile    = fs.String("env-file", "", "Path to a .env file with firebase.* values")
		format     = fs.String("format", "", "Output format: js or json")
		output     = fs.String("out", "", "Write the rendered config to this file instead of stdout")
		strict     = fs.Bool("strict", false, "Fail when fields are missing or still placeholders")
		initApp    = fs.Bool("init", false, "Initialize the Firebase app with the Admin SDK")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	loader := config.NewLoader(*configFile, *envPrefix)
	settings, err := loader.Load()
	if err != nil {
		return fmt.Errorf("configuration loading failed: %w", err)
	}

	if *envFile != "" {
		settings.Source.EnvFile = *envFile
	}
	if *format != "" {
		settings.Render.Format = *format
	}
	if *output != "" {
		settings.Render.Output = *output
	}
	if *initApp {
		settings.Admin.Enabled = true
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	logger, err := logging.NewLoggerWithWriter(settings.Logging, stderr)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	envFileRequired := *envFile != "" || settings.Source.EnvFile != webconfig.DefaultEnvFile
	if err := config.LoadDotEnv(settings.Source.EnvFile, envFileRequired); err != nil {
		return err
	}

	webCfg, err := config.LoadWebConfig(loader.KeyLoader(), settings.Source.JSONFile, logger)
	if err != nil {
		return err
	}

	if err := check(webCfg, logger); err != nil && *strict {
		logger.Error("refusing to render incomplete web config", "error", err)
		return errStrict
	}

	if settings.Admin.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := firebaseapp.NewInitializer(&settings.Admin, logger).Initialize(ctx, webCfg); err != nil {
			return err
		}
	}

	return write(webCfg, settings.Render, stdout, logger)
}

// check reports every field that keeps the web config from being usable
func check(cfg *webconfig.WebConfig, logger webconfig.Logger) error {
	err := cfg.Validate()

	var vErr *webconfig.ValidationError
	if errors.As(err, &vErr) {
		for _, name := range vErr.Missing {
			logger.Warn("web config field not set", "field", name)
		}
		for _, name := range vErr.Placeholders {
			logger.Warn("web config field holds a placeholder", "field", name)
		}
	}

	return err
}

func write(cfg *webconfig.WebConfig, rc webconfig.RenderConfig, stdout io.Writer, logger webconfig.Logger) error {
	format := webconfig.ParseRenderFormat(rc.Format)

	if rc.Output == "" {
		return render.Write(stdout, format, cfg)
	}

	var buf bytes.Buffer
	if err := render.Write(&buf, format, cfg); err != nil {
		return err
	}
	if err := os.WriteFile(rc.Output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", rc.Output, err)
	}

	logger.Info("web config written", "path", rc.Output, "format", format.String())
	return nil
}
