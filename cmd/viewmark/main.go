package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"viewmark/internal/config"
	"viewmark/internal/game"
	"viewmark/internal/input"
	"viewmark/internal/logging"
	"viewmark/internal/restore"
	"viewmark/internal/storage"
)

func main() {
	configDir := flag.String("config", ".", "directory holding "+config.FileName)
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") && *configDir == "." {
			os.Chdir(execDir)
		}
	}

	if err := run(*configDir); err != nil {
		fmt.Fprintf(os.Stderr, "viewmark: %v\n", err)
		os.Exit(1)
	}
}

func run(configDir string) error {
	if err := config.Load(configDir); err != nil {
		return err
	}

	var logFile io.Writer
	if dir := config.GetString("logsDir"); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create logs dir: %w", err)
		}
		f, err := os.OpenFile(filepath.Join(dir, "viewmark.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logFile = f
	}
	log := logging.New(os.Stdout, logFile, config.GetString("logLevel"))

	mode, err := config.GetControllerMode()
	if err != nil {
		return err
	}
	in := config.GetInputConfig()
	bindings, err := input.ParseBindings(in.Primary, in.Actions)
	if err != nil {
		return err
	}

	storageCfg := config.GetStorageConfig()
	backend, err := storage.NewBackend(storageCfg)
	if err != nil {
		return err
	}
	if err := backend.Init(); err != nil {
		return fmt.Errorf("init %s storage: %w", storageCfg.Type, err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Error().Err(err).Msg("Closing storage failed")
		}
	}()

	tracking := config.GetTrackingConfig()
	policy := restore.Policy{FlyingCameraHeight: config.GetFlyingCameraHeight()}
	g, err := game.New(game.Options{
		Logger:      log,
		Backend:     backend,
		Collection:  config.GetString("collection"),
		TrackingKey: tracking.Key,
		Tracking:    tracking.Enabled,
		Input:       input.NewKeyboard(bindings),
		Policy:      &policy,
		Mode:        mode,
		PrefsPath:   config.GetString("prefsFile"),
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("storage", storageCfg.Type).
		Str("mode", mode.String()).
		Bool("tracking", tracking.Enabled).
		Msg("Starting viewmark")
	g.Run()
	return nil
}
