package config

import (
	"fmt"
	"time"

	"viewmark/internal/pose"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "viewmark.cfg.json"

// StorageConfig selects and configures the bookmark persistence backend.
type StorageConfig struct {
	Type   string       `json:"type" mapstructure:"type"`
	File   FileConfig   `json:"file" mapstructure:"file"`
	SQLite SQLiteConfig `json:"sqlite" mapstructure:"sqlite"`
}

// FileConfig holds JSON file backend settings.
type FileConfig struct {
	Dir string `json:"dir" mapstructure:"dir"`
}

// SQLiteConfig holds SQLite backend settings. An empty Path means in-memory.
type SQLiteConfig struct {
	Path        string        `json:"path" mapstructure:"path"`
	BusyTimeout time.Duration `json:"busyTimeout" mapstructure:"busyTimeout"`
}

// TrackingConfig controls continuous tracking and auto-resume.
type TrackingConfig struct {
	Enabled bool
	Key     string
}

// InputConfig holds key names for the bookmark bindings.
type InputConfig struct {
	Primary string
	Actions map[string]string
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "")
	viper.SetDefault("collection", "default")
	viper.SetDefault("controller.mode", "FirstPerson")

	viper.SetDefault("tracking.enabled", true)
	viper.SetDefault("tracking.key", "main")

	viper.SetDefault("restore.flyingCameraHeight", 1.8)

	viper.SetDefault("storage.type", "file")
	viper.SetDefault("storage.file.dir", "./viewpoints")
	viper.SetDefault("storage.sqlite.path", "./viewpoints.db")
	viper.SetDefault("storage.sqlite.busyTimeout", "5s")

	viper.SetDefault("input.primary", "LeftControl")
	viper.SetDefault("input.next", "PageDown")
	viper.SetDefault("input.previous", "PageUp")
	viper.SetDefault("input.add", "Insert")
	viper.SetDefault("input.override", "Home")
	viper.SetDefault("input.remove", "Delete")
	viper.SetDefault("input.toggleTracking", "End")
}

// Load reads configuration from the JSON file in configDir and sets default
// values. A missing file is not an error; defaults apply.
func Load(configDir string) error {
	setDefaults()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetStorageConfig returns the storage section.
func GetStorageConfig() StorageConfig {
	return StorageConfig{
		Type: viper.GetString("storage.type"),
		File: FileConfig{
			Dir: viper.GetString("storage.file.dir"),
		},
		SQLite: SQLiteConfig{
			Path:        viper.GetString("storage.sqlite.path"),
			BusyTimeout: viper.GetDuration("storage.sqlite.busyTimeout"),
		},
	}
}

func GetTrackingConfig() TrackingConfig {
	return TrackingConfig{
		Enabled: viper.GetBool("tracking.enabled"),
		Key:     viper.GetString("tracking.key"),
	}
}

// GetFlyingCameraHeight returns the forced camera height for first-person
// captures restored into the flying camera.
func GetFlyingCameraHeight() float32 {
	return float32(viper.GetFloat64("restore.flyingCameraHeight"))
}

// GetControllerMode returns the starting controller mode.
func GetControllerMode() (pose.ControllerMode, error) {
	return pose.ParseControllerMode(viper.GetString("controller.mode"))
}

func GetInputConfig() InputConfig {
	actions := map[string]string{}
	for _, name := range []string{"next", "previous", "add", "override", "remove", "toggleTracking"} {
		actions[name] = viper.GetString("input." + name)
	}
	return InputConfig{
		Primary: viper.GetString("input.primary"),
		Actions: actions,
	}
}
