package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// File locations searched by LoadConfig.
const (
	GlobalConfigDir   = "voyage"      // under $XDG_CONFIG_HOME or ~/.config
	GlobalConfigFile  = "config.yaml"
	ProjectConfigDir  = ".voyage"     // relative to the working directory
	ProjectConfigFile = "config.yaml"
)

// configLayer is one YAML file merged over the settings before it.
type configLayer struct {
	path     string
	required bool
}

// LoadConfig builds the effective configuration. Each source overrides
// the ones before it: Default(), the global file, the project file, the
// file named by the "config" key (--config or VOYAGE_CONFIG), then
// whatever env and flag values are already bound to v. Only the
// explicit file has to exist. The result is validated before it is
// returned.
func LoadConfig(v *viper.Viper) (*Config, error) {
	cfg := Default()

	defaults, err := settingsMap(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode defaults: %w", err)
	}
	if err := v.MergeConfigMap(defaults); err != nil {
		return nil, fmt.Errorf("merge defaults: %w", err)
	}

	for _, layer := range configLayers(v.GetString("config")) {
		if err := mergeLayer(v, layer); err != nil {
			return nil, err
		}
	}

	if err := v.Unmarshal(cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func configLayers(explicit string) []configLayer {
	layers := []configLayer{
		{path: globalConfigPath()},
		{path: projectConfigPath()},
	}
	if explicit != "" {
		layers = append(layers, configLayer{path: explicit, required: true})
	}
	return layers
}

func mergeLayer(v *viper.Viper, layer configLayer) error {
	if layer.path == "" {
		return nil
	}
	data, err := os.ReadFile(layer.path)
	if errors.Is(err, fs.ErrNotExist) && !layer.required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", layer.path, err)
	}

	fileViper := viper.New()
	fileViper.SetConfigType("yaml")
	if err := fileViper.ReadConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse config %s: %w", layer.path, err)
	}
	return v.MergeConfigMap(fileViper.AllSettings())
}

// globalConfigPath returns the global config file, or "" when there is none.
func globalConfigPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return existing(filepath.Join(base, GlobalConfigDir, GlobalConfigFile))
}

// projectConfigPath returns the project config file, or "" when there is none.
func projectConfigPath() string {
	return existing(filepath.Join(ProjectConfigDir, ProjectConfigFile))
}

func existing(path string) string {
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// decodeHook lets config files and env vars spell durations as "5s".
func decodeHook() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.StringToTimeDurationHookFunc())
}

// settingsMap flattens cfg into the nested map viper merges, writing
// durations back as strings so they round-trip through decodeHook.
func settingsMap(cfg *Config) (map[string]interface{}, error) {
	out := make(map[string]interface{})
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "mapstructure",
		Result:     &out,
		DecodeHook: durationString,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(cfg); err != nil {
		return nil, err
	}
	return out, nil
}

func durationString(from, _ reflect.Type, data interface{}) (interface{}, error) {
	if from != reflect.TypeOf(time.Duration(0)) {
		return data, nil
	}
	return data.(time.Duration).String(), nil
}
