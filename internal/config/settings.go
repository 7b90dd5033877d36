package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings are the tool's own knobs, distinct from the calculation request:
// logging, the serve address, and the default fiscal year. They load from
// an optional revdisp.yaml plus REVDISP_* environment variables.
type Settings struct {
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
	ListenAddr  string `mapstructure:"listen_addr"`
	DefaultYear int    `mapstructure:"default_year"`
}

// LoadSettings reads settings from the given file, or from revdisp.yaml in
// the working directory when the path is empty. A missing file is fine;
// defaults and environment variables still apply.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("default_year", 2024)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("revdisp")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("REVDISP")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return &s, nil
}
