package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const FileName = "corners.cfg.json"

// Load sets default values and reads corners.cfg.json from configDir if present.
// A missing file is not an error.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("scoreboard.path", "./corners.db")
	viper.SetDefault("metrics.dir", "")

	viper.SetDefault("players.red", "")
	viper.SetDefault("players.blue", "")

	viper.SetConfigName(FileName)
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// Set overrides a value, for flags given on the command line.
func Set(key string, value any) {
	viper.Set(key, value)
}
