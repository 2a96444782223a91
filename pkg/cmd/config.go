package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type learnConfig struct {
	AppKey string `mapstructure:"appkey"`
	Secret string `mapstructure:"secret"`
	URL    string `mapstructure:"url"`
}

type appConfig struct {
	BB learnConfig `mapstructure:"bb"`
}

// loadConfig loads the application configuration from an optional dotenv file,
// the environment and an optional config file. Values already present in the
// environment always win over the dotenv file.
// It returns a pointer to appConfig or an error if loading or unmarshalling fails.
func loadConfig(arg *args) (*appConfig, error) {
	if err := godotenv.Load(arg.EnvFile); err != nil {
		slog.Debug("No dotenv file found, using environment variables", slog.String("path", arg.EnvFile))
	}

	v := viper.NewWithOptions(viper.ExperimentalBindStruct())

	if arg.ConfigPath != "" {
		v.SetConfigFile(arg.ConfigPath)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg appConfig

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	slog.Debug("Config loaded", slog.String("url", cfg.BB.URL))

	return &cfg, nil
}

// validate reports the first missing credential by the environment variable
// that supplies it.
func (c *appConfig) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"BB_APPKEY", c.BB.AppKey},
		{"BB_SECRET", c.BB.Secret},
		{"BB_URL", c.BB.URL},
	}

	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s is required", r.name)
		}
	}

	return nil
}
