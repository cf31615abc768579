package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	customvalidator "github.com/spounge-ai/handicap/pkg/validator"
)

type Config struct {
	Server         ServerConfig              `mapstructure:"server"`
	Providers      map[string]ProviderConfig `mapstructure:"providers" validate:"required,min=1,dive,keys,source_name,endkeys"`
	ServiceVersion string
	BuildCommit    string
}

func Load(path string) (*Config, error) {
	vip := viper.New()
	if path != "" {
		vip.SetConfigFile(path)
	} else {
		vip.SetConfigName("config")
		vip.AddConfigPath("./configs")
		vip.AddConfigPath(".")
	}

	vip.SetConfigType("yaml")
	vip.SetEnvPrefix("HANDICAP")
	vip.AutomaticEnv()
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	vip.SetDefault("server.port", 50051)
	vip.SetDefault("server.mode", "development")
	vip.SetDefault("server.log_level", "info")

	if err := vip.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := customvalidator.RegisterCustomValidators(validate); err != nil {
		return nil, fmt.Errorf("failed to register custom validators: %w", err)
	}
	validate.RegisterStructValidation(providerStructLevel, ProviderConfig{})

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.ServiceVersion = getenv("HANDICAP_SERVICE_VERSION", "unknown")
	cfg.BuildCommit = getenv("HANDICAP_BUILD_COMMIT", "unknown")

	return &cfg, nil
}

// getenv returns an environment variable or a default value.
func getenv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
