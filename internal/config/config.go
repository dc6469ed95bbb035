package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Spin     *SpinConfig     `mapstructure:"spin"`
}

type APIConfig struct {
	Environment         string   `mapstructure:"environment"`
	Port                string   `mapstructure:"port"`
	BaseURL             string   `mapstructure:"base_url"`
	AllowedCORSDomains  []string `mapstructure:"allowed_cors_domains"`
	SpinTokenSigningKey string   `mapstructure:"spin_token_signing_key"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
}

// SpinConfig tunes the verification gate and redemption code issuance.
type SpinConfig struct {
	ChallengeTTLMinutes  int `mapstructure:"challenge_ttl_minutes"`
	ChallengeMaxAttempts int `mapstructure:"challenge_max_attempts"`
	SpinTokenTTLMinutes  int `mapstructure:"spin_token_ttl_minutes"`
	CodeLength           int `mapstructure:"code_length"`
}

func Load(configFile string) (*AppConfig, error) {
	viper.SetConfigFile(configFile)

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	err := viper.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err = viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name))

		if err = viper.Unmarshal(conf); err != nil {
			zap.L().Error("failed to reload config", zap.Error(err))
		}
	})

	return conf, nil
}
