package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	HTTPPort      string `mapstructure:"HTTP_PORT"`
	AccessSecret  string `mapstructure:"ACCESS_SECRET"`
	AdminEmails   string `mapstructure:"ADMIN_EMAILS"`
	GinMode       string `mapstructure:"GIN_MODE"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	// Bind each key explicitly so viper sees plain env vars without a file.
	viper.BindEnv("REDIS_ADDR")
	viper.BindEnv("REDIS_PASSWORD")
	viper.BindEnv("HTTP_PORT")
	viper.BindEnv("ACCESS_SECRET")
	viper.BindEnv("ADMIN_EMAILS")
	viper.BindEnv("GIN_MODE")

	viper.SetDefault("HTTP_PORT", ":8080")

	// A missing config file is fine, env vars carry the config then.
	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}

// Admins returns the normalized admin allowlist.
func (c Config) Admins() map[string]struct{} {
	admins := make(map[string]struct{})
	for _, email := range strings.Split(c.AdminEmails, ",") {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			admins[email] = struct{}{}
		}
	}
	return admins
}
