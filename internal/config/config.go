package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type TurnConfig struct {
	Secret         string   `mapstructure:"secret"`
	TTL            int64    `mapstructure:"ttl"`
	UsernamePrefix string   `mapstructure:"username_prefix"`
	URIs           []string `mapstructure:"uris"`
}

type Config struct {
	Mode            string        `mapstructure:"mode"`
	Port            int           `mapstructure:"port"`
	ReadLimit       int64         `mapstructure:"read_limit"`
	SendBuffer      int           `mapstructure:"send_buffer"`
	PingPeriod      time.Duration `mapstructure:"ping_period"`
	MsgRate         int           `mapstructure:"msg_rate"`
	MsgRateInterval time.Duration `mapstructure:"msg_rate_interval"`
	Turn            TurnConfig    `mapstructure:"turn"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	fileName := fmt.Sprintf("config/config.%s.yaml", env)

	v.SetConfigFile(fileName)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("mode", "release")
	v.SetDefault("port", 5000)
	v.SetDefault("read_limit", 32768)
	v.SetDefault("send_buffer", 32)
	v.SetDefault("ping_period", "54s")
	v.SetDefault("msg_rate", 64)
	v.SetDefault("msg_rate_interval", "1s")
	v.SetDefault("turn.secret", "")
	v.SetDefault("turn.ttl", 3600)
	v.SetDefault("turn.username_prefix", "chitchat")
	v.SetDefault("turn.uris", []string{})

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("config file not found (%s), using defaults\n", fileName)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
