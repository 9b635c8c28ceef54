package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Configuration struct {
	Server struct {
		Port         string `envconfig:"SERVER_PORT" default:"3000"`
		AllowOrigins string `envconfig:"ALLOW_ORIGINS" default:"http://localhost:5173"`
	}
}

func InitConfig() (*Configuration, error) {
	cfg := &Configuration{}
	err := envconfig.Process("", cfg)
	return cfg, err
}
