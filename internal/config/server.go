package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// PostgresDSN enables the result archive; resolution itself needs no
	// storage, so an empty DSN runs the service stateless.
	PostgresDSN string `env:"POSTGRES_DSN"`

	ResultsPageLimit int `env:"RESULTS_PAGE_LIMIT" envDefault:"50"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
