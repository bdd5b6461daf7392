package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	League   League
	Server   Server
	Postgres Postgres
}

type League struct {
	ID     string `envconfig:"LEAGUE_ID" default:"1251986365806034944"`
	Season string `envconfig:"SEASON" default:"2025"`
}

type Server struct {
	Port     int    `envconfig:"PORT" default:"8080"`
	AdminKey string `envconfig:"ADMIN_KEY" required:"true"`
}

type Postgres struct {
	ConnString string `envconfig:"DATABASE_URL" required:"true"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
