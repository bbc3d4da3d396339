package main

import (
	"github.com/dmitrymomot/showcase/modules/showcase"
	"github.com/dmitrymomot/showcase/pkg/httpserver"
	"github.com/dmitrymomot/showcase/pkg/mailclient"
)

type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Name      string `env:"APP_NAME" envDefault:"showcase"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	Recipient     string `env:"SHOWCASE_RECIPIENT"`
	CatalogPath   string `env:"SHOWCASE_CATALOG_PATH"`
	SanitizeInput bool   `env:"SHOWCASE_SANITIZE_INPUT" envDefault:"false"`

	Showcase showcase.Config
	HTTP     httpserver.Config
	Mail     mailclient.Config
}
