package main

import (
	"embed"

	"github.com/ghuser/appmarket/pkg/config"
	"github.com/ghuser/appmarket/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := migrator.Apply(cfg.ReviewsDatabaseURL, MigrationsFS); err != nil {
		panic(err)
	}
}
