package main

import (
	"fmt"
	"log"

	"github.com/forumkit/massinvite/internal/webserver"
	"github.com/forumkit/massinvite/internal/webserver/infrastructure"
	"github.com/ilyakaznacheev/cleanenv"
)

var version string = "unknown"

func main() {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal(fmt.Errorf("error parsing configuration from environment variables: %w", err))
	}

	db := infrastructure.Connect(cfg.DbPath)

	webserverConfig := webserver.Config{
		SessionSecret:     []byte(cfg.SessionSecret),
		SessionTimeout:    cfg.SessionTimeout,
		MinPasswordLength: cfg.MinPasswordLength,
	}

	controllers := webserver.SetupControllers(webserverConfig, db)
	app := webserver.New(webserverConfig, controllers)

	fmt.Printf("MassInvite version %s started listening on port %s\n\n", version, cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
