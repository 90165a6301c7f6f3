package main

import "time"

type Config struct {
	DbPath            string        `env:"DBPATH" env-default:"massinvite.db"`
	Port              string        `env:"PORT" env-default:"3000"`
	SessionSecret     string        `env:"SESSION_SECRET" env-required:"true"`
	SessionTimeout    time.Duration `env:"SESSION_TIMEOUT" env-default:"24h"`
	MinPasswordLength int           `env:"MIN_PASSWORD_LENGTH" env-default:"5"`
}
