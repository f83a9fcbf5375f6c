// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file from the working directory on first use (when
// present) and uses the caarlos0/env library for parsing environment variables
// into struct fields.
//
//	type DatabaseConfig struct {
//		URL     string        `env:"MONGO_URL"`
//		Timeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`
//	}
//
//	var db DatabaseConfig
//	if err := config.Load(&db); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure (useful for startup)
//	config.MustLoad(&db)
//
// Nested structs are parsed recursively, so an application config can embed
// the configs of every package it wires.
package config
