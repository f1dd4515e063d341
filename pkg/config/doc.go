// Package config loads service configuration from environment variables.
//
// Struct fields are described with `env` tags from github.com/caarlos0/env/v11;
// a local .env file, if present, is read once through github.com/joho/godotenv
// before the first Load.
//
//	var cfg edge.Config
//	config.MustLoad(&cfg)
//
// Load caches one parsed value per configuration type. Parse skips the cache and
// accepts a variable prefix, which is handy for tests and for embedding the same
// struct under different names.
package config
