// Package config loads env-tagged configuration structs such as
// httpvalidate.Config, using github.com/caarlos0/env/v11 for parsing and
// github.com/joho/godotenv for .env files.
//
// Parsed values are cached per type, so repeated Load calls are cheap and
// return the same values. Reset clears the cache in tests.
package config
