// Package config loads application configuration from environment
// variables and an optional .env file.
//
// Defaults are declared as `default:` struct tags on the partial config
// structs of each package and registered in Viper via reflection, so adding
// a setting never requires touching the loader. Environment variables map
// to nested keys by section (LOG_LEVEL -> log.level, LPCR_TOKEN ->
// lpcr.token).
package config
