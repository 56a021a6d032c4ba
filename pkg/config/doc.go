// Package config loads typed configuration structs from environment
// variables.
//
// It is a thin wrapper around caarlos0/env with godotenv support: the first
// Load in a process picks up a .env file when one exists, then every call
// parses the process environment into the provided struct according to its
// `env` tags.
//
// Errors are reported through the exported sentinels ErrNilPointer and
// ErrParsingConfig, the latter joined with the underlying parser error.
package config
