// Package config loads startup configuration: credentials from the
// environment (optionally seeded from a .env file) and tunables from a
// TOML settings file. Everything is loaded once and never reloaded.
package config
