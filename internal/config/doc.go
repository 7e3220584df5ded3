// Package config loads and validates habitd configuration from a YAML
// file with environment variable overrides.
//
// Configuration is resolved in three layers, later layers winning:
//
//  1. Built-in defaults
//  2. The config file (default ~/.config/habitd/config.yaml)
//  3. HABITD_* environment variables
//
// Environment variables map to config keys by section and field, so
// HABITD_LOG_LEVEL sets log.level and HABITD_ENGINE_CONSISTENCY_CUTOFF
// sets engine.consistency_cutoff.
package config
