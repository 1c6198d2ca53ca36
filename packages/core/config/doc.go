// Package config handles configuration loading and management for httpie.
//
// It provides functionality for:
//   - Finding .httpie.yaml, .httpie.yml, .httpie.json or .httpierc in the
//     working directory, then in the user's home directory
//   - Parsing YAML (and therefore JSON) config files
//   - Default configuration values and merging overrides on top of them
package config
