// Package cmd implements the httpie CLI commands using Cobra.
//
// Available commands:
//   - get: Send a GET request and print the response
//   - post: Send key=value pairs as a JSON object in a POST request
//   - init: Write a default .httpie.yaml
//   - version: Show httpie version information
//   - completion: Generate shell completion scripts
//
// Global flags control colors (--color=always|auto|never), extra headers,
// authentication, timeouts, TLS, proxying, compression and jq filtering of
// JSON responses. Most flags can also be set through HTTPIE_* environment
// variables or a .httpie.yaml config file.
package cmd
