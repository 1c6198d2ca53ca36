// Package parser turns command-line arguments into a request Command.
//
// It handles:
//   - Absolute URL validation (http and https with a host)
//   - key=value body tokens, split on the first '='
//   - Name:Value header tokens
//   - The Get/Post command model dispatched by the CLI
package parser
