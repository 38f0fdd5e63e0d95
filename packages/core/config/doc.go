// Package config handles configuration loading for f2html.
//
// It provides functionality for:
//   - Loading configuration from .f2html.yaml or f2html.yaml files
//   - Default configuration values
//   - F2HTML_* overrides from the environment or a .env file
package config
