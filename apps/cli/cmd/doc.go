// Package cmd implements the f2html CLI commands using Cobra.
//
// Available commands:
//   - call: Send a blocking request and print the response body
//   - format: Render one value for a field type
//   - init: Write a default config file
//   - render: Render every field of a JSON field document
//   - types: List the supported field types
//   - version: Show f2html version information
package cmd
