package cmd

// Exit codes for the f2html CLI
const (
	// ExitSuccess indicates the command completed
	ExitSuccess = 0

	// ExitRenderError indicates a value or document could not be rendered
	ExitRenderError = 1

	// ExitParseError indicates a malformed field document
	ExitParseError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitNetworkError indicates a network/connection error
	ExitNetworkError = 4

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
