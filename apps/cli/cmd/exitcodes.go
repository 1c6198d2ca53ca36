package cmd

// Exit codes for httpie CLI
const (
	// ExitSuccess indicates the response was received and printed
	ExitSuccess = 0

	// ExitFailure indicates a failure while rendering the response
	ExitFailure = 1

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitNetworkError indicates a network/connection error
	ExitNetworkError = 4

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
