package cmd

import (
	"errors"
	"fmt"

	"github.com/abdul-hamid-achik/httpie/packages/http"
	"github.com/spf13/cobra"
)

// usageError marks bad command-line input. It is reported with the usage text.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// configError marks a config file that could not be read or holds bad values.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// exitCode maps an error returned by the command tree to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var ue *usageError
	if errors.As(err, &ue) {
		return ExitUsageError
	}

	var ce *configError
	if errors.As(err, &ce) {
		return ExitConfigError
	}

	if http.IsTransportError(err) {
		return ExitNetworkError
	}

	return ExitFailure
}

// usageArgs reports positional argument problems as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}
