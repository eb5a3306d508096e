package cli

import (
	"errors"

	"github.com/scoutsearch/roleattrs/pkg/config"
	"github.com/scoutsearch/roleattrs/pkg/log"
	"github.com/scoutsearch/roleattrs/pkg/roles"
)

// Exit codes returned by [ExitCode].
const (
	ExitOK        = 0
	ExitError     = 1
	ExitConfig    = 2
	ExitNotFound  = 3
	ExitMalformed = 4
)

var errConfig = errors.New("configuration error")

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, roles.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, roles.ErrMalformed):
		return ExitMalformed
	case errors.Is(err, errConfig),
		errors.Is(err, config.ErrInvalid),
		errors.Is(err, log.ErrInvalidArgument),
		isUsageError(err):
		return ExitConfig
	}

	return ExitError
}
