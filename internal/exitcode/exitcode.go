package exitcode

import (
	stderrors "errors"
	"os"

	"github.com/felixgeelhaar/driftscope/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution with no blocking drift
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// ConfigError indicates an invalid configuration file
	ConfigError = 3

	// DriftDetected indicates design drift at or above the failure threshold
	DriftDetected = 4

	// SnapshotError indicates snapshot files could not be loaded
	SnapshotError = 5
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}
	Exit(DetermineExitCode(err))
}

// DetermineExitCode maps an error onto an exit code via its error code
// category. Unknown errors are general errors.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	var derr *errors.DriftscopeError
	if !stderrors.As(err, &derr) {
		return GeneralError
	}

	switch derr.Code {
	case errors.ErrCodeConfigNotFound, errors.ErrCodeConfigInvalid,
		errors.ErrCodeConfigWeights, errors.ErrCodeConfigThreshold,
		errors.ErrCodeConfigSeverity, errors.ErrCodeConfigIgnorePattern:
		return ConfigError
	case errors.ErrCodeSnapshotNotFound, errors.ErrCodeSnapshotInvalid,
		errors.ErrCodeSnapshotUnmarshal, errors.ErrCodeSnapshotEmpty:
		return SnapshotError
	default:
		return GeneralError
	}
}

// GetExitCodeDescription returns a human-readable description of an exit code
func GetExitCodeDescription(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case ConfigError:
		return "Invalid configuration"
	case DriftDetected:
		return "Design drift detected"
	case SnapshotError:
		return "Snapshot load failure"
	default:
		return "Unknown error"
	}
}
