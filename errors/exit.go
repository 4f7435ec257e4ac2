package errors

const (
	ExitOK                = 0
	ExitInputUnavailable  = 1
	ExitOutputUnavailable = 2
	ExitFailure           = 3
)

// ExitCode maps an error returned by an intake run to the process exit code
func ExitCode(err error) int {

	if err == nil {
		return ExitOK
	}

	asserted, ok := TryAssertError(err)
	if !ok {
		return ExitFailure
	}

	switch asserted.Code {

	case InputUnavailableErrorCode:
		return ExitInputUnavailable

	case OutputUnavailableErrorCode:
		return ExitOutputUnavailable

	default:
		return ExitFailure
	}
}
