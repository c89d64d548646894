package script

import "fmt"

// ParseError reports a command whose arguments are missing or of the wrong
// type.
type ParseError struct {
	Command string
	Msg     string
}

func (e *ParseError) Error() string {
	return e.Msg
}

// ExitError asks the caller to terminate the process with Code.
//
// Run returns it after a "-file" script finishes (Code 0), when the script
// cannot be opened (Code 1), or when "-file" has no path (Code 2).
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return fmt.Sprintf("exit status %d: %v", e.Code, e.Err)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Exit codes carried by ExitError.
const (
	ExitOK         = 0
	ExitOpenFailed = 1
	ExitUsage      = 2
)
