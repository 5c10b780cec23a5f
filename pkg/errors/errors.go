package errors

import (
	"fmt"
	"os"
	"strings"

	"artclip/pkg/logger"

	"github.com/fatih/color"
)

type ExitCode int

const (
	ExitCodeSuccess       ExitCode = 0
	ExitCodeGeneral       ExitCode = 1
	ExitCodeConfig        ExitCode = 2
	ExitCodeValidation    ExitCode = 3
	ExitCodeNotFound      ExitCode = 4
	ExitCodeFetch         ExitCode = 5
	ExitCodeCache         ExitCode = 6
	ExitCodeClipboard     ExitCode = 7
	ExitCodeFileOperation ExitCode = 8
)

type Error struct {
	Code       ExitCode
	Message    string
	Underlying error
	Suggestion string
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Underlying)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

func New(code ExitCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func NewWithError(code ExitCode, message string, err error) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Underlying: err,
	}
}

func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if wrapped, ok := err.(*Error); ok {
		return &Error{
			Code:       wrapped.Code,
			Message:    message + ": " + wrapped.Message,
			Underlying: wrapped.Underlying,
			Suggestion: wrapped.Suggestion,
		}
	}

	return &Error{
		Code:       ExitCodeGeneral,
		Message:    message,
		Underlying: err,
	}
}

func IsExitCode(err error, code ExitCode) bool {
	if err == nil {
		return false
	}

	if e, ok := err.(*Error); ok {
		return e.Code == code
	}

	return false
}

// HandleReturn logs an error, prints it to stderr, and returns the exit
// code the process should terminate with. The caller is responsible for
// calling os.Exit.
func HandleReturn(err error) ExitCode {
	if err == nil {
		return ExitCodeSuccess
	}

	var exitCode ExitCode = ExitCodeGeneral
	var message string
	var suggestion string

	if e, ok := err.(*Error); ok {
		exitCode = e.Code
		message = e.Message
		suggestion = e.Suggestion

		if e.Underlying != nil {
			logger.Error().Err(e.Underlying).Msg(e.Message)
		} else {
			logger.Error().Msg(e.Message)
		}
	} else {
		message = err.Error()
		logger.Error().Msg(message)
	}

	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)

	fmt.Fprintln(os.Stderr)
	red.Fprint(os.Stderr, "Error: ")
	fmt.Fprintln(os.Stderr, message)

	if suggestion != "" {
		yellow.Fprint(os.Stderr, "Suggestion: ")
		lines := strings.Split(suggestion, "\n")
		for i, line := range lines {
			if i == 0 {
				fmt.Fprintln(os.Stderr, line)
			} else {
				fmt.Fprintln(os.Stderr, "            "+line)
			}
		}
	}

	fmt.Fprintln(os.Stderr)

	return exitCode
}

func ConfigError(message string) *Error {
	return &Error{
		Code:       ExitCodeConfig,
		Message:    message,
		Suggestion: "Check your configuration file or set the ARTCLIP_* environment variables.",
	}
}

func ValidationError(message string) *Error {
	return &Error{
		Code:    ExitCodeValidation,
		Message: message,
	}
}

func ArticleNotFoundError(id string) *Error {
	return &Error{
		Code:       ExitCodeNotFound,
		Message:    fmt.Sprintf("Article '%s' not found in the local cache", id),
		Suggestion: "Run 'artclip fetch <feed-url>' first, or 'artclip list' to see cached articles.",
	}
}

func ThemeNotFoundError(name string) *Error {
	return &Error{
		Code:       ExitCodeNotFound,
		Message:    fmt.Sprintf("Theme '%s' not found", name),
		Suggestion: "Use 'artclip config show' to see the configured theme directory and built-in themes.",
	}
}

func FetchError(url string, err error) *Error {
	return &Error{
		Code:       ExitCodeFetch,
		Message:    fmt.Sprintf("Failed to fetch feed %s", url),
		Underlying: err,
		Suggestion: "Verify the URL points at an RSS/Atom/JSON feed and is reachable.",
	}
}

func CacheError(err error) *Error {
	return &Error{
		Code:       ExitCodeCache,
		Message:    "Article cache operation failed",
		Underlying: err,
	}
}

func ClipboardError(err error) *Error {
	return &Error{
		Code:       ExitCodeClipboard,
		Message:    "Failed to write to the clipboard",
		Underlying: err,
		Suggestion: "On Linux a Wayland or X11 session is required; check DISPLAY/WAYLAND_DISPLAY.",
	}
}
