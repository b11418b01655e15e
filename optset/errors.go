package optset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/optkit/optset/internal/fuzzy"
)

// ErrorType classifies parse-time and validation failures.
type ErrorType string

const (
	// ErrorTypeStructural reports an invalid declaration surface, found
	// by Validate before any parsing takes place.
	ErrorTypeStructural ErrorType = "structural"

	// ErrorTypeDuplicate reports a repeated occurrence of an option that
	// is neither Multiple nor Overridable.
	ErrorTypeDuplicate ErrorType = "duplicate_option"

	// ErrorTypeMissingArgument reports an option that takes a value but
	// reached the end of argv without one.
	ErrorTypeMissingArgument ErrorType = "missing_argument"

	// ErrorTypeConversion reports a value that failed strict conversion
	// to the option's type, including unreadable files.
	ErrorTypeConversion ErrorType = "conversion"

	// ErrorTypeValueNotAllowed reports a well-formed value outside an
	// enum option's allowed set.
	ErrorTypeValueNotAllowed ErrorType = "value_not_allowed"

	// ErrorTypeUnrecognized reports a token that matched no option and
	// no positional slot.
	ErrorTypeUnrecognized ErrorType = "unrecognized_option"

	// ErrorTypeMissingRequired reports a required option absent after the
	// scan loop and environment fallback.
	ErrorTypeMissingRequired ErrorType = "missing_required"

	// ErrorTypeValidation reports a converted value rejected by a
	// user-supplied Validate hook.
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeInternal reports a bug in the parser itself.
	ErrorTypeInternal ErrorType = "internal_error"
)

// ParseError is the error type produced by Validate and Parse. Option and
// Token carry context when known; Suggestion holds a fuzzy-matched option
// name for unrecognized tokens.
type ParseError struct {
	Type       ErrorType
	Message    string
	Option     string
	Token      string
	Suggestion string
}

func (e *ParseError) Error() string {
	msg := e.Message
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// ErrorHandler decides how a parse session reacts to an error. Returning
// true continues the scan with the next token; returning false aborts the
// session, which then skips the required-option check.
type ErrorHandler func(err *ParseError) bool

func errStructural(format string, args ...any) *ParseError {
	return &ParseError{Type: ErrorTypeStructural, Message: fmt.Sprintf(format, args...)}
}

func errDuplicate(name string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeDuplicate,
		Message: fmt.Sprintf("duplicate option: %q", name),
		Option:  name,
	}
}

func errMissingArgument(name string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeMissingArgument,
		Message: fmt.Sprintf("missing argument for option %q", name),
		Option:  name,
	}
}

func errConversion(name, value, want string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeConversion,
		Message: fmt.Sprintf("invalid value %q for option %q: expected %s", value, name, want),
		Option:  name,
		Token:   value,
	}
}

func errFileRead(name, path string, cause error) *ParseError {
	return &ParseError{
		Type:    ErrorTypeConversion,
		Message: fmt.Sprintf("could not read file %q for option %q: %v", path, name, cause),
		Option:  name,
		Token:   path,
	}
}

func errValueNotAllowed(name, value string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeValueNotAllowed,
		Message: fmt.Sprintf("value %q is not allowed for option %q", value, name),
		Option:  name,
		Token:   value,
	}
}

func errMissingRequired(name string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeMissingRequired,
		Message: fmt.Sprintf("missing required option %q", name),
		Option:  name,
	}
}

func errValidation(name string, cause error) *ParseError {
	if pe, ok := cause.(*ParseError); ok {
		out := *pe
		out.Type = ErrorTypeValidation
		out.Option = name
		if out.Message == "" {
			out.Message = "validation failed"
		}
		out.Message = fmt.Sprintf("invalid value for option %q: %s", name, out.Message)
		return &out
	}
	return &ParseError{
		Type:    ErrorTypeValidation,
		Message: fmt.Sprintf("invalid value for option %q: %v", name, cause),
		Option:  name,
	}
}

// unrecognized builds the error for a token that matched nothing, with an
// optional fuzzy suggestion drawn from the declared option names.
func (s *Set) unrecognized(token string) *ParseError {
	err := &ParseError{
		Type:    ErrorTypeUnrecognized,
		Message: fmt.Sprintf("unrecognized option: %q", token),
		Token:   token,
	}
	if s.suggest {
		names := make([]string, 0, len(s.options))
		for _, opt := range s.options {
			if !opt.Positional {
				names = append(names, opt.Name)
			}
		}
		if best, ok := fuzzy.FindBest(token, names, s.maxEdit); ok {
			err.Suggestion = best
		}
	}
	return err
}

// defaultHandler builds the error handler used by Parse: print the message
// prefixed with the program name, print help, and exit. It never returns
// control to the scan loop.
func (s *Set) defaultHandler(program string) ErrorHandler {
	return func(err *ParseError) bool {
		io := s.IO()
		io.Errorf("%s: %s\n", filepath.Base(program), err.Error())
		if help := s.helpOption(); help != nil {
			fn := help.helpFn
			if fn == nil {
				fn = s.defaultHelpCallback()
			}
			fn(nil, program, s.Help())
		} else {
			io.Errorf("Usage: %s %s", filepath.Base(program), s.Help())
		}
		os.Exit(s.ExitCodes().CodeFor(err.Type))
		return false
	}
}

// defaultHelpCallback prints "Usage: <program> <help>" to the error
// stream and exits with status 1, matching the default error handler's
// convention.
func (s *Set) defaultHelpCallback() HelpCallback {
	return func(_ any, program, help string) {
		s.IO().Errorf("Usage: %s %s", filepath.Base(program), help)
		os.Exit(ExitGeneral)
	}
}

func (s *Set) helpOption() *Option {
	for _, opt := range s.options {
		if opt.isHelp {
			return opt
		}
	}
	return nil
}
