package optset

// Exit code conventions, following sysexits-adjacent practice: 1 for
// general failure, 2 for command-line misuse, 3 for declaration errors.
const (
	ExitSuccess    = 0
	ExitGeneral    = 1
	ExitMisusage   = 2
	ExitValidation = 3
)

// ExitCodeManager maps error types to process exit codes for the default
// error handler. Codes can be overridden per error type.
type ExitCodeManager struct {
	codes    map[ErrorType]int
	fallback int
}

func newExitCodeManager() *ExitCodeManager {
	return &ExitCodeManager{
		codes: map[ErrorType]int{
			ErrorTypeStructural:      ExitValidation,
			ErrorTypeDuplicate:       ExitMisusage,
			ErrorTypeMissingArgument: ExitMisusage,
			ErrorTypeConversion:      ExitMisusage,
			ErrorTypeValueNotAllowed: ExitMisusage,
			ErrorTypeUnrecognized:    ExitMisusage,
			ErrorTypeMissingRequired: ExitMisusage,
			ErrorTypeValidation:      ExitMisusage,
			ErrorTypeInternal:        ExitGeneral,
		},
		fallback: ExitGeneral,
	}
}

// Set overrides the exit code for one error type.
func (m *ExitCodeManager) Set(t ErrorType, code int) *ExitCodeManager {
	m.codes[t] = code
	return m
}

// CodeFor returns the exit code for an error type.
func (m *ExitCodeManager) CodeFor(t ErrorType) int {
	if code, ok := m.codes[t]; ok {
		return code
	}
	return m.fallback
}
