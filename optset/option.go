// Package optset implements a declarative command-line option parser.
//
// An option surface is declared once on a Set using fluent builders; the Set
// then validates the declarations as a whole, renders deterministic help
// text, and parses argument vectors into strongly typed results. Each call
// to Parse runs an independent session, so the same Set can be parsed
// repeatedly or concurrently.
package optset

import (
	"github.com/optkit/optset/internal/intern"
	optio "github.com/optkit/optset/io"
)

// Kind identifies the value type of an option.
type Kind string

const (
	// Value kinds
	KindString Kind = "string"
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindBool   Kind = "bool"
	KindFile   Kind = "file"

	// Behavioral kinds
	KindCallback Kind = "callback"
	KindValueSet Kind = "values"
	KindRef      Kind = "ref"
)

// CallbackFunc handles a matched no-argument callback option.
type CallbackFunc func(data any, name string)

// CallbackArgFunc handles a matched callback option that takes a value.
type CallbackArgFunc func(data any, name, value string)

// HelpCallback handles the built-in help option. It receives the program
// name (argv[0]) and the rendered help text in addition to the user data.
type HelpCallback func(data any, program, help string)

// Option describes one command-line option or positional argument.
// Options are built through the Set's fluent builders and are immutable
// once parsing starts.
type Option struct {
	Name        string
	Description string
	Kind        Kind

	// Elem is the underlying value kind for KindValueSet (string or int)
	// and KindRef (the value captured by the reference itself).
	Elem Kind

	Required    bool
	Overridable bool
	Multiple    bool
	Positional  bool
	Short       bool

	// ValueSet payload. Exactly one of these is populated, matching Elem.
	AllowedStrings []string
	AllowedInts    []int64

	// Reference payload: names of non-reference options whose state is
	// snapshotted each time this option is matched, in declaration order.
	RefTargets []string

	// Environment variables consulted, in order, when the option was not
	// found on the command line.
	EnvVars []string

	// Validator holds a typed validation function (func(T) error) applied
	// after conversion. Stored untyped; dispatched by value kind.
	Validator any

	callback    CallbackFunc
	callbackArg CallbackArgFunc
	helpFn      HelpCallback
	isHelp      bool
	takesValue  bool
}

// TakesValue reports whether the option consumes a value token.
// Flags and no-argument callbacks do not.
func (o *Option) TakesValue() bool {
	return o.takesValue
}

// IsFlag reports whether the option is a boolean flag whose "found" bit is
// the value.
func (o *Option) IsFlag() bool {
	return o.Kind == KindBool
}

// IsCallback reports whether the option dispatches to a callback instead of
// storing a value.
func (o *Option) IsCallback() bool {
	return o.Kind == KindCallback
}

// valueKind returns the kind governing conversion and storage of a single
// element: the Elem kind for value sets and references, the Kind otherwise.
func (o *Option) valueKind() Kind {
	switch o.Kind {
	case KindValueSet, KindRef:
		return o.Elem
	default:
		return o.Kind
	}
}

// Set is a complete option surface: an ordered list of option descriptors
// plus set-level configuration. Declaration order is semantically meaningful
// for matching and for positional slot filling.
type Set struct {
	options []*Option
	byName  map[string]*Option

	stopLiteral string

	io      *optio.Manager
	logger  *optio.Logger
	exit    *ExitCodeManager
	suggest bool
	maxEdit int

	plan       *plan
	compileErr error
	compiled   bool
}

// New creates an empty option set.
func New() *Set {
	return &Set{
		byName:  make(map[string]*Option),
		io:      optio.New(),
		suggest: true,
		maxEdit: 2,
	}
}

// IO returns the set's IO manager for fluent stream configuration. The
// default error handler and parse tracing write through it.
func (s *Set) IO() *optio.Manager {
	if s.io == nil {
		s.io = optio.New()
	}
	return s.io
}

// Trace enables parse tracing through the given logger. Passing nil
// disables tracing.
func (s *Set) Trace(l *optio.Logger) *Set {
	s.logger = l
	return s
}

// Suggestions controls whether unrecognized-option errors carry a fuzzy
// "did you mean" suggestion. Enabled by default.
func (s *Set) Suggestions(enabled bool) *Set {
	s.suggest = enabled
	return s
}

// StopParsing configures the stop sentinel: a literal token that ends
// option scanning and preserves the remaining argv entries verbatim.
// The conventional literal is "--". An empty literal disables the sentinel.
func (s *Set) StopParsing(literal string) *Set {
	s.stopLiteral = literal
	return s
}

// ExitCodes returns the exit-code manager used by the default error
// handler.
func (s *Set) ExitCodes() *ExitCodeManager {
	if s.exit == nil {
		s.exit = newExitCodeManager()
	}
	return s.exit
}

// add registers an option and invalidates any previous compilation.
// Duplicate names are caught by Validate, not here, so the whole-set
// verdict stays a single structural error path.
func (s *Set) add(opt *Option) *Option {
	opt.Name = intern.Intern(opt.Name)
	s.options = append(s.options, opt)
	if _, dup := s.byName[opt.Name]; !dup {
		s.byName[opt.Name] = opt
	}
	s.compiled = false
	s.plan = nil
	s.compileErr = nil
	return opt
}

// Builder provides a fluent API for configuring one option. T is the Go
// type of the option's converted value and types the Validate hook.
type Builder[T any] struct {
	opt *Option
	set *Set
}

// Required marks the option as mandatory; its absence after the scan loop
// is reported as a missing-required error.
func (b *Builder[T]) Required() *Builder[T] {
	b.opt.Required = true
	return b
}

// Overridable allows the option to occur more than once, keeping only the
// last occurrence instead of raising a duplicate error.
func (b *Builder[T]) Overridable() *Builder[T] {
	b.opt.Overridable = true
	return b
}

// Multiple makes the option list-valued: every occurrence appends, in
// encounter order.
func (b *Builder[T]) Multiple() *Builder[T] {
	b.opt.Multiple = true
	return b
}

// Positional marks the option as filled by position rather than by a
// leading name token. The name is used for help text and value retrieval.
func (b *Builder[T]) Positional() *Builder[T] {
	b.opt.Positional = true
	return b
}

// ShortOption enables short-option matching: the remainder of the token
// after the name is consumed as an inline value (-xvalue), in addition to
// -x=value and -x value.
func (b *Builder[T]) ShortOption() *Builder[T] {
	b.opt.Short = true
	return b
}

// FromEnv binds the option to environment variables, checked in order
// after the scan loop for options not found on the command line.
func (b *Builder[T]) FromEnv(vars ...string) *Builder[T] {
	b.opt.EnvVars = vars
	return b
}

// Validate adds a validation function applied after type conversion.
// Failures are routed through the error handler as validation errors.
func (b *Builder[T]) Validate(fn func(T) error) *Builder[T] {
	b.opt.Validator = fn
	return b
}

// Back returns the parent set for continued chaining.
func (b *Builder[T]) Back() *Set {
	return b.set
}

// Range is a convenience validator for numeric options: the value must
// satisfy min <= value <= max.
func Range[T int64 | float64](b *Builder[T], min, max T) *Builder[T] {
	return b.Validate(func(value T) error {
		if value < min || value > max {
			return &ParseError{
				Type:    ErrorTypeValidation,
				Message: "value out of range",
			}
		}
		return nil
	})
}

// Descriptor constructors

// String adds a string-valued option. The empty string is a legal value.
func (s *Set) String(name, description string) *Builder[string] {
	opt := s.add(&Option{Name: name, Description: description, Kind: KindString, takesValue: true})
	return &Builder[string]{opt: opt, set: s}
}

// Int adds a signed 64-bit integer option. Conversion is a strict
// whole-string decimal parse; overflow is a conversion error.
func (s *Set) Int(name, description string) *Builder[int64] {
	opt := s.add(&Option{Name: name, Description: description, Kind: KindInt, takesValue: true})
	return &Builder[int64]{opt: opt, set: s}
}

// Float adds a 64-bit floating point option.
func (s *Set) Float(name, description string) *Builder[float64] {
	opt := s.add(&Option{Name: name, Description: description, Kind: KindFloat, takesValue: true})
	return &Builder[float64]{opt: opt, set: s}
}

// Flag adds a boolean flag. Flags take no value: the "found" bit is the
// value, and a flag token must equal the option name exactly.
func (s *Set) Flag(name, description string) *Builder[bool] {
	opt := s.add(&Option{Name: name, Description: description, Kind: KindBool})
	return &Builder[bool]{opt: opt, set: s}
}

// File adds an option whose value names a file path. The file's contents
// are read eagerly at match time; an unreadable file is a conversion error.
func (s *Set) File(name, description string) *Builder[File] {
	opt := s.add(&Option{Name: name, Description: description, Kind: KindFile, takesValue: true})
	return &Builder[File]{opt: opt, set: s}
}

// EnumString adds a string option restricted to a fixed set of legal
// literals. A converted value outside the set is a value-not-allowed error.
func (s *Set) EnumString(name, description string, allowed ...string) *Builder[string] {
	opt := s.add(&Option{
		Name:           name,
		Description:    description,
		Kind:           KindValueSet,
		Elem:           KindString,
		AllowedStrings: allowed,
		takesValue:     true,
	})
	return &Builder[string]{opt: opt, set: s}
}

// EnumInt adds an integer option restricted to a fixed set of legal
// literals.
func (s *Set) EnumInt(name, description string, allowed ...int64) *Builder[int64] {
	opt := s.add(&Option{
		Name:        name,
		Description: description,
		Kind:        KindValueSet,
		Elem:        KindInt,
		AllowedInts: allowed,
		takesValue:  true,
	})
	return &Builder[int64]{opt: opt, set: s}
}

// Ref adds a reference option: in addition to its own value of kind elem,
// every match snapshots the current state of the named target options.
// Targets must be previously declared, non-reference options.
func (s *Set) Ref(name, description string, elem Kind, targets ...string) *Builder[Snapshot] {
	opt := s.add(&Option{
		Name:        name,
		Description: description,
		Kind:        KindRef,
		Elem:        elem,
		RefTargets:  targets,
		takesValue:  true,
	})
	return &Builder[Snapshot]{opt: opt, set: s}
}

// Callback adds a no-argument callback option. The function is invoked
// once per match with the session's user data; no value is stored and the
// option cannot be read back through the accessor layer.
func (s *Set) Callback(name, description string, fn CallbackFunc) *Builder[bool] {
	opt := s.add(&Option{Name: name, Description: description, Kind: KindCallback, callback: fn})
	return &Builder[bool]{opt: opt, set: s}
}

// CallbackArg adds a callback option that takes a value. The raw value
// text is passed to the function unconverted.
func (s *Set) CallbackArg(name, description string, fn CallbackArgFunc) *Builder[string] {
	opt := s.add(&Option{
		Name:        name,
		Description: description,
		Kind:        KindCallback,
		callbackArg: fn,
		takesValue:  true,
	})
	return &Builder[string]{opt: opt, set: s}
}

// HelpOption adds the built-in help option with the default help
// callback, which prints "Usage: <program> <help>" to the error stream
// and exits with status 1. The rendered text itself comes from Help.
func (s *Set) HelpOption() *Builder[bool] {
	return s.HelpFunc(nil)
}

// HelpFunc adds the built-in help option with a custom callback. The
// callback receives the program name and the rendered help text.
func (s *Set) HelpFunc(fn HelpCallback) *Builder[bool] {
	opt := s.add(&Option{
		Name:        "--help",
		Description: "Print this help information",
		Kind:        KindCallback,
		helpFn:      fn,
		isHelp:      true,
	})
	return &Builder[bool]{opt: opt, set: s}
}

// Options returns the declared options in declaration order. The returned
// slice is shared; callers must not modify it.
func (s *Set) Options() []*Option {
	return s.options
}
