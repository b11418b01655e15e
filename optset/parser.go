package optset

import (
	"os"
	"strconv"
	"strings"

	"github.com/optkit/optset/internal/pool"
)

// session holds the mutable state of one parse run. Sessions are pooled;
// all per-run state must be reset in sessionReset.
type session struct {
	set      *Set
	argv     []string
	argi     int
	result   *Result
	handler  ErrorHandler
	userData any
	aborted  bool
}

var sessionPool = pool.NewWithReset(
	func() *session { return &session{} },
	func(ps *session) { *ps = session{} },
)

// Parse parses argv (including the program name at argv[0]) using the
// default error handler, which prints the error and the help text to the
// error stream and exits the process. The set is validated first; a
// structural error is returned without parsing.
func (s *Set) Parse(argv []string) (*Result, error) {
	program := ""
	if len(argv) > 0 {
		program = argv[0]
	}
	return s.ParseWithHandler(argv, s.defaultHandler(program), nil)
}

// ParseWithHandler parses argv with a custom error handler and optional
// user data, which is forwarded to callback options. The handler returns
// true to continue scanning after an error and false to abort the session;
// an aborted session skips the required-option check. A nil handler aborts
// on the first error.
//
// Each call runs an independent session, so a Set may be parsed any number
// of times, concurrently included, as long as its declarations are no
// longer being modified.
func (s *Set) ParseWithHandler(argv []string, handler ErrorHandler, userData any) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if handler == nil {
		handler = func(*ParseError) bool { return false }
	}

	ps := sessionPool.Get()
	defer sessionPool.Put(ps)
	ps.set = s
	ps.argv = argv
	ps.result = newResult(s)
	ps.handler = handler
	ps.userData = userData

	var firstErr *ParseError
	ps.handler = func(err *ParseError) bool {
		if firstErr == nil {
			firstErr = err
		}
		if s.logger != nil {
			s.logger.Warnf("parse error: %s", err.Error())
		}
		return handler(err)
	}

	ps.run()

	result := ps.result
	result.aborted = ps.aborted
	if firstErr != nil {
		return result, firstErr
	}
	return result, nil
}

// fail routes an error through the handler and records an abort when the
// handler declines to continue.
func (ps *session) fail(err *ParseError) {
	if !ps.handler(err) {
		ps.aborted = true
	}
}

func (ps *session) run() {
	s := ps.set

	for ps.argi = 1; ps.argi < len(ps.argv); ps.argi++ {
		token := ps.argv[ps.argi]

		if s.stopLiteral != "" && token == s.stopLiteral {
			// Scanning ends here; the required check below still runs.
			ps.result.unprocessed = append([]string{}, ps.argv[ps.argi+1:]...)
			if s.logger != nil {
				s.logger.Debugf("stop sentinel %q, %d tokens preserved", token, len(ps.result.unprocessed))
			}
			break
		}

		if !ps.handleRegular(token) && !ps.handlePositional(token) && !ps.aborted {
			ps.fail(s.unrecognized(token))
		}
		if ps.aborted {
			return
		}
	}

	ps.envFallback()
	if ps.aborted {
		return
	}

	for _, opt := range s.options {
		if opt.Required && !ps.result.found[opt.Name] {
			ps.fail(errMissingRequired(opt.Name))
			if ps.aborted {
				return
			}
		}
	}
}

// handleRegular tries to bind the token to a named option, in declaration
// order. It reports whether the token (and possibly its value token) was
// consumed.
func (ps *session) handleRegular(token string) bool {
	for _, opt := range ps.set.plan.regulars {
		if !strings.HasPrefix(token, opt.Name) {
			continue
		}
		if !opt.takesValue {
			// Flags and bare callbacks require the whole token.
			if token != opt.Name {
				continue
			}
			if ps.checkDuplicate(opt) {
				return true
			}
			ps.result.found[opt.Name] = true
			if ps.set.plan.shapeOf(opt.Name) == shapeFlag {
				ps.result.bools[opt.Name] = true
			}
			if opt.Kind == KindCallback {
				ps.invokeCallback(opt, token, "")
			}
			return true
		}

		// A value option matches directly when the name is the whole
		// token or is followed by '='; short options additionally bind
		// any inline remainder.
		var value string
		var haveValue bool
		switch {
		case len(token) == len(opt.Name):
			haveValue = false
		case token[len(opt.Name)] == '=':
			value, haveValue = token[len(opt.Name)+1:], true
		case opt.Short:
			value, haveValue = token[len(opt.Name):], true
		default:
			continue
		}

		if ps.checkDuplicate(opt) {
			return true
		}
		if !haveValue {
			ps.argi++
			if ps.argi >= len(ps.argv) {
				ps.fail(errMissingArgument(opt.Name))
				return true
			}
			value = ps.argv[ps.argi]
		}
		ps.dispatch(opt, value)
		return true
	}
	return false
}

// handlePositional offers the token to the first positional slot that is
// multiple or still unfilled, in declaration order.
func (ps *session) handlePositional(token string) bool {
	for _, opt := range ps.set.plan.positionals {
		if !opt.Multiple && ps.result.found[opt.Name] {
			continue
		}
		ps.dispatch(opt, token)
		return true
	}
	return false
}

// checkDuplicate reports a duplicate error for a repeated occurrence of a
// non-multiple, non-overridable option. The token counts as consumed
// either way.
func (ps *session) checkDuplicate(opt *Option) bool {
	if opt.Multiple || opt.Overridable || opt.Kind == KindCallback {
		return false
	}
	if !ps.result.found[opt.Name] {
		return false
	}
	ps.fail(errDuplicate(opt.Name))
	return true
}

// dispatch converts one value for an option and commits it into the slot
// the storage plan assigned. The option is marked found before
// conversion, so a value that fails to convert still counts as seen for
// duplicate and required purposes.
func (ps *session) dispatch(opt *Option, value string) {
	ps.result.found[opt.Name] = true
	if ps.set.logger != nil {
		ps.set.logger.Debugf("option %q value %q", opt.Name, value)
	}

	if opt.Kind == KindCallback {
		ps.invokeCallback(opt, opt.Name, value)
		return
	}

	converted, perr := convert(opt, value)
	if perr != nil {
		ps.fail(perr)
		return
	}

	if opt.Kind == KindValueSet && !allowed(opt, converted) {
		ps.fail(errValueNotAllowed(opt.Name, value))
		return
	}

	if perr := ps.runValidator(opt, converted); perr != nil {
		ps.fail(perr)
		return
	}

	switch ps.set.plan.shapeOf(opt.Name) {
	case shapeRef:
		ps.result.snapshots[opt.Name] = Snapshot{Value: converted, Refs: ps.capture(opt)}
	case shapeRefList:
		ps.result.snapshotLists[opt.Name] = append(
			ps.result.snapshotLists[opt.Name],
			Snapshot{Value: converted, Refs: ps.capture(opt)},
		)
	case shapeList:
		ps.storeList(opt, converted)
	default:
		ps.storeScalar(opt, converted)
	}
}

func (ps *session) invokeCallback(opt *Option, name, value string) {
	switch {
	case opt.isHelp:
		fn := opt.helpFn
		if fn == nil {
			fn = ps.set.defaultHelpCallback()
		}
		program := ""
		if len(ps.argv) > 0 {
			program = ps.argv[0]
		}
		fn(ps.userData, program, ps.set.Help())
	case opt.callbackArg != nil:
		opt.callbackArg(ps.userData, name, value)
	case opt.callback != nil:
		opt.callback(ps.userData, name)
	}
}

// convert applies the strict whole-string conversion for the option's
// value kind. The empty string is a valid string but never a valid number.
func convert(opt *Option, value string) (any, *ParseError) {
	switch opt.valueKind() {
	case KindString:
		return value, nil
	case KindInt:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, errConversion(opt.Name, value, "an integer")
		}
		return n, nil
	case KindFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, errConversion(opt.Name, value, "a number")
		}
		return f, nil
	case KindFile:
		f, err := readFile(value)
		if err != nil {
			return nil, errFileRead(opt.Name, value, err)
		}
		return f, nil
	default:
		return nil, &ParseError{Type: ErrorTypeInternal, Message: "unconvertible option kind", Option: opt.Name}
	}
}

func allowed(opt *Option, converted any) bool {
	switch opt.Elem {
	case KindInt:
		n := converted.(int64)
		for _, v := range opt.AllowedInts {
			if v == n {
				return true
			}
		}
	default:
		s := converted.(string)
		for _, v := range opt.AllowedStrings {
			if v == s {
				return true
			}
		}
	}
	return false
}

func (ps *session) runValidator(opt *Option, converted any) *ParseError {
	if opt.Validator == nil {
		return nil
	}
	var err error
	switch fn := opt.Validator.(type) {
	case func(string) error:
		err = fn(converted.(string))
	case func(int64) error:
		err = fn(converted.(int64))
	case func(float64) error:
		err = fn(converted.(float64))
	case func(File) error:
		err = fn(converted.(File))
	case func(Snapshot) error:
		err = fn(Snapshot{Value: converted})
	}
	if err != nil {
		return errValidation(opt.Name, err)
	}
	return nil
}

func (ps *session) storeList(opt *Option, converted any) {
	name := opt.Name
	r := ps.result
	switch v := converted.(type) {
	case string:
		r.stringLists[name] = append(r.stringLists[name], v)
	case int64:
		r.intLists[name] = append(r.intLists[name], v)
	case float64:
		r.floatLists[name] = append(r.floatLists[name], v)
	case File:
		r.fileLists[name] = append(r.fileLists[name], v)
	}
}

func (ps *session) storeScalar(opt *Option, converted any) {
	name := opt.Name
	r := ps.result
	switch v := converted.(type) {
	case string:
		r.strings[name] = v
	case int64:
		r.ints[name] = v
	case float64:
		r.floats[name] = v
	case File:
		r.files[name] = v
	}
}

// capture snapshots the current state of a reference option's targets.
// List values are copied so later occurrences of the targets cannot mutate
// the capture.
func (ps *session) capture(opt *Option) []Capture {
	r := ps.result
	caps := make([]Capture, 0, len(opt.RefTargets))
	for _, name := range opt.RefTargets {
		c := Capture{Name: name, Found: r.found[name]}
		if c.Found {
			target := ps.set.byName[name]
			switch {
			case target.Kind == KindBool:
				c.Value = true
			case target.Multiple:
				switch {
				case len(r.stringLists[name]) > 0:
					c.Value = append([]string{}, r.stringLists[name]...)
				case len(r.intLists[name]) > 0:
					c.Value = append([]int64{}, r.intLists[name]...)
				case len(r.floatLists[name]) > 0:
					c.Value = append([]float64{}, r.floatLists[name]...)
				case len(r.fileLists[name]) > 0:
					c.Value = append([]File{}, r.fileLists[name]...)
				}
			default:
				switch target.valueKind() {
				case KindString:
					c.Value = r.strings[name]
				case KindInt:
					c.Value = r.ints[name]
				case KindFloat:
					c.Value = r.floats[name]
				case KindFile:
					c.Value = r.files[name]
				}
			}
		}
		caps = append(caps, c)
	}
	return caps
}

// envFallback fills options that were not found on the command line from
// their bound environment variables, first set variable wins. Values go
// through the same conversion and validation as command-line values.
func (ps *session) envFallback() {
	for _, opt := range ps.set.options {
		if len(opt.EnvVars) == 0 || ps.result.found[opt.Name] {
			continue
		}
		for _, env := range opt.EnvVars {
			value, ok := os.LookupEnv(env)
			if !ok {
				continue
			}
			if ps.set.logger != nil {
				ps.set.logger.Debugf("option %q from env %s", opt.Name, env)
			}
			if ps.set.plan.shapeOf(opt.Name) == shapeFlag {
				ps.result.found[opt.Name] = true
				ps.result.bools[opt.Name] = true
			} else if opt.takesValue && opt.Kind != KindCallback {
				ps.dispatch(opt, value)
			}
			break
		}
		if ps.aborted {
			return
		}
	}
}
