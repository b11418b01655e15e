package optset

import "strings"

const (
	maxNameLen        = 256
	maxDescriptionLen = 512
)

// Validate checks the whole declaration surface and returns the first
// structural error found, or nil. Parse calls it implicitly; calling it
// directly lets declaration bugs surface in tests instead of at argv time.
func (s *Set) Validate() error {
	if s.compiled {
		return s.compileErr
	}
	err := s.validate()
	if err == nil {
		s.plan = buildPlan(s.options)
	}
	s.compileErr = err
	s.compiled = true
	return err
}

func (s *Set) validate() error {
	if len(s.options) == 0 {
		return errStructural("option set is empty")
	}

	seen := make(map[string]bool, len(s.options))
	multiplePositionals := 0

	for i, opt := range s.options {
		if opt.Name == "" {
			return errStructural("option %d has an empty name", i)
		}
		if len(opt.Name) > maxNameLen {
			return errStructural("option name %q exceeds %d characters", opt.Name, maxNameLen)
		}
		if len(opt.Description) > maxDescriptionLen {
			return errStructural("description of option %q exceeds %d characters", opt.Name, maxDescriptionLen)
		}
		if seen[opt.Name] {
			return errStructural("duplicate option name: %q", opt.Name)
		}
		seen[opt.Name] = true

		if opt.Multiple && opt.Overridable {
			return errStructural("option %q cannot be both multiple and overridable", opt.Name)
		}
		if opt.Kind == KindBool && opt.Required {
			return errStructural("flag %q cannot be required: its absence is the value false", opt.Name)
		}
		if opt.Multiple && (opt.Kind == KindBool || opt.Kind == KindCallback) {
			return errStructural("option %q cannot be multiple: %s options store no value list", opt.Name, opt.Kind)
		}
		if opt.Positional {
			switch opt.Kind {
			case KindBool:
				return errStructural("option %q cannot be positional: flags take no value", opt.Name)
			case KindCallback:
				return errStructural("option %q cannot be positional: callbacks take no slot", opt.Name)
			}
			if opt.Overridable {
				return errStructural("positional option %q cannot be overridable", opt.Name)
			}
			if opt.Multiple {
				multiplePositionals++
			}
		}
		if opt.Short && opt.Positional {
			return errStructural("option %q cannot be both short and positional", opt.Name)
		}

		if opt.Kind == KindValueSet {
			switch opt.Elem {
			case KindString:
				if len(opt.AllowedStrings) == 0 {
					return errStructural("option %q has an empty allowed value set", opt.Name)
				}
			case KindInt:
				if len(opt.AllowedInts) == 0 {
					return errStructural("option %q has an empty allowed value set", opt.Name)
				}
			default:
				return errStructural("option %q has unsupported value set element kind %q", opt.Name, opt.Elem)
			}
		}

		if opt.Kind == KindRef {
			switch opt.Elem {
			case KindString, KindInt, KindFloat, KindFile:
			default:
				return errStructural("reference option %q has unsupported value kind %q", opt.Name, opt.Elem)
			}
			if len(opt.RefTargets) == 0 {
				return errStructural("reference option %q names no targets", opt.Name)
			}
			for _, target := range opt.RefTargets {
				found := false
				for _, prior := range s.options[:i] {
					if prior.Name != target {
						continue
					}
					if prior.Kind == KindRef {
						return errStructural("reference option %q targets reference option %q", opt.Name, target)
					}
					if prior.Kind == KindCallback {
						return errStructural("reference option %q targets callback option %q", opt.Name, target)
					}
					found = true
					break
				}
				if !found {
					return errStructural("reference option %q targets undeclared option %q", opt.Name, target)
				}
			}
		}
	}

	if multiplePositionals > 1 {
		return errStructural("at most one positional option may be multiple")
	}

	// A short option consumes any token it prefixes, so a longer option
	// name starting with a short option's name would be unreachable.
	for _, short := range s.options {
		if !short.Short {
			continue
		}
		for _, other := range s.options {
			if other == short || other.Positional {
				continue
			}
			if strings.HasPrefix(other.Name, short.Name) {
				return errStructural("short option %q shadows option %q", short.Name, other.Name)
			}
		}
	}

	if s.stopLiteral != "" && seen[s.stopLiteral] {
		return errStructural("stop sentinel %q collides with an option name", s.stopLiteral)
	}

	return nil
}

// CheckNames reports whether every given name is declared on the set.
// It is a build-time assertion helper for accessor call sites.
func (s *Set) CheckNames(names ...string) bool {
	for _, name := range names {
		if _, ok := s.byName[name]; !ok {
			return false
		}
	}
	return true
}
