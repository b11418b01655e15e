package optset

import (
	"sort"
	"strconv"
	"strings"

	"github.com/optkit/optset/internal/pool"
)

var helpBuffers = pool.NewBufferPool(1 << 16)

// Help renders the help text for the declared options. The text is pure
// and deterministic: a usage line listing positional arguments in
// declaration order, an Arguments section, an Options section, and a
// values section for enum options, all sorted by name with aligned
// description columns.
//
// The usage line does not include the program name; callers prepend it.
func (s *Set) Help() string {
	b := helpBuffers.Get()
	defer helpBuffers.Put(b)

	positionals := make([]*Option, 0, len(s.options))
	regulars := make([]*Option, 0, len(s.options))
	valueSets := make([]*Option, 0)
	for _, opt := range s.options {
		if opt.Positional {
			positionals = append(positionals, opt)
		} else {
			regulars = append(regulars, opt)
		}
		if opt.Kind == KindValueSet {
			valueSets = append(valueSets, opt)
		}
	}

	// Usage line: positionals in declaration order, optional ones
	// bracketed.
	for _, opt := range positionals {
		if !opt.Required {
			b.WriteString("[")
		}
		b.WriteString("<")
		b.WriteString(opt.Name)
		b.WriteString(">")
		if !opt.Required {
			b.WriteString("]")
		}
		b.WriteString(" ")
	}
	b.WriteString("[options]\n")

	// Column width: widest rendered name-plus-type cell. Positionals are
	// wrapped in <> and typed options carry " : type".
	maxLen := 0
	maxValuesName := 0
	for _, opt := range s.options {
		n := len(opt.Name)
		if opt.Kind == KindValueSet && n > maxValuesName {
			maxValuesName = n
		}
		if printsType(opt) {
			n += len(typeName(opt)) + 3
			if opt.Positional {
				n += 2
			}
		} else if opt.Positional {
			n += 2
		}
		if n > maxLen {
			maxLen = n
		}
	}

	appendRow := func(opt *Option) {
		b.WriteString("    ")
		cell := opt.Name
		if opt.Positional {
			cell = "<" + opt.Name + ">"
		}
		if printsType(opt) {
			cell += " : " + typeName(opt)
		}
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", maxLen-len(cell)))
		b.WriteString("  ")
		b.WriteString(opt.Description)
		b.WriteString("\n")
	}

	if len(positionals) > 0 {
		b.WriteString("\nArguments:\n")
		for _, opt := range sortedByName(positionals) {
			appendRow(opt)
		}
		b.WriteString("\n")
	}

	b.WriteString("Options:\n")
	for _, opt := range sortedByName(regulars) {
		appendRow(opt)
	}

	if len(valueSets) > 0 {
		b.WriteString("\nSupported option values:\n")
		for _, opt := range sortedByName(valueSets) {
			b.WriteString("    ")
			b.WriteString(opt.Name)
			b.WriteString(":")
			b.WriteString(strings.Repeat(" ", maxValuesName-len(opt.Name)+1))
			b.WriteString(allowedValues(opt))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// printsType reports whether the option's help row carries a type name.
// The builtin help option takes no argument and prints bare.
func printsType(opt *Option) bool {
	return opt.takesValue && !opt.isHelp
}

func typeName(opt *Option) string {
	var base string
	switch opt.valueKind() {
	case KindString:
		base = "string"
	case KindBool:
		base = "bool"
	case KindInt, KindFloat:
		base = "number"
	case KindFile:
		base = "file"
	case KindCallback:
		base = "arg"
	default:
		base = "arg"
	}
	if opt.Kind == KindCallback {
		base = "arg"
	}
	if opt.Multiple {
		base += "s"
	}
	return base
}

func allowedValues(opt *Option) string {
	var parts []string
	switch opt.Elem {
	case KindInt:
		parts = make([]string, len(opt.AllowedInts))
		for i, v := range opt.AllowedInts {
			parts[i] = strconv.FormatInt(v, 10)
		}
	default:
		parts = opt.AllowedStrings
	}
	return strings.Join(parts, ", ")
}

func sortedByName(options []*Option) []*Option {
	out := make([]*Option, len(options))
	copy(out, options)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
