package optset

// Storage planning. A validated set is compiled into a plan that assigns
// each value-bearing option a slot shape and splits the declaration order
// into named options and positional slots. Callbacks and the stop sentinel
// get no storage.

type shape int

const (
	shapeNone shape = iota
	shapeFlag
	shapeScalar
	shapeList
	shapeRef
	shapeRefList
)

type slotPlan struct {
	opt   *Option
	shape shape
}

type plan struct {
	slots       []slotPlan
	byName      map[string]int
	positionals []*Option
	regulars    []*Option
}

func buildPlan(options []*Option) *plan {
	p := &plan{byName: make(map[string]int, len(options))}
	for _, opt := range options {
		sh := shapeFor(opt)
		if sh != shapeNone {
			p.byName[opt.Name] = len(p.slots)
			p.slots = append(p.slots, slotPlan{opt: opt, shape: sh})
		}
		if opt.Positional {
			p.positionals = append(p.positionals, opt)
		} else {
			p.regulars = append(p.regulars, opt)
		}
	}
	return p
}

// shapeOf returns the storage shape planned for the named option.
// Callbacks and undeclared names have no storage and map to shapeNone.
func (p *plan) shapeOf(name string) shape {
	if idx, ok := p.byName[name]; ok {
		return p.slots[idx].shape
	}
	return shapeNone
}

func shapeFor(opt *Option) shape {
	switch opt.Kind {
	case KindCallback:
		return shapeNone
	case KindBool:
		return shapeFlag
	case KindRef:
		if opt.Multiple {
			return shapeRefList
		}
		return shapeRef
	default:
		if opt.Multiple {
			return shapeList
		}
		return shapeScalar
	}
}

// Capture records the state of one reference target at match time: whether
// the target had been found and, if value-bearing, its value at that
// moment. Multiple targets are deep-copied so later matches cannot mutate
// earlier captures.
type Capture struct {
	Name  string
	Found bool
	Value any
}

// Snapshot is the stored value of a reference option: the reference's own
// converted value plus the captures of its targets in declaration order.
type Snapshot struct {
	Value any
	Refs  []Capture
}

// Equal reports deep equality of two snapshots. Values compare by type
// then by content; list values compare element-wise.
func (s Snapshot) Equal(other Snapshot) bool {
	if !valueEqual(s.Value, other.Value) {
		return false
	}
	if len(s.Refs) != len(other.Refs) {
		return false
	}
	for i := range s.Refs {
		a, b := s.Refs[i], other.Refs[i]
		if a.Name != b.Name || a.Found != b.Found || !valueEqual(a.Value, b.Value) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case File:
		bv, ok := b.(File)
		return ok && av.Path == bv.Path && string(av.Contents) == string(bv.Contents)
	case []string:
		bv, ok := b.([]string)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	case []int64:
		bv, ok := b.([]int64)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	case []float64:
		bv, ok := b.([]float64)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	case []File:
		bv, ok := b.([]File)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valueEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
