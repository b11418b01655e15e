package optset

import "fmt"

// Result holds the outcome of one parse session. Values are stored in
// typed maps keyed by option name; accessors return the zero value and
// false for options that were not found or whose kind does not match the
// accessor. Asking for a name that was never declared is a programming
// error and panics.
type Result struct {
	set *Set

	found map[string]bool

	strings map[string]string
	ints    map[string]int64
	floats  map[string]float64
	bools   map[string]bool
	files   map[string]File

	stringLists map[string][]string
	intLists    map[string][]int64
	floatLists  map[string][]float64
	fileLists   map[string][]File

	snapshots     map[string]Snapshot
	snapshotLists map[string][]Snapshot

	unprocessed []string
	aborted     bool
}

func newResult(s *Set) *Result {
	return &Result{
		set:           s,
		found:         make(map[string]bool),
		strings:       make(map[string]string),
		ints:          make(map[string]int64),
		floats:        make(map[string]float64),
		bools:         make(map[string]bool),
		files:         make(map[string]File),
		stringLists:   make(map[string][]string),
		intLists:      make(map[string][]int64),
		floatLists:    make(map[string][]float64),
		fileLists:     make(map[string][]File),
		snapshots:     make(map[string]Snapshot),
		snapshotLists: make(map[string][]Snapshot),
	}
}

// check panics unless name is a declared option the storage plan gave a
// slot. Accessing callbacks or undeclared names is a bug at the call
// site, not a runtime condition.
func (r *Result) check(name string) *Option {
	opt, ok := r.set.byName[name]
	if !ok {
		panic(fmt.Sprintf("optset: access to undeclared option %q", name))
	}
	if r.set.plan.shapeOf(name) == shapeNone {
		panic(fmt.Sprintf("optset: option %q is a callback and stores no value", name))
	}
	return opt
}

// Has reports whether the named option was found during the session,
// either on the command line or through an environment variable.
func (r *Result) Has(name string) bool {
	r.check(name)
	return r.found[name]
}

// Aborted reports whether the session was stopped early by an error
// handler returning false.
func (r *Result) Aborted() bool {
	return r.aborted
}

// Unprocessed returns the argv tail preserved by the stop sentinel, in
// original order, sentinel excluded. Nil when the sentinel never matched.
func (r *Result) Unprocessed() []string {
	return r.unprocessed
}

// GetString returns the value of a string option and whether it was found.
func (r *Result) GetString(name string) (string, bool) {
	r.check(name)
	v, ok := r.strings[name]
	return v, ok
}

// MustGetString returns the value of a string option, or def when absent.
func (r *Result) MustGetString(name, def string) string {
	if v, ok := r.GetString(name); ok {
		return v
	}
	return def
}

// GetInt returns the value of an integer option and whether it was found.
func (r *Result) GetInt(name string) (int64, bool) {
	r.check(name)
	v, ok := r.ints[name]
	return v, ok
}

// MustGetInt returns the value of an integer option, or def when absent.
func (r *Result) MustGetInt(name string, def int64) int64 {
	if v, ok := r.GetInt(name); ok {
		return v
	}
	return def
}

// GetFloat returns the value of a float option and whether it was found.
func (r *Result) GetFloat(name string) (float64, bool) {
	r.check(name)
	v, ok := r.floats[name]
	return v, ok
}

// MustGetFloat returns the value of a float option, or def when absent.
func (r *Result) MustGetFloat(name string, def float64) float64 {
	if v, ok := r.GetFloat(name); ok {
		return v
	}
	return def
}

// GetBool returns whether a flag was set. For flags the found bit is the
// value, so absence is simply false.
func (r *Result) GetBool(name string) bool {
	r.check(name)
	return r.bools[name]
}

// GetFile returns the value of a file option and whether it was found.
func (r *Result) GetFile(name string) (File, bool) {
	r.check(name)
	v, ok := r.files[name]
	return v, ok
}

// MustGetFile returns the value of a file option, or def when absent.
func (r *Result) MustGetFile(name string, def File) File {
	if v, ok := r.GetFile(name); ok {
		return v
	}
	return def
}

// GetStringSlice returns the accumulated values of a multiple string
// option in encounter order. Nil when the option was never matched.
func (r *Result) GetStringSlice(name string) []string {
	r.check(name)
	return r.stringLists[name]
}

// GetIntSlice returns the accumulated values of a multiple integer option.
func (r *Result) GetIntSlice(name string) []int64 {
	r.check(name)
	return r.intLists[name]
}

// GetFloatSlice returns the accumulated values of a multiple float option.
func (r *Result) GetFloatSlice(name string) []float64 {
	r.check(name)
	return r.floatLists[name]
}

// GetFileSlice returns the accumulated values of a multiple file option.
func (r *Result) GetFileSlice(name string) []File {
	r.check(name)
	return r.fileLists[name]
}

// GetSnapshot returns the value of a reference option and whether it was
// found.
func (r *Result) GetSnapshot(name string) (Snapshot, bool) {
	r.check(name)
	v, ok := r.snapshots[name]
	return v, ok
}

// GetSnapshotSlice returns the accumulated snapshots of a multiple
// reference option in encounter order.
func (r *Result) GetSnapshotSlice(name string) []Snapshot {
	r.check(name)
	return r.snapshotLists[name]
}
