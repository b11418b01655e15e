// Package intern canonicalizes repeated strings. Option names and allowed
// enum values recur in every help rendering, result map, and error
// message; interning them keeps comparisons on canonical instances.
package intern

import "sync"

// Interner is a thread-safe string intern table.
type Interner struct {
	mu      sync.RWMutex
	strings map[string]string
}

// NewInterner creates an intern table with the given initial capacity.
func NewInterner(capacity int) *Interner {
	if capacity <= 0 {
		capacity = 32
	}
	return &Interner{strings: make(map[string]string, capacity)}
}

// Intern returns the canonical instance of s, storing it on first sight.
func (in *Interner) Intern(s string) string {
	in.mu.RLock()
	canonical, ok := in.strings[s]
	in.mu.RUnlock()
	if ok {
		return canonical
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	if canonical, ok := in.strings[s]; ok {
		return canonical
	}
	in.strings[s] = s
	return s
}

// Len returns the number of interned strings.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.strings)
}

var defaultInterner = NewInterner(64)

// Intern interns s in the package-level table.
func Intern(s string) string {
	return defaultInterner.Intern(s)
}
