package vessels

import "strings"

// Registry is an immutable lookup set of allowed vessel names. Construction
// normalizes every entry; after that there is no mutation path, so the set is
// safe for arbitrarily many concurrent readers without locking.
type Registry struct {
	names map[string]struct{}
}

// New builds a registry from an ordered list of names. Entries are
// normalized, blanks are dropped, and duplicates keep their first occurrence.
func New(names []string) *Registry {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		n := Normalize(name)
		if n == "" {
			continue
		}
		if _, ok := set[n]; ok {
			continue
		}
		set[n] = struct{}{}
	}
	return &Registry{names: set}
}

// Normalize upper-cases a name and collapses whitespace runs so lookups are
// case and spacing insensitive.
func Normalize(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), " "))
}

// Contains reports whether the normalized name is registered. An empty
// registry rejects every name (fail closed).
func (r *Registry) Contains(name string) bool {
	_, ok := r.names[Normalize(name)]
	return ok
}

// Size returns the number of registered names.
func (r *Registry) Size() int { return len(r.names) }

// IsEmpty reports whether the registry holds no names, which is the visible
// marker of degraded mode.
func (r *Registry) IsEmpty() bool { return len(r.names) == 0 }
