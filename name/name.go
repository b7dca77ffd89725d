// Package name implements qualified, dot-separated identifiers used
// throughout the kernel term language (constants, namespaces, aliases).
package name

import "strings"

// Name is a qualified identifier, e.g. "n.m.f". The anonymous name is "".
type Name struct {
	parts []string
}

// Anonymous is the empty qualified name, the root of all namespaces.
var Anonymous = Name{}

// New builds a Name from dot-separated segments.
func New(segments ...string) Name {
	if len(segments) == 0 {
		return Anonymous
	}
	parts := make([]string, len(segments))
	copy(parts, segments)
	return Name{parts: parts}
}

// Parse splits a dotted string like "n.m.f" into a Name.
func Parse(s string) Name {
	if s == "" {
		return Anonymous
	}
	return New(strings.Split(s, ".")...)
}

// String renders the fully-qualified dotted form.
func (n Name) String() string {
	return strings.Join(n.parts, ".")
}

// IsAnonymous reports whether n has no segments.
func (n Name) IsAnonymous() bool {
	return len(n.parts) == 0
}

// Append returns n with segment appended, e.g. n.m . f -> n.m.f.
func (n Name) Append(segment string) Name {
	parts := make([]string, len(n.parts)+1)
	copy(parts, n.parts)
	parts[len(n.parts)] = segment
	return Name{parts: parts}
}

// Equal reports structural equality.
func (n Name) Equal(o Name) bool {
	if len(n.parts) != len(o.parts) {
		return false
	}
	for i, p := range n.parts {
		if p != o.parts[i] {
			return false
		}
	}
	return true
}

// IsPrefixOf reports whether n is a (possibly non-proper) prefix namespace of o,
// i.e. o == n ++ rest for some rest.
func (n Name) IsPrefixOf(o Name) bool {
	if len(n.parts) > len(o.parts) {
		return false
	}
	for i, p := range n.parts {
		if p != o.parts[i] {
			return false
		}
	}
	return true
}

// StripPrefix removes n as a leading namespace from o, returning the
// residual Name and whether n was in fact a prefix of o.
func (n Name) StripPrefix(o Name) (Name, bool) {
	if !n.IsPrefixOf(o) {
		return Anonymous, false
	}
	return Name{parts: append([]string(nil), o.parts[len(n.parts):]...)}, true
}

// Last returns the final segment, or "" for the anonymous name.
func (n Name) Last() string {
	if len(n.parts) == 0 {
		return ""
	}
	return n.parts[len(n.parts)-1]
}

// NumParts returns the number of dotted segments.
func (n Name) NumParts() int {
	return len(n.parts)
}
