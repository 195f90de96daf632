// Package tag implements the version tags that identify Python
// installations in the Windows registry, as described by PEP 514.
//
// A tag names some or all of an installation's version and architecture:
// "3" is any Python 3, "3.7" is any Python 3.7, and "3.7-32" is exactly
// 32-bit Python 3.7. Components a tag omits act as wildcards when the
// tag is used as a query.
package tag

import (
	"cmp"
	"strconv"
	"strings"
)

// Architecture is the CPU architecture of a Python build.
type Architecture int

const (
	// ArchUnspecified is the zero value, for tags that do not pin an
	// architecture.
	ArchUnspecified Architecture = iota
	Arch32
	Arch64
)

// String returns "32" or "64", or an empty string for ArchUnspecified.
func (a Architecture) String() string {
	switch a {
	case Arch32:
		return "32"
	case Arch64:
		return "64"
	default:
		return ""
	}
}

// A Tag identifies Python installations by version and architecture.
// Tags are immutable values, comparable with == and usable as map keys.
// The zero Tag has no components set and contains every other tag.
type Tag struct {
	major    int
	minor    int
	arch     Architecture
	hasMajor bool
	hasMinor bool
}

// New returns a tag matching any installation of the given major version.
func New(major int) Tag {
	return Tag{major: major, hasMajor: true}
}

// NewWithMinor returns a tag matching any installation of the given
// major.minor version.
func NewWithMinor(major, minor int) Tag {
	return Tag{major: major, hasMajor: true, minor: minor, hasMinor: true}
}

// WithArchitecture returns a copy of t pinned to the given architecture.
func (t Tag) WithArchitecture(arch Architecture) Tag {
	t.arch = arch

	return t
}

// Major returns the major version component, and whether it is present.
func (t Tag) Major() (int, bool) {
	return t.major, t.hasMajor
}

// Minor returns the minor version component, and whether it is present.
// A tag never has a minor component without a major one.
func (t Tag) Minor() (int, bool) {
	return t.minor, t.hasMinor
}

// Architecture returns the architecture component, which is
// ArchUnspecified when the tag does not pin one.
func (t Tag) Architecture() Architecture {
	return t.arch
}

// IsZero reports whether no component of t is set.
func (t Tag) IsZero() bool {
	return t == Tag{}
}

// String renders t in the form accepted by Parse: "3", "3.7", "3.7-32".
// The zero tag renders as an empty string.
func (t Tag) String() string {
	var sb strings.Builder

	if t.hasMajor {
		sb.WriteString(strconv.Itoa(t.major))

		if t.hasMinor {
			sb.WriteByte('.')
			sb.WriteString(strconv.Itoa(t.minor))
		}
	}

	if t.arch != ArchUnspecified {
		sb.WriteByte('-')
		sb.WriteString(t.arch.String())
	}

	return sb.String()
}

// Compares two optional non-negative integers, with absent values
// ordering before any present value.
func compareOptional(a int, aSet bool, b int, bSet bool) int {
	switch {
	case !aSet && !bSet:
		return +0
	case !aSet:
		return -1
	case !bSet:
		return +1
	default:
		return cmp.Compare(a, b)
	}
}

// Compares the major version component.
func (t Tag) compareMajor(w Tag) int {
	return compareOptional(t.major, t.hasMajor, w.major, w.hasMajor)
}

// Compares the minor version component, so "3" orders before "3.0".
func (t Tag) compareMinor(w Tag) int {
	return compareOptional(t.minor, t.hasMinor, w.minor, w.hasMinor)
}

// Compares the architecture component: unspecified, then 32-bit, then
// 64-bit.
func (t Tag) compareArch(w Tag) int {
	return cmp.Compare(t.arch, w.arch)
}

// Compare returns the sort order of w relative to t, ordering by major
// version, then minor version, then architecture.
//
// The result will be 0 if t == w, -1 if t < w, or +1 if t > w.
func (t Tag) Compare(w Tag) int {
	if majorDiff := t.compareMajor(w); majorDiff != 0 {
		return majorDiff
	}
	if minorDiff := t.compareMinor(w); minorDiff != 0 {
		return minorDiff
	}

	return t.compareArch(w)
}

// Less reports whether t orders before w.
func (t Tag) Less(w Tag) bool {
	return t.Compare(w) < 0
}

// Contains reports whether w falls within t, treating t as a pattern
// whose absent components match anything. Every tag contains itself and
// the zero tag contains every tag. Contains is not symmetric: "3"
// contains "3.7-64", but not the reverse.
func (t Tag) Contains(w Tag) bool {
	if t.hasMajor && (!w.hasMajor || t.major != w.major) {
		return false
	}
	if t.hasMinor && (!w.hasMinor || t.minor != w.minor) {
		return false
	}

	return t.arch == ArchUnspecified || t.arch == w.arch
}
