package tag

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/uranusjr/pythonup/internal/cachedregexp"
)

// ErrInvalidTag is returned by Parse when a string is not a well-formed
// version tag.
var ErrInvalidTag = errors.New("invalid version tag")

// Parse converts strings like "3", "3.7", and "3.7-32" into tags.
//
// Every component present must be exact: version numbers are canonical
// decimal with no leading zeros, and the architecture suffix is "-32" or
// "-64". Anything else, including empty strings and bare architecture
// suffixes, is rejected. Components a string omits are left unset on the
// returned tag rather than defaulted, so Parse("3").Minor() reports
// absence instead of zero.
func Parse(str string) (Tag, error) {
	match := cachedregexp.MustCompile(`^(0|[1-9]\d*)(?:\.(0|[1-9]\d*))?(?:-(32|64))?$`).FindStringSubmatch(str)

	if match == nil {
		return Tag{}, fmt.Errorf("%w %q", ErrInvalidTag, str)
	}

	var t Tag
	var err error

	if t.major, err = strconv.Atoi(match[1]); err != nil {
		return Tag{}, fmt.Errorf("%w %q: %v", ErrInvalidTag, str, err)
	}
	t.hasMajor = true

	if match[2] != "" {
		if t.minor, err = strconv.Atoi(match[2]); err != nil {
			return Tag{}, fmt.Errorf("%w %q: %v", ErrInvalidTag, str, err)
		}
		t.hasMinor = true
	}

	switch match[3] {
	case "32":
		t.arch = Arch32
	case "64":
		t.arch = Arch64
	}

	return t, nil
}

// MustParse is like Parse but panics if the string is not a valid tag.
func MustParse(str string) Tag {
	t, err := Parse(str)

	if err != nil {
		panic(err)
	}

	return t
}

// ParseArchitecture converts "32" or "64" into an Architecture.
func ParseArchitecture(str string) (Architecture, error) {
	switch str {
	case "32":
		return Arch32, nil
	case "64":
		return Arch64, nil
	default:
		return ArchUnspecified, fmt.Errorf("invalid architecture %q - must be one of: 32, 64", str)
	}
}
