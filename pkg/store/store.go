// Package store abstracts the hierarchical key-value store that Python
// installations are registered in. On Windows the concrete store is the
// registry; everything above it is written against the Store interface
// so lookups can run against an in-memory implementation in tests.
package store

import "errors"

// Hive is the root a key path is resolved under.
type Hive int

const (
	CurrentUser Hive = iota
	LocalMachine
)

// String returns the registry spelling of the hive.
func (h Hive) String() string {
	switch h {
	case CurrentUser:
		return "HKEY_CURRENT_USER"
	case LocalMachine:
		return "HKEY_LOCAL_MACHINE"
	default:
		return "HKEY_UNKNOWN"
	}
}

var (
	// ErrKeyNotFound is returned by Open when no key exists at the
	// given path.
	ErrKeyNotFound = errors.New("key not found")

	// ErrValueNotFound is returned by DefaultValue when the key has no
	// unnamed value.
	ErrValueNotFound = errors.New("value not found")

	// ErrUnsupported is returned by every Open on a store that cannot
	// work on the current platform.
	ErrUnsupported = errors.New("store is not supported on this platform")
)

// Store provides read access to a hierarchy of keys. Paths are
// backslash-separated and matched case-insensitively, like registry key
// paths. Implementations must be safe for concurrent readers.
type Store interface {
	// Open returns a handle to the key at path under hive. The error
	// wraps ErrKeyNotFound when the path does not exist; any other
	// error is an access failure. The caller must Close the handle.
	Open(hive Hive, path string) (Key, error)
}

// Key is an open handle to one key in the hierarchy.
type Key interface {
	// Subkeys enumerates the key's direct children. A child that
	// cannot be read is reported as a Subkey with a non-nil Err, and
	// never aborts enumeration of its siblings.
	Subkeys() []Subkey

	// DefaultValue returns the key's unnamed string value. The error
	// wraps ErrValueNotFound when the key has no such value.
	DefaultValue() (string, error)

	Close() error
}

// Subkey is the enumeration outcome for one child of a key: a name, or
// the error that kept the child from being listed.
type Subkey struct {
	Name string
	Err  error
}
