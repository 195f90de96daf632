package store

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Memory is an in-memory Store. The zero value is empty and ready to
// use. Mutators exist for test setup and are not safe to call
// concurrently with reads; a populated store is safe for concurrent
// readers.
type Memory struct {
	roots map[Hive]*memoryKey
}

type memoryKey struct {
	defaultValue    string
	hasDefaultValue bool
	children        map[string]*memoryKey // keyed by lowercased name
	names           map[string]string     // lowercased name to stored name
	enumErrs        []error
}

func newMemoryKey() *memoryKey {
	return &memoryKey{
		children: make(map[string]*memoryKey),
		names:    make(map[string]string),
	}
}

// CreateKey ensures a key exists at path, creating intermediate keys as
// needed.
func (m *Memory) CreateKey(hive Hive, path string) {
	m.ensure(hive, path)
}

// SetDefaultValue sets the unnamed value of the key at path, creating
// the key and any intermediate keys as needed.
func (m *Memory) SetDefaultValue(hive Hive, path, value string) {
	k := m.ensure(hive, path)
	k.defaultValue = value
	k.hasDefaultValue = true
}

// AddEnumerationError makes Subkeys on the key at path report err as a
// per-child outcome alongside the key's real children.
func (m *Memory) AddEnumerationError(hive Hive, path string, err error) {
	k := m.ensure(hive, path)
	k.enumErrs = append(k.enumErrs, err)
}

func (m *Memory) ensure(hive Hive, path string) *memoryKey {
	if m.roots == nil {
		m.roots = make(map[Hive]*memoryKey)
	}

	k, ok := m.roots[hive]
	if !ok {
		k = newMemoryKey()
		m.roots[hive] = k
	}

	for _, segment := range splitPath(path) {
		lower := strings.ToLower(segment)

		child, ok := k.children[lower]
		if !ok {
			child = newMemoryKey()
			k.children[lower] = child
			k.names[lower] = segment
		}
		k = child
	}

	return k
}

// Open implements Store.
func (m *Memory) Open(hive Hive, path string) (Key, error) {
	k := m.roots[hive]
	if k == nil {
		return nil, fmt.Errorf("%w: %v\\%s", ErrKeyNotFound, hive, path)
	}

	for _, segment := range splitPath(path) {
		k = k.children[strings.ToLower(segment)]
		if k == nil {
			return nil, fmt.Errorf("%w: %v\\%s", ErrKeyNotFound, hive, path)
		}
	}

	return &memoryHandle{key: k, hive: hive, path: path}, nil
}

func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '\\' })
}

type memoryHandle struct {
	key  *memoryKey
	hive Hive
	path string
}

// Subkeys returns the key's children sorted by name, followed by any
// injected enumeration errors.
func (h *memoryHandle) Subkeys() []Subkey {
	lowers := slices.Sorted(maps.Keys(h.key.children))

	subkeys := make([]Subkey, 0, len(lowers)+len(h.key.enumErrs))
	for _, lower := range lowers {
		subkeys = append(subkeys, Subkey{Name: h.key.names[lower]})
	}
	for _, err := range h.key.enumErrs {
		subkeys = append(subkeys, Subkey{Err: err})
	}

	return subkeys
}

func (h *memoryHandle) DefaultValue() (string, error) {
	if !h.key.hasDefaultValue {
		return "", fmt.Errorf("%w: %v\\%s", ErrValueNotFound, h.hive, h.path)
	}

	return h.key.defaultValue, nil
}

func (h *memoryHandle) Close() error {
	return nil
}
