//go:build windows

package store

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// System returns the store for the host platform, backed by the Windows
// registry. All keys are opened read-only.
func System() Store {
	return systemStore{}
}

type systemStore struct{}

func (systemStore) Open(hive Hive, path string) (Key, error) {
	k, err := registry.OpenKey(hiveRoot(hive), path, registry.READ)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v\\%s", ErrKeyNotFound, hive, path)
		}

		return nil, fmt.Errorf("opening %v\\%s: %w", hive, path, err)
	}

	return systemKey{key: k}, nil
}

func hiveRoot(hive Hive) registry.Key {
	if hive == LocalMachine {
		return registry.LOCAL_MACHINE
	}

	return registry.CURRENT_USER
}

type systemKey struct {
	key registry.Key
}

// Subkeys returns the child names the registry could enumerate; when
// enumeration stops early the partial listing is followed by one Subkey
// carrying the error.
func (k systemKey) Subkeys() []Subkey {
	names, err := k.key.ReadSubKeyNames(-1)

	subkeys := make([]Subkey, 0, len(names))
	for _, name := range names {
		subkeys = append(subkeys, Subkey{Name: name})
	}
	if err != nil {
		subkeys = append(subkeys, Subkey{Err: err})
	}

	return subkeys
}

func (k systemKey) DefaultValue() (string, error) {
	value, _, err := k.key.GetStringValue("")
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return "", fmt.Errorf("%w: (Default)", ErrValueNotFound)
		}

		return "", err
	}

	return value, nil
}

func (k systemKey) Close() error {
	return k.key.Close()
}
