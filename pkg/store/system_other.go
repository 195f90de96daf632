//go:build !windows

package store

// System returns the store for the host platform. Python installations
// are only registered on Windows, so on other platforms every Open
// fails with ErrUnsupported.
func System() Store {
	return unsupportedStore{}
}

type unsupportedStore struct{}

func (unsupportedStore) Open(Hive, string) (Key, error) {
	return nil, ErrUnsupported
}
