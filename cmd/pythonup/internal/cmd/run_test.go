package cmd_test

import (
	"fmt"
	"testing"

	"github.com/uranusjr/pythonup/cmd/pythonup/internal/testcmd"
	"github.com/uranusjr/pythonup/pkg/store"
)

// unsupportedStore fails every lookup the way the system store does on
// platforms without a registry.
type unsupportedStore struct{}

func (unsupportedStore) Open(store.Hive, string) (store.Key, error) {
	return nil, fmt.Errorf("opening the registry: %w", store.ErrUnsupported)
}

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []testcmd.Case{
		{
			Name: "version",
			Args: []string{"", "--version"},
			Exit: 0,
		},
		{
			Name: "unknown arguments go to the default command",
			Args: []string{"", "frobnicate"},
			Exit: 127,
		},
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			t.Parallel()

			testcmd.RunAndMatchSnapshots(t, tt)
		})
	}
}

func TestRun_UnsupportedPlatform(t *testing.T) {
	t.Parallel()

	tests := []testcmd.Case{
		{
			Name:  "which surfaces the platform error",
			Args:  []string{"", "which", "3"},
			Exit:  2,
			Store: unsupportedStore{},
		},
		{
			Name:  "list surfaces the platform error",
			Args:  []string{"", "list"},
			Exit:  2,
			Store: unsupportedStore{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			t.Parallel()

			testcmd.RunAndMatchSnapshots(t, tt)
		})
	}
}
