package testcmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/uranusjr/pythonup/cmd/pythonup/internal/cmd"
	"github.com/uranusjr/pythonup/internal/testutility"
	"github.com/uranusjr/pythonup/pkg/store"
	"github.com/urfave/cli/v3"
)

// CommandsUnderTest should be set in TestMain by every cmd package test
var CommandsUnderTest []cmd.CommandBuilder

// fetchCommandsToTest returns the commands that should be tested, ensuring that
// the default "which" command is included to avoid a panic
func fetchCommandsToTest() []cmd.CommandBuilder {
	for _, builder := range CommandsUnderTest {
		command := builder(nil, nil, nil)

		if command.Name == "which" {
			return CommandsUnderTest
		}
	}

	return append(CommandsUnderTest, func(_, _ io.Writer, _ store.Store) *cli.Command {
		return &cli.Command{
			Name: "which",
			Action: func(_ context.Context, _ *cli.Command) error {
				return errors.New("<this test is unexpectedly calling the default which command>")
			},
		}
	})
}

func run(t *testing.T, tc Case) (string, string) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	st := tc.Store
	if st == nil {
		st = &store.Memory{}
	}

	ec := cmd.Run(tc.Args, stdout, stderr, st, fetchCommandsToTest())

	if ec != tc.Exit {
		t.Errorf("cli exited with code %d, not %d", ec, tc.Exit)
	}

	return stdout.String(), stderr.String()
}

// RunAndMatchSnapshots runs the command under test and matches both its
// stdout and stderr against their snapshots.
func RunAndMatchSnapshots(t *testing.T, tc Case) {
	t.Helper()

	stdout, stderr := run(t, tc)

	testutility.MatchText(t, stdout)
	testutility.MatchText(t, stderr)
}
