package cmd

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/uranusjr/pythonup/internal/testutility"
	"github.com/urfave/cli/v3"
)

func Test_insertDefaultCommand(t *testing.T) {
	t.Parallel()

	commands := []*cli.Command{
		{Name: "which"},
		{Name: "helpers.go"},
		{Name: "list"},
	}
	defaultCommand := "which"

	tests := []struct {
		originalArgs []string
		wantArgs     []string
	}{
		// test when the default command is specified
		{
			originalArgs: []string{"", "which", "3"},
			wantArgs:     []string{"", "which", "3"},
		},
		// test when a version specifier is given without a command
		{
			originalArgs: []string{"", "3.7"},
			wantArgs:     []string{"", "which", "3.7"},
		},
		// test when a flag is given without a command
		{
			originalArgs: []string{"", "--installed", "3"},
			wantArgs:     []string{"", "which", "--installed", "3"},
		},
		// test when another command is specified
		{
			originalArgs: []string{"", "list"},
			wantArgs:     []string{"", "list"},
		},
		// test when the command is also a filename
		{
			originalArgs: []string{"", "helpers.go"},
			wantArgs:     []string{"", "helpers.go"},
		},
		// test when no arguments are given at all
		{
			originalArgs: []string{""},
			wantArgs:     []string{""},
		},
		// test when the command is a built-in option
		{
			originalArgs: []string{"", "--version"},
			wantArgs:     []string{"", "--version"},
		},
		{
			originalArgs: []string{"", "-h"},
			wantArgs:     []string{"", "-h"},
		},
		{
			originalArgs: []string{"", "help"},
			wantArgs:     []string{"", "help"},
		},
	}

	for _, tt := range tests {
		stderr := &bytes.Buffer{}

		argsActual := insertDefaultCommand(tt.originalArgs, commands, defaultCommand, stderr)
		if !reflect.DeepEqual(argsActual, tt.wantArgs) {
			t.Errorf("Test Failed. Details:\n"+
				"Args (Got):  %s\n"+
				"Args (Want): %s\n", argsActual, tt.wantArgs)
		}
		testutility.MatchText(t, stderr.String())
	}
}
