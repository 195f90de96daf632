// Package list implements the `list` command for pythonup.
package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/uranusjr/pythonup/cmd/pythonup/internal/helper"
	"github.com/uranusjr/pythonup/internal/cmdlogger"
	"github.com/uranusjr/pythonup/pkg/pythons"
	"github.com/uranusjr/pythonup/pkg/store"
	"github.com/uranusjr/pythonup/pkg/tag"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

var formats = []string{"table", "json"}

func Command(stdout, stderr io.Writer, st store.Store) *cli.Command {
	return &cli.Command{
		Name:        "list",
		Usage:       "lists the Python installations registered on this system.",
		Description: "lists the Python installations registered on this system.",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "sets the output format; value can be: " + strings.Join(formats, ", "),
				Value:   "table",
				Action: func(_ context.Context, _ *cli.Command, s string) error {
					if slices.Contains(formats, s) {
						if s != "table" {
							cmdlogger.SendEverythingToStderr()
						}

						return nil
					}

					return fmt.Errorf("unsupported output format \"%s\" - must be one of: %s", s, strings.Join(formats, ", "))
				},
			},
		}, helper.BuildCommonFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return action(ctx, cmd, stdout, stderr, st)
		},
	}
}

type jsonOutput struct {
	Pythons []pythonEntry `json:"pythons"`
}

type pythonEntry struct {
	Version    string `json:"version"`
	Arch       string `json:"arch,omitempty"`
	Active     bool   `json:"active"`
	Executable string `json:"executable"`
}

func action(_ context.Context, cmd *cli.Command, stdout, _ io.Writer, st store.Store) error {
	if _, err := helper.LoadConfig(cmd); err != nil {
		return err
	}

	pattern, err := helper.ArchFromFlag(cmd, tag.Tag{})
	if err != nil {
		return err
	}

	finder := pythons.NewFinder(st)

	activeTags, err := finder.Active()
	if err != nil && !errors.Is(err, pythons.ErrNoActiveVersions) {
		return err
	}

	active := tag.NewSet()
	for _, t := range activeTags {
		active.Add(t)
	}

	installed := finder.Installed()
	// Most recent versions are the most interesting, so they go on top.
	slices.Reverse(installed)

	entries := make([]pythonEntry, 0, len(installed))
	for _, t := range installed {
		if !pattern.Contains(t) {
			continue
		}

		executable, err := finder.InstallPath(t)
		if err != nil {
			cmdlogger.Warnf("could not resolve the executable for Python %v: %v", t, err)
			executable = ""
		}

		entries = append(entries, pythonEntry{
			Version:    t.WithArchitecture(tag.ArchUnspecified).String(),
			Arch:       t.Architecture().String(),
			Active:     active.Has(t),
			Executable: executable,
		})
	}

	if cmd.String("format") == "json" {
		return printJSON(entries, stdout)
	}

	printTable(entries, stdout)

	return nil
}

// printJSON writes the installations to the provided writer in JSON format
func printJSON(entries []pythonEntry, stdout io.Writer) error {
	output := jsonOutput{Pythons: entries}

	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(output)
}

// printTable renders the installations as a human friendly table.
func printTable(entries []pythonEntry, stdout io.Writer) {
	if len(entries) == 0 {
		cmdlogger.Infof("no Pythons are installed")

		return
	}

	termWidth := 0
	if stdoutAsFile, ok := stdout.(*os.File); ok {
		width, _, err := term.GetSize(int(stdoutAsFile.Fd()))
		if err == nil { // stdout is a terminal
			termWidth = width
		}
	}

	outputTable := newTable(stdout, termWidth)
	outputTable.AppendHeader(table.Row{"Version", "Arch", "Active", "Executable"})

	for _, e := range entries {
		arch := e.Arch
		if arch == "" {
			arch = "-"
		}

		executable := e.Executable
		if executable == "" {
			executable = "-"
		}

		marker := ""
		if e.Active {
			marker = "*"
		}

		outputTable.AppendRow(table.Row{e.Version, arch, marker, executable})
	}

	outputTable.Render()
}

func newTable(stdout io.Writer, terminalWidth int) table.Writer {
	outputTable := table.NewWriter()
	outputTable.SetOutputMirror(stdout)

	// use fancy characters if we're outputting to a terminal
	if terminalWidth > 0 {
		outputTable.SetStyle(table.StyleRounded)
		outputTable.SetAllowedRowLength(terminalWidth)
	}

	return outputTable
}
