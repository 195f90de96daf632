// Package which implements the `which` command for pythonup.
package which

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/uranusjr/pythonup/cmd/pythonup/internal/helper"
	"github.com/uranusjr/pythonup/internal/cmdlogger"
	"github.com/uranusjr/pythonup/pkg/pythons"
	"github.com/uranusjr/pythonup/pkg/store"
	"github.com/uranusjr/pythonup/pkg/tag"
	"github.com/urfave/cli/v3"
)

func Command(stdout, stderr io.Writer, st store.Store) *cli.Command {
	return &cli.Command{
		Name:        "which",
		Usage:       "prints the path of the Python interpreter matching a version specifier.",
		Description: "prints the path of the Python interpreter matching a version specifier.",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "installed",
				Usage: "only consider Pythons registered on this system, ignoring the active versions list",
			},
			&cli.BoolFlag{
				Name:  "active",
				Usage: "only consider versions named in the active versions list",
			},
			&cli.BoolFlag{
				Name:  "own",
				Usage: "print the path of the Python interpreter bundled with PythonUp",
			},
		}, helper.BuildCommonFlags()...),
		ArgsUsage: "[specifier]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return action(ctx, cmd, stdout, stderr, st)
		},
	}
}

func action(_ context.Context, cmd *cli.Command, stdout, _ io.Writer, st store.Store) error {
	// The resolved path is the only thing that may go to stdout.
	cmdlogger.SendEverythingToStderr()

	cfg, err := helper.LoadConfig(cmd)
	if err != nil {
		return err
	}

	if cmd.Bool("installed") && cmd.Bool("active") {
		return errors.New("--installed and --active cannot be used together")
	}

	finder := pythons.NewFinder(st)

	if cmd.Bool("own") {
		if cmd.Args().Len() > 0 || cmd.Bool("installed") || cmd.Bool("active") {
			return errors.New("--own takes no version specifier and no other lookup flags")
		}

		path, err := finder.FindOwn()
		if err != nil {
			return err
		}

		fmt.Fprintln(stdout, path)

		return nil
	}

	if cmd.Args().Len() > 1 {
		return errors.New("which takes at most one version specifier")
	}

	var query tag.Tag
	if specifier := cmd.Args().First(); specifier != "" {
		if query, err = tag.Parse(specifier); err != nil {
			return err
		}
	} else {
		var ok bool
		if query, ok = cfg.DefaultTag(); !ok {
			return errors.New("no version specifier given, and the config file does not set DefaultVersion")
		}
	}

	query, err = helper.ArchFromFlag(cmd, query)
	if err != nil {
		return err
	}

	var path string
	switch {
	case cmd.Bool("installed"):
		path, err = finder.FindBestInstalled(query)
	case cmd.Bool("active"):
		path, err = finder.FindBestActive(query)
	default:
		path, err = finder.Find(query)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, path)

	return nil
}
