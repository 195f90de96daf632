// Package helper provides flags and utilities shared by all pythonup commands.
package helper

import (
	"context"
	"fmt"
	"strings"

	"github.com/uranusjr/pythonup/internal/cmdlogger"
	"github.com/uranusjr/pythonup/internal/config"
	"github.com/uranusjr/pythonup/pkg/tag"
	"github.com/urfave/cli/v3"
)

// BuildCommonFlags returns a slice of flags which are common to all commands
func BuildCommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "config",
			Usage:     "set/override config file",
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:  "arch",
			Usage: "only match installations of this architecture; value can be: 32, 64",
			Action: func(_ context.Context, _ *cli.Command, s string) error {
				_, err := tag.ParseArchitecture(s)

				return err
			},
		},
		&cli.StringFlag{
			Name:  "verbosity",
			Usage: "specify the level of information that should be provided during runtime; value can be: " + strings.Join(cmdlogger.Levels(), ", "),
			Value: "info",
			Action: func(_ context.Context, _ *cli.Command, s string) error {
				lvl, err := cmdlogger.ParseLevel(s)

				if err != nil {
					return err
				}

				cmdlogger.SetLevel(lvl)

				return nil
			},
		},
	}
}

// LoadConfig loads the config file named by the --config flag and applies
// its Verbosity setting, unless --verbosity was passed explicitly.
func LoadConfig(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return config.Config{}, err
	}

	if cfg.Verbosity != "" && !cmd.IsSet("verbosity") {
		lvl, err := cmdlogger.ParseLevel(cfg.Verbosity)

		if err != nil {
			return config.Config{}, err
		}

		cmdlogger.SetLevel(lvl)
	}

	return cfg, nil
}

// ArchFromFlag refines the given query with the --arch flag, erroring out
// when the flag contradicts an architecture the specifier already pins.
func ArchFromFlag(cmd *cli.Command, query tag.Tag) (tag.Tag, error) {
	s := cmd.String("arch")
	if s == "" {
		return query, nil
	}

	arch, err := tag.ParseArchitecture(s)
	if err != nil {
		return query, err
	}

	if a := query.Architecture(); a != tag.ArchUnspecified && a != arch {
		return query, fmt.Errorf("--arch %s conflicts with version specifier %q", s, query)
	}

	return query.WithArchitecture(arch), nil
}
