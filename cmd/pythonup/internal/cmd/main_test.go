package cmd_test

import (
	"log/slog"
	"testing"

	"github.com/uranusjr/pythonup/cmd/pythonup/internal/cmd"
	"github.com/uranusjr/pythonup/cmd/pythonup/internal/testcmd"
	"github.com/uranusjr/pythonup/cmd/pythonup/list"
	"github.com/uranusjr/pythonup/cmd/pythonup/which"
	"github.com/uranusjr/pythonup/internal/config"
	"github.com/uranusjr/pythonup/internal/testlogger"
	"github.com/uranusjr/pythonup/internal/testutility"
)

func TestMain(m *testing.M) {
	config.ConfigName = "pythonup-test.toml"

	slog.SetDefault(slog.New(testlogger.New()))
	testcmd.CommandsUnderTest = []cmd.CommandBuilder{which.Command, list.Command}
	m.Run()

	testutility.CleanSnapshots(m)
}
