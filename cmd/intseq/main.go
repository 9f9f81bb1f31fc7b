package main

import (
	"fmt"
	"os"

	"github.com/ava-labs/intseq/pkg/utils"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const appName = "intseq"

// loggerFactory builds the logger used by a command run.
type loggerFactory func(verbose bool) (*zap.SugaredLogger, error)

func main() {
	app := newApp(func(verbose bool) (*zap.SugaredLogger, error) {
		return utils.NewSugaredLogger(appName, verbose)
	})
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(newLogger loggerFactory) *cli.App {
	return &cli.App{
		Name:  appName,
		Usage: "Scan integer sequences",
		Commands: []*cli.Command{
			{
				Name:   "demo",
				Usage:  "Print the smallest missing positive of the sample sequence",
				Flags:  demoFlags(),
				Action: func(c *cli.Context) error { return runDemo(c, newLogger) },
			},
			{
				Name:      "missing",
				Usage:     "Print the smallest positive integer absent from the given integers",
				ArgsUsage: "[int ...]",
				Flags:     missingFlags(),
				Action:    func(c *cli.Context) error { return runMissing(c, newLogger) },
			},
			{
				Name:      "min",
				Usage:     "Print the smallest given integer strictly between --threshold and 0, or 0",
				ArgsUsage: "[int ...]",
				Flags:     minFlags(),
				Action:    func(c *cli.Context) error { return runMin(c, newLogger) },
			},
		},
	}
}
