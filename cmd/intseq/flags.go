package main

import (
	"github.com/urfave/cli/v2"
)

// commonFlags returns the flags shared by every intseq command.
// Defaults come from the environment (see Config); flags override them.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Enable verbose logging (env INTSEQ_VERBOSE)",
		},
		&cli.BoolFlag{
			Name:  "print-metrics",
			Usage: "Write collected metrics in Prometheus text format after the result (env INTSEQ_PRINT_METRICS)",
		},
		&cli.StringFlag{
			Name:  "environment",
			Usage: "Environment label attached to metrics (env INTSEQ_ENVIRONMENT)",
		},
		&cli.StringFlag{
			Name:  "instance",
			Usage: "Instance label attached to metrics (env INTSEQ_INSTANCE)",
		},
	}
}

// demoFlags returns the CLI flags for the demo command
func demoFlags() []cli.Flag {
	return append(commonFlags(),
		&cli.StringFlag{
			Name:    "sample",
			Aliases: []string{"s"},
			Usage:   "Comma-separated sample sequence (env INTSEQ_SAMPLE)",
		},
	)
}

// missingFlags returns the CLI flags for the missing command
func missingFlags() []cli.Flag {
	return append(commonFlags(),
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "Comma-separated integers, prepended to positional arguments (use this for negative values)",
		},
	)
}

// minFlags returns the CLI flags for the min command
func minFlags() []cli.Flag {
	return append(commonFlags(),
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "Comma-separated integers, prepended to positional arguments (use this for negative values)",
		},
		&cli.IntFlag{
			Name:    "threshold",
			Aliases: []string{"d"},
			Usage:   "Exclusive lower bound for picked values (env INTSEQ_THRESHOLD)",
		},
	)
}
