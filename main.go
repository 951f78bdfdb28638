package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/ssort/internal/history"
	"github.com/dtnitsch/ssort/internal/sortcmd"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:      "ssort",
		Usage:     "inverse lexicographic (suffix) sort by first word (default) or whole line",
		Version:   version,
		ArgsUsage: "[FILE...]",
		Description: `The inverse lexicographic sort, a.k.a. suffix sort, is a sort order
where strings are compared from the last character towards the first.

Input files are read in order; '-' or no files means stdin.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:     "ignore-case",
				Aliases:  []string{"i"},
				Usage:    "ignore case when sorting",
				Category: "Sorting Options",
			},
			&cli.BoolFlag{
				Name:     "line",
				Aliases:  []string{"l"},
				Usage:    "use entire line for sorting instead of first word",
				Category: "Sorting Options",
			},
			&cli.BoolFlag{
				Name:     "dictionary-order",
				Aliases:  []string{"d"},
				Usage:    "ignore non-alphabetic characters when finding first word",
				Category: "Sorting Options",
			},
			&cli.BoolFlag{
				Name:     "reverse",
				Aliases:  []string{"r"},
				Usage:    "reverse the sort order",
				Category: "Sorting Options",
			},
			&cli.BoolFlag{
				Name:     "stable",
				Aliases:  []string{"s"},
				Usage:    "stable sort (maintains original order of equal elements)",
				Category: "Sorting Options",
			},
			&cli.BoolFlag{
				Name:     "normalize",
				Aliases:  []string{"n"},
				Usage:    "normalize unicode to NFC form before comparing",
				Category: "Sorting Options",
			},
			&cli.BoolFlag{
				Name:     "right-align",
				Aliases:  []string{"a"},
				Usage:    "right-align output by adding leading spaces",
				Category: "Output",
			},
			&cli.BoolFlag{
				Name:     "exclude-no-word",
				Aliases:  []string{"x"},
				Usage:    "exclude lines without words",
				Category: "Output",
			},
			&cli.BoolFlag{
				Name:     "word-only",
				Aliases:  []string{"w"},
				Usage:    "output only the word used for sorting",
				Category: "Output",
			},
			&cli.IntFlag{
				Name:  "workers",
				Value: runtime.NumCPU(),
				Usage: "number of parallel workers for processing and sorting",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "log errors only",
			},
			&cli.StringFlag{
				Name:  "config",
				Value: ".ssort.yaml",
				Usage: "YAML defaults file (missing file is ignored)",
			},
			&cli.BoolFlag{
				Name:  "track",
				Usage: "record this run in the local history database",
			},
		},
		Action: sortcmd.SortAction,
		Commands: []*cli.Command{
			{
				Name:  "history",
				Usage: "inspect tracked runs",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "list recent runs",
						Action: history.ListAction,
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:  "limit",
								Value: 20,
								Usage: "maximum number of runs to show",
							},
						},
					},
					{
						Name:      "show",
						Usage:     "show one run (latest when no ID is given)",
						ArgsUsage: "[ID]",
						Action:    history.ShowAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
