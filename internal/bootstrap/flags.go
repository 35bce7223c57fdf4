// Package bootstrap wires the wikitodo command line to the wiki operations.
package bootstrap

import (
	urfavecli "github.com/urfave/cli/v3"
)

// actionFlags returns the flags selecting what a run does.
// They execute in a fixed order: list, toggle, add, delete, delete-completed.
func actionFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.BoolFlag{
			Name:    "list",
			Aliases: []string{"l"},
			Usage:   "Display all TODOs",
		},
		&urfavecli.BoolFlag{
			Name:  "json",
			Usage: "Print the list as JSON",
		},
		&urfavecli.StringFlag{
			Name:    "toggle",
			Aliases: []string{"t"},
			Usage:   "Toggle TODOs by number, comma-separated (e.g. 1,3)",
		},
		&urfavecli.StringFlag{
			Name:    "add",
			Aliases: []string{"a"},
			Usage:   "Add a TODO to the file matching substring: --add substring:todo_text",
		},
		&urfavecli.IntFlag{
			Name:  "choice",
			Usage: "Pick the Nth matching file when --add matches several, instead of asking",
		},
		&urfavecli.IntFlag{
			Name:    "delete",
			Aliases: []string{"d"},
			Usage:   "Delete a TODO by number",
		},
		&urfavecli.BoolFlag{
			Name:  "delete-completed",
			Usage: "Delete all completed TODOs",
		},
	}
}

// globalFlags returns the flags configuring where and how a run works.
// Note: --version is provided automatically by urfave/cli via Command.Version
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:    "wiki-dir",
			Aliases: []string{"w"},
			Usage:   "Override the wiki root directory",
		},
		&urfavecli.StringFlag{
			Name:  "index",
			Usage: "Override the index file name",
		},
		&urfavecli.StringFlag{
			Name:  "extension",
			Usage: "Override the wiki file extension",
		},
		&urfavecli.StringFlag{
			Name:  "theme",
			Usage: "Override the colour theme",
		},
		&urfavecli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable coloured output",
		},
		&urfavecli.BoolFlag{
			Name:  "show-themes",
			Usage: "List available colour themes",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringSliceFlag{
			Name:    "config",
			Aliases: []string{"C"},
			Usage:   "Override config values (repeatable): --config=todo.key=value",
		},
	}
}

func allFlags() []urfavecli.Flag {
	return append(actionFlags(), globalFlags()...)
}
