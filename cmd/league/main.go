package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const (
	dbFlag         = "db"
	migrationsFlag = "migrations"
	seasonFlag     = "season"
	weekFlag       = "week"
	formatFlag     = "format"
	outputFlag     = "output"
	dryRunFlag     = "dry-run"
	stdoutCLIName  = "-"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "league",
		Usage: "Administer the league database from the command line",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    dbFlag,
				Usage:   "Path to the SQLite database",
				Value:   "league.db",
				EnvVars: []string{"DATABASE_PATH"},
			},
			&cli.StringFlag{
				Name:    migrationsFlag,
				Usage:   "Migration source URL",
				Value:   "file://migrations",
				EnvVars: []string{"MIGRATIONS_PATH"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "Apply pending database migrations",
				Action: migrateAction,
			},
			{
				Name:  "schedule",
				Usage: "Work with season schedules",
				Subcommands: []*cli.Command{
					{
						Name:  "generate",
						Usage: "Replace a season's matches with a fresh round robin",
						Flags: []cli.Flag{
							seasonIDFlag(),
							outputFileFlag(),
							&cli.BoolFlag{
								Name:  dryRunFlag,
								Usage: "Print the schedule without saving it",
							},
						},
						Action: generateAction,
					},
					{
						Name:  "export",
						Usage: "Write a season's schedule as YAML",
						Flags: []cli.Flag{
							seasonIDFlag(),
							outputFileFlag(),
							&cli.IntFlag{
								Name:  weekFlag,
								Usage: "Only export this week",
							},
						},
						Action: exportAction,
					},
				},
			},
			{
				Name:  "standings",
				Usage: "Print the leaderboard",
				Flags: []cli.Flag{
					outputFileFlag(),
					&cli.StringFlag{
						Name:  formatFlag,
						Usage: "Output format, yaml or text",
						Value: "text",
					},
				},
				Action: standingsAction,
			},
		},
	}
}

func seasonIDFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  seasonFlag,
		Usage: "Season id, defaults to the active season",
	}
}

func outputFileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    outputFlag,
		Aliases: []string{"o"},
		Usage:   "Where to write the result. A file path or \"-\" for stdout",
		Value:   stdoutCLIName,
	}
}

func main() {
	logrus.SetOutput(os.Stderr)

	if err := newApp().Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("league command failed")
	}
}
