package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/javajohnHub/hsw/internal/db"
	"github.com/javajohnHub/hsw/internal/league"
	"github.com/javajohnHub/hsw/internal/service"
	"github.com/javajohnHub/hsw/internal/store"
	"github.com/jmoiron/sqlx"
	"github.com/urfave/cli/v2"
)

type services struct {
	db        *sqlx.DB
	players   *service.PlayerService
	matches   *service.MatchService
	seasons   *service.SeasonService
	schedules *service.ScheduleService
	standings *service.StandingsService
}

// openServices connects to the database and brings the schema up to date.
func openServices(cCtx *cli.Context) (*services, error) {
	database, err := db.InitDB(cCtx.String(dbFlag))
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(database.DB, cCtx.String(migrationsFlag)); err != nil {
		database.Close()
		return nil, err
	}
	return newServices(database), nil
}

func newServices(database *sqlx.DB) *services {
	stores := store.New(database)
	players := service.NewPlayerService(database, stores)
	return &services{
		db:        database,
		players:   players,
		matches:   service.NewMatchService(database, stores, players),
		seasons:   service.NewSeasonService(database, stores),
		schedules: service.NewScheduleService(database, stores),
		standings: service.NewStandingsService(stores),
	}
}

func (s *services) Close() error {
	return s.db.Close()
}

// resolveSeason looks up the --season flag, or the active season without it.
func (s *services) resolveSeason(cCtx *cli.Context) (*league.Season, error) {
	raw := cCtx.String(seasonFlag)
	if raw == "" {
		return s.seasons.Active(cCtx.Context)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", seasonFlag, raw, err)
	}
	return s.seasons.Get(cCtx.Context, id)
}

func openOutput(cCtx *cli.Context) (io.WriteCloser, error) {
	location := cCtx.String(outputFlag)
	if location == "" || location == stdoutCLIName {
		return nopCloser{cCtx.App.Writer}, nil
	}
	return os.OpenFile(location, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func migrateAction(cCtx *cli.Context) error {
	database, err := db.InitDB(cCtx.String(dbFlag))
	if err != nil {
		return err
	}
	defer database.Close()

	return db.RunMigrations(database.DB, cCtx.String(migrationsFlag))
}

func generateAction(cCtx *cli.Context) error {
	svc, err := openServices(cCtx)
	if err != nil {
		return err
	}
	defer svc.Close()

	season, err := svc.resolveSeason(cCtx)
	if err != nil {
		return err
	}

	var matches []league.Match
	if cCtx.Bool(dryRunFlag) {
		matches, err = svc.schedules.Preview(cCtx.Context, season.ID)
	} else {
		matches, err = svc.schedules.GenerateSeason(cCtx.Context, season.ID)
	}
	if err != nil {
		return err
	}

	return svc.writeSchedule(cCtx, season, matches)
}

func exportAction(cCtx *cli.Context) error {
	svc, err := openServices(cCtx)
	if err != nil {
		return err
	}
	defer svc.Close()

	season, err := svc.resolveSeason(cCtx)
	if err != nil {
		return err
	}

	filter := store.MatchFilter{SeasonID: &season.ID}
	if week := cCtx.Int(weekFlag); week != 0 {
		if week < 1 || week > season.Weeks {
			return fmt.Errorf("--%s must be between 1 and %d", weekFlag, season.Weeks)
		}
		filter.Week = &week
	}

	matches, err := svc.matches.List(cCtx.Context, filter)
	if err != nil {
		return err
	}
	return svc.writeSchedule(cCtx, season, matches)
}

func (s *services) writeSchedule(cCtx *cli.Context, season *league.Season, matches []league.Match) error {
	details, err := s.matches.Details(cCtx.Context, matches)
	if err != nil {
		return err
	}

	out, err := openOutput(cCtx)
	if err != nil {
		return err
	}
	defer out.Close()

	return writeScheduleYAML(out, season, details)
}

func standingsAction(cCtx *cli.Context) error {
	svc, err := openServices(cCtx)
	if err != nil {
		return err
	}
	defer svc.Close()

	table, err := svc.standings.Standings(cCtx.Context)
	if err != nil {
		return err
	}

	out, err := openOutput(cCtx)
	if err != nil {
		return err
	}
	defer out.Close()

	switch format := cCtx.String(formatFlag); format {
	case "yaml":
		return writeStandingsYAML(out, table)
	case "text":
		return writeStandingsText(out, table)
	default:
		return fmt.Errorf("unknown --%s %q, expected yaml or text", formatFlag, format)
	}
}
