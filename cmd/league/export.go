package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/javajohnHub/hsw/internal/league"
	"github.com/javajohnHub/hsw/internal/service"
	"github.com/javajohnHub/hsw/internal/standings"
	"github.com/javajohnHub/hsw/views"
	"gopkg.in/yaml.v3"
)

type scheduleExport struct {
	Season seasonExport `yaml:"season"`
	Weeks  []weekExport `yaml:"weeks"`
}

type seasonExport struct {
	ID     string              `yaml:"id"`
	Name   string              `yaml:"name"`
	Weeks  int                 `yaml:"weeks"`
	Status league.SeasonStatus `yaml:"status"`
}

type weekExport struct {
	Week    int           `yaml:"week"`
	Matches []matchExport `yaml:"matches"`
}

type matchExport struct {
	Player1 string             `yaml:"player1"`
	Player2 string             `yaml:"player2,omitempty"`
	Bye     bool               `yaml:"bye,omitempty"`
	Status  league.MatchStatus `yaml:"status"`
	Winner  string             `yaml:"winner,omitempty"`
}

func newYAMLEncoder(w io.Writer) *yaml.Encoder {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return enc
}

func writeScheduleYAML(w io.Writer, season *league.Season, matches []service.MatchDetail) error {
	grouped := views.PrepareScheduleData(matches, 0)

	export := scheduleExport{
		Season: seasonExport{
			ID:     season.ID.String(),
			Name:   season.Name,
			Weeks:  season.Weeks,
			Status: season.Status,
		},
		Weeks: make([]weekExport, 0, len(grouped.Order)),
	}
	for _, week := range grouped.Order {
		we := weekExport{Week: week}
		for _, m := range grouped.Weeks[week] {
			we.Matches = append(we.Matches, matchExport{
				Player1: m.Player1Name,
				Player2: m.Player2Name,
				Bye:     m.IsBye,
				Status:  m.Status,
				Winner:  m.WinnerName,
			})
		}
		export.Weeks = append(export.Weeks, we)
	}

	enc := newYAMLEncoder(w)
	if err := enc.Encode(&export); err != nil {
		return fmt.Errorf("encoding to YAML failed: %w", err)
	}
	return enc.Close()
}

func writeStandingsYAML(w io.Writer, table []standings.Standing) error {
	enc := newYAMLEncoder(w)
	if err := enc.Encode(map[string][]standings.Standing{"standings": table}); err != nil {
		return fmt.Errorf("encoding to YAML failed: %w", err)
	}
	return enc.Close()
}

func writeStandingsText(w io.Writer, table []standings.Standing) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tPLAYER\tW\tL\tNP\tPTS")
	for _, row := range table {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\n", row.Rank, row.Name, row.Wins, row.Losses, row.NotPlayed, row.Points)
	}
	return tw.Flush()
}
