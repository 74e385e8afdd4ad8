package views

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/javajohnHub/hsw/internal/league"
	"github.com/javajohnHub/hsw/internal/standings"
)

type IndexData struct {
	Standings     []standings.Standing
	Season        *league.Season
	Schedule      ScheduleData
	Announcements []league.Announcement
}

type writer struct {
	w   io.Writer
	err error
}

func (w *writer) raw(s string) {
	if w.err == nil {
		_, w.err = io.WriteString(w.w, s)
	}
}

func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		w.text(title)
		w.raw(`</title><link rel="stylesheet" href="/static/style.css"></head><body><header><h1>`)
		w.text(title)
		w.raw(`</h1><nav><a href="/">Standings</a> <a href="/schedule">Schedule</a>`)
		if IsAdmin(ctx) {
			w.raw(` <span class="admin">admin</span>`)
		}
		w.raw(`</nav></header><main>`)
		if w.err != nil {
			return w.err
		}
		if err := body.Render(ctx, out); err != nil {
			return err
		}
		w.raw(`</main></body></html>`)
		return w.err
	})
}

func StandingsTable(rows []standings.Standing) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		if len(rows) == 0 {
			w.raw(`<p class="empty">No players yet.</p>`)
			return w.err
		}
		w.raw(`<table class="standings"><thead><tr><th>#</th><th>Player</th><th>W-L</th><th>Not played</th><th>Points</th></tr></thead><tbody>`)
		for _, row := range rows {
			w.raw(`<tr><td>`)
			w.text(strconv.Itoa(row.Rank))
			w.raw(`</td><td>`)
			w.text(row.Name)
			w.raw(`</td><td>`)
			w.text(Record(row.Player))
			w.raw(`</td><td>`)
			w.text(strconv.Itoa(row.NotPlayed))
			w.raw(`</td><td>`)
			w.text(strconv.Itoa(row.Points))
			w.raw(`</td></tr>`)
		}
		w.raw(`</tbody></table>`)
		return w.err
	})
}

// WeekTable renders the matches of one week, or nothing if the week has none.
func WeekTable(data ScheduleData, week int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		matches := data.Weeks[week]
		class := "week"
		if week == data.Active {
			class += " active"
		}
		w.raw(`<section class="` + class + `"><h3>`)
		w.text(fmt.Sprintf("Week %d", week))
		w.raw(`</h3>`)
		if len(matches) == 0 {
			w.raw(`<p class="empty">No matches yet.</p></section>`)
			return w.err
		}
		w.raw(`<ul>`)
		for _, m := range matches {
			w.raw(`<li>`)
			if m.IsBye {
				w.text(m.Player1Name)
			} else {
				w.text(m.Player1Name + " vs " + m.Player2Name)
			}
			w.raw(` <em>`)
			w.text(Outcome(m))
			w.raw(`</em></li>`)
		}
		w.raw(`</ul></section>`)
		return w.err
	})
}

func announcementList(items []league.Announcement) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		if len(items) == 0 {
			return nil
		}
		w.raw(`<section class="announcements">`)
		for _, a := range items {
			w.raw(`<article><h3>`)
			w.text(a.Title)
			w.raw(`</h3><p>`)
			w.text(a.Body)
			w.raw(`</p></article>`)
		}
		w.raw(`</section>`)
		return w.err
	})
}

// Index is the public landing page: announcements, the leaderboard and the active week.
func Index(data IndexData) templ.Component {
	title := "Leaderboard"
	if data.Season != nil {
		title = data.Season.Name
	}
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		if err := announcementList(data.Announcements).Render(ctx, out); err != nil {
			return err
		}
		if err := StandingsTable(data.Standings).Render(ctx, out); err != nil {
			return err
		}
		return WeekTable(data.Schedule, data.Schedule.Active).Render(ctx, out)
	})
	return Layout(title, body)
}

// SchedulePage lists every week that has matches.
func SchedulePage(title string, data ScheduleData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		if len(data.Order) == 0 {
			_, err := io.WriteString(out, `<p class="empty">No schedule yet.</p>`)
			return err
		}
		for _, week := range data.Order {
			if err := WeekTable(data, week).Render(ctx, out); err != nil {
				return err
			}
		}
		return nil
	})
	return Layout(title, body)
}
