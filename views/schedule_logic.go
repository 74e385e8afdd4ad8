package views

import (
	"sort"

	"github.com/javajohnHub/hsw/internal/service"
)

type ScheduleData struct {
	Weeks  map[int][]service.MatchDetail
	Order  []int
	Active int
}

// PrepareScheduleData groups matches by week. Within a week byes go last.
func PrepareScheduleData(matches []service.MatchDetail, activeWeek int) ScheduleData {
	weeks := make(map[int][]service.MatchDetail)
	var order []int

	for _, m := range matches {
		if _, exists := weeks[m.Week]; !exists {
			order = append(order, m.Week)
		}
		weeks[m.Week] = append(weeks[m.Week], m)
	}

	sort.Ints(order)
	for _, w := range order {
		sort.SliceStable(weeks[w], func(i, j int) bool {
			return !weeks[w][i].IsBye && weeks[w][j].IsBye
		})
	}

	return ScheduleData{Weeks: weeks, Order: order, Active: activeWeek}
}
