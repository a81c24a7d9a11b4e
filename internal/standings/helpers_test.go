package standings_test

import (
	"time"

	"github.com/mauv0809/padwell/internal/padel"
)

func singles(id string, date padel.Date, a, b string, scoreA, scoreB int) padel.Match {
	return padel.Match{ID: id, Date: date, Players: [2][]string{{a}, {b}}, Score: [2]int{scoreA, scoreB}}
}

func doubles(id string, date padel.Date, sideA, sideB []string, scoreA, scoreB int) padel.Match {
	return padel.Match{ID: id, Date: date, Players: [2][]string{sideA, sideB}, Score: [2]int{scoreA, scoreB}}
}

var (
	day1 = padel.NewDate(2025, time.May, 12)
	day2 = padel.NewDate(2025, time.May, 19)
	day3 = padel.NewDate(2025, time.May, 26)
)
