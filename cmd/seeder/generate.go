package main

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/mauv0809/padwell/internal/padel"
)

// outcomes are the set scores a best-of-three match can end with.
var outcomes = [][2]int{{2, 0}, {2, 1}, {1, 2}, {0, 2}}

type generator struct {
	faker *gofakeit.Faker
}

func newGenerator(seed uint64) *generator {
	return &generator{faker: gofakeit.New(seed)}
}

// players returns n distinct names in the "J. Kowalski" style.
func (g *generator) players(n int) []string {
	seen := make(map[string]struct{}, n)
	names := make([]string, 0, n)
	for len(names) < n {
		name := fmt.Sprintf("%s. %s", g.faker.FirstName()[:1], g.faker.LastName())
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// matches generates perWeek matches on each of weeks consecutive weekly match days
// starting at start. Roughly one match in four is singles.
func (g *generator) matches(players []string, start time.Time, weeks, perWeek int) []padel.Match {
	matches := make([]padel.Match, 0, weeks*perWeek)
	for w := range weeks {
		date := padel.DateOf(start.AddDate(0, 0, 7*w))
		for range perWeek {
			size := 2
			if g.faker.Number(0, 3) == 0 || len(players) < 4 {
				size = 1
			}
			pool := make([]string, len(players))
			copy(pool, players)
			g.faker.ShuffleAnySlice(pool)

			matches = append(matches, padel.Match{
				ID:      uuid.NewString(),
				Date:    date,
				Players: [2][]string{pool[:size], pool[size : 2*size]},
				Score:   outcomes[g.faker.Number(0, len(outcomes)-1)],
			})
		}
	}
	return matches
}
