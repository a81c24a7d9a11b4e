package padel

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Validate reports whether the record can be aggregated. The returned error wraps
// ErrMalformedRecord.
func (m Match) Validate() error {
	for side := range 2 {
		if m.Score[side] < 0 {
			return fmt.Errorf("%w: match %q side %s has negative score %d", ErrMalformedRecord, m.ID, sideKeys[side], m.Score[side])
		}
		if len(m.Players[side]) == 0 {
			return fmt.Errorf("%w: match %q side %s has no players", ErrMalformedRecord, m.ID, sideKeys[side])
		}
		for _, name := range m.Players[side] {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("%w: match %q side %s has an empty player name", ErrMalformedRecord, m.ID, sideKeys[side])
			}
		}
	}
	return nil
}

// Opponent returns the index of the other side.
func Opponent(side int) int {
	return 1 - side
}

// Winner returns the side with more sets. ok is false for a tie.
func (m Match) Winner() (side int, ok bool) {
	switch {
	case m.Score[0] > m.Score[1]:
		return 0, true
	case m.Score[1] > m.Score[0]:
		return 1, true
	default:
		return 0, false
	}
}

// SideOf returns the side the named player played on.
func (m Match) SideOf(name string) (side int, ok bool) {
	for side := range 2 {
		for _, p := range m.Players[side] {
			if p == name {
				return side, true
			}
		}
	}
	return 0, false
}

// PlayerNames returns every distinct player name in order of first appearance.
func PlayerNames(matches []Match) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, m := range matches {
		for side := range 2 {
			for _, p := range m.Players[side] {
				if _, ok := seen[p]; ok {
					continue
				}
				seen[p] = struct{}{}
				names = append(names, p)
			}
		}
	}
	return names
}

func (m Match) toWire() wireMatch {
	w := wireMatch{
		Date:    m.Date.String(),
		ID:      m.ID,
		Score:   make(map[string]int, 2),
		Players: make(map[string][]string, 2),
	}
	for side, key := range sideKeys {
		w.Score[key] = m.Score[side]
		players := m.Players[side]
		if players == nil {
			players = []string{}
		}
		w.Players[key] = players
	}
	return w
}

func (w wireMatch) toMatch() (Match, error) {
	m := Match{ID: w.ID}
	if w.Date != "" {
		d, err := ParseDate(w.Date)
		if err != nil {
			return Match{}, fmt.Errorf("%w: match %q: %v", ErrMalformedRecord, w.ID, err)
		}
		m.Date = d
	}
	for side, key := range sideKeys {
		score, ok := w.Score[key]
		if !ok {
			return Match{}, fmt.Errorf("%w: match %q has no score for side %s", ErrMalformedRecord, w.ID, key)
		}
		players, ok := w.Players[key]
		if !ok {
			return Match{}, fmt.Errorf("%w: match %q has no roster for side %s", ErrMalformedRecord, w.ID, key)
		}
		m.Score[side] = score
		m.Players[side] = players
	}
	return m, nil
}

func (m Match) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.toWire())
}

func (m *Match) UnmarshalJSON(data []byte) error {
	var w wireMatch
	if err := json.Unmarshal(data, &w); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
		return err
	}
	parsed, err := w.toMatch()
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Match) MarshalYAML() (any, error) {
	return m.toWire(), nil
}

func (m *Match) UnmarshalYAML(value *yaml.Node) error {
	var w wireMatch
	if err := value.Decode(&w); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
		return err
	}
	parsed, err := w.toMatch()
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
