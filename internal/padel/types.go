package padel

import (
	"errors"
	"time"
)

// ErrMalformedRecord marks a match record that cannot take part in aggregation:
// a non-numeric or negative score, a missing side, or an empty roster.
var ErrMalformedRecord = errors.New("malformed match record")

// DateLayout is the wire format of a match date.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time component. The zero value is the zero time.
type Date struct {
	time.Time
}

// Match is a single recorded padel match. Index 0 of Players and Score is side "1" on
// the wire, index 1 is side "2".
type Match struct {
	ID      string
	Date    Date
	Players [2][]string
	Score   [2]int
}

// MatchData is the document envelope the match log is stored in.
type MatchData struct {
	Matches []Match `json:"matches" yaml:"matches"`
}

// Format identifies the serialization of a match document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// wireMatch mirrors the on-disk shape of a record: sides are keyed "1" and "2".
type wireMatch struct {
	Date    string              `json:"date" yaml:"date"`
	ID      string              `json:"id" yaml:"id"`
	Score   map[string]int      `json:"score" yaml:"score"`
	Players map[string][]string `json:"players" yaml:"players"`
}

var sideKeys = [2]string{"1", "2"}
