package standings

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/mauv0809/padwell/internal/padel"
	"github.com/vmihailenco/msgpack/v5"
)

type fingerprintRecord struct {
	ID      string
	Date    string
	Players [2][]string
	Score   [2]int
}

type fingerprintInput struct {
	Current     []fingerprintRecord
	Previous    []fingerprintRecord
	HasPrevious bool
}

// Fingerprint hashes the exact contents of a current and previous match collection.
// Any edit to either collection, including reordering, changes the result.
func Fingerprint(current, previous []padel.Match) (string, error) {
	input := fingerprintInput{
		Current:     toFingerprintRecords(current),
		Previous:    toFingerprintRecords(previous),
		HasPrevious: previous != nil,
	}
	data, err := msgpack.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("failed to encode matches for fingerprint: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func toFingerprintRecords(matches []padel.Match) []fingerprintRecord {
	records := make([]fingerprintRecord, len(matches))
	for i, m := range matches {
		records[i] = fingerprintRecord{
			ID:      m.ID,
			Date:    m.Date.String(),
			Players: m.Players,
			Score:   m.Score,
		}
	}
	return records
}
