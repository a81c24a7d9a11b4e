package club

import (
	"database/sql"
	"sync"
	"time"
)

// store handles all database operations for the club.
type store struct {
	db  *sql.DB
	mu  sync.RWMutex
	now func() time.Time
}

// matchRow is a match as stored: rosters are JSON arrays, the date is DateLayout text.
type matchRow struct {
	ID           string
	PlayedOn     string
	Side1Players string
	Side2Players string
	Side1Sets    int
	Side2Sets    int
}
