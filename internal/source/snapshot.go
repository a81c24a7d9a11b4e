package source

import (
	"context"

	"github.com/mauv0809/padwell/internal/padel"
	"github.com/mauv0809/padwell/internal/standings"
)

var _ standings.HistorySource = (*SnapshotFile)(nil)

// SnapshotFile serves a saved copy of the match log as the previous snapshot.
type SnapshotFile struct {
	file *FileSource
}

// NewSnapshotFile reads the previous snapshot from path.
func NewSnapshotFile(path string) *SnapshotFile {
	return &SnapshotFile{file: NewFileSource(path)}
}

func (s *SnapshotFile) LoadPreviousMatches(ctx context.Context) ([]padel.Match, error) {
	return s.file.LoadCurrentMatches(ctx)
}
