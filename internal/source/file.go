package source

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padwell/internal/padel"
	"github.com/mauv0809/padwell/internal/standings"
)

var (
	_ standings.MatchSource  = (*FileSource)(nil)
	_ standings.SkipReporter = (*FileSource)(nil)
	_ standings.LastModifier = (*FileSource)(nil)
)

// FileSource reads the match log from a JSON or YAML document on disk. The file is
// read on every call so edits show up on the next request.
type FileSource struct {
	path   string
	format padel.Format
}

// NewFileSource creates a FileSource. The format follows the file extension.
func NewFileSource(path string) *FileSource {
	return &FileSource{
		path:   path,
		format: padel.FormatFromPath(path),
	}
}

// LoadCurrentMatches reads and decodes the file. Records that fail to decode are
// left out.
func (f *FileSource) LoadCurrentMatches(ctx context.Context) ([]padel.Match, error) {
	matches, _, err := f.LoadCurrentMatchesWithSkips(ctx)
	return matches, err
}

// LoadCurrentMatchesWithSkips reads and decodes the file, returning the decode error
// of every record that was left out.
func (f *FileSource) LoadCurrentMatchesWithSkips(ctx context.Context) ([]padel.Match, []error, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read match file %s: %w", f.path, err)
	}

	matches, skipped, err := padel.Decode(data, f.format)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse match file %s: %w", f.path, err)
	}
	log.Debug("Loaded matches from file", "path", f.path, "count", len(matches), "skipped", len(skipped))
	return matches, skipped, nil
}

// LastModified returns the file's modification time.
func (f *FileSource) LastModified(ctx context.Context) (time.Time, error) {
	info, err := os.Stat(f.path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
