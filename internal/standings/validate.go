package standings

import "github.com/mauv0809/padwell/internal/padel"

// FilterValid splits matches into the ones that can be aggregated and the validation
// errors of the ones that cannot. The input order of valid matches is preserved.
func FilterValid(matches []padel.Match) (valid []padel.Match, skipped []error) {
	valid = make([]padel.Match, 0, len(matches))
	for _, m := range matches {
		if err := m.Validate(); err != nil {
			skipped = append(skipped, err)
			continue
		}
		valid = append(valid, m)
	}
	return valid, skipped
}
