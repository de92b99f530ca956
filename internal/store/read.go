package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/rcail/nudge/internal/alert"
)

// Load reads a single record by id. A missing or malformed file is
// "absent" — (nil, nil) — not an error, so a concurrent deletion or a
// corrupt file cannot fail the caller.
func (s *Store) Load(id string) (*alert.Alert, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		return nil, nil
	}

	var a alert.Alert
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, nil
	}
	return &a, nil
}

// List scans the record directory, decodes every well-formed file,
// silently discards malformed ones, applies the filter, and returns the
// result sorted ascending by created_at with ties broken by id.
//
// Returns an empty slice (not nil) when nothing matches. A store whose
// directory does not exist yet is simply empty.
func (s *Store) List(f alert.Filter) ([]alert.Alert, error) {
	entries, err := os.ReadDir(s.dir())
	if err != nil {
		if os.IsNotExist(err) {
			return []alert.Alert{}, nil
		}
		return nil, fmt.Errorf("list alerts: %w", err)
	}

	alerts := []alert.Alert{}
	for _, entry := range entries {
		if entry.IsDir() || !isRecordFile(entry.Name()) {
			continue
		}

		data, err := os.ReadFile(s.path(trimRecordExt(entry.Name())))
		if err != nil {
			// Deleted between ReadDir and ReadFile.
			continue
		}

		var a alert.Alert
		if err := json.Unmarshal(data, &a); err != nil {
			continue
		}
		if a.ID == "" {
			continue
		}

		if f.Matches(&a) {
			alerts = append(alerts, a)
		}
	}

	sort.Slice(alerts, func(i, j int) bool {
		if !alerts[i].CreatedAt.Equal(alerts[j].CreatedAt) {
			return alerts[i].CreatedAt.Before(alerts[j].CreatedAt)
		}
		return alerts[i].ID < alerts[j].ID
	})

	return alerts, nil
}

// Count returns the number of records matching the filter. It is defined
// as len(List(f)) so the two agree under the same filter set.
func (s *Store) Count(f alert.Filter) (int, error) {
	alerts, err := s.List(f)
	if err != nil {
		return 0, err
	}
	return len(alerts), nil
}

func trimRecordExt(name string) string {
	return name[:len(name)-len(".json")]
}
