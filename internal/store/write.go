package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rcail/nudge/internal/alert"
)

// Save serializes the record and writes it atomically to the file keyed
// by its ID, creating the containing directory on first use. Returns the
// final path of the record file.
//
// The write goes to a temp file in the same directory followed by a
// rename, so a partially-written record is never visible under the final
// name. Same-directory placement keeps the rename on one filesystem.
func (s *Store) Save(a *alert.Alert) (string, error) {
	if a.ID == "" {
		return "", fmt.Errorf("save alert: empty id")
	}

	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("save alert %s: %w", a.ID, err)
	}

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return "", fmt.Errorf("save alert %s: encode: %w", a.ID, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, "."+a.ID+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("save alert %s: %w", a.ID, err)
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil || closeErr != nil {
		_ = os.Remove(tmpName)
		if writeErr != nil {
			return "", fmt.Errorf("save alert %s: %w", a.ID, writeErr)
		}
		return "", fmt.Errorf("save alert %s: %w", a.ID, closeErr)
	}

	final := s.path(a.ID)
	if err := os.Rename(tmpName, final); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("save alert %s: %w", a.ID, err)
	}

	return final, nil
}

// Remove loads the record (so callers get the prior value, e.g. its
// on-click command) and then deletes its file. Removing an unknown id is
// a no-op that returns (nil, nil).
func (s *Store) Remove(id string) (*alert.Alert, error) {
	a, err := s.Load(id)
	if err != nil {
		return nil, err
	}

	if err := os.Remove(s.path(id)); err != nil {
		if os.IsNotExist(err) {
			return a, nil
		}
		return nil, fmt.Errorf("remove alert %s: %w", id, err)
	}
	return a, nil
}

// Clear removes every record matching the filter and returns the
// pre-removal set in list order. A filter that matches nothing removes
// nothing and is not an error.
func (s *Store) Clear(f alert.Filter) ([]alert.Alert, error) {
	matched, err := s.List(f)
	if err != nil {
		return nil, err
	}

	for _, a := range matched {
		if err := os.Remove(s.path(a.ID)); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("clear alert %s: %w", a.ID, err)
		}
	}
	return matched, nil
}

// isRecordFile reports whether a directory entry looks like a record
// file. Temp files from in-flight writes start with a dot and are
// skipped.
func isRecordFile(name string) bool {
	return filepath.Ext(name) == ".json" && name[0] != '.'
}
