// Package alert defines the persisted alert record and the filter
// predicate shared by the store, the engine, and the CLI.
package alert

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Alert is a pending notification record. The JSON encoding below is the
// on-disk format: one file per record, optional fields omitted entirely
// when absent (never emitted as null), so external tools can read and
// write records directly.
type Alert struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	OnClick   string    `json:"on_click,omitempty"`
	Icon      string    `json:"icon,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Source    string    `json:"source,omitempty"`
	Session   string    `json:"session,omitempty"`
	Kind      string    `json:"kind,omitempty"`
	DedupeKey string    `json:"dedupe_key,omitempty"`
	Sound     string    `json:"sound,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewID generates a record ID of the form {unix_seconds}_{8 lowercase hex}.
//
// The leading seconds component makes IDs sortable by creation order; the
// random hex suffix keeps them unique with overwhelming probability even
// when several records are created within the same second. IDs are never
// reused: a removed record's ID cannot recur.
func NewID(now time.Time) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%d_%s", now.Unix(), hex[:8])
}
