// Package history remembers recent generation runs.
// The most recent template is offered as the default answer of the next
// session, and `docbatch history` lists what was generated.
package history

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/raphi011/docbatch/internal/storage"
)

// MaxEntries caps the number of remembered runs.
const MaxEntries = 20

// Entry is one remembered template.
type Entry struct {
	Template string    `json:"template"`
	Ext      string    `json:"ext"`
	Count    int       `json:"count"`     // copies in the latest run
	Uses     int       `json:"uses"`      // runs with this template and ext
	LastUsed time.Time `json:"last_used"`
}

// History holds entries, most recent first.
type History struct {
	Entries []Entry `json:"entries"`
}

// DefaultPath returns $XDG_STATE_HOME/docbatch/history.json, or
// ~/.local/state/docbatch/history.json.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "docbatch", "history.json"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", "docbatch", "history.json"), nil
}

// Load reads the history at path. A missing file yields an empty history.
func Load(path string) (*History, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &History{}, nil
	}
	if err != nil {
		return nil, err
	}

	var h History
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// Save writes the history to path atomically.
func (h *History) Save(path string) error {
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}
	return storage.WriteFile(path, data)
}

// Add moves the entry for template and ext to the front, creating it if
// needed, and trims the history to MaxEntries.
func (h *History) Add(template, ext string, count int, now time.Time) {
	e := Entry{Template: template, Ext: ext}
	if i := h.index(template, ext); i >= 0 {
		e = h.Entries[i]
		h.Entries = slices.Delete(h.Entries, i, i+1)
	}
	e.Count = count
	e.Uses++
	e.LastUsed = now

	h.Entries = slices.Insert(h.Entries, 0, e)
	if len(h.Entries) > MaxEntries {
		h.Entries = h.Entries[:MaxEntries]
	}
}

// MostRecent returns the latest template, or "" for an empty history.
func (h *History) MostRecent() string {
	if len(h.Entries) == 0 {
		return ""
	}
	return h.Entries[0].Template
}

func (h *History) index(template, ext string) int {
	return slices.IndexFunc(h.Entries, func(e Entry) bool {
		return e.Template == template && e.Ext == ext
	})
}

// Record adds a run to the history file at path. The file is locked for
// the read-modify-write.
func Record(path, template, ext string, count int) error {
	return storage.WithLock(path, func() error {
		h, err := Load(path)
		if err != nil {
			// Unreadable history is replaced.
			h = &History{}
		}
		h.Add(template, ext, count, time.Now())
		return h.Save(path)
	})
}

// Clear removes the history file under the same lock Record uses.
func Clear(path string) error {
	return storage.WithLock(path, func() error {
		err := os.Remove(path)
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	})
}
