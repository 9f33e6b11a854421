package storage

import (
	"encoding/json"
	"fmt"

	"fyne.io/fyne/v2"
)

const preferencesKeyPrefix = "store."

// PreferencesStore implements Store on top of the app Preferences.
type PreferencesStore struct {
	prefs fyne.Preferences
}

func NewPreferencesStore(app fyne.App) *PreferencesStore {
	return &PreferencesStore{prefs: app.Preferences()}
}

// Get loads the record stored under key.
func (ps *PreferencesStore) Get(key string) (Record, error) {
	stored := ps.prefs.String(preferencesKeyPrefix + key)
	if stored == "" {
		return nil, ErrNotFound
	}
	record := make(Record)
	if err := json.Unmarshal([]byte(stored), &record); err != nil {
		return nil, fmt.Errorf("decode %q: %w", key, err)
	}
	return record, nil
}

// Put replaces the record stored under key.
func (ps *PreferencesStore) Put(key string, record Record) error {
	if record == nil {
		record = Record{}
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	ps.prefs.SetString(preferencesKeyPrefix+key, string(data))
	return nil
}
