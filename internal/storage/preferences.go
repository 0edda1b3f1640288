package storage

import "fyne.io/fyne/v2"

// absentMarker is the fallback used to tell a missing key from an empty value.
const absentMarker = "\x00absent\x00"

// PreferencesStore keeps values in the Fyne application preferences, which
// survive restarts the same way browser local storage does.
type PreferencesStore struct {
	prefs fyne.Preferences
}

// NewPreferencesStore wraps the preferences of app.
func NewPreferencesStore(app fyne.App) *PreferencesStore {
	return &PreferencesStore{prefs: app.Preferences()}
}

// Get returns the value stored under key.
func (p *PreferencesStore) Get(key string) (string, bool, error) {
	v := p.prefs.StringWithFallback(key, absentMarker)
	if v == absentMarker {
		return "", false, nil
	}
	return v, true, nil
}

// Set stores value under key.
func (p *PreferencesStore) Set(key, value string) error {
	p.prefs.SetString(key, value)
	return nil
}

// Remove deletes key.
func (p *PreferencesStore) Remove(key string) error {
	p.prefs.RemoveValue(key)
	return nil
}
