package storage

import (
	"encoding/json"
	"strings"

	"github.com/go-faster/errors"
)

// Keys of the records mirrored into the store.
const (
	KeyCart       = "cart"
	KeyUserData   = "user_data"
	KeyAuthToken  = "auth_token"
	KeyOrderItems = "orderItems"
	KeyOrderOwner = "orderItemsOwner" // customer id the orderItems belong to
)

// Store is a persistent string key-value store.
type Store interface {
	// Get returns the value for key; ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

// LoadJSON decodes the JSON value stored under key into dst. It returns false
// without touching dst when the key is absent, empty, or holds JSON null.
func LoadJSON(s Store, key string, dst any) (bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil {
		return false, errors.Wrapf(err, "load %s", key)
	}
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" || raw == "null" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, errors.Wrapf(err, "decode %s", key)
	}
	return true, nil
}

// SaveJSON overwrites key with the JSON encoding of v.
func SaveJSON(s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}
	if err := s.Set(key, string(data)); err != nil {
		return errors.Wrapf(err, "save %s", key)
	}
	return nil
}
