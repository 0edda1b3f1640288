package storage

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

func stores(t *testing.T) map[string]Store {
	t.Helper()
	return map[string]Store{
		"memory":      NewMemoryStore(),
		"preferences": NewPreferencesStore(test.NewApp()),
	}
}

func TestStore_GetSetRemove(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.Get(KeyAuthToken)
			require.NoError(t, err)
			assert.False(t, ok, "absent key should report ok=false")

			require.NoError(t, s.Set(KeyAuthToken, "tok"))
			v, ok, err := s.Get(KeyAuthToken)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "tok", v)

			require.NoError(t, s.Set(KeyAuthToken, ""))
			v, ok, err = s.Get(KeyAuthToken)
			require.NoError(t, err)
			assert.True(t, ok, "empty value is still present")
			assert.Empty(t, v)

			require.NoError(t, s.Remove(KeyAuthToken))
			_, ok, err = s.Get(KeyAuthToken)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestJSONRoundTripThroughStore(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			in := []line{{ID: 1, Quantity: 1}, {ID: 1, Quantity: 1}}
			require.NoError(t, SaveJSON(s, KeyCart, in))

			raw, _, _ := s.Get(KeyCart)
			assert.JSONEq(t, `[{"id":1,"quantity":1},{"id":1,"quantity":1}]`, raw)

			var out []line
			found, err := LoadJSON(s, KeyCart, &out)
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, in, out)
		})
	}
}

func TestLoadJSON_AbsentAndNull(t *testing.T) {
	s := NewMemoryStore()

	var out []line
	found, err := LoadJSON(s, KeyCart, &out)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(KeyUserData, "null"))
	var user map[string]any
	found, err = LoadJSON(s, KeyUserData, &user)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, user)
}

func TestLoadJSON_Malformed(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Set(KeyCart, "{not json"))

	var out []line
	found, err := LoadJSON(s, KeyCart, &out)
	assert.Error(t, err)
	assert.False(t, found)
}

func TestFirestoreStore_NilClient(t *testing.T) {
	s := NewFirestoreStore(nil, "")
	assert.Equal(t, "default", s.profile)

	_, _, err := s.Get(KeyCart)
	assert.Error(t, err)
	assert.Error(t, s.Set(KeyCart, "[]"))
	assert.Error(t, s.Remove(KeyCart))
}
