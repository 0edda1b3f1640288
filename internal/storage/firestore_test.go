package storage

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFirestoreStore_Emulator runs against the Firestore emulator when
// FIRESTORE_EMULATOR_HOST is set.
func TestFirestoreStore_Emulator(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := NewFirestoreClient(context.Background(), "storefront-test", "")
	require.NoError(t, err)
	defer client.Close()

	s := NewFirestoreStore(client, "test-"+uuid.NewString())

	_, ok, err := s.Get(KeyCart)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(KeyCart, "[]"))
	require.NoError(t, s.Set(KeyAuthToken, "tok"))

	v, ok, err := s.Get(KeyCart)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)

	require.NoError(t, s.Remove(KeyAuthToken))
	_, ok, err = s.Get(KeyAuthToken)
	require.NoError(t, err)
	assert.False(t, ok)

	v, _, err = s.Get(KeyCart)
	require.NoError(t, err)
	assert.Equal(t, "[]", v, "removing one key keeps the others")
}

func TestNewFirestoreClient_EmptyProject(t *testing.T) {
	_, err := NewFirestoreClient(context.Background(), "  ", "")
	assert.Error(t, err)
}
