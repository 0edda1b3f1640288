package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	EnvConsumerKey, EnvConsumerSecret, EnvProjectURL, EnvRegistrationUser,
	EnvRegistrationPassword, EnvHTTPTimeout, EnvStore, EnvFirestoreProject,
	EnvFirestoreCredentials, EnvProfile, LegacyConsumerKey, LegacyConsumerSecret,
	LegacyProjectURL,
}

// clearEnv unsets every variable for the test; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestResolveEnv_Defaults(t *testing.T) {
	clearEnv(t)

	env, warns, err := ResolveEnv()
	require.NoError(t, err)
	assert.Equal(t, StorePreferences, env.Store)
	assert.Equal(t, "default", env.Profile)
	assert.Zero(t, env.HTTPTimeout)
	assert.Len(t, warns, 3)
}

func TestResolveEnv_Values(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConsumerKey, " ck_live ")
	t.Setenv(EnvConsumerSecret, "cs_live")
	t.Setenv(EnvProjectURL, "https://shop.example.com/")
	t.Setenv(EnvRegistrationUser, "registrar")
	t.Setenv(EnvRegistrationPassword, " pass with spaces ")
	t.Setenv(EnvHTTPTimeout, "5s")
	t.Setenv(EnvStore, "Memory")

	env, warns, err := ResolveEnv()
	require.NoError(t, err)
	assert.Empty(t, warns)
	assert.Equal(t, Env{
		ConsumerKey:          "ck_live",
		ConsumerSecret:       "cs_live",
		ProjectURL:           "https://shop.example.com/",
		RegistrationUser:     "registrar",
		RegistrationPassword: " pass with spaces ",
		HTTPTimeout:          5 * time.Second,
		Store:                StoreMemory,
		Profile:              "default",
	}, env)
}

func TestResolveEnv_LegacyNames(t *testing.T) {
	clearEnv(t)
	t.Setenv(LegacyConsumerKey, "ck_old")
	t.Setenv(LegacyConsumerSecret, "cs_old")
	t.Setenv(LegacyProjectURL, "https://old.example.com/")
	t.Setenv(EnvConsumerKey, "ck_new")

	env, _, err := ResolveEnv()
	require.NoError(t, err)
	assert.Equal(t, "ck_new", env.ConsumerKey, "primary name wins")
	assert.Equal(t, "cs_old", env.ConsumerSecret)
	assert.Equal(t, "https://old.example.com/", env.ProjectURL)
}

func TestResolveEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"bad timeout", map[string]string{EnvHTTPTimeout: "soon"}},
		{"negative timeout", map[string]string{EnvHTTPTimeout: "-1s"}},
		{"unknown store", map[string]string{EnvStore: "redis"}},
		{"firestore without project", map[string]string{EnvStore: StoreFirestore}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.vars {
				t.Setenv(k, v)
			}
			_, _, err := ResolveEnv()
			assert.Error(t, err)
		})
	}
}

func TestResolveEnv_Firestore(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvStore, StoreFirestore)
	t.Setenv(EnvFirestoreProject, "shop-prod")
	t.Setenv(EnvProfile, "kiosk-1")

	env, _, err := ResolveEnv()
	require.NoError(t, err)
	assert.Equal(t, "shop-prod", env.FirestoreProject)
	assert.Equal(t, "kiosk-1", env.Profile)
}

func TestLoadEnv_File(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConsumerSecret, "from-process")

	dir := t.TempDir()
	file := filepath.Join(dir, "shop.env")
	content := "WC_CONSUMER_KEY=ck_file\nWC_CONSUMER_SECRET=cs_file\nPROJECT_URL=https://file.example.com/\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	env, _, err := LoadEnv(file, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "ck_file", env.ConsumerKey)
	assert.Equal(t, "from-process", env.ConsumerSecret, "process environment wins")
	assert.Equal(t, "https://file.example.com/", env.ProjectURL)
}
