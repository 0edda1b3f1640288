package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
)

// Environment variable names. Each Legacy* name is read when the primary one
// is empty.
const (
	EnvConsumerKey          = "WC_CONSUMER_KEY"
	EnvConsumerSecret       = "WC_CONSUMER_SECRET"
	EnvProjectURL           = "PROJECT_URL"
	EnvRegistrationUser     = "WP_REGISTRATION_USER"
	EnvRegistrationPassword = "WP_REGISTRATION_PASSWORD"
	EnvHTTPTimeout          = "WC_HTTP_TIMEOUT"
	EnvStore                = "STOREFRONT_STORE"
	EnvFirestoreProject     = "FIRESTORE_PROJECT_ID"
	EnvFirestoreCredentials = "FIRESTORE_CREDENTIALS_FILE"
	EnvProfile              = "STOREFRONT_PROFILE"

	LegacyConsumerKey    = "NEXT_PUBLIC_WC_CONSUMER_KEY"
	LegacyConsumerSecret = "NEXT_PUBLIC_WC_CONSUMER_SECRET"
	LegacyProjectURL     = "NEXT_PUBLIC_PROJECT_URL"
)

// Persistence backends selectable with STOREFRONT_STORE.
const (
	StorePreferences = "preferences"
	StoreFirestore   = "firestore"
	StoreMemory      = "memory"
)

// DefaultEnvFile is loaded when present.
const DefaultEnvFile = ".env"

// Env is the deployment configuration. Missing values stay empty; the shop
// calls then fail at request time.
type Env struct {
	ConsumerKey          string
	ConsumerSecret       string
	ProjectURL           string
	RegistrationUser     string
	RegistrationPassword string
	HTTPTimeout          time.Duration
	Store                string
	FirestoreProject     string
	FirestoreCredentials string
	Profile              string
}

// LoadEnv loads the given dotenv files (DefaultEnvFile when none are given)
// and resolves Env. Missing files are skipped; variables already set in the
// process environment win over file values. The warnings list settings that
// will make features fail.
func LoadEnv(files ...string) (Env, []string, error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	for _, file := range files {
		if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return Env{}, nil, errors.Wrapf(err, "load %s", file)
		}
	}
	return ResolveEnv()
}

// ResolveEnv reads Env from the process environment.
func ResolveEnv() (Env, []string, error) {
	var warns []string
	env := Env{
		ConsumerKey:          getenvFallback(EnvConsumerKey, LegacyConsumerKey),
		ConsumerSecret:       getenvFallback(EnvConsumerSecret, LegacyConsumerSecret),
		ProjectURL:           getenvFallback(EnvProjectURL, LegacyProjectURL),
		RegistrationUser:     getenvTrim(EnvRegistrationUser),
		RegistrationPassword: os.Getenv(EnvRegistrationPassword),
		Store:                strings.ToLower(getenvOrDefault(EnvStore, StorePreferences)),
		FirestoreProject:     getenvTrim(EnvFirestoreProject),
		FirestoreCredentials: getenvTrim(EnvFirestoreCredentials),
		Profile:              getenvOrDefault(EnvProfile, "default"),
	}

	if raw := getenvTrim(EnvHTTPTimeout); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil || timeout <= 0 {
			return Env{}, nil, errors.Errorf("%s: invalid duration %q", EnvHTTPTimeout, raw)
		}
		env.HTTPTimeout = timeout
	}

	switch env.Store {
	case StorePreferences, StoreMemory:
	case StoreFirestore:
		if env.FirestoreProject == "" {
			return Env{}, nil, errors.Errorf("%s=%s requires %s", EnvStore, StoreFirestore, EnvFirestoreProject)
		}
	default:
		return Env{}, nil, errors.Errorf("%s: unknown store %q", EnvStore, env.Store)
	}

	if env.ProjectURL == "" {
		warns = append(warns, EnvProjectURL+" is empty (the shop cannot be reached)")
	}
	if env.ConsumerKey == "" || env.ConsumerSecret == "" {
		warns = append(warns, EnvConsumerKey+"/"+EnvConsumerSecret+" are empty (signed requests will be rejected)")
	}
	if env.RegistrationUser == "" {
		warns = append(warns, EnvRegistrationUser+" is empty (registration is disabled)")
	}
	return env, warns, nil
}

func getenvTrim(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func getenvOrDefault(key, def string) string {
	if v := getenvTrim(key); v != "" {
		return v
	}
	return def
}

func getenvFallback(key, legacy string) string {
	if v := getenvTrim(key); v != "" {
		return v
	}
	return getenvTrim(legacy)
}
