package session

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/storefront/internal/model"
	"github.com/ytget/storefront/internal/storage"
	"github.com/ytget/storefront/internal/woocommerce"
)

type fakeAPI struct {
	loginErr    error
	meErr       error
	registerErr error
	loginCalls  int
	meToken     string
	registered  []woocommerce.Registration
}

func (f *fakeAPI) Login(_ context.Context, creds woocommerce.Credentials) (*woocommerce.TokenResponse, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &woocommerce.TokenResponse{
		Token:        "tok-" + creds.Username,
		UserEmail:    creds.Username + "@example.com",
		UserNicename: creds.Username,
	}, nil
}

func (f *fakeAPI) Me(_ context.Context, token string) (*model.User, error) {
	f.meToken = token
	if f.meErr != nil {
		return nil, f.meErr
	}
	return &model.User{ID: 31, Name: "Ann Smith", Email: "ignored@example.com"}, nil
}

func (f *fakeAPI) RegisterUser(_ context.Context, reg woocommerce.Registration) (*model.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	f.registered = append(f.registered, reg)
	return &model.User{ID: 40, Name: reg.Name, Username: reg.Username}, nil
}

func TestHolder_Login(t *testing.T) {
	api := &fakeAPI{}
	mem := storage.NewMemoryStore()
	h := NewHolder(api, mem)

	var notified *model.User
	h.SetUpdateCallback(func(u *model.User) { notified = u })

	user, err := h.Login(context.Background(), woocommerce.Credentials{Username: "ann", Password: "pw"})
	require.NoError(t, err)

	expected := &model.User{ID: 31, Name: "Ann Smith", Email: "ann@example.com", Username: "ann"}
	assert.Equal(t, expected, user)
	assert.Equal(t, expected, h.User())
	assert.Equal(t, expected, notified)
	assert.True(t, h.IsAuthenticated())
	assert.Equal(t, "tok-ann", h.Token())
	assert.Equal(t, "tok-ann", api.meToken)

	token, ok, err := mem.Get(storage.KeyAuthToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-ann", token)

	var stored model.User
	found, err := storage.LoadJSON(mem, storage.KeyUserData, &stored)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, *expected, stored)
}

func TestHolder_LoginFailureLeavesStateUntouched(t *testing.T) {
	tests := []struct {
		name string
		api  *fakeAPI
		kind woocommerce.Kind
	}{
		{"bad password", &fakeAPI{loginErr: &woocommerce.APIError{StatusCode: 403}}, woocommerce.KindUnauthorized},
		{"profile fails", &fakeAPI{meErr: &woocommerce.APIError{StatusCode: 500}}, woocommerce.KindServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := storage.NewMemoryStore()
			h := NewHolder(tt.api, mem)

			user, err := h.Login(context.Background(), woocommerce.Credentials{Username: "ann", Password: "x"})
			assert.Nil(t, user)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidLogin)
			assert.Equal(t, tt.kind, woocommerce.Classify(err))

			var loginErr *LoginError
			require.True(t, errors.As(err, &loginErr))
			assert.Equal(t, "ann", loginErr.Username)

			assert.False(t, h.IsAuthenticated())
			assert.Empty(t, h.Token())
			assert.Equal(t, 0, mem.Keys(), "nothing persisted on failure")
		})
	}
}

func TestHolder_FailedLoginKeepsPreviousSession(t *testing.T) {
	api := &fakeAPI{}
	h := NewHolder(api, storage.NewMemoryStore())
	_, err := h.Login(context.Background(), woocommerce.Credentials{Username: "ann"})
	require.NoError(t, err)

	api.meErr = errors.New("boom")
	_, err = h.Login(context.Background(), woocommerce.Credentials{Username: "bob"})
	require.Error(t, err)

	assert.Equal(t, "ann", h.User().Username)
	assert.Equal(t, "tok-ann", h.Token())
}

func TestHolder_Logout(t *testing.T) {
	mem := storage.NewMemoryStore()
	require.NoError(t, mem.Set(storage.KeyCart, "[]"))
	h := NewHolder(&fakeAPI{}, mem)
	_, err := h.Login(context.Background(), woocommerce.Credentials{Username: "ann"})
	require.NoError(t, err)

	calls := 0
	h.SetUpdateCallback(func(u *model.User) {
		calls++
		assert.Nil(t, u)
	})
	h.Logout()

	assert.False(t, h.IsAuthenticated())
	assert.Nil(t, h.User())
	assert.Empty(t, h.Token())
	assert.Equal(t, 1, calls)

	_, ok, _ := mem.Get(storage.KeyUserData)
	assert.False(t, ok)
	_, ok, _ = mem.Get(storage.KeyAuthToken)
	assert.False(t, ok)
	_, ok, _ = mem.Get(storage.KeyCart)
	assert.True(t, ok, "logout keeps the cart")

	h.Logout()
	assert.False(t, h.IsAuthenticated(), "logout twice is harmless")
}

func TestHolder_Hydrate(t *testing.T) {
	tests := []struct {
		name          string
		user          string
		token         string
		authenticated bool
	}{
		{"user and token", `{"id":31,"name":"Ann","email":"ann@example.com","username":"ann"}`, "tok", true},
		{"user without token", `{"id":31,"name":"Ann"}`, "", true},
		{"token without user", "", "tok", false},
		{"null user", "null", "tok", false},
		{"malformed user", "{", "tok", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := storage.NewMemoryStore()
			if tt.user != "" {
				require.NoError(t, mem.Set(storage.KeyUserData, tt.user))
			}
			if tt.token != "" {
				require.NoError(t, mem.Set(storage.KeyAuthToken, tt.token))
			}

			h := NewHolder(&fakeAPI{}, mem)
			h.Hydrate()

			assert.Equal(t, tt.authenticated, h.IsAuthenticated())
			assert.Equal(t, tt.token, h.Token())
			if tt.authenticated {
				assert.Equal(t, 31, h.User().ID)
			}
		})
	}
}

func TestHolder_RegisterDoesNotLogIn(t *testing.T) {
	api := &fakeAPI{}
	mem := storage.NewMemoryStore()
	h := NewHolder(api, mem)

	reg := woocommerce.Registration{Name: "Ann", Username: "ann", Email: "ann@example.com", Password: "pw"}
	user, err := h.Register(context.Background(), reg)
	require.NoError(t, err)
	assert.Equal(t, 40, user.ID)
	assert.Equal(t, []woocommerce.Registration{reg}, api.registered)
	assert.False(t, h.IsAuthenticated())
	assert.Equal(t, 0, api.loginCalls)
	assert.Equal(t, 0, mem.Keys())

	api.registerErr = woocommerce.ErrRegistrationDisabled
	_, err = h.Register(context.Background(), reg)
	assert.ErrorIs(t, err, woocommerce.ErrRegistrationDisabled)
}

func TestHolder_UserIsACopy(t *testing.T) {
	h := NewHolder(&fakeAPI{}, storage.NewMemoryStore())
	_, err := h.Login(context.Background(), woocommerce.Credentials{Username: "ann"})
	require.NoError(t, err)

	h.User().Name = "changed"
	assert.Equal(t, "Ann Smith", h.User().Name)
}
