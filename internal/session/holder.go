package session

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/go-faster/errors"

	"github.com/ytget/storefront/internal/model"
	"github.com/ytget/storefront/internal/storage"
	"github.com/ytget/storefront/internal/woocommerce"
)

// ErrInvalidLogin is matched by every login failure. The underlying cause
// stays in the chain for woocommerce.Classify.
var ErrInvalidLogin = errors.New("invalid login")

// LoginError reports a failed login.
type LoginError struct {
	Username string
	Cause    error
}

func (e *LoginError) Error() string {
	return "login " + e.Username + ": " + e.Cause.Error()
}

func (e *LoginError) Unwrap() error { return e.Cause }

func (e *LoginError) Is(target error) bool { return target == ErrInvalidLogin }

// Holder keeps the current user and token.
type Holder struct {
	mu       sync.RWMutex
	user     *model.User
	token    string
	api      Authenticator
	store    storage.Store
	onUpdate func(*model.User)
}

// NewHolder creates a logged-out holder. Call Hydrate to restore a saved session.
func NewHolder(api Authenticator, store storage.Store) *Holder {
	return &Holder{api: api, store: store}
}

// SetUpdateCallback sets the function called with the current user (nil when
// logged out) after each change.
func (h *Holder) SetUpdateCallback(callback func(*model.User)) {
	h.mu.Lock()
	h.onUpdate = callback
	h.mu.Unlock()
}

// Hydrate restores the session. The shopper counts as authenticated when a
// profile is stored, whether or not a token is.
func (h *Holder) Hydrate() {
	var user model.User
	found, err := storage.LoadJSON(h.store, storage.KeyUserData, &user)
	if err != nil {
		log.Printf("[session] hydrate user FAILED err=%v", err)
		found = false
	}

	token, _, err := h.store.Get(storage.KeyAuthToken)
	if err != nil {
		log.Printf("[session] hydrate token FAILED err=%v", err)
		token = ""
	}

	h.mu.Lock()
	h.token = token
	h.user = nil
	if found {
		h.user = &user
	}
	h.mu.Unlock()

	log.Printf("[session] hydrated authenticated=%t", found)
	h.notifyUpdate()
}

// IsAuthenticated reports whether a user is logged in.
func (h *Holder) IsAuthenticated() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.user != nil
}

// User returns a copy of the current user, or nil.
func (h *Holder) User() *model.User {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.user == nil {
		return nil
	}
	u := *h.user
	return &u
}

// Token returns the bearer token, possibly empty.
func (h *Holder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login exchanges credentials for a token, then fetches the profile. State
// changes only when both calls succeed.
func (h *Holder) Login(ctx context.Context, creds woocommerce.Credentials) (*model.User, error) {
	username := strings.TrimSpace(creds.Username)
	fail := func(err error) (*model.User, error) {
		log.Printf("[session] login user=%s FAILED err=%v", username, err)
		return nil, &LoginError{Username: username, Cause: err}
	}

	tok, err := h.api.Login(ctx, creds)
	if err != nil {
		return fail(err)
	}
	me, err := h.api.Me(ctx, tok.Token)
	if err != nil {
		return fail(err)
	}

	user := &model.User{
		ID:       me.ID,
		Name:     me.Name,
		Email:    tok.UserEmail,
		Username: tok.UserNicename,
	}

	if err := h.store.Set(storage.KeyAuthToken, tok.Token); err != nil {
		log.Printf("[session] persist token FAILED err=%v", err)
	}
	if err := storage.SaveJSON(h.store, storage.KeyUserData, user); err != nil {
		log.Printf("[session] persist user FAILED err=%v", err)
	}

	h.mu.Lock()
	h.token = tok.Token
	h.user = user
	h.mu.Unlock()

	log.Printf("[session] login user=%s id=%d", user.Username, user.ID)
	h.notifyUpdate()

	u := *user
	return &u, nil
}

// Logout forgets the user and token. It never fails.
func (h *Holder) Logout() {
	h.mu.Lock()
	h.user = nil
	h.token = ""
	h.mu.Unlock()

	for _, key := range []string{storage.KeyUserData, storage.KeyAuthToken} {
		if err := h.store.Remove(key); err != nil {
			log.Printf("[session] remove %s FAILED err=%v", key, err)
		}
	}

	log.Printf("[session] logout")
	h.notifyUpdate()
}

// Register creates an account. The session is left as it was; the shopper
// logs in separately.
func (h *Holder) Register(ctx context.Context, reg woocommerce.Registration) (*model.User, error) {
	user, err := h.api.RegisterUser(ctx, reg)
	if err != nil {
		log.Printf("[session] register user=%s FAILED err=%v", reg.Username, err)
		return nil, err
	}
	return user, nil
}

func (h *Holder) notifyUpdate() {
	callback := func() func(*model.User) {
		h.mu.RLock()
		defer h.mu.RUnlock()
		return h.onUpdate
	}()
	if callback != nil {
		callback(h.User())
	}
}
