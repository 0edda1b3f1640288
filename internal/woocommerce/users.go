package woocommerce

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/go-faster/errors"

	"github.com/ytget/storefront/internal/model"
)

// Registration is the sign-up form.
type Registration struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials are the login form.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned by the JWT token endpoint.
type TokenResponse struct {
	Token           string `json:"token"`
	UserEmail       string `json:"user_email"`
	UserNicename    string `json:"user_nicename"`
	UserDisplayName string `json:"user_display_name"`
}

// wpUser is the subset of a WordPress user object the storefront reads.
type wpUser struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

func (u wpUser) toModel() *model.User {
	username := u.Username
	if username == "" {
		username = u.Slug
	}
	return &model.User{ID: u.ID, Name: u.Name, Email: u.Email, Username: username}
}

// RegisterUser creates a WordPress account. It does not log the user in.
func (c *Client) RegisterUser(ctx context.Context, reg Registration) (*model.User, error) {
	if c.regUser == "" {
		log.Printf("[woocommerce] register user=%s refused: no registration credentials", reg.Username)
		return nil, ErrRegistrationDisabled
	}

	req, err := newJSONRequest(ctx, http.MethodPost, c.usersURL, reg)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.regUser, c.regPass)

	var created wpUser
	if _, err := c.do(req, &created); err != nil {
		return nil, errors.Wrapf(err, "register user %s", reg.Username)
	}
	log.Printf("[woocommerce] registered user id=%d username=%s", created.ID, reg.Username)
	return created.toModel(), nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds Credentials) (*TokenResponse, error) {
	req, err := newJSONRequest(ctx, http.MethodPost, c.tokenURL, creds)
	if err != nil {
		return nil, err
	}

	var token TokenResponse
	if _, err := c.do(req, &token); err != nil {
		return nil, errors.Wrapf(err, "login %s", creds.Username)
	}
	if strings.TrimSpace(token.Token) == "" {
		return nil, errors.Wrap(ErrMalformedResponse, "token response without token")
	}
	return &token, nil
}

// Me returns the profile of the user owning token.
func (c *Client) Me(ctx context.Context, token string) (*model.User, error) {
	req, err := newJSONRequest(ctx, http.MethodGet, c.usersURL+"/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var me wpUser
	if _, err := c.do(req, &me); err != nil {
		return nil, errors.Wrap(err, "get current user")
	}
	if me.ID == 0 {
		return nil, errors.Wrap(ErrMalformedResponse, "current user without id")
	}
	return me.toModel(), nil
}
