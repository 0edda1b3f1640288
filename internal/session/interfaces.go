package session

import (
	"context"

	"github.com/ytget/storefront/internal/model"
	"github.com/ytget/storefront/internal/woocommerce"
)

// Authenticator is the part of the shop API the session needs.
type Authenticator interface {
	Login(ctx context.Context, creds woocommerce.Credentials) (*woocommerce.TokenResponse, error)
	Me(ctx context.Context, token string) (*model.User, error)
	RegisterUser(ctx context.Context, reg woocommerce.Registration) (*model.User, error)
}

var _ Authenticator = (*woocommerce.Client)(nil)
