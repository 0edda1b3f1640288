package woocommerce

import (
	"context"

	"github.com/ytget/storefront/internal/model"
)

// API is the full set of remote operations the storefront uses.
type API interface {
	ListProducts(ctx context.Context, page, perPage int) (*ProductPage, error)
	AllProducts(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id int) (*model.Product, error)

	RegisterUser(ctx context.Context, reg Registration) (*model.User, error)
	Login(ctx context.Context, creds Credentials) (*TokenResponse, error)
	Me(ctx context.Context, token string) (*model.User, error)

	CreateOrder(ctx context.Context, lines []model.Product, form model.CheckoutForm) (*model.Order, error)
	OrdersByCustomer(ctx context.Context, customerID int) ([]model.Order, error)
	Order(ctx context.Context, id int) (*model.Order, error)
	DeleteOrder(ctx context.Context, id int) error
}

var _ API = (*Client)(nil)
