package orders

import (
	"context"

	"github.com/ytget/storefront/internal/model"
	"github.com/ytget/storefront/internal/woocommerce"
)

// API is the part of the shop API used for orders.
type API interface {
	CreateOrder(ctx context.Context, lines []model.Product, form model.CheckoutForm) (*model.Order, error)
	OrdersByCustomer(ctx context.Context, customerID int) ([]model.Order, error)
	Order(ctx context.Context, id int) (*model.Order, error)
	DeleteOrder(ctx context.Context, id int) error
}

// Cart is saved before checkout and cleared after a successful one.
type Cart interface {
	Flush() error
	Clear()
}

// Session supplies the logged-in customer.
type Session interface {
	User() *model.User
}

var _ API = (*woocommerce.Client)(nil)
