package ui

import (
	"context"

	"fyne.io/fyne/v2"

	"github.com/ytget/storefront/internal/cart"
	"github.com/ytget/storefront/internal/catalog"
	"github.com/ytget/storefront/internal/model"
	"github.com/ytget/storefront/internal/orders"
	"github.com/ytget/storefront/internal/platform"
	"github.com/ytget/storefront/internal/session"
	"github.com/ytget/storefront/internal/woocommerce"
)

// Session is what the views need from the session holder.
type Session interface {
	SetUpdateCallback(func(*model.User))
	IsAuthenticated() bool
	User() *model.User
	Login(ctx context.Context, creds woocommerce.Credentials) (*model.User, error)
	Logout()
	Register(ctx context.Context, reg woocommerce.Registration) (*model.User, error)
}

// Orders is what the views need from the order service.
type Orders interface {
	Checkout(ctx context.Context, form model.CheckoutForm) (*model.Order, error)
	List(ctx context.Context, refresh bool) ([]model.Order, error)
	Cached() []model.Order
	View(ctx context.Context, id int) (*model.Order, error)
	Delete(ctx context.Context, order model.Order) ([]model.Order, error)
}

// Catalog is what the views need from the catalog browser.
type Catalog interface {
	Page(ctx context.Context, n int) (*woocommerce.ProductPage, error)
	Next(ctx context.Context) (*woocommerce.ProductPage, error)
	Prev(ctx context.Context) (*woocommerce.ProductPage, error)
	Reload(ctx context.Context) (*woocommerce.ProductPage, error)
	Current() (page, totalPages int)
	Product(ctx context.Context, id int) (*model.Product, error)
	SetPageSize(n int)
}

// Images loads product pictures.
type Images interface {
	Load(ctx context.Context, rawURL string) (fyne.Resource, error)
}

// Services bundles everything the root UI drives.
type Services struct {
	Cart    cart.Cart
	Session Session
	Orders  Orders
	Catalog Catalog
	Images  Images
}

var (
	_ Session = (*session.Holder)(nil)
	_ Orders  = (*orders.Service)(nil)
	_ Catalog = (*catalog.Browser)(nil)
	_ Images  = (*platform.ImageLoader)(nil)
)
