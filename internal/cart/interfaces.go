package cart

import (
	"github.com/shopspring/decimal"

	"github.com/ytget/storefront/internal/model"
)

// Cart defines the interface for the cart store.
type Cart interface {
	SetUpdateCallback(func([]model.Product))
	Hydrate()
	Add(product model.Product)
	Remove(product model.Product)
	Clear()
	Flush() error
	Lines() []model.Product
	Len() int
	Total() decimal.Decimal
}

var _ Cart = (*Store)(nil)
