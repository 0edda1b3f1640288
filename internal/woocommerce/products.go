package woocommerce

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/go-faster/errors"

	"github.com/ytget/storefront/internal/model"
)

// Catalog listing order.
const (
	ProductsOrderBy = "id"
	ProductsOrder   = "asc"
)

// ProductPage is one page of the catalog with the totals reported by the shop.
type ProductPage struct {
	Products   []model.Product
	Page       int
	PerPage    int
	Total      int
	TotalPages int
}

// ListProducts returns page of the catalog ordered by id. The pagination
// parameters take part in the signature.
func (c *Client) ListProducts(ctx context.Context, page, perPage int) (*ProductPage, error) {
	query := map[string]string{
		"per_page": strconv.Itoa(perPage),
		"page":     strconv.Itoa(page),
		"orderby":  ProductsOrderBy,
		"order":    ProductsOrder,
	}

	var products []model.Product
	header, err := c.getSigned(ctx, "/products", query, &products)
	if err != nil {
		return nil, errors.Wrapf(err, "list products page %d", page)
	}

	result := &ProductPage{
		Products:   products,
		Page:       page,
		PerPage:    perPage,
		Total:      headerInt(header.Get(HeaderTotal), 0),
		TotalPages: headerInt(header.Get(HeaderTotalPages), 1),
	}
	log.Printf("[woocommerce] products page=%d items=%d total=%d pages=%d",
		page, len(products), result.Total, result.TotalPages)
	return result, nil
}

// AllProducts returns the catalog without explicit pagination (the shop's
// default page).
func (c *Client) AllProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if _, err := c.getSigned(ctx, "/products", nil, &products); err != nil {
		return nil, errors.Wrap(err, "list all products")
	}
	return products, nil
}

// Product returns a single product. A missing product yields an error
// matching ErrNotFound.
func (c *Client) Product(ctx context.Context, id int) (*model.Product, error) {
	var product model.Product
	if _, err := c.getSigned(ctx, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		return nil, errors.Wrapf(err, "get product %d", id)
	}
	if product.ID == 0 {
		return nil, errors.Wrapf(ErrMalformedResponse, "product %d has no id", id)
	}
	return &product, nil
}

func headerInt(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
