package woocommerce

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-faster/errors"

	"github.com/ytget/storefront/internal/model"
)

// LineItemRequest is one product line of a new order.
type LineItemRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// OrderRequest is the body of POST /orders: the checkout form plus line items.
type OrderRequest struct {
	model.CheckoutForm
	LineItems []LineItemRequest `json:"line_items"`
}

// NewOrderRequest maps cart lines to order lines.
func NewOrderRequest(lines []model.Product, form model.CheckoutForm) OrderRequest {
	items := make([]LineItemRequest, 0, len(lines))
	for _, line := range lines {
		items = append(items, LineItemRequest{ProductID: line.ID, Quantity: line.Quantity})
	}
	return OrderRequest{CheckoutForm: form, LineItems: items}
}

// CreateOrder places an order for lines. With no lines it returns
// ErrEmptyCart without calling the shop.
func (c *Client) CreateOrder(ctx context.Context, lines []model.Product, form model.CheckoutForm) (*model.Order, error) {
	if len(lines) == 0 {
		log.Printf("[woocommerce] create order skipped: cart is empty")
		return nil, ErrEmptyCart
	}

	var order model.Order
	if err := c.sendSigned(ctx, http.MethodPost, "/orders", NewOrderRequest(lines, form), &order); err != nil {
		return nil, errors.Wrap(err, "create order")
	}
	if order.ID == 0 {
		return nil, errors.Wrap(ErrMalformedResponse, "created order without id")
	}
	log.Printf("[woocommerce] order created id=%d lines=%d status=%s", order.ID, len(lines), order.Status)
	return &order, nil
}

// OrdersByCustomer lists the orders of customerID.
func (c *Client) OrdersByCustomer(ctx context.Context, customerID int) ([]model.Order, error) {
	query := map[string]string{"customer": strconv.Itoa(customerID)}

	var orders []model.Order
	if _, err := c.getSigned(ctx, "/orders", query, &orders); err != nil {
		return nil, errors.Wrapf(err, "list orders of customer %d", customerID)
	}
	return orders, nil
}

// Order returns a single order.
func (c *Client) Order(ctx context.Context, id int) (*model.Order, error) {
	var order model.Order
	if _, err := c.getSigned(ctx, fmt.Sprintf("/orders/%d", id), nil, &order); err != nil {
		return nil, errors.Wrapf(err, "get order %d", id)
	}
	return &order, nil
}

// DeleteOrder deletes an order. The shop moves it to the trash.
func (c *Client) DeleteOrder(ctx context.Context, id int) error {
	if err := c.sendSigned(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", id), nil, nil); err != nil {
		return errors.Wrapf(err, "delete order %d", id)
	}
	log.Printf("[woocommerce] order deleted id=%d", id)
	return nil
}
