package model

import (
	"fmt"
	"strings"
	"time"
)

// WooCommerceTimeLayout is the layout of date_created in the shop's timezone.
const WooCommerceTimeLayout = "2006-01-02T15:04:05"

// DisplayDateLayout is used when listing orders.
const DisplayDateLayout = "2006-01-02"

// OrderLineItem is one product line of a placed order.
type OrderLineItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Order is a read-only projection of an order held by the shop.
type Order struct {
	ID             int             `json:"id"`
	DateCreated    string          `json:"date_created"`
	Status         OrderStatus     `json:"status"`
	Total          string          `json:"total"`
	CurrencySymbol string          `json:"currency_symbol"`
	LineItems      []OrderLineItem `json:"line_items"`
}

// CreatedAt parses DateCreated. The second result is false when the date is
// missing or in an unknown format.
func (o *Order) CreatedAt() (time.Time, bool) {
	raw := strings.TrimSpace(o.DateCreated)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{WooCommerceTimeLayout, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// GetDisplayDate returns the creation date as yyyy-mm-dd, or "—" if unknown
func (o *Order) GetDisplayDate() string {
	t, ok := o.CreatedAt()
	if !ok {
		return "—"
	}
	return t.Format(DisplayDateLayout)
}

// GetDisplayTotal returns the total prefixed with the order's currency symbol
func (o *Order) GetDisplayTotal() string {
	if o.CurrencySymbol == "" {
		return o.Total
	}
	return o.CurrencySymbol + " " + o.Total
}

// GetItemsSummary lists line items as "name (quantity)" joined by ", "
func (o *Order) GetItemsSummary() string {
	parts := make([]string, 0, len(o.LineItems))
	for _, item := range o.LineItems {
		parts = append(parts, fmt.Sprintf("%s (%d)", item.Name, item.Quantity))
	}
	return strings.Join(parts, ", ")
}
