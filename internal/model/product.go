package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyPrefix is prepended to rendered prices.
const CurrencyPrefix = "$"

// DefaultQuantity is the quantity every new cart line starts with.
const DefaultQuantity = 1

// Image is a product picture reference.
type Image struct {
	Src string `json:"src"`
}

// Category is a catalog category a product belongs to.
type Category struct {
	Name string `json:"name"`
}

// Product is a catalog item. Inside the cart it doubles as a cart line and
// carries Quantity.
//
// Prices are WooCommerce price strings; an empty string means "not set".
type Product struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	RegularPrice string     `json:"regular_price"`
	SalePrice    string     `json:"sale_price,omitempty"`
	Price        string     `json:"price,omitempty"`
	Images       []Image    `json:"images"`
	Categories   []Category `json:"categories"`
	Quantity     int        `json:"quantity"`
}

// AsCartLine returns a copy of p suitable for appending to the cart.
func (p Product) AsCartLine() Product {
	line := p
	line.Images = append([]Image(nil), p.Images...)
	line.Categories = append([]Category(nil), p.Categories...)
	line.Quantity = DefaultQuantity
	return line
}

// OnSale reports whether a sale price is set.
func (p Product) OnSale() bool {
	return strings.TrimSpace(p.SalePrice) != ""
}

// EffectivePrice returns the unit price used for totals: sale price if set,
// else regular price, else the generic price, else zero.
func (p Product) EffectivePrice() decimal.Decimal {
	for _, raw := range []string{p.SalePrice, p.RegularPrice, p.Price} {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		return parsePrice(raw)
	}
	return decimal.Zero
}

// LineTotal returns EffectivePrice multiplied by Quantity.
func (p Product) LineTotal() decimal.Decimal {
	return p.EffectivePrice().Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// ListPrice returns the price shown as the "normal" price: regular price,
// falling back to the generic price and finally "0".
func (p Product) ListPrice() string {
	for _, raw := range []string{p.RegularPrice, p.Price} {
		if s := strings.TrimSpace(raw); s != "" {
			return s
		}
	}
	return "0"
}

// DisplayPrice renders the price the shopper pays.
func (p Product) DisplayPrice() string {
	if p.OnSale() {
		return CurrencyPrefix + strings.TrimSpace(p.SalePrice)
	}
	return CurrencyPrefix + p.ListPrice()
}

// ThumbnailURL returns the first image source, or "" when the product has none.
func (p Product) ThumbnailURL() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].Src
}

// CategoryNames joins category names with ", ".
func (p Product) CategoryNames() string {
	names := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}

// CartTotal sums the line totals of lines.
func CartTotal(lines []Product) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotal())
	}
	return total
}

// FormatAmount renders an amount with two decimals and the currency prefix.
func FormatAmount(amount decimal.Decimal) string {
	return CurrencyPrefix + amount.StringFixed(2)
}

// parsePrice converts a WooCommerce price string; anything unparseable is zero.
func parsePrice(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}
