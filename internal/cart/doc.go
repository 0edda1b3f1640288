// Package cart holds the shopper's cart: an ordered list of product lines
// mirrored into the persistence port after every change.
package cart
