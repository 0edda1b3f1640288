// Package orders places orders from the persisted cart and keeps the
// shopper's order history, cached in the persistence port.
package orders
