// Package catalog pages through the shop's products and computes the
// window of page numbers shown by the pager.
package catalog
