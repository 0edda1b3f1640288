package catalog

import (
	"context"
	"log"
	"sync"

	"github.com/ytget/storefront/internal/model"
	"github.com/ytget/storefront/internal/woocommerce"
)

// Page size bounds.
const (
	DefaultPageSize = 20
	MinPageSize     = 1
	MaxPageSize     = 100
)

// PageWindow is the number of page buttons shown by the pager.
const PageWindow = 5

// API is the part of the shop API the catalog needs.
type API interface {
	ListProducts(ctx context.Context, page, perPage int) (*woocommerce.ProductPage, error)
	Product(ctx context.Context, id int) (*model.Product, error)
}

var _ API = (*woocommerce.Client)(nil)

// Browser remembers the current page of the catalog.
type Browser struct {
	api        API
	mu         sync.Mutex
	pageSize   int
	current    int
	totalPages int
}

// NewBrowser creates a Browser positioned before the first page.
func NewBrowser(api API, pageSize int) *Browser {
	return &Browser{api: api, pageSize: ClampPageSize(pageSize), current: 1, totalPages: 1}
}

// ClampPageSize keeps n within [MinPageSize, MaxPageSize]; zero means the default.
func ClampPageSize(n int) int {
	switch {
	case n == 0:
		return DefaultPageSize
	case n < MinPageSize:
		return MinPageSize
	case n > MaxPageSize:
		return MaxPageSize
	}
	return n
}

// SetPageSize changes the page size and rewinds to the first page.
func (b *Browser) SetPageSize(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pageSize = ClampPageSize(n)
	b.current = 1
}

// PageSize returns the configured page size.
func (b *Browser) PageSize() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pageSize
}

// Current returns the last requested page and the last known page count.
func (b *Browser) Current() (page, totalPages int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current, b.totalPages
}

// Page loads page n. Values below 1 load the first page.
func (b *Browser) Page(ctx context.Context, n int) (*woocommerce.ProductPage, error) {
	if n < 1 {
		n = 1
	}

	b.mu.Lock()
	size := b.pageSize
	b.mu.Unlock()

	page, err := b.api.ListProducts(ctx, n, size)
	if err != nil {
		log.Printf("[catalog] page=%d FAILED err=%v", n, err)
		return nil, err
	}

	b.mu.Lock()
	b.current = n
	b.totalPages = max(page.TotalPages, 1)
	b.mu.Unlock()
	return page, nil
}

// Reload fetches the current page again.
func (b *Browser) Reload(ctx context.Context) (*woocommerce.ProductPage, error) {
	page, _ := b.Current()
	return b.Page(ctx, page)
}

// Next loads the following page, staying on the last one.
func (b *Browser) Next(ctx context.Context) (*woocommerce.ProductPage, error) {
	page, total := b.Current()
	return b.Page(ctx, min(page+1, total))
}

// Prev loads the preceding page, staying on the first one.
func (b *Browser) Prev(ctx context.Context) (*woocommerce.ProductPage, error) {
	page, _ := b.Current()
	return b.Page(ctx, page-1)
}

// Product loads one product for the detail view.
func (b *Browser) Product(ctx context.Context, id int) (*model.Product, error) {
	product, err := b.api.Product(ctx, id)
	if err != nil {
		log.Printf("[catalog] product=%d FAILED err=%v", id, err)
		return nil, err
	}
	return product, nil
}

// VisiblePages returns up to window consecutive page numbers around current,
// shifted to stay within [1, total]. It returns nil when there is at most one page.
func VisiblePages(current, total, window int) []int {
	if total <= 1 || window < 1 {
		return nil
	}
	if window > total {
		window = total
	}

	start := current - window/2
	if start < 1 {
		start = 1
	}
	if end := start + window - 1; end > total {
		start = total - window + 1
	}

	pages := make([]int, window)
	for i := range pages {
		pages[i] = start + i
	}
	return pages
}
