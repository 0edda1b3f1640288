package catalog

import (
	"context"
	"reflect"
	"testing"

	"github.com/go-faster/errors"

	"github.com/ytget/storefront/internal/model"
	"github.com/ytget/storefront/internal/woocommerce"
)

type fakeAPI struct {
	totalPages int
	requests   [][2]int
	err        error
}

func (f *fakeAPI) ListProducts(_ context.Context, page, perPage int) (*woocommerce.ProductPage, error) {
	f.requests = append(f.requests, [2]int{page, perPage})
	if f.err != nil {
		return nil, f.err
	}
	return &woocommerce.ProductPage{
		Products:   []model.Product{{ID: page*100 + 1}},
		Page:       page,
		PerPage:    perPage,
		TotalPages: f.totalPages,
	}, nil
}

func (f *fakeAPI) Product(_ context.Context, id int) (*model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.Product{ID: id}, nil
}

func TestVisiblePages(t *testing.T) {
	tests := []struct {
		current  int
		total    int
		expected []int
	}{
		{1, 0, nil},
		{1, 1, nil},
		{1, 3, []int{1, 2, 3}},
		{1, 10, []int{1, 2, 3, 4, 5}},
		{2, 10, []int{1, 2, 3, 4, 5}},
		{3, 10, []int{1, 2, 3, 4, 5}},
		{4, 10, []int{2, 3, 4, 5, 6}},
		{7, 10, []int{5, 6, 7, 8, 9}},
		{9, 10, []int{6, 7, 8, 9, 10}},
		{10, 10, []int{6, 7, 8, 9, 10}},
		{12, 10, []int{6, 7, 8, 9, 10}},
	}

	for _, test := range tests {
		result := VisiblePages(test.current, test.total, PageWindow)
		if !reflect.DeepEqual(result, test.expected) {
			t.Errorf("VisiblePages(%d, %d) = %v, expected %v", test.current, test.total, result, test.expected)
		}
	}
}

func TestClampPageSize(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{0, DefaultPageSize},
		{-3, MinPageSize},
		{1, 1},
		{20, 20},
		{100, 100},
		{500, MaxPageSize},
	}

	for _, test := range tests {
		if result := ClampPageSize(test.input); result != test.expected {
			t.Errorf("ClampPageSize(%d) = %d, expected %d", test.input, result, test.expected)
		}
	}
}

func TestBrowser_PageClampsToFirst(t *testing.T) {
	api := &fakeAPI{totalPages: 4}
	b := NewBrowser(api, 0)

	page, err := b.Page(context.Background(), -2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if page.Page != 1 {
		t.Errorf("Expected page 1, got %d", page.Page)
	}
	if api.requests[0] != [2]int{1, DefaultPageSize} {
		t.Errorf("Unexpected request %v", api.requests[0])
	}
}

func TestBrowser_NextPrevStayInRange(t *testing.T) {
	api := &fakeAPI{totalPages: 2}
	b := NewBrowser(api, 10)
	ctx := context.Background()

	if _, err := b.Prev(ctx); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := b.Next(ctx); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	expected := [][2]int{{1, 10}, {2, 10}, {2, 10}, {2, 10}}
	if !reflect.DeepEqual(api.requests, expected) {
		t.Errorf("requests = %v, expected %v", api.requests, expected)
	}

	current, total := b.Current()
	if current != 2 || total != 2 {
		t.Errorf("Current() = %d/%d, expected 2/2", current, total)
	}
}

func TestBrowser_ErrorKeepsPosition(t *testing.T) {
	api := &fakeAPI{totalPages: 5}
	b := NewBrowser(api, 10)
	ctx := context.Background()

	if _, err := b.Page(ctx, 3); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	api.err = errors.New("timeout")
	if _, err := b.Next(ctx); err == nil {
		t.Fatal("Expected error")
	}
	if current, _ := b.Current(); current != 3 {
		t.Errorf("Expected to stay on page 3, got %d", current)
	}
}

func TestBrowser_SetPageSizeRewinds(t *testing.T) {
	api := &fakeAPI{totalPages: 5}
	b := NewBrowser(api, 10)
	if _, err := b.Page(context.Background(), 4); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	b.SetPageSize(250)
	if b.PageSize() != MaxPageSize {
		t.Errorf("Expected page size %d, got %d", MaxPageSize, b.PageSize())
	}
	if _, err := b.Reload(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if last := api.requests[len(api.requests)-1]; last != [2]int{1, MaxPageSize} {
		t.Errorf("Unexpected request %v", last)
	}
}

func TestBrowser_Product(t *testing.T) {
	api := &fakeAPI{}
	b := NewBrowser(api, 0)

	product, err := b.Product(context.Background(), 8)
	if err != nil || product.ID != 8 {
		t.Errorf("Product() = %v, %v", product, err)
	}

	api.err = &woocommerce.APIError{StatusCode: 404}
	if _, err := b.Product(context.Background(), 9); !errors.Is(err, woocommerce.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
