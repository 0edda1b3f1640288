package orders

import (
	"context"
	"log"
	"sync"

	"github.com/go-faster/errors"

	"github.com/ytget/storefront/internal/cart"
	"github.com/ytget/storefront/internal/model"
	"github.com/ytget/storefront/internal/storage"
	"github.com/ytget/storefront/internal/woocommerce"
)

var (
	// ErrEmptyCart is returned by Checkout when the persisted cart has no lines.
	ErrEmptyCart = woocommerce.ErrEmptyCart

	// ErrNotLoggedIn is returned when the order history is requested without a user.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrNotDeletable is returned for orders that are not completed.
	ErrNotDeletable = errors.New("only completed orders can be deleted")
)

// Service handles checkout and order history.
type Service struct {
	api     API
	cart    Cart
	session Session
	store   storage.Store
	mu      sync.Mutex
}

// NewService creates a Service.
func NewService(api API, c Cart, s Session, store storage.Store) *Service {
	return &Service{api: api, cart: c, session: s, store: store}
}

// Checkout places an order for the persisted cart. The in-memory cart is
// written first so the order matches what the shopper sees. On success the
// cart is cleared; on failure it is left as is.
func (s *Service) Checkout(ctx context.Context, form model.CheckoutForm) (*model.Order, error) {
	if err := s.cart.Flush(); err != nil {
		log.Printf("[orders] checkout save cart FAILED err=%v", err)
		return nil, errors.Wrap(err, "checkout")
	}

	lines, err := cart.LoadPersisted(s.store)
	if err != nil {
		log.Printf("[orders] checkout read cart FAILED err=%v", err)
		return nil, errors.Wrap(err, "checkout: read cart")
	}
	if len(lines) == 0 {
		log.Printf("[orders] checkout skipped: cart is empty")
		return nil, ErrEmptyCart
	}

	if form.CustomerID == "" {
		if user := s.session.User(); user != nil {
			form = withCustomer(form, user)
		}
	}

	order, err := s.api.CreateOrder(ctx, lines, form)
	if err != nil {
		log.Printf("[orders] checkout lines=%d FAILED err=%v", len(lines), err)
		return nil, err
	}

	s.cart.Clear()
	log.Printf("[orders] checkout order=%d lines=%d total=%s", order.ID, len(lines), order.Total)
	return order, nil
}

func withCustomer(form model.CheckoutForm, user *model.User) model.CheckoutForm {
	prefilled := model.NewCheckoutForm(user)
	form.CustomerID = prefilled.CustomerID
	return form
}

// List returns the customer's orders. The cached list is used unless it is
// empty, belongs to another customer, or refresh is set.
func (s *Service) List(ctx context.Context, refresh bool) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !refresh {
		if cached := s.cached(); len(cached) > 0 {
			return cached, nil
		}
	}
	return s.fetch(ctx)
}

// Cached returns the stored order list of the logged-in customer without a
// network call.
func (s *Service) Cached() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cached()
}

// View returns one order.
func (s *Service) View(ctx context.Context, id int) (*model.Order, error) {
	order, err := s.api.Order(ctx, id)
	if err != nil {
		log.Printf("[orders] view order=%d FAILED err=%v", id, err)
		return nil, err
	}
	return order, nil
}

// Delete removes a completed order and returns the refreshed list.
func (s *Service) Delete(ctx context.Context, order model.Order) ([]model.Order, error) {
	if !order.Status.CanDelete() {
		return nil, errors.Wrapf(ErrNotDeletable, "order %d is %s", order.ID, order.Status)
	}

	if err := s.api.DeleteOrder(ctx, order.ID); err != nil {
		log.Printf("[orders] delete order=%d FAILED err=%v", order.ID, err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetch(ctx)
}

// fetch loads the orders of the current user and rewrites the cache; callers hold mu.
func (s *Service) fetch(ctx context.Context) ([]model.Order, error) {
	user := s.session.User()
	if user == nil {
		return nil, ErrNotLoggedIn
	}

	orders, err := s.api.OrdersByCustomer(ctx, user.ID)
	if err != nil {
		log.Printf("[orders] list customer=%d FAILED err=%v", user.ID, err)
		return nil, err
	}
	if orders == nil {
		orders = []model.Order{}
	}

	if err := storage.SaveJSON(s.store, storage.KeyOrderItems, orders); err != nil {
		log.Printf("[orders] cache orders FAILED err=%v", err)
	}
	if err := storage.SaveJSON(s.store, storage.KeyOrderOwner, user.ID); err != nil {
		log.Printf("[orders] cache owner FAILED err=%v", err)
	}
	log.Printf("[orders] list customer=%d orders=%d", user.ID, len(orders))
	return orders, nil
}

// cached returns the stored list when it belongs to the logged-in customer.
func (s *Service) cached() []model.Order {
	user := s.session.User()
	if user == nil {
		return nil
	}

	var owner int
	found, err := storage.LoadJSON(s.store, storage.KeyOrderOwner, &owner)
	if err != nil || !found || owner != user.ID {
		return nil
	}

	var orders []model.Order
	if _, err := storage.LoadJSON(s.store, storage.KeyOrderItems, &orders); err != nil {
		log.Printf("[orders] read cache FAILED err=%v", err)
		return nil
	}
	return orders
}
