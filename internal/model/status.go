package model

// OrderStatus is the WooCommerce order status. The set is open-ended; shops and
// plugins can register their own statuses.
type OrderStatus string

const (
	// OrderStatusPending means the order was received but not paid
	OrderStatusPending OrderStatus = "pending"

	// OrderStatusProcessing means payment was received and the order awaits fulfillment
	OrderStatusProcessing OrderStatus = "processing"

	// OrderStatusOnHold means the order awaits payment confirmation
	OrderStatusOnHold OrderStatus = "on-hold"

	// OrderStatusCompleted means the order was fulfilled
	OrderStatusCompleted OrderStatus = "completed"

	// OrderStatusCancelled means the order was cancelled by the shop or the customer
	OrderStatusCancelled OrderStatus = "cancelled"

	// OrderStatusRefunded means the order was refunded
	OrderStatusRefunded OrderStatus = "refunded"

	// OrderStatusFailed means payment failed or was declined
	OrderStatusFailed OrderStatus = "failed"

	// OrderStatusTrash means the order was moved to the trash
	OrderStatusTrash OrderStatus = "trash"
)

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// IsOpen returns true while the shop still has work to do on the order
func (s OrderStatus) IsOpen() bool {
	return s == OrderStatusPending || s == OrderStatusProcessing || s == OrderStatusOnHold
}

// IsFinished returns true if the order reached a terminal state
func (s OrderStatus) IsFinished() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled ||
		s == OrderStatusRefunded || s == OrderStatusFailed || s == OrderStatusTrash
}

// CanDelete returns true if the shopper may delete the order from history
func (s OrderStatus) CanDelete() bool {
	return s == OrderStatusCompleted
}
