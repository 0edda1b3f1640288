package ui

import (
	"github.com/go-faster/errors"

	"github.com/ytget/storefront/internal/orders"
	"github.com/ytget/storefront/internal/session"
	"github.com/ytget/storefront/internal/woocommerce"
)

// errorKey picks the message key for err. Domain sentinels come first; the
// rest is grouped by woocommerce.Classify.
func errorKey(err error) string {
	kind := woocommerce.Classify(err)

	switch {
	case errors.Is(err, woocommerce.ErrRegistrationDisabled):
		return KeyErrRegistrationOff
	case errors.Is(err, orders.ErrNotLoggedIn):
		return KeyErrNotLoggedIn
	case errors.Is(err, orders.ErrNotDeletable):
		return KeyErrNotDeletable
	case errors.Is(err, session.ErrInvalidLogin):
		switch kind {
		case woocommerce.KindUnauthorized:
			return KeyErrCredentialsRejected
		case woocommerce.KindNetwork:
			return KeyErrNetwork
		}
		return KeyErrInvalidLogin
	}

	switch kind {
	case woocommerce.KindNetwork:
		return KeyErrNetwork
	case woocommerce.KindUnauthorized:
		return KeyErrUnauthorized
	case woocommerce.KindNotFound:
		return KeyErrNotFound
	case woocommerce.KindServer:
		return KeyErrServer
	case woocommerce.KindInvalid:
		return KeyErrInvalid
	case woocommerce.KindEmptyCart:
		return KeyErrEmptyCart
	}
	return KeyErrUnknown
}

// errorText is the localized message for err, prefixed with context when given.
func (l *Localization) errorText(prefixKey string, err error) string {
	text := l.GetText(errorKey(err))
	if prefixKey == "" {
		return text
	}
	return l.GetText(prefixKey) + ": " + text
}
