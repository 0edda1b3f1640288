package ui

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/storefront/internal/orders"
	"github.com/ytget/storefront/internal/session"
	"github.com/ytget/storefront/internal/woocommerce"
)

func TestErrorKey(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"registration disabled", errors.Wrap(woocommerce.ErrRegistrationDisabled, "register"), KeyErrRegistrationOff},
		{"not logged in", orders.ErrNotLoggedIn, KeyErrNotLoggedIn},
		{"not deletable", orders.ErrNotDeletable, KeyErrNotDeletable},
		{"empty cart", orders.ErrEmptyCart, KeyErrEmptyCart},
		{"rejected credentials", &session.LoginError{Username: "ann", Cause: &woocommerce.APIError{StatusCode: 403}}, KeyErrCredentialsRejected},
		{"login offline", &session.LoginError{Username: "ann", Cause: context.DeadlineExceeded}, KeyErrNetwork},
		{"login other", &session.LoginError{Username: "ann", Cause: woocommerce.ErrMalformedResponse}, KeyErrInvalidLogin},
		{"not found", &woocommerce.APIError{StatusCode: 404}, KeyErrNotFound},
		{"unauthorized", &woocommerce.APIError{StatusCode: 401}, KeyErrUnauthorized},
		{"server", &woocommerce.APIError{StatusCode: 502}, KeyErrServer},
		{"invalid", &woocommerce.APIError{StatusCode: 400}, KeyErrInvalid},
		{"timeout", errors.Wrap(context.DeadlineExceeded, "list"), KeyErrNetwork},
		{"unknown", errors.New("boom"), KeyErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorKey(tt.err))
		})
	}
}

func TestErrorText(t *testing.T) {
	l := NewLocalization()
	err := &woocommerce.APIError{StatusCode: 404}

	assert.Equal(t, l.GetText(KeyErrNotFound), l.errorText("", err))
	assert.Equal(t, l.GetText(KeyDelete)+": "+l.GetText(KeyErrNotFound), l.errorText(KeyDelete, err))
}
