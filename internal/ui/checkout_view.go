package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/validation"
	"fyne.io/fyne/v2/widget"

	"github.com/go-faster/errors"

	"github.com/ytget/storefront/internal/model"
	"github.com/ytget/storefront/internal/woocommerce"
)

// EmailPattern is a loose check for an address with one @ and a dotted domain
const EmailPattern = `^[^@\s]+@[^@\s]+\.[^@\s]+$`

// billingLabels maps billing inputs to their text keys
var billingLabels = map[model.BillingField]string{
	model.FieldFirstName: KeyFirstName,
	model.FieldLastName:  KeyLastName,
	model.FieldAddress1:  KeyAddress,
	model.FieldCity:      KeyCity,
	model.FieldState:     KeyState,
	model.FieldPostcode:  KeyPostcode,
	model.FieldCountry:   KeyCountry,
	model.FieldEmail:     KeyEmail,
	model.FieldPhone:     KeyPhone,
}

// checkoutForm holds the billing entries of the checkout view
type checkoutForm struct {
	entries map[model.BillingField]*widget.Entry
}

// newCheckoutForm creates one entry per billing field, prefilled from initial
func newCheckoutForm(initial model.CheckoutForm) *checkoutForm {
	f := &checkoutForm{entries: make(map[model.BillingField]*widget.Entry, len(model.BillingFields))}
	for _, field := range model.BillingFields {
		entry := widget.NewEntry()
		entry.SetText(initial.Billing.Get(field))
		f.entries[field] = entry
	}
	return f
}

// Collect returns base with the billing block taken from the entries
func (f *checkoutForm) Collect(base model.CheckoutForm) model.CheckoutForm {
	for field, entry := range f.entries {
		base.Billing.Set(field, entry.Text)
	}
	return base
}

func (ui *RootUI) buildCheckoutView() fyne.CanvasObject {
	initial := model.NewCheckoutForm(ui.svc.Session.User())
	fields := newCheckoutForm(initial)
	fields.entries[model.FieldEmail].Validator = validation.NewRegexp(EmailPattern, ui.localization.GetText(KeyInvalidEmail))

	form := widget.NewForm()
	for _, field := range model.BillingFields {
		form.Append(ui.localization.GetText(billingLabels[field]), fields.entries[field])
	}
	form.Append(ui.localization.GetText(KeyPayment), widget.NewLabel(initial.PaymentMethodTitle))

	summary := widget.NewLabel(fmt.Sprintf("%s: %s%s%d",
		ui.localization.GetText(KeyTotal), model.FormatAmount(ui.svc.Cart.Total()),
		MiddleDotSeparator, ui.svc.Cart.Len()))

	form.SubmitText = ui.localization.GetText(KeyPlaceOrder)
	form.OnSubmit = func() {
		ui.onPlaceOrder(fields.Collect(initial), form)
	}

	return container.NewVScroll(container.NewVBox(ui.heading(KeyCheckoutTitle), summary, form))
}

// onPlaceOrder submits the order in the background
func (ui *RootUI) onPlaceOrder(checkout model.CheckoutForm, form *widget.Form) {
	form.Disable()
	ui.showNotification(ui.localization.GetText(KeyPlacingOrder), true)

	ui.background(func(ctx context.Context) {
		order, err := ui.svc.Orders.Checkout(ctx, checkout)
		fyne.Do(func() {
			form.Enable()
			if err != nil {
				if errors.Is(err, woocommerce.ErrEmptyCart) {
					ui.showToast(ui.localization.GetText(KeyErrEmptyCart))
					return
				}
				ui.showError(KeyOrderFailed, err)
				return
			}
			ui.showToast(fmt.Sprintf(ui.localization.GetText(KeyOrderPlaced), order.ID))
			ui.Navigate(ViewProducts)
		})
	})
}
