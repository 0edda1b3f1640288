package model

import "strconv"

// Payment defaults offered at checkout.
const (
	DefaultPaymentMethod      = "cod"
	DefaultPaymentMethodTitle = "Cash on Delivery"
)

// Billing is the billing address block of an order.
type Billing struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address_1"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// CheckoutForm holds what the shopper enters on the checkout page.
type CheckoutForm struct {
	CustomerID         string  `json:"customer_id"`
	PaymentMethod      string  `json:"payment_method"`
	PaymentMethodTitle string  `json:"payment_method_title"`
	SetPaid            bool    `json:"set_paid"`
	Billing            Billing `json:"billing"`
}

// NewCheckoutForm returns a cash-on-delivery form prefilled from user, which
// may be nil.
func NewCheckoutForm(user *User) CheckoutForm {
	form := CheckoutForm{
		PaymentMethod:      DefaultPaymentMethod,
		PaymentMethodTitle: DefaultPaymentMethodTitle,
	}
	if user != nil {
		if user.ID != 0 {
			form.CustomerID = strconv.Itoa(user.ID)
		}
		form.Billing.Email = user.Email
	}
	return form
}

// BillingField identifies one editable billing input.
type BillingField string

const (
	FieldFirstName BillingField = "first_name"
	FieldLastName  BillingField = "last_name"
	FieldAddress1  BillingField = "address_1"
	FieldCity      BillingField = "city"
	FieldState     BillingField = "state"
	FieldPostcode  BillingField = "postcode"
	FieldCountry   BillingField = "country"
	FieldEmail     BillingField = "email"
	FieldPhone     BillingField = "phone"
)

// BillingFields lists the inputs in the order the checkout page shows them.
var BillingFields = []BillingField{
	FieldFirstName, FieldLastName, FieldAddress1, FieldCity, FieldState,
	FieldPostcode, FieldCountry, FieldEmail, FieldPhone,
}

// Set updates one billing field by name. Unknown names are ignored.
func (b *Billing) Set(field BillingField, value string) {
	switch field {
	case FieldFirstName:
		b.FirstName = value
	case FieldLastName:
		b.LastName = value
	case FieldAddress1:
		b.Address1 = value
	case FieldCity:
		b.City = value
	case FieldState:
		b.State = value
	case FieldPostcode:
		b.Postcode = value
	case FieldCountry:
		b.Country = value
	case FieldEmail:
		b.Email = value
	case FieldPhone:
		b.Phone = value
	}
}

// Get returns one billing field by name.
func (b *Billing) Get(field BillingField) string {
	switch field {
	case FieldFirstName:
		return b.FirstName
	case FieldLastName:
		return b.LastName
	case FieldAddress1:
		return b.Address1
	case FieldCity:
		return b.City
	case FieldState:
		return b.State
	case FieldPostcode:
		return b.Postcode
	case FieldCountry:
		return b.Country
	case FieldEmail:
		return b.Email
	case FieldPhone:
		return b.Phone
	}
	return ""
}
