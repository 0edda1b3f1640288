package ui

import (
	"context"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/storefront/internal/cart"
	"github.com/ytget/storefront/internal/config"
	"github.com/ytget/storefront/internal/model"
	"github.com/ytget/storefront/internal/storage"
	"github.com/ytget/storefront/internal/woocommerce"
)

type fakeSession struct {
	user     *model.User
	onUpdate func(*model.User)
}

func (f *fakeSession) SetUpdateCallback(cb func(*model.User)) { f.onUpdate = cb }
func (f *fakeSession) IsAuthenticated() bool                  { return f.user != nil }
func (f *fakeSession) User() *model.User                      { return f.user }

func (f *fakeSession) Login(context.Context, woocommerce.Credentials) (*model.User, error) {
	return f.user, nil
}

func (f *fakeSession) Logout() {
	f.user = nil
	if f.onUpdate != nil {
		f.onUpdate(nil)
	}
}

func (f *fakeSession) Register(context.Context, woocommerce.Registration) (*model.User, error) {
	return &model.User{}, nil
}

func newTestRootUI(t *testing.T, sess *fakeSession) (*RootUI, *cart.Store) {
	t.Helper()

	app := test.NewApp()
	t.Cleanup(app.Quit)

	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	settings := config.NewSettings(app)
	settings.SetLanguage("en")

	store := cart.NewStore(storage.NewMemoryStore())
	ui := NewRootUI(window, settings, Services{Cart: store, Session: sess})
	return ui, store
}

// navLabels returns the texts of the navigation buttons
func navLabels(ui *RootUI) []string {
	var labels []string
	for _, obj := range ui.nav.Objects {
		if btn, ok := obj.(*widget.Button); ok {
			labels = append(labels, btn.Text)
		}
	}
	return labels
}

func TestViewString(t *testing.T) {
	assert.Equal(t, "home", ViewHome.String())
	assert.Equal(t, "orders", ViewOrders.String())
	assert.Equal(t, "unknown", View(99).String())
}

func TestRootUIStartsAtHome(t *testing.T) {
	ui, _ := newTestRootUI(t, &fakeSession{})

	assert.Equal(t, ViewHome, ui.CurrentView())
	assert.Contains(t, navLabels(ui), "Login/Signup")
	assert.NotContains(t, navLabels(ui), "My Orders")
}

func TestNavigateGuestToProtectedView(t *testing.T) {
	ui, _ := newTestRootUI(t, &fakeSession{})

	for _, view := range []View{ViewAccount, ViewOrders, ViewCheckout} {
		ui.Navigate(view)
		assert.Equal(t, ViewLogin, ui.CurrentView(), view.String())
	}
}

func TestNavigateAuthenticated(t *testing.T) {
	sess := &fakeSession{user: &model.User{ID: 7, Name: "Ann", Username: "ann"}}
	ui, _ := newTestRootUI(t, sess)

	ui.Navigate(ViewAccount)
	assert.Equal(t, ViewAccount, ui.CurrentView())
	assert.Contains(t, navLabels(ui), "My Orders")
	assert.Contains(t, navLabels(ui), "Logout")

	ui.onLogout()
	assert.Equal(t, ViewHome, ui.CurrentView())
	assert.Contains(t, navLabels(ui), "Login/Signup")
}

func TestAddToCartUpdatesNav(t *testing.T) {
	ui, store := newTestRootUI(t, &fakeSession{})

	ui.addToCart(model.Product{ID: 1, Name: "Mug", Price: "10"})
	ui.addToCart(model.Product{ID: 2, Name: "Cap", Price: "5"})

	require.Equal(t, 2, store.Len())
	assert.Contains(t, navLabels(ui), IconCart+" Cart (2)")
	assert.Equal(t, "Added to cart: Cap", ui.notificationLabel.Text)

	ui.Navigate(ViewCart)
	assert.Equal(t, ViewCart, ui.CurrentView())
}

func TestCheckoutFormCollect(t *testing.T) {
	test.NewApp()

	initial := model.NewCheckoutForm(&model.User{ID: 3, Email: "ann@example.com"})
	form := newCheckoutForm(initial)
	assert.Equal(t, "ann@example.com", form.entries[model.FieldEmail].Text)

	form.entries[model.FieldFirstName].SetText("Ann")
	form.entries[model.FieldCity].SetText("Kraków")

	got := form.Collect(initial)
	assert.Equal(t, "3", got.CustomerID)
	assert.Equal(t, model.DefaultPaymentMethod, got.PaymentMethod)
	assert.Equal(t, "Ann", got.Billing.FirstName)
	assert.Equal(t, "Kraków", got.Billing.City)
	assert.Equal(t, "ann@example.com", got.Billing.Email)
}

func TestSettingsDialogSave(t *testing.T) {
	ui, _ := newTestRootUI(t, &fakeSession{})

	saved := false
	sd := NewSettingsDialog(ui.settings, ui.localization, ui.window, func() { saved = true })
	sd.loadCurrentSettings()
	assert.Equal(t, "English", sd.languageSelect.Selected)
	assert.True(t, sd.confirmCheck.Checked)

	sd.languageSelect.SetSelected("Polski")
	sd.perPageSelect.SetSelected("50")
	sd.confirmCheck.SetChecked(false)
	sd.onSave(true)

	assert.True(t, saved)
	assert.Equal(t, "pl", ui.settings.GetLanguage())
	assert.Equal(t, 50, ui.settings.GetProductsPerPage())
	assert.False(t, ui.settings.GetConfirmDelete())
}
