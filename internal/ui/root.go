package ui

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/storefront/internal/config"
	"github.com/ytget/storefront/internal/model"
)

// View identifies one screen of the storefront.
type View int

const (
	ViewHome View = iota
	ViewProducts
	ViewProduct
	ViewCart
	ViewCheckout
	ViewLogin
	ViewAccount
	ViewOrders
)

// String returns the English name of the view, used in logs.
func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewProducts:
		return "products"
	case ViewProduct:
		return "product"
	case ViewCart:
		return "cart"
	case ViewCheckout:
		return "checkout"
	case ViewLogin:
		return "login"
	case ViewAccount:
		return "account"
	case ViewOrders:
		return "orders"
	default:
		return "unknown"
	}
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	svc          Services
	settings     *config.Settings
	localization *Localization

	current   View
	productID int

	nav     *fyne.Container
	content *fyne.Container

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
	notificationSeq       int
	notificationMutex     sync.Mutex
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, svc Services) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		svc:          svc,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Services may notify from background goroutines
	svc.Cart.SetUpdateCallback(func([]model.Product) {
		fyne.Do(ui.refreshNav)
	})
	svc.Session.SetUpdateCallback(func(*model.User) {
		fyne.Do(ui.refreshNav)
	})

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.nav = container.NewHBox()

	// Notification panel under the navigation bar (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	closeBtn := widget.NewButton(IconClose, ui.hideNotification)
	closeBtn.Importance = widget.LowImportance
	ui.notificationContainer = container.NewBorder(nil, nil, ui.notificationSpinner, closeBtn, ui.notificationLabel)
	ui.notificationContainer.Hide()

	ui.content = container.NewStack()

	top := container.NewVBox(ui.nav, widget.NewSeparator(), ui.notificationContainer)
	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.content))

	ui.Navigate(ViewHome)
	log.Printf("[ui] setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change from the menu
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts rebuilds every translated element
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.createMenu()
	ui.Navigate(ui.current)
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies saved settings to the running services
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.svc.Catalog.SetPageSize(ui.settings.GetProductsPerPage())
	ui.refreshUITexts()
	ui.showToast(ui.localization.GetText(KeySettingsSaved))
}

// Navigate replaces the main content with view
func (ui *RootUI) Navigate(view View) {
	// Views behind a login fall back to the login form
	if (view == ViewAccount || view == ViewOrders || view == ViewCheckout) && !ui.svc.Session.IsAuthenticated() {
		view = ViewLogin
	}

	ui.current = view
	ui.content.Objects = []fyne.CanvasObject{ui.buildView(view)}
	ui.content.Refresh()
	ui.refreshNav()
}

// ShowProduct opens the detail view of a product
func (ui *RootUI) ShowProduct(id int) {
	ui.productID = id
	ui.Navigate(ViewProduct)
}

// CurrentView returns the view on screen
func (ui *RootUI) CurrentView() View {
	return ui.current
}

func (ui *RootUI) buildView(view View) fyne.CanvasObject {
	switch view {
	case ViewProducts:
		return ui.buildCatalogView()
	case ViewProduct:
		return ui.buildProductView(ui.productID)
	case ViewCart:
		return ui.buildCartView()
	case ViewCheckout:
		return ui.buildCheckoutView()
	case ViewLogin:
		return ui.buildAuthView()
	case ViewAccount:
		return ui.buildAccountView()
	case ViewOrders:
		return ui.buildOrdersView()
	default:
		return ui.buildHomeView()
	}
}

// refreshNav rebuilds the navigation bar from the session and cart state
func (ui *RootUI) refreshNav() {
	if ui.nav == nil {
		return
	}

	navButton := func(key string, view View) *widget.Button {
		btn := widget.NewButton(ui.localization.GetText(key), func() { ui.Navigate(view) })
		btn.Importance = widget.LowImportance
		if ui.current == view {
			btn.Importance = widget.HighImportance
		}
		return btn
	}

	cartBtn := navButton(KeyNavCart, ViewCart)
	cartBtn.SetText(fmt.Sprintf(CartCountFormat, IconCart, ui.localization.GetText(KeyNavCart), ui.svc.Cart.Len()))

	objects := []fyne.CanvasObject{
		navButton(KeyNavHome, ViewHome),
		navButton(KeyNavProducts, ViewProducts),
		cartBtn,
		layout.NewSpacer(),
	}

	if ui.svc.Session.IsAuthenticated() {
		logoutBtn := widget.NewButtonWithIcon(ui.localization.GetText(KeyNavLogout), theme.LogoutIcon(), ui.onLogout)
		logoutBtn.Importance = widget.LowImportance
		objects = append(objects,
			navButton(KeyNavAccount, ViewAccount),
			navButton(KeyNavOrders, ViewOrders),
			logoutBtn,
		)
	} else {
		objects = append(objects, navButton(KeyNavLogin, ViewLogin))
	}

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	objects = append(objects, settingsBtn)

	ui.nav.Objects = objects
	ui.nav.Refresh()
}

// onLogout forgets the session and returns home
func (ui *RootUI) onLogout() {
	ui.svc.Session.Logout()
	ui.Navigate(ViewHome)
	ui.showToast(ui.localization.GetText(KeyLoggedOut))
}

// addToCart adds a product and confirms it in the notification panel
func (ui *RootUI) addToCart(product model.Product) {
	ui.svc.Cart.Add(product)
	ui.showToast(fmt.Sprintf(ui.localization.GetText(KeyAddedToCart), product.Name))
}

// background runs work off the UI goroutine with a request deadline.
// Work must apply UI changes through fyne.Do.
func (ui *RootUI) background(work func(ctx context.Context)) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()
		work(ctx)
	}()
}

// productImage returns an image that fills in once the resource is loaded
func (ui *RootUI) productImage(rawURL string, size float32) *canvas.Image {
	img := canvas.NewImageFromResource(theme.FileImageIcon())
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(size, size))
	if rawURL == "" || ui.svc.Images == nil {
		return img
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), ImageTimeout)
		defer cancel()

		res, err := ui.svc.Images.Load(ctx, rawURL)
		if err != nil {
			return
		}
		fyne.Do(func() {
			img.Resource = res
			img.Refresh()
		})
	}()
	return img
}

// showNotification displays a message in the notification panel under the navigation bar.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	ui.notificationMutex.Lock()
	ui.notificationSeq++
	ui.notificationMutex.Unlock()

	ui.setNotification(message, spinning)
}

// showToast shows a message that hides itself unless replaced meanwhile
func (ui *RootUI) showToast(message string) {
	ui.notificationMutex.Lock()
	ui.notificationSeq++
	seq := ui.notificationSeq
	ui.notificationMutex.Unlock()

	ui.setNotification(message, false)

	go func() {
		time.Sleep(ToastAutoHide)
		ui.notificationMutex.Lock()
		stale := seq != ui.notificationSeq
		ui.notificationMutex.Unlock()
		if !stale {
			ui.hideNotification()
		}
	}()
}

func (ui *RootUI) setNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}

// showError reports err in the notification panel
func (ui *RootUI) showError(prefixKey string, err error) {
	log.Printf("[ui] %s view=%s err=%v", prefixKey, ui.current, err)
	ui.showNotification(IconError+" "+ui.localization.errorText(prefixKey, err), false)
}

// heading returns a bold title label
func (ui *RootUI) heading(key string) *widget.Label {
	label := widget.NewLabelWithStyle(ui.localization.GetText(key), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	label.SizeName = theme.SizeNameHeadingText
	return label
}
