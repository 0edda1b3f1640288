package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle  = "app_title"
	KeySettings  = "settings"
	KeyFile      = "file"
	KeyLanguage  = "language"
	KeySave      = "save"
	KeyCancel    = "cancel"
	KeyBack      = "back"
	KeyLoading   = "loading"
	KeyRefresh   = "refresh"
	KeyView      = "view"
	KeyDelete    = "delete"
	KeyRemove    = "remove"
	KeyTotal     = "total"
	KeyQuantity  = "quantity"
	KeyUnitPrice = "unit_price"

	KeyNavHome      = "nav_home"
	KeyNavProducts  = "nav_products"
	KeyNavCart      = "nav_cart"
	KeyNavOrders    = "nav_orders"
	KeyNavAccount   = "nav_account"
	KeyNavLogin     = "nav_login"
	KeyNavLogout    = "nav_logout"
	KeyLoggedOut    = "logged_out"
	KeyWelcomeTitle = "welcome_title"
	KeyWelcomeText  = "welcome_text"
	KeyShopNow      = "shop_now"

	KeyProductsTitle = "products_title"
	KeyPrevious      = "previous"
	KeyNext          = "next"
	KeyPageOf        = "page_of"
	KeyAddToCart     = "add_to_cart"
	KeyViewDetails   = "view_details"
	KeyNoProducts    = "no_products"
	KeyAddedToCart   = "added_to_cart"
	KeyCategories    = "categories"
	KeyRegularPrice  = "regular_price"
	KeyDescription   = "description"

	KeyCartTitle       = "cart_title"
	KeyCartEmpty       = "cart_empty"
	KeyCheckout        = "checkout"
	KeyLoginToCheckout = "login_to_checkout"
	KeyRemovedFromCart = "removed_from_cart"

	KeyCheckoutTitle = "checkout_title"
	KeyFirstName     = "first_name"
	KeyLastName      = "last_name"
	KeyAddress       = "address"
	KeyCity          = "city"
	KeyState         = "state"
	KeyPostcode      = "postcode"
	KeyCountry       = "country"
	KeyEmail         = "email"
	KeyPhone         = "phone"
	KeyPayment       = "payment"
	KeyPlaceOrder    = "place_order"
	KeyPlacingOrder  = "placing_order"
	KeyOrderPlaced   = "order_placed"
	KeyOrderFailed   = "order_failed"

	KeyLoginTitle      = "login_title"
	KeyRegisterTitle   = "register_title"
	KeyUsername        = "username"
	KeyPassword        = "password"
	KeyName            = "name"
	KeyRegister        = "register"
	KeyLogin           = "login"
	KeyLoginSuccess    = "login_success"
	KeyLoginFailed     = "login_failed"
	KeyRegisterSuccess = "register_success"
	KeyRegisterFailed  = "register_failed"
	KeyFieldsRequired  = "fields_required"
	KeyInvalidEmail    = "invalid_email"

	KeyAccountTitle = "account_title"
	KeyUserID       = "user_id"
	KeyNotLoggedIn  = "not_logged_in"

	KeyOrdersTitle        = "orders_title"
	KeyNoOrders           = "no_orders"
	KeyOrderDate          = "order_date"
	KeyOrderStatus        = "order_status"
	KeyOrderItems         = "order_items"
	KeyDeleteConfirmTitle = "delete_confirm_title"
	KeyDeleteConfirm      = "delete_confirm"
	KeyOrderDeleted       = "order_deleted"

	KeyProductsPerPage = "products_per_page"
	KeyConfirmDelete   = "confirm_delete"
	KeySettingsSaved   = "settings_saved"

	KeyErrNetwork             = "err_network"
	KeyErrUnauthorized        = "err_unauthorized"
	KeyErrNotFound            = "err_not_found"
	KeyErrServer              = "err_server"
	KeyErrInvalid             = "err_invalid"
	KeyErrEmptyCart           = "err_empty_cart"
	KeyErrUnknown             = "err_unknown"
	KeyErrRegistrationOff     = "err_registration_off"
	KeyErrNotLoggedIn         = "err_not_logged_in"
	KeyErrNotDeletable        = "err_not_deletable"
	KeyErrInvalidLogin        = "err_invalid_login"
	KeyErrCredentialsRejected = "err_credentials_rejected"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

// systemLanguage returns the two-letter code of the OS locale, "en" when unknown
func systemLanguage() string {
	locale := strings.ToLower(string(lang.SystemLocale()))
	if code, _, _ := strings.Cut(locale, "-"); len(code) == 2 {
		return code
	}
	return "en"
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"pl": "Polski",
	}
}

// StatusText returns the localized name of an order status; unknown statuses
// are shown as sent by the shop
func (l *Localization) StatusText(status string) string {
	key := "status_" + status
	if text := l.GetText(key); text != key {
		return text
	}
	return status
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:  "Storefront",
		KeySettings:  "Settings",
		KeyFile:      "File",
		KeyLanguage:  "Language",
		KeySave:      "Save",
		KeyCancel:    "Cancel",
		KeyBack:      "Back",
		KeyLoading:   "Loading...",
		KeyRefresh:   "Refresh",
		KeyView:      "View",
		KeyDelete:    "Delete",
		KeyRemove:    "Remove",
		KeyTotal:     "Total",
		KeyQuantity:  "Quantity",
		KeyUnitPrice: "Unit price",

		KeyNavHome:      "Home",
		KeyNavProducts:  "Products",
		KeyNavCart:      "Cart",
		KeyNavOrders:    "My Orders",
		KeyNavAccount:   "My Account",
		KeyNavLogin:     "Login/Signup",
		KeyNavLogout:    "Logout",
		KeyLoggedOut:    "You have been logged out",
		KeyWelcomeTitle: "Welcome to our store",
		KeyWelcomeText:  "Browse the catalog, fill your cart and order with cash on delivery.",
		KeyShopNow:      "Shop Now",

		KeyProductsTitle: "Products",
		KeyPrevious:      "Previous",
		KeyNext:          "Next",
		KeyPageOf:        "Page %d of %d",
		KeyAddToCart:     "Add to Cart",
		KeyViewDetails:   "Details",
		KeyNoProducts:    "No products found",
		KeyAddedToCart:   "Added to cart: %s",
		KeyCategories:    "Categories",
		KeyRegularPrice:  "Regular price %s",
		KeyDescription:   "Description",

		KeyCartTitle:       "Cart",
		KeyCartEmpty:       "Your cart is empty",
		KeyCheckout:        "Proceed to Checkout",
		KeyLoginToCheckout: "Log in to place your order",
		KeyRemovedFromCart: "Removed from cart: %s",

		KeyCheckoutTitle: "Checkout",
		KeyFirstName:     "First Name",
		KeyLastName:      "Last Name",
		KeyAddress:       "Address",
		KeyCity:          "City",
		KeyState:         "State",
		KeyPostcode:      "Postcode",
		KeyCountry:       "Country",
		KeyEmail:         "Email",
		KeyPhone:         "Phone",
		KeyPayment:       "Payment",
		KeyPlaceOrder:    "Place Order",
		KeyPlacingOrder:  "Placing order...",
		KeyOrderPlaced:   "Order #%d has been placed",
		KeyOrderFailed:   "Failed to place order",

		KeyLoginTitle:      "Login",
		KeyRegisterTitle:   "Register",
		KeyUsername:        "Username",
		KeyPassword:        "Password",
		KeyName:            "Name",
		KeyRegister:        "Register",
		KeyLogin:           "Login",
		KeyLoginSuccess:    "User logged in successfully",
		KeyLoginFailed:     "Invalid login details",
		KeyRegisterSuccess: "User registered successfully! You can log in now.",
		KeyRegisterFailed:  "Failed to register user",
		KeyFieldsRequired:  "All fields are required",
		KeyInvalidEmail:    "Invalid email address",

		KeyAccountTitle: "My Account",
		KeyUserID:       "Customer ID",
		KeyNotLoggedIn:  "You are not logged in",

		KeyOrdersTitle:        "My Orders",
		KeyNoOrders:           "No orders yet",
		KeyOrderDate:          "Date",
		KeyOrderStatus:        "Status",
		KeyOrderItems:         "Items",
		KeyDeleteConfirmTitle: "Delete order",
		KeyDeleteConfirm:      "Delete order #%d?",
		KeyOrderDeleted:       "Order #%d deleted",

		KeyProductsPerPage: "Products per page",
		KeyConfirmDelete:   "Ask before deleting orders",
		KeySettingsSaved:   "Settings saved successfully!",

		KeyErrNetwork:             "Cannot reach the shop. Check your connection.",
		KeyErrUnauthorized:        "The shop refused the request. Check your credentials.",
		KeyErrNotFound:            "Not found",
		KeyErrServer:              "The shop had a problem. Try again later.",
		KeyErrInvalid:             "The shop rejected the request",
		KeyErrEmptyCart:           "Your cart is empty",
		KeyErrUnknown:             "Something went wrong",
		KeyErrRegistrationOff:     "Registration is not available",
		KeyErrNotLoggedIn:         "Please log in first",
		KeyErrNotDeletable:        "Only completed orders can be deleted",
		KeyErrInvalidLogin:        "Invalid login details",
		KeyErrCredentialsRejected: "Wrong username or password",

		"status_pending":    "Pending payment",
		"status_processing": "Processing",
		"status_on-hold":    "On hold",
		"status_completed":  "Completed",
		"status_cancelled":  "Cancelled",
		"status_refunded":   "Refunded",
		"status_failed":     "Failed",
		"status_trash":      "Deleted",
	}

	// Polish texts
	l.texts["pl"] = map[string]string{
		KeyAppTitle:  "Sklep",
		KeySettings:  "Ustawienia",
		KeyFile:      "Plik",
		KeyLanguage:  "Język",
		KeySave:      "Zapisz",
		KeyCancel:    "Anuluj",
		KeyBack:      "Wstecz",
		KeyLoading:   "Ładowanie...",
		KeyRefresh:   "Odśwież",
		KeyView:      "Pokaż",
		KeyDelete:    "Usuń",
		KeyRemove:    "Usuń",
		KeyTotal:     "Razem",
		KeyQuantity:  "Ilość",
		KeyUnitPrice: "Cena jednostkowa",

		KeyNavHome:      "Strona główna",
		KeyNavProducts:  "Produkty",
		KeyNavCart:      "Koszyk",
		KeyNavOrders:    "Moje zamówienia",
		KeyNavAccount:   "Moje konto",
		KeyNavLogin:     "Logowanie/Rejestracja",
		KeyNavLogout:    "Wyloguj",
		KeyLoggedOut:    "Wylogowano",
		KeyWelcomeTitle: "Witamy w naszym sklepie",
		KeyWelcomeText:  "Przeglądaj katalog, napełnij koszyk i zamów za pobraniem.",
		KeyShopNow:      "Do sklepu",

		KeyProductsTitle: "Produkty",
		KeyPrevious:      "Poprzednia",
		KeyNext:          "Następna",
		KeyPageOf:        "Strona %d z %d",
		KeyAddToCart:     "Dodaj do koszyka",
		KeyViewDetails:   "Szczegóły",
		KeyNoProducts:    "Brak produktów",
		KeyAddedToCart:   "Dodano do koszyka: %s",
		KeyCategories:    "Kategorie",
		KeyRegularPrice:  "Cena regularna %s",
		KeyDescription:   "Opis",

		KeyCartTitle:       "Koszyk",
		KeyCartEmpty:       "Twój koszyk jest pusty",
		KeyCheckout:        "Przejdź do kasy",
		KeyLoginToCheckout: "Zaloguj się, aby złożyć zamówienie",
		KeyRemovedFromCart: "Usunięto z koszyka: %s",

		KeyCheckoutTitle: "Kasa",
		KeyFirstName:     "Imię",
		KeyLastName:      "Nazwisko",
		KeyAddress:       "Adres",
		KeyCity:          "Miasto",
		KeyState:         "Województwo",
		KeyPostcode:      "Kod pocztowy",
		KeyCountry:       "Kraj",
		KeyEmail:         "Email",
		KeyPhone:         "Telefon",
		KeyPayment:       "Płatność",
		KeyPlaceOrder:    "Złóż zamówienie",
		KeyPlacingOrder:  "Składanie zamówienia...",
		KeyOrderPlaced:   "Zamówienie #%d zostało złożone",
		KeyOrderFailed:   "Nie udało się złożyć zamówienia",

		KeyLoginTitle:      "Logowanie",
		KeyRegisterTitle:   "Rejestracja",
		KeyUsername:        "Nazwa użytkownika",
		KeyPassword:        "Hasło",
		KeyName:            "Imię i nazwisko",
		KeyRegister:        "Zarejestruj",
		KeyLogin:           "Zaloguj",
		KeyLoginSuccess:    "Zalogowano pomyślnie",
		KeyLoginFailed:     "Nieprawidłowe dane logowania",
		KeyRegisterSuccess: "Konto utworzone! Możesz się teraz zalogować.",
		KeyRegisterFailed:  "Nie udało się zarejestrować",
		KeyFieldsRequired:  "Wszystkie pola są wymagane",
		KeyInvalidEmail:    "Nieprawidłowy adres email",

		KeyAccountTitle: "Moje konto",
		KeyUserID:       "Numer klienta",
		KeyNotLoggedIn:  "Nie jesteś zalogowany",

		KeyOrdersTitle:        "Moje zamówienia",
		KeyNoOrders:           "Brak zamówień",
		KeyOrderDate:          "Data",
		KeyOrderStatus:        "Status",
		KeyOrderItems:         "Pozycje",
		KeyDeleteConfirmTitle: "Usuń zamówienie",
		KeyDeleteConfirm:      "Usunąć zamówienie #%d?",
		KeyOrderDeleted:       "Zamówienie #%d usunięte",

		KeyProductsPerPage: "Produktów na stronie",
		KeyConfirmDelete:   "Pytaj przed usunięciem zamówienia",
		KeySettingsSaved:   "Ustawienia zapisane!",

		KeyErrNetwork:             "Brak połączenia ze sklepem. Sprawdź sieć.",
		KeyErrUnauthorized:        "Sklep odrzucił żądanie. Sprawdź dane dostępowe.",
		KeyErrNotFound:            "Nie znaleziono",
		KeyErrServer:              "Błąd po stronie sklepu. Spróbuj później.",
		KeyErrInvalid:             "Sklep odrzucił żądanie",
		KeyErrEmptyCart:           "Twój koszyk jest pusty",
		KeyErrUnknown:             "Coś poszło nie tak",
		KeyErrRegistrationOff:     "Rejestracja jest niedostępna",
		KeyErrNotLoggedIn:         "Najpierw się zaloguj",
		KeyErrNotDeletable:        "Można usuwać tylko zrealizowane zamówienia",
		KeyErrInvalidLogin:        "Nieprawidłowe dane logowania",
		KeyErrCredentialsRejected: "Zła nazwa użytkownika lub hasło",

		"status_pending":    "Oczekuje na płatność",
		"status_processing": "W realizacji",
		"status_on-hold":    "Wstrzymane",
		"status_completed":  "Zrealizowane",
		"status_cancelled":  "Anulowane",
		"status_refunded":   "Zwrócone",
		"status_failed":     "Nieudane",
		"status_trash":      "Usunięte",
	}
}
