package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/storefront/internal/catalog"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage        = "app_language"
	KeyProductsPerPage = "products_per_page"
	KeyConfirmDelete   = "confirm_order_delete"
)

// Default values
const (
	DefaultLanguage        = "system"
	DefaultProductsPerPage = catalog.DefaultPageSize
	DefaultConfirmDelete   = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetProductsPerPage returns the catalog page size
func (s *Settings) GetProductsPerPage() int {
	value := s.app.Preferences().Int(KeyProductsPerPage)
	if value <= 0 {
		s.SetProductsPerPage(DefaultProductsPerPage)
		return DefaultProductsPerPage
	}
	return value
}

// SetProductsPerPage sets the catalog page size
func (s *Settings) SetProductsPerPage(count int) {
	if count < catalog.MinPageSize {
		count = catalog.MinPageSize
	}
	if count > catalog.MaxPageSize {
		count = catalog.MaxPageSize
	}
	s.app.Preferences().SetInt(KeyProductsPerPage, count)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetConfirmDelete returns whether deleting an order asks first
func (s *Settings) GetConfirmDelete() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmDelete, DefaultConfirmDelete)
}

// SetConfirmDelete sets whether deleting an order asks first
func (s *Settings) SetConfirmDelete(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmDelete, confirm)
}

// GetProductsPerPageOptions returns the page sizes offered in the settings dialog
func (s *Settings) GetProductsPerPageOptions() []int {
	return []int{10, 20, 50, 100}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"pl":     "Polski",
	}
}
