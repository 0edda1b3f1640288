package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/storefront/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect *widget.Select
	perPageSelect  *widget.Select
	confirmCheck   *widget.Check

	// label shown in languageSelect -> language code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// preferences were written.
func NewSettingsDialog(settings *config.Settings, l *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: l,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	// Language selection, sorted by code for a stable order
	languages := sd.settings.GetLanguageOptions()
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	sd.languageCodes = make(map[string]string, len(codes))
	languageLabels := make([]string, 0, len(codes))
	for _, code := range codes {
		sd.languageCodes[languages[code]] = code
		languageLabels = append(languageLabels, languages[code])
	}
	sd.languageSelect = widget.NewSelect(languageLabels, nil)

	perPage := []string{}
	for _, n := range sd.settings.GetProductsPerPageOptions() {
		perPage = append(perPage, strconv.Itoa(n))
	}
	sd.perPageSelect = widget.NewSelect(perPage, nil)

	sd.confirmCheck = widget.NewCheck(l.GetText(KeyConfirmDelete), nil)

	form := widget.NewForm(
		widget.NewFormItem(l.GetText(KeyLanguage), sd.languageSelect),
		widget.NewFormItem(l.GetText(KeyProductsPerPage), sd.perPageSelect),
		widget.NewFormItem("", sd.confirmCheck),
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(FormWidth, 260))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	current := sd.settings.GetLanguage()
	for label, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(label)
		}
	}
	sd.perPageSelect.SetSelected(strconv.Itoa(sd.settings.GetProductsPerPage()))
	sd.confirmCheck.SetChecked(sd.settings.GetConfirmDelete())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	// Sizes outside the offered list are clamped by Settings
	if n, err := strconv.Atoi(sd.perPageSelect.Selected); err == nil {
		sd.settings.SetProductsPerPage(n)
	}

	sd.settings.SetConfirmDelete(sd.confirmCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
