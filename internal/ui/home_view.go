package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

func (ui *RootUI) buildHomeView() fyne.CanvasObject {
	title := ui.heading(KeyWelcomeTitle)
	title.Alignment = fyne.TextAlignCenter

	text := widget.NewLabelWithStyle(ui.localization.GetText(KeyWelcomeText), fyne.TextAlignCenter, fyne.TextStyle{})

	shopNow := widget.NewButton(ui.localization.GetText(KeyShopNow), func() {
		ui.Navigate(ViewProducts)
	})
	shopNow.Importance = widget.HighImportance

	return container.NewCenter(container.NewVBox(title, text, container.NewCenter(shopNow)))
}
