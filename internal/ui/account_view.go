package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

func (ui *RootUI) buildAccountView() fyne.CanvasObject {
	user := ui.svc.Session.User()
	if user == nil {
		return container.NewVBox(ui.heading(KeyAccountTitle), widget.NewLabel(ui.localization.GetText(KeyNotLoggedIn)))
	}

	value := func(s string) fyne.CanvasObject {
		if s == "" {
			s = DashPlaceholder
		}
		return widget.NewLabel(s)
	}

	form := widget.NewForm(
		widget.NewFormItem(ui.localization.GetText(KeyUserID), value(strconv.Itoa(user.ID))),
		widget.NewFormItem(ui.localization.GetText(KeyName), value(user.Name)),
		widget.NewFormItem(ui.localization.GetText(KeyUsername), value(user.Username)),
		widget.NewFormItem(ui.localization.GetText(KeyEmail), value(user.Email)),
	)

	orders := widget.NewButton(ui.localization.GetText(KeyNavOrders), func() { ui.Navigate(ViewOrders) })
	return container.NewVBox(ui.heading(KeyAccountTitle), widget.NewCard(user.GetDisplayName(), "", form), container.NewHBox(orders))
}
