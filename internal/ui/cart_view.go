package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/storefront/internal/model"
)

func (ui *RootUI) buildCartView() fyne.CanvasObject {
	lines := ui.svc.Cart.Lines()
	title := ui.heading(KeyCartTitle)

	if len(lines) == 0 {
		shop := widget.NewButton(ui.localization.GetText(KeyShopNow), func() { ui.Navigate(ViewProducts) })
		return container.NewVBox(title, widget.NewLabel(ui.localization.GetText(KeyCartEmpty)), container.NewHBox(shop))
	}

	header := container.NewGridWithColumns(4,
		boldLabel(ui.localization.GetText(KeyName)),
		boldLabel(ui.localization.GetText(KeyUnitPrice)),
		boldLabel(ui.localization.GetText(KeyQuantity)),
		widget.NewLabel(""),
	)

	rows := container.NewVBox()
	for _, line := range lines {
		rows.Add(ui.cartRow(line))
	}

	total := widget.NewLabelWithStyle(
		ui.localization.GetText(KeyTotal)+": "+model.FormatAmount(ui.svc.Cart.Total()),
		fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})

	checkout := widget.NewButtonWithIcon(ui.localization.GetText(KeyCheckout), theme.ConfirmIcon(), ui.onCheckoutClick)
	checkout.Importance = widget.HighImportance

	bottom := container.NewVBox(widget.NewSeparator(), total, container.NewHBox(checkout))
	if !ui.svc.Session.IsAuthenticated() {
		hint := widget.NewLabel(ui.localization.GetText(KeyLoginToCheckout))
		hint.Importance = widget.LowImportance
		bottom.Add(hint)
	}

	return container.NewBorder(container.NewVBox(title, header), bottom, nil, nil, container.NewVScroll(rows))
}

// cartRow renders one cart line with its Remove button
func (ui *RootUI) cartRow(line model.Product) fyne.CanvasObject {
	name := widget.NewLabel(line.Name)
	name.Truncation = fyne.TextTruncateEllipsis

	remove := widget.NewButtonWithIcon(ui.localization.GetText(KeyRemove), theme.DeleteIcon(), func() {
		ui.svc.Cart.Remove(line)
		ui.Navigate(ViewCart)
		ui.showToast(fmt.Sprintf(ui.localization.GetText(KeyRemovedFromCart), line.Name))
	})
	remove.Importance = widget.DangerImportance

	return container.NewGridWithColumns(4,
		name,
		widget.NewLabel(model.FormatAmount(line.EffectivePrice())),
		widget.NewLabel(strconv.Itoa(line.Quantity)),
		remove,
	)
}

// onCheckoutClick opens checkout, or the login form for guests
func (ui *RootUI) onCheckoutClick() {
	if !ui.svc.Session.IsAuthenticated() {
		ui.Navigate(ViewLogin)
		return
	}
	ui.Navigate(ViewCheckout)
}

func boldLabel(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}
