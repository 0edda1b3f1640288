package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/storefront/internal/model"
)

// ordersView lists the customer's orders
type ordersView struct {
	ui     *RootUI
	rows   *fyne.Container
	status *widget.Label
}

func (ui *RootUI) buildOrdersView() fyne.CanvasObject {
	v := &ordersView{
		ui:     ui,
		rows:   container.NewVBox(),
		status: widget.NewLabel(ui.localization.GetText(KeyLoading)),
	}

	refresh := widget.NewButtonWithIcon(ui.localization.GetText(KeyRefresh), theme.ViewRefreshIcon(), func() {
		v.load(true)
	})

	v.load(false)

	header := container.NewBorder(nil, nil, ui.heading(KeyOrdersTitle), refresh)
	return container.NewBorder(container.NewVBox(header, v.status), nil, nil, nil, container.NewVScroll(v.rows))
}

// load fetches the orders; without refresh the cached list is used when present
func (v *ordersView) load(refresh bool) {
	v.status.SetText(v.ui.localization.GetText(KeyLoading))
	v.status.Show()

	v.ui.background(func(ctx context.Context) {
		orders, err := v.ui.svc.Orders.List(ctx, refresh)
		fyne.Do(func() {
			if err != nil {
				v.status.SetText(IconError + " " + v.ui.localization.errorText("", err))
				return
			}
			v.render(orders)
		})
	})
}

func (v *ordersView) render(orders []model.Order) {
	if len(orders) == 0 {
		v.status.SetText(v.ui.localization.GetText(KeyNoOrders))
	} else {
		v.status.Hide()
	}

	objects := make([]fyne.CanvasObject, 0, len(orders))
	for _, order := range orders {
		objects = append(objects, v.row(order))
	}
	v.rows.Objects = objects
	v.rows.Refresh()
}

// row renders one order with View and, for completed orders, Delete
func (v *ordersView) row(order model.Order) fyne.CanvasObject {
	l := v.ui.localization

	title := boldLabel(fmt.Sprintf(OrderTitleFormat, order.ID))
	details := widget.NewLabel(order.GetDisplayDate() + MiddleDotSeparator +
		l.StatusText(order.Status.String()) + MiddleDotSeparator + order.GetDisplayTotal())
	items := widget.NewLabel(order.GetItemsSummary())
	items.Importance = widget.LowImportance
	items.Truncation = fyne.TextTruncateEllipsis

	view := widget.NewButton(l.GetText(KeyView), func() { v.showOrder(order.ID) })
	actions := container.NewHBox(view)
	if order.Status.CanDelete() {
		del := widget.NewButtonWithIcon(l.GetText(KeyDelete), theme.DeleteIcon(), func() { v.confirmDelete(order) })
		del.Importance = widget.DangerImportance
		actions.Add(del)
	}

	return container.NewVBox(
		container.NewBorder(nil, nil, title, actions, details),
		items,
		widget.NewSeparator(),
	)
}

// showOrder fetches one order and shows it in a dialog
func (v *ordersView) showOrder(id int) {
	v.ui.showNotification(v.ui.localization.GetText(KeyLoading), true)
	v.ui.background(func(ctx context.Context) {
		order, err := v.ui.svc.Orders.View(ctx, id)
		fyne.Do(func() {
			if err != nil {
				v.ui.showError("", err)
				return
			}
			v.ui.hideNotification()
			v.orderDialog(order)
		})
	})
}

func (v *ordersView) orderDialog(order *model.Order) {
	l := v.ui.localization

	form := widget.NewForm(
		widget.NewFormItem(l.GetText(KeyOrderDate), widget.NewLabel(order.GetDisplayDate())),
		widget.NewFormItem(l.GetText(KeyOrderStatus), widget.NewLabel(l.StatusText(order.Status.String()))),
		widget.NewFormItem(l.GetText(KeyTotal), widget.NewLabel(order.GetDisplayTotal())),
	)
	items := container.NewVBox()
	for _, item := range order.LineItems {
		items.Add(widget.NewLabel(fmt.Sprintf("%s × %d", item.Name, item.Quantity)))
	}
	form.Append(l.GetText(KeyOrderItems), items)

	dialog.ShowCustom(fmt.Sprintf(OrderTitleFormat, order.ID), l.GetText(KeyBack), form, v.ui.window)
}

// confirmDelete asks before deleting when the setting says so
func (v *ordersView) confirmDelete(order model.Order) {
	if !v.ui.settings.GetConfirmDelete() {
		v.delete(order)
		return
	}

	l := v.ui.localization
	dialog.ShowConfirm(
		l.GetText(KeyDeleteConfirmTitle),
		fmt.Sprintf(l.GetText(KeyDeleteConfirm), order.ID),
		func(confirmed bool) {
			if confirmed {
				v.delete(order)
			}
		},
		v.ui.window,
	)
}

func (v *ordersView) delete(order model.Order) {
	v.ui.showNotification(v.ui.localization.GetText(KeyLoading), true)
	v.ui.background(func(ctx context.Context) {
		orders, err := v.ui.svc.Orders.Delete(ctx, order)
		fyne.Do(func() {
			if err != nil {
				v.ui.showError(KeyDelete, err)
				return
			}
			v.ui.showToast(fmt.Sprintf(v.ui.localization.GetText(KeyOrderDeleted), order.ID))
			v.render(orders)
		})
	})
}
