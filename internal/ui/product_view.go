package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/storefront/internal/model"
	"github.com/ytget/storefront/internal/platform"
)

func (ui *RootUI) buildProductView(id int) fyne.CanvasObject {
	back := widget.NewButtonWithIcon(ui.localization.GetText(KeyBack), theme.NavigateBackIcon(), func() {
		ui.Navigate(ViewProducts)
	})
	back.Importance = widget.LowImportance

	status := widget.NewLabel(ui.localization.GetText(KeyLoading))
	body := container.NewStack(container.NewCenter(widget.NewProgressBarInfinite()))

	ui.background(func(ctx context.Context) {
		product, err := ui.svc.Catalog.Product(ctx, id)
		fyne.Do(func() {
			if err != nil {
				status.SetText(IconError + " " + ui.localization.errorText("", err))
				body.Objects = nil
				body.Refresh()
				return
			}
			status.Hide()
			body.Objects = []fyne.CanvasObject{ui.productDetail(*product)}
			body.Refresh()
		})
	})

	return container.NewBorder(container.NewVBox(container.NewHBox(back), status), nil, nil, nil, body)
}

// productDetail renders the full product page
func (ui *RootUI) productDetail(product model.Product) fyne.CanvasObject {
	img := ui.productImage(product.ThumbnailURL(), DetailImageSize)

	name := widget.NewLabelWithStyle(product.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	name.SizeName = theme.SizeNameHeadingText
	name.Wrapping = fyne.TextWrapWord

	add := widget.NewButtonWithIcon(ui.localization.GetText(KeyAddToCart), theme.ContentAddIcon(), func() {
		ui.addToCart(product)
	})
	add.Importance = widget.HighImportance

	info := container.NewVBox(name, ui.priceRow(product))
	if categories := product.CategoryNames(); categories != "" {
		label := widget.NewLabel(ui.localization.GetText(KeyCategories) + ": " + categories)
		label.Importance = widget.LowImportance
		info.Add(label)
	}
	info.Add(container.NewHBox(add))

	description := widget.NewLabel(platform.DescriptionText(product.Description))
	description.Wrapping = fyne.TextWrapWord

	top := container.NewBorder(nil, nil, img, nil, info)
	return container.NewVScroll(container.NewVBox(
		top,
		widget.NewSeparator(),
		widget.NewLabelWithStyle(ui.localization.GetText(KeyDescription), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		description,
	))
}
