package ui

import (
	"context"
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/storefront/internal/catalog"
	"github.com/ytget/storefront/internal/model"
	"github.com/ytget/storefront/internal/platform"
	"github.com/ytget/storefront/internal/woocommerce"
)

// catalogView is the paginated product grid
type catalogView struct {
	ui     *RootUI
	grid   *fyne.Container
	pager  *fyne.Container
	status *widget.Label
}

func (ui *RootUI) buildCatalogView() fyne.CanvasObject {
	v := &catalogView{
		ui:     ui,
		grid:   newProductGrid(),
		pager:  container.NewHBox(),
		status: widget.NewLabel(ui.localization.GetText(KeyLoading)),
	}

	v.load(ui.svc.Catalog.Reload)

	top := container.NewVBox(ui.heading(KeyProductsTitle), v.status)
	return container.NewBorder(top, container.NewCenter(v.pager), nil, nil, container.NewVScroll(v.grid))
}

// load fetches a page in the background and renders it
func (v *catalogView) load(fetch func(ctx context.Context) (*woocommerce.ProductPage, error)) {
	v.status.SetText(v.ui.localization.GetText(KeyLoading))
	v.status.Show()

	v.ui.background(func(ctx context.Context) {
		page, err := fetch(ctx)
		fyne.Do(func() {
			if err != nil {
				v.status.SetText(IconError + " " + v.ui.localization.errorText("", err))
				return
			}
			v.render(page)
		})
	})
}

func (v *catalogView) render(page *woocommerce.ProductPage) {
	objects := make([]fyne.CanvasObject, 0, len(page.Products))
	for _, product := range page.Products {
		objects = append(objects, v.ui.productCard(product))
	}
	v.grid.Objects = objects
	v.grid.Refresh()

	if len(page.Products) == 0 {
		v.status.SetText(v.ui.localization.GetText(KeyNoProducts))
	} else {
		v.status.Hide()
	}

	v.renderPager(page.Page, max(page.TotalPages, 1))
}

// renderPager shows Previous, the page window and Next
func (v *catalogView) renderPager(current, total int) {
	pages := catalog.VisiblePages(current, total, catalog.PageWindow)
	if pages == nil {
		v.pager.Objects = nil
		v.pager.Refresh()
		return
	}

	svc := v.ui.svc.Catalog
	prev := widget.NewButton(v.ui.localization.GetText(KeyPrevious), func() { v.load(svc.Prev) })
	if current <= 1 {
		prev.Disable()
	}

	objects := []fyne.CanvasObject{prev}
	for _, n := range pages {
		n := n
		btn := widget.NewButton(strconv.Itoa(n), func() {
			v.load(func(ctx context.Context) (*woocommerce.ProductPage, error) {
				return svc.Page(ctx, n)
			})
		})
		if n == current {
			btn.Importance = widget.HighImportance
		}
		objects = append(objects, btn)
	}

	next := widget.NewButton(v.ui.localization.GetText(KeyNext), func() { v.load(svc.Next) })
	if current >= total {
		next.Disable()
	}
	objects = append(objects, next, widget.NewLabel(fmt.Sprintf(v.ui.localization.GetText(KeyPageOf), current, total)))

	v.pager.Objects = objects
	v.pager.Refresh()
}

// productCard renders one product of the grid
func (ui *RootUI) productCard(product model.Product) fyne.CanvasObject {
	img := ui.productImage(product.ThumbnailURL(), ThumbnailSize)

	name := widget.NewLabelWithStyle(product.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	name.Truncation = fyne.TextTruncateEllipsis

	desc := widget.NewLabel(platform.Summary(product.Description, DescriptionSummaryRunes))
	desc.Wrapping = fyne.TextWrapWord

	categories := widget.NewLabel(product.CategoryNames())
	categories.Importance = widget.LowImportance
	categories.Truncation = fyne.TextTruncateEllipsis

	details := widget.NewButton(ui.localization.GetText(KeyViewDetails), func() { ui.ShowProduct(product.ID) })
	add := widget.NewButton(ui.localization.GetText(KeyAddToCart), func() { ui.addToCart(product) })
	add.Importance = widget.HighImportance

	return container.NewBorder(
		container.NewVBox(img, name),
		container.NewVBox(categories, ui.priceRow(product), container.NewGridWithColumns(2, details, add)),
		nil, nil,
		desc,
	)
}

// priceRow shows the price paid and, on sale, the regular price beside it
func (ui *RootUI) priceRow(product model.Product) fyne.CanvasObject {
	price := widget.NewLabelWithStyle(product.DisplayPrice(), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	if !product.OnSale() {
		return price
	}

	price.Importance = widget.DangerImportance
	regular := widget.NewLabelWithStyle(
		fmt.Sprintf(ui.localization.GetText(KeyRegularPrice), model.CurrencyPrefix+product.ListPrice()),
		fyne.TextAlignLeading, fyne.TextStyle{Italic: true})
	regular.Importance = widget.LowImportance
	return container.NewHBox(widget.NewLabel(IconSale), price, regular)
}
