package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// isMobileDevice checks if the app is running on a mobile device
func isMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// isLandscape returns true if the orientation is horizontal
func isLandscape(orientation fyne.DeviceOrientation) bool {
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// mobileColumns is the number of product cards per row on a mobile screen
func mobileColumns(orientation fyne.DeviceOrientation) int {
	if isLandscape(orientation) {
		return 2
	}
	return 1
}

// newProductGrid lays product cards out in fixed cells on desktop and in
// full-width columns on mobile
func newProductGrid() *fyne.Container {
	if !isMobileDevice() {
		return container.NewGridWrap(fyne.NewSize(ProductCardWidth, ProductCardHeight))
	}
	return container.NewAdaptiveGrid(mobileColumns(fyne.CurrentDevice().Orientation()))
}
