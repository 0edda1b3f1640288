package ui

// Package ui contains the Fyne-based desktop storefront. It wires user
// interactions to the cart, session, catalog and order services and renders
// the shop views, notifications and settings. All UI strings are localized
// via Localization.
