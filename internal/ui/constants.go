package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconCart     = "🛒"
	IconClose    = "×"
	IconError    = "❌"
	IconLanguage = "🌐"
	IconSale     = "%"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	CartCountFormat    = "%s %s (%d)"
	OrderTitleFormat   = "#%d"
)

// Layout sizing
const (
	ProductCardWidth  float32 = 220
	ProductCardHeight float32 = 330
	ThumbnailSize     float32 = 140
	DetailImageSize   float32 = 320
	FormWidth         float32 = 420

	DescriptionSummaryRunes = 120
)

// Toast notification sizing and behavior
const (
	ToastAutoHide = 4 * time.Second
)

// Network call bounds
const (
	RequestTimeout = 45 * time.Second
	ImageTimeout   = 20 * time.Second
)
