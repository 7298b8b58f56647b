package ebiten

import "image/color"

// World palette.
var (
	colorBlack = color.RGBA{0, 0, 0, 255}
	colorWhite = color.RGBA{255, 255, 255, 255}
	colorGray  = color.RGBA{128, 128, 128, 255}
	colorRed   = color.RGBA{255, 0, 0, 255}
	colorBlue  = color.RGBA{0, 0, 255, 255}
)

// Interface palette.
var (
	colorText       = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorSubtle     = color.RGBA{120, 130, 180, 255}
	colorAction     = color.RGBA{180, 150, 250, 255}
	colorSuccess    = color.RGBA{100, 255, 150, 255}
	colorPanel      = color.RGBA{10, 6, 16, 220} // Dark purple panel background
	colorPanelEdge  = color.RGBA{120, 100, 200, 200}
	colorFocus      = color.RGBA{60, 80, 100, 200}
	colorMenuScreen = color.RGBA{26, 26, 46, 255}
	colorHUDShade   = color.RGBA{0, 0, 0, 140}
)

// Font sizes at 1080 lines; multiplied by Metrics.Scale.
const (
	sizeTitle   = 72.0
	sizeHeading = 48.0
	sizeItem    = 36.0
	sizeBody    = 28.0
	sizeSmall   = 22.0
)

// Panel styling.
const (
	cornerRadius = 14
	borderWidth  = 2
)
