package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fps-cuber/core"
)

// HUD and overlay colors
var (
	RgbHeart         = core.RGB{R: 230, G: 40, B: 60}
	RgbHeartEmpty    = core.RGB{R: 70, G: 70, B: 70}
	RgbScore         = core.RGB{R: 255, G: 200, B: 40}
	RgbHUDBackground = core.RGB{R: 0, G: 0, B: 0}
	RgbHUDText       = core.RGB{R: 200, G: 200, B: 200}
	RgbDebugText     = core.RGB{R: 0, G: 200, B: 200}
	RgbPlayer        = core.RGB{R: 0, G: 255, B: 120}
	RgbOverlayBg     = core.RGB{R: 40, G: 0, B: 0}
	RgbOverlayText   = core.RGB{R: 255, G: 255, B: 255}
	RgbOverlayTitle  = core.RGB{R: 255, G: 60, B: 60}
)

// tcellColor converts a core color to a true-color tcell value
func tcellColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
