package core

import "math"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
	RGBGray  = RGB{0x88, 0x88, 0x88}
	RGBRed   = RGB{255, 0, 0}
)

// RGBFromFloat converts [0,1] channels, out of range values are clamped
func RGBFromFloat(r, g, b float64) RGB {
	return RGB{R: channel(r), G: channel(g), B: channel(b)}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(math.Round(float64(src.R)*alpha + float64(c.R)*inv)),
		G: uint8(math.Round(float64(src.G)*alpha + float64(c.G)*inv)),
		B: uint8(math.Round(float64(src.B)*alpha + float64(c.B)*inv)),
	}
}

// Scale multiplies each channel by factor (for shading)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}
