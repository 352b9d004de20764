package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/fps-cuber/core"
	"github.com/lixenwraith/fps-cuber/game"
	"github.com/lixenwraith/fps-cuber/parameter"
	"github.com/lixenwraith/fps-cuber/physics"
	"github.com/lixenwraith/fps-cuber/status"
	"github.com/lixenwraith/fps-cuber/vmath"
)

// Radar glyphs
const (
	glyphBox    = '█'
	glyphSphere = '●'
	glyphBullet = '•'
	glyphPlayer = '▲'
	glyphHeart  = '♥'
	glyphScore  = '✴'
)

var _ game.Renderer = (*TerminalRenderer)(nil)

// TerminalRenderer draws the scene as a top-down radar rotated so the camera faces up
type TerminalRenderer struct {
	*Scene
	screen tcell.Screen
	status *status.Registry
	debug  bool

	cellW, cellH float64

	// depth holds the highest surface drawn per cell during a frame
	depth []float64
}

// NewTerminalRenderer wraps a scene with a tcell screen
// status may be nil; debug adds a metrics line to the HUD
func NewTerminalRenderer(screen tcell.Screen, scene *Scene, reg *status.Registry, debug bool) *TerminalRenderer {
	if scene == nil {
		scene = NewScene()
	}
	return &TerminalRenderer{
		Scene:  scene,
		screen: screen,
		status: reg,
		debug:  debug,
		cellW:  parameter.RadarCellWidth,
		cellH:  parameter.RadarCellHeight,
	}
}

// Render records the camera and draws a full frame
func (r *TerminalRenderer) Render(cam game.Camera) {
	r.Scene.Render(cam)
	r.RenderFrame()
}

// RenderFrame redraws the screen from the last recorded camera
func (r *TerminalRenderer) RenderFrame() {
	r.screen.Clear()
	width, height := r.screen.Size()
	if width <= 0 || height <= parameter.HUDRows {
		r.screen.Show()
		return
	}

	hud := r.HUD()
	bg := tcellColor(r.Tint().Scale(parameter.RadarBackgroundScale))
	defaultStyle := tcell.StyleDefault.Background(bg)

	r.drawRadar(width, height, defaultStyle)
	r.drawHUD(width, hud)
	if hud.GameOver {
		r.drawGameOver(width, height, hud)
	}

	r.screen.Show()
}

// radarOrigin returns the screen cell that holds the camera
func radarOrigin(width, height int) (int, int) {
	rows := height - parameter.HUDRows
	return width / 2, parameter.HUDRows + rows/2
}

func (r *TerminalRenderer) drawRadar(width, height int, defaultStyle tcell.Style) {
	for y := parameter.HUDRows; y < height; y++ {
		for x := 0; x < width; x++ {
			r.screen.SetContent(x, y, ' ', nil, defaultStyle)
		}
	}

	cells := width * (height - parameter.HUDRows)
	if cap(r.depth) < cells {
		r.depth = make([]float64, cells)
	}
	r.depth = r.depth[:cells]
	for i := range r.depth {
		r.depth[i] = math.Inf(-1)
	}

	cam := r.Camera()
	forward := vmath.FacingFromAngles(cam.Yaw, 0)
	right := vmath.Strafe(forward)
	ox, oy := radarOrigin(width, height)

	r.each(func(m *Mesh) {
		r.drawMesh(m, cam.Position, forward, right, ox, oy, width, height, defaultStyle)
	})

	r.screen.SetContent(ox, oy, glyphPlayer, nil, defaultStyle.Foreground(tcellColor(RgbPlayer)))
}

// drawMesh rasterizes the XZ footprint of a mesh, keeping the highest surface per cell
func (r *TerminalRenderer) drawMesh(m *Mesh, eye, forward, right mgl64.Vec3, ox, oy, width, height int, defaultStyle tcell.Style) {
	var reach float64
	var glyph rune
	switch m.Shape.Kind {
	case physics.ShapeBox:
		h := m.Shape.HalfExtents
		reach = math.Hypot(h.X(), h.Z())
		glyph = glyphBox
	case physics.ShapeSphere:
		reach = m.Shape.Radius
		glyph = glyphSphere
		if m.Color == core.RGBWhite {
			glyph = glyphBullet
		}
	default:
		// Planes have no footprint; the background stands in for them
		return
	}

	d := m.Position.Sub(eye)
	cx := float64(ox) + d.Dot(right)/r.cellW
	cy := float64(oy) - d.Dot(forward)/r.cellH

	x0 := int(math.Floor(cx - reach/r.cellW))
	x1 := int(math.Ceil(cx + reach/r.cellW))
	y0 := int(math.Floor(cy - reach/r.cellH))
	y1 := int(math.Ceil(cy + reach/r.cellH))
	x0, x1 = max(x0, 0), min(x1, width-1)
	y0, y1 = max(y0, parameter.HUDRows), min(y1, height-1)

	top := m.top()
	style := defaultStyle.Foreground(tcellColor(shade(m.Color, top)))
	hit := false

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			// World point under the cell center, relative to the mesh
			wx := float64(x-ox) * r.cellW
			wz := -float64(y-oy) * r.cellH
			p := eye.Add(right.Mul(wx)).Add(forward.Mul(wz)).Sub(m.Position)
			if !footprint(m.Shape, p) {
				continue
			}
			r.plot(x, y, width, top, glyph, style)
			hit = true
		}
	}

	// Small meshes narrower than a cell still show up at their center
	if !hit {
		x, y := int(math.Round(cx)), int(math.Round(cy))
		if x >= 0 && x < width && y >= parameter.HUDRows && y < height {
			r.plot(x, y, width, top, glyph, style)
		}
	}
}

func (r *TerminalRenderer) plot(x, y, width int, top float64, glyph rune, style tcell.Style) {
	i := (y-parameter.HUDRows)*width + x
	if top <= r.depth[i] {
		return
	}
	r.depth[i] = top
	r.screen.SetContent(x, y, glyph, nil, style)
}

// footprint reports whether a point relative to the shape center lies inside its XZ outline
func footprint(s physics.Shape, p mgl64.Vec3) bool {
	switch s.Kind {
	case physics.ShapeBox:
		return math.Abs(p.X()) <= s.HalfExtents.X() && math.Abs(p.Z()) <= s.HalfExtents.Z()
	case physics.ShapeSphere:
		return p.X()*p.X()+p.Z()*p.Z() <= s.Radius*s.Radius
	}
	return false
}

// shade darkens surfaces that sit lower than the ground plane
func shade(c core.RGB, top float64) core.RGB {
	return c.Scale(vmath.Clamp(1+top/8, 0.35, 1))
}

func (r *TerminalRenderer) drawHUD(width int, hud HUD) {
	base := tcell.StyleDefault.Background(tcellColor(RgbHUDBackground))
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, base)
	}

	x := 0
	heart := base.Foreground(tcellColor(RgbHeart))
	for i := 0; i < hud.Health && x < width; i++ {
		r.screen.SetContent(x, 0, glyphHeart, nil, heart)
		x += 2
	}

	if hud.Status != "" {
		x = r.drawText(x+1, 0, width, hud.Status, base.Foreground(tcellColor(RgbHUDText)))
	}

	if r.debug && r.status != nil {
		r.drawText(x+2, 0, width, r.debugLine(), base.Foreground(tcellColor(RgbDebugText)))
	}

	score := fmt.Sprintf("%c %d", glyphScore, hud.Score)
	r.drawText(width-len([]rune(score))-1, 0, width, score, base.Foreground(tcellColor(RgbScore)))
}

func (r *TerminalRenderer) debugLine() string {
	snap := r.status.Snapshot()
	return fmt.Sprintf("f:%.0f b:%.0f t:%.0f s:%.0f step:%.2fms",
		snap[status.KeyFrames], snap[status.KeyBodies], snap[status.KeyTargets],
		snap[status.KeyBullets], snap[status.KeyStepMillis])
}

func (r *TerminalRenderer) drawGameOver(width, height int, hud HUD) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("score %d", hud.Score),
		"r restart   q quit",
	}
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 2

	left := (width - boxW) / 2
	top := parameter.HUDRows + (height-parameter.HUDRows-boxH)/2
	style := tcell.StyleDefault.Background(tcellColor(RgbOverlayBg)).Foreground(tcellColor(RgbOverlayText))

	for y := top; y < top+boxH; y++ {
		for x := left; x < left+boxW; x++ {
			if x >= 0 && x < width && y >= 0 && y < height {
				r.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}
	for i, l := range lines {
		s := style
		if i == 0 {
			s = style.Foreground(tcellColor(RgbOverlayTitle)).Bold(true)
		}
		r.drawText(left+(boxW-len(l))/2, top+1+i, width, l, s)
	}
}

// drawText writes text from x and returns the column after it
func (r *TerminalRenderer) drawText(x, y, width int, text string, style tcell.Style) int {
	for _, ch := range strings.ToValidUTF8(text, "?") {
		if x >= width {
			break
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}
