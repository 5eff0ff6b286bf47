package racer

import (
	"fmt"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/sim"
)

// World extents of the play area.
const (
	worldW = 1280.0
	worldH = 720.0
)

// Visual characters for rendering
const (
	RoadChar   = '▬'
	CarChar    = '█'
	NoseFlat   = '▶'
	NoseUp     = '◥'
	NoseDown   = '◢'
	BarrelChar = '●'
	ConeChar   = '▲'
	EdgeChar   = '─'
)

// projector maps world coordinates onto screen cells.
type projector struct {
	w, h int
}

func (p projector) col(x float64) int {
	return int((x + worldW/2) / worldW * float64(p.w))
}

func (p projector) row(y float64) int {
	return int((worldH/2 - y) / worldH * float64(p.h))
}

// rect projects a world box to a screen rectangle at least one cell in size.
func (p projector) rect(b core.Box) core.Rect {
	x0 := p.col(b.Center.X - b.Half.X)
	x1 := p.col(b.Center.X + b.Half.X)
	y0 := p.row(b.Center.Y + b.Half.Y)
	y1 := p.row(b.Center.Y - b.Half.Y)
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Render draws the current run to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	proj := projector{w: dst.Width(), h: dst.Height()}
	reg := g.sim.Registry()

	// Track edges
	dst.DrawHLine(0, 1, dst.Width(), EdgeChar, core.ColorGray)
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), EdgeChar, core.ColorGray)

	for _, seg := range reg.Roads {
		x := proj.col(seg.Pos.X)
		dst.DrawHLine(x-1, proj.row(seg.Pos.Y), 3, RoadChar, core.ColorWhite)
	}

	for _, o := range reg.Obstacles {
		g.drawObstacle(dst, proj, o)
	}

	g.drawCar(dst, proj, reg.Player)

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" %s  Score: %d ", g.track.Info.Title, g.score()))
	if txt, ok := g.texts[sim.HealthLabel]; ok {
		hud := " " + txt.Value + " "
		color := healthColor(g.sim.Health())
		dst.DrawTextColor(dst.Width()-len(hud)-2, 0, hud, color)
	}

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if txt, ok := g.texts[sim.GameOverLabel]; ok {
		title := txt.Value
		if txt.FontSize >= 64 {
			title = spaced(title)
		}
		drawCenteredMessage(dst, title, fmt.Sprintf("Score: %d  |  R restart  |  B menu", g.score()))
	}
}

func (g *Game) drawObstacle(dst *core.Screen, proj projector, o sim.Obstacle) {
	glyph, color := BarrelChar, core.ColorBlue
	switch o.Preset {
	case sim.PresetBarrelRed:
		color = core.ColorRed
	case sim.PresetCone:
		glyph, color = ConeChar, core.ColorOrange
	}
	r := proj.rect(core.NewBox(o.Pos, g.cfg.Obstacles.Width, g.cfg.Obstacles.Height))
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColor(x, y, glyph, color)
		}
	}
}

func (g *Game) drawCar(dst *core.Screen, proj projector, p sim.Player) {
	r := proj.rect(core.NewBox(p.Pos, g.cfg.Player.Width, g.cfg.Player.Height))
	color := core.ColorBrightBlue
	if g.sim.Status() == sim.Lost {
		color = core.ColorGray
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right()-1; x++ {
			dst.SetColor(x, y, CarChar, color)
		}
	}

	nose := NoseFlat
	switch {
	case p.Rotation > 0:
		nose = NoseUp
	case p.Rotation < 0:
		nose = NoseDown
	}
	for y := r.Y; y < r.Bottom(); y++ {
		dst.SetColor(r.Right()-1, y, nose, color)
	}
}

// healthColor shades the HUD by the share of health left.
func healthColor(h sim.Health) core.Color {
	switch {
	case h.Value() <= 1:
		return core.ColorBrightRed
	case h.Value()*2 <= h.Max():
		return core.ColorYellow
	default:
		return core.ColorGreen
	}
}

// spaced renders a large-font title by letter-spacing it.
func spaced(s string) string {
	out := make([]rune, 0, len(s)*2)
	for i, r := range s {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, r)
	}
	return string(out)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	tw, sw := len([]rune(title)), len([]rune(subtitle))
	boxW := core.Max(tw, sw) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColor(boxX+(boxW-tw)/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-sw)/2, boxY+3, subtitle)
}
