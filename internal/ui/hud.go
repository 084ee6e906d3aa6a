//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"ecosim/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status and parameter panel to the right of the grid.
type HUD struct {
	sim   core.Sim
	width int
	panel *ebiten.Image
	title string

	paused   bool
	stats    []core.Stat
	snapshot core.ParameterSnapshot
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim)}
	if provider, ok := sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	return h
}

// Update refreshes the cached counters from the simulation.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	h.paused = paused
	if provider, ok := h.sim.(core.StatsProvider); ok {
		h.stats = provider.Stats()
	}
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, headerColor)

	state := "running"
	if h.paused {
		state = "paused"
	}
	y += lineHeight
	text.Draw(h.panel, state, face, panelPadding, y, dimColor)

	for _, s := range h.stats {
		y += lineHeight
		text.Draw(h.panel, fmt.Sprintf("%-12s %d", s.Label, s.Value), face, panelPadding, y, textColor)
	}

	for _, g := range h.snapshot.Groups {
		y += groupSpacing
		text.Draw(h.panel, g.Name, face, panelPadding, y, headerColor)
		for _, p := range g.Params {
			y += lineHeight
			if y > height-panelPadding {
				break
			}
			text.Draw(h.panel, fmt.Sprintf("%-22s %s", p.Label, p.Value), face, panelPadding, y, dimColor)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Simulation"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}

var (
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 15
	groupSpacing   = 26
	headerBaseline = 6
)
