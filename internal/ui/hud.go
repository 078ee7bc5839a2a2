package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// LogLines is how many messages the HUD shows.
const LogLines = 4

// Target is one entry in the HUD's target list.
type Target struct {
	Glyph string
	Name  string
	Dist  int
}

// HUD is everything drawn below the map.
type HUD struct {
	Status   string
	Ammo     string
	Targets  []Target
	Selected int // index into Targets, -1 for none
	Preview  string
	Messages []string
}

// DrawHUD renders the status bar, target list and message log at the
// bottom of the screen.
func (r *Renderer) DrawHUD(h HUD) {
	width, screenH := r.screen.Size()
	hudY := screenH - HUDRows

	// Separator line.
	r.drawHLine(hudY, tcell.ColorGray)

	status := h.Status
	if h.Ammo != "" {
		status += "  " + h.Ammo
	}
	r.drawText(0, hudY+1, fit(status, width), tcell.StyleDefault.Foreground(tcell.ColorWhite))

	targets := ""
	for i, t := range h.Targets {
		mark := " "
		if i == h.Selected {
			mark = ">"
		}
		targets += fmt.Sprintf("%s%d:%s %s(%d) ", mark, i+1, t.Glyph, t.Name, t.Dist)
	}
	if targets == "" {
		targets = "No targets in sight."
	}
	r.drawText(0, hudY+2, fit(targets, width), tcell.StyleDefault.Foreground(tcell.ColorAqua))
	r.drawText(0, hudY+3, fit(h.Preview, width), tcell.StyleDefault.Foreground(tcell.ColorGray))

	// Message log (last LogLines messages).
	start := max(len(h.Messages)-LogLines, 0)
	for i, msg := range h.Messages[start:] {
		r.drawText(0, hudY+4+i, fit(msg, width), tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

// fit truncates s to the screen width.
func fit(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text starting at column x, advancing by each rune's
// display width.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
