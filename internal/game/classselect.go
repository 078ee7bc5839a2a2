package game

import (
	"fmt"
	"strings"

	"missile-engine/assets"
	"missile-engine/internal/item"

	"github.com/gdamore/tcell/v2"
)

// runClassSelect shows the kit selection screen and blocks until the
// player picks one. Returns false if the player quits without selecting.
func (g *Game) runClassSelect() bool {
	selected := 0
	for {
		g.drawClassSelect(selected)
		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return false
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyUp:
				selected = (selected - 1 + len(assets.Classes)) % len(assets.Classes)
			case tcell.KeyDown:
				selected = (selected + 1) % len(assets.Classes)
			case tcell.KeyEnter:
				g.class = assets.Classes[selected]
				return true
			case tcell.KeyEscape:
				return false
			}
			switch ev.Rune() {
			case 'k', 'K':
				selected = (selected - 1 + len(assets.Classes)) % len(assets.Classes)
			case 'j', 'J':
				selected = (selected + 1) % len(assets.Classes)
			case 'q', 'Q':
				return false
			case '1', '2', '3', '4', '5', '6':
				idx := int(ev.Rune() - '1')
				if idx >= 0 && idx < len(assets.Classes) {
					g.class = assets.Classes[idx]
					return true
				}
			}
		}
	}
}

// drawClassSelect renders the full kit selection UI to the screen.
func (g *Game) drawClassSelect(selected int) {
	g.screen.Clear()
	w, _ := g.screen.Size()

	titleStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 170, 60)).Bold(true)
	normalStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	highlightStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(255, 170, 60))
	statStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(150, 220, 255))
	kitStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 200, 50))

	centerText := func(y int, text string, style tcell.Style) {
		x := max((w-len([]rune(text)))/2, 0)
		drawScreenText(g.screen, x, y, text, style)
	}

	centerText(1, "🎯 THE SHOOTING RANGE 🎯", titleStyle)
	centerText(2, fmt.Sprintf("Choose your kit (difficulty %d)", g.opts.Difficulty), dimStyle)

	// Each kit occupies 4 lines + 1 blank = 5 rows. Start at row 4.
	startY := 4
	for i, class := range assets.Classes {
		y := startY + i*5
		prefix := "  "
		lineStyle := normalStyle
		if i == selected {
			prefix = "► "
			lineStyle = highlightStyle
		}

		nameLine := fmt.Sprintf("%s[%d] %s %s", prefix, i+1, class.Emoji, class.Name)
		drawScreenText(g.screen, 2, y, nameLine, lineStyle)

		loreLine := fmt.Sprintf("      \"%s\"", class.Lore)
		drawScreenText(g.screen, 2, y+1, loreLine, dimStyle)

		statsLine := fmt.Sprintf("      Lv:%-2d HP:%-3d Str:%-2d Dex:%-2d", class.Level, class.MaxHP, class.Str, class.Dex)
		drawScreenText(g.screen, 2, y+2, statsLine, statStyle)

		drawScreenText(g.screen, 2, y+3, "      Kit: "+kitLine(class.Kit), kitStyle)
	}

	hintsY := startY + len(assets.Classes)*5 + 1
	centerText(hintsY, "[j/k or ↑/↓] Navigate   [1-3] Quick-select   [Enter] Confirm   [q] Quit", dimStyle)

	g.screen.Show()
}

func kitLine(kit []item.Item) string {
	parts := make([]string, 0, len(kit))
	for _, it := range kit {
		parts = append(parts, stackName(it))
	}
	return strings.Join(parts, ", ")
}

// drawScreenText writes a string to the screen at (x, y) with the given style.
func drawScreenText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
