package game

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// showEndScreen renders the session summary and returns true if the
// player wants to try again, false to quit.
func (g *Game) showEndScreen() bool {
	cleared := g.state == StateCleared

	// Pre-compute kill breakdown sorted by count descending.
	type killEntry struct {
		name  string
		count int
	}
	var kills []killEntry
	for n, cnt := range g.runLog.Kills {
		kills = append(kills, killEntry{n, cnt})
	}
	sort.Slice(kills, func(i, j int) bool {
		if kills[i].count != kills[j].count {
			return kills[i].count > kills[j].count
		}
		return kills[i].name < kills[j].name
	})
	totalKills := 0
	for _, e := range kills {
		totalKills += e.count
	}

	accuracy := "n/a"
	if g.runLog.Shots > 0 {
		accuracy = fmt.Sprintf("%d%%", 100*g.runLog.Hits/g.runLog.Shots)
	}

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gold := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	dim := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	for {
		g.screen.Clear()
		sw, _ := g.screen.Size()

		sep := func(y int) {
			for x := 0; x < sw; x++ {
				g.screen.SetContent(x, y, '─', nil, gray)
			}
		}
		// label prints a left-aligned key at column 2 and value at column 22.
		label := func(y int, l, v string) {
			drawScreenText(g.screen, 2, y, l, dim)
			drawScreenText(g.screen, 22, y, v, white)
		}

		y := 1
		sep(y)
		y += 2

		if cleared {
			drawScreenText(g.screen, 2, y, "THE RANGE IS CLEAR", gold)
			badge := "[CLEARED]"
			drawScreenText(g.screen, sw-len(badge)-1, y, badge, green)
		} else {
			drawScreenText(g.screen, 2, y, "THE TARGETS WIN THIS ROUND", gold)
			badge := "[DEFEAT]"
			drawScreenText(g.screen, sw-len(badge)-1, y, badge, red)
		}
		y += 2

		label(y, "Kit:", g.runLog.Class)
		y++
		label(y, "Difficulty:", fmt.Sprintf("%d", g.runLog.Difficulty))
		y++
		label(y, "Turns:", fmt.Sprintf("%d", g.runLog.TurnsPlayed))
		y += 2

		label(y, "Shots:", fmt.Sprintf("%d (%s hit)", g.runLog.Shots, accuracy))
		y++
		label(y, "Held Fire:", fmt.Sprintf("%d", g.runLog.Declined))
		y++
		label(y, "Allies Hit:", fmt.Sprintf("%d", g.runLog.AlliesHit))
		y++
		label(y, "Missiles:", fmt.Sprintf("%d returned, %d destroyed, %d dropped",
			g.runLog.Missiles["returned"], g.runLog.Missiles["destroyed"], g.runLog.Missiles["dropped"]))
		y += 2

		label(y, "Targets Down:", fmt.Sprintf("%d", totalKills))
		y++
		if len(kills) > 0 {
			breakdown := ""
			for _, e := range kills {
				breakdown += fmt.Sprintf("%s×%d  ", e.name, e.count)
			}
			drawScreenText(g.screen, 4, y, runewidth.Truncate(breakdown, sw-6, "…"), dim)
			y++
		}
		y++

		label(y, "Damage Taken:", fmt.Sprintf("%d", g.runLog.DamageTaken))
		y++
		if !cleared && g.runLog.CauseOfDeath != "" {
			label(y, "Killed By:", g.runLog.CauseOfDeath)
		}
		y += 2

		sep(y)
		y += 2

		drawScreenText(g.screen, 2, y, "[R] Try Again", green)
		drawScreenText(g.screen, 18, y, "[Q] Quit", red)

		g.screen.Show()

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return false
		case *tcell.EventResize:
			g.screen.Sync()
			continue // redraw on resize
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'r', 'R':
					return true
				case 'q', 'Q':
					return false
				}
			case tcell.KeyEscape:
				return false
			}
		}
	}
}
