package ui

import (
	"context"
	"fmt"

	"missile-engine/internal/beam"

	"github.com/gdamore/tcell/v2"
)

// AllyQuestion is asked when the tracer finds allies in the line of fire.
const AllyQuestion = "Your line of fire passes through an ally. Fire anyway? (y/n)"

// Console asks the player questions on the bottom row of the screen.
type Console struct {
	screen tcell.Screen
}

// NewConsole creates a console on screen.
func NewConsole(screen tcell.Screen) *Console {
	return &Console{screen: screen}
}

// Confirm shows question and blocks until the player answers. Only y
// accepts; n, Escape and q decline. A cancelled context declines.
func (c *Console) Confirm(ctx context.Context, question string) bool {
	w, h := c.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	for x := 0; x < w; x++ {
		c.screen.SetContent(x, h-1, ' ', nil, style)
	}
	col := 0
	for _, ch := range fit(question, w) {
		c.screen.SetContent(col, h-1, ch, nil, style)
		col++
	}
	c.screen.Show()

	for {
		if ctx.Err() != nil {
			return false
		}
		ev := c.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// Screen finalized.
			return false
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape {
				return false
			}
			if ev.Key() != tcell.KeyRune {
				continue
			}
			switch ev.Rune() {
			case 'y', 'Y':
				return true
			case 'n', 'N', 'q':
				return false
			}
		}
	}
}

// AllyDecider prompts the player whenever allies are in the way.
func (c *Console) AllyDecider() beam.Decider {
	return beam.AllyPrompt(func(ctx context.Context, _ *beam.Beam, stats beam.TraceStats) bool {
		q := AllyQuestion
		if stats.FriendCount > 1 {
			q = fmt.Sprintf("Your line of fire passes through %d allies. Fire anyway? (y/n)", stats.FriendCount)
		}
		return c.Confirm(ctx, q)
	})
}
