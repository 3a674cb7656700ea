package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockdodge/internal/core"
	"github.com/vovakirdan/blockdodge/internal/sim"
)

// Visual characters for rendering
const (
	BlockChar = '█'
	FloorChar = '·'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// DrawSnapshot rasterizes a snapshot into dst. The playfield starts below
// the HUD row; pixel boxes are mapped to every cell they touch.
func DrawSnapshot(dst *core.Screen, snap sim.Snapshot, rt core.RuntimeConfig) {
	dst.Clear()

	top := core.HUDRows
	bottom := core.HUDRows + rt.PlayfieldRows()
	if bottom > dst.Height() {
		bottom = dst.Height()
	}

	// Faint floor so the playfield edge is visible
	for y := top; y < bottom; y++ {
		for x := 0; x < dst.Width(); x += 4 {
			dst.Set(x, y, FloorChar, core.ColorGray)
		}
	}

	p := snap.Params
	for _, o := range snap.Obstacles {
		drawBox(dst, o.Rect(p.ObstacleSize), rt, top, bottom, core.ColorRed)
	}
	if snap.Bonus != nil {
		drawBox(dst, snap.Bonus.Rect(p.BonusSize), rt, top, bottom, core.ColorYellow)
	}
	drawBox(dst, snap.Avatar.Rect(p.AvatarSize), rt, top, bottom, core.ColorBlue)

	drawHUD(dst, snap)

	if snap.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.GameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// HUDText returns the status line shown above the playfield.
func HUDText(snap sim.Snapshot) string {
	if snap.GameOver {
		return fmt.Sprintf("Game Over. Score: %d", snap.Score)
	}
	return fmt.Sprintf("Score: %d, Yellow Blocks: %d", snap.Score, snap.BonusCount)
}

func drawHUD(dst *core.Screen, snap sim.Snapshot) {
	dst.DrawText(1, 0, HUDText(snap), core.ColorWhite)

	speed := fmt.Sprintf("Spd: %.0f  Blocks: %d", snap.Speed, snap.SpawnCount)
	dst.DrawText(dst.Width()-len(speed)-1, 0, speed, core.ColorGray)
}

// drawBox fills the cells covered by a pixel rectangle, clipped to the
// playfield rows [top, bottom).
func drawBox(dst *core.Screen, r core.Rect, rt core.RuntimeConfig, top, bottom int, c core.Color) {
	x0, x1 := core.CellSpan(r.X, r.Right(), rt.CellW)
	y0, y1 := core.CellSpan(r.Y, r.Bottom(), rt.CellH)
	y0 = core.ClampI(y0+top, top, bottom)
	y1 = core.ClampI(y1+top, top, bottom)
	dst.FillCells(x0, y0, x1, y1, BlockChar, c)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillCells(boxX, boxY, boxX+boxW, boxY+boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorDefault)
}
