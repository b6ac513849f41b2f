package tui

import (
	"fmt"

	"github.com/aditya-arolkar-swe/rusty-snake/internal/core"
	"github.com/aditya-arolkar-swe/rusty-snake/internal/game"
)

// hudHeight is the number of screen rows reserved above the board for the
// score line and separator.
const hudHeight = 2

// DrawBoard renders a game snapshot into the screen buffer: HUD, wall
// border, snake, food, and any terminal-state overlay. The snapshot is
// treated as read-only.
func DrawBoard(dst *core.Screen, snap game.Snapshot) {
	dst.Clear()

	drawHUD(dst, snap)

	if tooSmall(dst, snap) {
		drawOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	offX := (dst.Width() - snap.GridWidth) / 2
	offY := hudHeight + (dst.Height()-hudHeight-snap.GridHeight)/2

	drawWalls(dst, snap, offX, offY)
	drawFood(dst, snap, offX, offY)
	drawSnake(dst, snap, offX, offY)

	switch snap.Outcome {
	case game.OutcomeWon:
		drawOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", snap.Score))
	case game.OutcomeGameOver:
		drawOverlay(dst, "Game Over", "Press R to restart")
	}
}

func tooSmall(dst *core.Screen, snap game.Snapshot) bool {
	return dst.Width() < snap.GridWidth || dst.Height() < snap.GridHeight+hudHeight
}

func drawHUD(dst *core.Screen, snap game.Snapshot) {
	hud := fmt.Sprintf(" Rusty Snake — Score: %d  Length: %d", snap.Score, len(snap.Body))
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// drawWalls draws the one-cell border ring in white, matching the original
// game's wall color.
func drawWalls(dst *core.Screen, snap game.Snapshot, offX, offY int) {
	for x := 0; x < snap.GridWidth; x++ {
		dst.SetColored(offX+x, offY, '█', core.ColorWhite)
		dst.SetColored(offX+x, offY+snap.GridHeight-1, '█', core.ColorWhite)
	}
	for y := 0; y < snap.GridHeight; y++ {
		dst.SetColored(offX, offY+y, '█', core.ColorWhite)
		dst.SetColored(offX+snap.GridWidth-1, offY+y, '█', core.ColorWhite)
	}
}

func drawSnake(dst *core.Screen, snap game.Snapshot, offX, offY int) {
	for i, segment := range snap.Body {
		r := 'o'
		if i == 0 {
			r = 'O' // Head
		}
		dst.SetColored(offX+segment.X, offY+segment.Y, r, core.ColorBrightGreen)
	}
}

func drawFood(dst *core.Screen, snap game.Snapshot, offX, offY int) {
	dst.SetColored(offX+snap.Food.X, offY+snap.Food.Y, '●', core.ColorRed)
}

// drawOverlay draws a centered two-line message box over the board.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
