package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BirdBodyChar  = '●'
	BirdLevelChar = '▶'
	BirdUpChar    = '◥'
	BirdDownChar  = '◢'
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	GrassChar     = '▀'
	GroundChar    = '░'
)

// Minimum terminal size the playfield is drawn at.
const (
	MinScreenW = 24
	MinScreenH = 10
)

// Render draws a snapshot onto the screen, scaling the world to fit.
// It only reads the snapshot.
func Render(snap Snapshot, dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorRed)
		return
	}

	v := newViewport(snap.World, dst.Width(), dst.Height())

	for _, o := range snap.Obstacles {
		drawPipe(dst, v, snap, o)
	}
	drawGround(dst, v)
	drawBird(dst, v, snap.Bird)
	drawHUD(dst, snap)

	switch snap.Phase {
	case PhaseMenu:
		drawCenteredMessage(dst, core.ColorCyan,
			"FLAPPY",
			"SPACE / click to flap",
			"P pause  R menu  Q quit")
	case PhasePaused:
		drawCenteredMessage(dst, core.ColorCyan,
			"PAUSED",
			"Press P to resume")
	case PhaseGameOver:
		drawCenteredMessage(dst, core.ColorRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d  |  Best: %d", snap.Score, snap.Best),
			"SPACE to retry  R for menu")
	}
}

// viewport maps world units to screen cells.
type viewport struct {
	sx, sy    float64
	groundRow int
}

func newViewport(world Geometry, w, h int) viewport {
	return viewport{
		sx:        float64(w) / world.Width,
		sy:        float64(h) / world.Height,
		groundRow: int(math.Round(world.GroundTop * float64(h) / world.Height)),
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return int(math.Floor(y * v.sy))
}

// drawPipe renders a single pipe pair.
func drawPipe(dst *core.Screen, v viewport, snap Snapshot, o ObstacleView) {
	x0 := v.col(o.X)
	x1 := core.Max(v.col(o.X+snap.World.ObstacleWidth), x0+1)
	upperEnd := v.row(o.GapCenter - snap.Gap/2)
	lowerStart := core.Min(v.row(o.GapCenter+snap.Gap/2), v.groundRow)

	for x := x0; x < x1; x++ {
		for y := 0; y < upperEnd; y++ {
			dst.SetColor(x, y, PipeChar, core.ColorGreen)
		}
		if upperEnd > 0 {
			dst.SetColor(x, upperEnd-1, PipeCapTop, core.ColorBrightGreen)
		}

		for y := lowerStart; y < v.groundRow; y++ {
			dst.SetColor(x, y, PipeChar, core.ColorGreen)
		}
		if lowerStart < v.groundRow {
			dst.SetColor(x, lowerStart, PipeCapBottom, core.ColorBrightGreen)
		}
	}
}

// drawGround renders the grass line and the ground band below it.
func drawGround(dst *core.Screen, v viewport) {
	dst.DrawHLine(0, v.groundRow, dst.Width(), GrassChar, core.ColorBrightGreen)
	for y := v.groundRow + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundChar, core.ColorBrown)
	}
}

// drawBird renders the bird, tilting the head with its vertical velocity.
func drawBird(dst *core.Screen, v viewport, bird Actor) {
	x := v.col(bird.X)
	y := core.Clamp(v.row(bird.Y), 0, v.groundRow-1)

	head := BirdLevelChar
	switch tilt := core.ClampF(bird.VY/10, -0.4, 0.6); {
	case tilt <= -0.3:
		head = BirdUpChar
	case tilt >= 0.4:
		head = BirdDownChar
	}

	dst.SetColor(x-1, y, BirdBodyChar, core.ColorBrightYellow)
	dst.SetColor(x, y, head, core.ColorOrange)
}

// drawHUD renders score and best on the top row.
func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColor(1, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)
	best := fmt.Sprintf(" Best: %d ", snap.Best)
	dst.DrawTextColor(dst.Width()-len(best)-1, 0, best, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, c core.Color, title string, lines ...string) {
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)

	dst.DrawTextCentered(boxY+1, title, c)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+3+i, l, core.ColorWhite)
	}
}
