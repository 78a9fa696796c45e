package runner

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/lanerun/internal/config"
	"github.com/vovakirdan/lanerun/internal/core"
)

// Visual characters for rendering
const (
	LowChar    = '▄'
	TallChar   = '█'
	PlayerChar = '▓'
	LaneChar   = '┊'
	GroundChar = '═'
)

const (
	hudRows     = 1
	groundRows  = 1
	minFieldRow = 4
)

// frame maps field units to screen cells.
type frame struct {
	left, top   int
	cols, rows  int
	colsPerLane int
	laneWidth   float64
	height      float64
}

func newFrame(dst *core.Screen, snap Snapshot, cfg config.Config) frame {
	cols := cfg.Render.ColumnsPerLane
	fieldCols := len(snap.Lanes) * cols
	rows := max(dst.Height()-hudRows-groundRows, minFieldRow)
	return frame{
		left:        max((dst.Width()-fieldCols)/2, 0),
		top:         hudRows,
		cols:        fieldCols,
		rows:        rows,
		colsPerLane: cols,
		laneWidth:   cfg.Field.LaneWidth,
		height:      snap.FieldHeight,
	}
}

// x returns the left cell of an entity of cell width w whose left edge is
// at field offset x. Entities are centered in their lane.
func (f frame) x(x float64, w int) int {
	lane := f.left + int(math.Round(x/f.laneWidth*float64(f.colsPerLane)))
	return lane + (f.colsPerLane-w)/2
}

func (f frame) y(y float64) int {
	return f.top + int(math.Floor(y/f.height*float64(f.rows)))
}

func (f frame) w(w float64) int {
	return max(1, int(math.Round(w/f.laneWidth*float64(f.colsPerLane))))
}

func (f frame) h(h float64) int {
	return max(1, int(math.Round(h/f.height*float64(f.rows))))
}

// Render draws a snapshot. The player position is taken from the snapshot
// as is, so callers may substitute an eased display position.
func Render(dst *core.Screen, snap Snapshot, cfg config.Config) {
	dst.Clear()
	f := newFrame(dst, snap, cfg)

	drawLanes(dst, f, len(snap.Lanes))

	for _, p := range snap.PowerUps {
		w := f.w(cfg.PowerUps.Size)
		dst.FillRect(f.x(p.Lane, w), f.y(p.Top), w, f.h(cfg.PowerUps.Size), p.Type.Glyph(), powerUpColor(p.Type))
	}

	for _, o := range snap.Obstacles {
		ch, color := rune(TallChar), core.ColorRed
		if o.Class == HeightLow {
			ch, color = LowChar, core.ColorYellow
		}
		if o.Image != "" {
			color = core.ColorMagenta
		}
		w := f.w(cfg.Obstacles.Width)
		dst.FillRect(f.x(o.Lane, w), f.y(o.Top), w, f.h(o.Height), ch, color)
	}

	drawPlayer(dst, f, snap.Player)
	drawHUD(dst, snap)

	switch {
	case snap.Phase == PhaseIdle:
		drawCenteredMessage(dst, "LANE RUNNER", "Press Enter to Start Game")
	case snap.Phase == PhaseOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  High: %d  |  Enter to Play Again", snap.Score, snap.HighScore))
	case snap.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func drawLanes(dst *core.Screen, f frame, count int) {
	for i := 1; i < count; i++ {
		dst.DrawVLine(f.left+i*f.colsPerLane, f.top, f.rows, LaneChar, core.ColorGray)
	}
	for x := f.left; x < f.left+f.cols; x++ {
		dst.SetColor(x, f.top+f.rows, GroundChar, core.ColorGray)
	}
}

func drawPlayer(dst *core.Screen, f frame, p PlayerView) {
	color := core.ColorCyan
	switch {
	case p.Invulnerable:
		color = core.ColorGray
	case p.Image != "":
		color = core.ColorBrightGreen
	}
	w := f.w(p.Size)
	dst.FillRect(f.x(p.X, w), f.y(p.Y), w, f.h(p.Size), PlayerChar, color)
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorWhite)
	dst.DrawTextColor(14, 0, fmt.Sprintf("High: %d", snap.HighScore), core.ColorYellow)
	dst.DrawTextColor(26, 0, fmt.Sprintf("Speed: %d", snap.Speed), core.ColorBrightCyan)

	status := fmt.Sprintf("Shields: %d", snap.Player.Shields)
	if snap.DoubleScoreLeft > 0 {
		status += fmt.Sprintf("  2x %ds", ceilSeconds(snap.DoubleScoreLeft))
	}
	if snap.SlowMotionLeft > 0 {
		status += fmt.Sprintf("  Slow %ds", ceilSeconds(snap.SlowMotionLeft))
	}
	dst.DrawTextColor(dst.Width()-len(status)-1, 0, status, core.ColorBrightGreen)
}

func ceilSeconds(d time.Duration) int {
	return int(math.Ceil(d.Seconds()))
}

func powerUpColor(t PowerUpType) core.Color {
	switch t {
	case PowerUpShield:
		return core.ColorBrightBlue
	case PowerUpDoubleScore:
		return core.ColorOrange
	default:
		return core.ColorGreen
	}
}

// drawCenteredMessage draws a boxed two-line message in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	dst.DrawTextCentered(boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}
