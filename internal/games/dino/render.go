package dino

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	CharacterBody = '█'
	CharacterEye  = '▀'
	CharacterLeg1 = '▘'
	CharacterLeg2 = '▝'
	ObstacleChar  = '▓'
	CloudChar     = '░'
	CurtainChar   = '▒'
)

// groundPattern is the texture repeated along each ground segment, one rune
// per world unit, so the scroll is visible.
var groundPattern = []rune("══════─═══·════════─══════·══")

// projection maps world units onto screen cells. A cell is one pixel wide
// and two pixels tall; the first row holds the HUD and the row under the
// world holds the ground line.
type projection struct {
	vp     core.Viewport
	top    int
	minCol int
	maxCol int // Exclusive
	minRow int
	maxRow int // Exclusive
}

func newProjection(dst *core.Screen, worldW, worldH float64) projection {
	const hudRows, groundRows = 1, 1
	rows := dst.Height() - hudRows - groundRows
	vp := core.NewViewport(worldW, worldH, float64(dst.Width()), float64(rows*2))
	p := projection{vp: vp, top: hudRows}
	p.minCol = int(math.Floor(vp.OffsetX))
	p.maxCol = int(math.Ceil(vp.OffsetX + vp.PixelW()))
	p.minRow = p.row(0)
	p.maxRow = hudRows + int(math.Ceil((vp.OffsetY+vp.PixelH())/2))
	return p
}

func (p projection) col(x float64) int {
	return int(math.Floor(p.vp.OffsetX + x*p.vp.Scale))
}

func (p projection) row(y float64) int {
	return p.top + int(math.Floor((p.vp.OffsetY+y*p.vp.Scale)/2))
}

// rect converts world bounds to a cell rectangle of at least one cell,
// clipped to the world area.
func (p projection) rect(b core.Bounds) core.Rect {
	x0 := p.col(b.Left)
	x1 := int(math.Ceil(p.vp.OffsetX + b.Right*p.vp.Scale))
	y0 := p.row(b.Top)
	y1 := p.top + int(math.Ceil((p.vp.OffsetY+b.Bottom*p.vp.Scale)/2))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	x0 = core.Clamp(x0, p.minCol, p.maxCol)
	x1 = core.Clamp(x1, p.minCol, p.maxCol)
	y0 = core.Clamp(y0, p.minRow, p.maxRow)
	y1 = core.Clamp(y1, p.minRow, p.maxRow)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	p := newProjection(dst, g.cfg.World.Width, g.cfg.World.Height)
	if p.vp.Scale <= 0 || p.maxRow-p.minRow < 4 {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorRed)
		return
	}

	// Layering follows the update order: clouds, ground, character, obstacles.
	g.drawClouds(dst, p)
	g.drawGround(dst, p)
	g.drawCharacter(dst, p)
	g.drawObstacles(dst, p)

	g.drawHUD(dst)

	switch {
	case g.curtain.Visible():
		g.drawCurtain(dst, p)
	case g.phase == core.PhaseNotStarted:
		g.drawCenteredMessage(dst, "DINO RUNNER", "Get ready...")
	case g.phase == core.PhaseLost:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score.Displayed()))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawClouds(dst *core.Screen, p projection) {
	for _, c := range g.clouds.Sprites() {
		top := c.Get(PropTop)
		r := p.rect(core.Bounds{Left: c.Left(), Top: top, Right: c.Right(), Bottom: top})
		dst.DrawRect(r, CloudChar, core.ColorWhite)
	}
}

func (g *Game) drawGround(dst *core.Screen, p projection) {
	y := p.maxRow
	for x := p.minCol; x < p.maxCol; x++ {
		worldX := (float64(x) - p.vp.OffsetX) / p.vp.Scale
		ch := groundPattern[0]
		for _, s := range g.ground.Sprites() {
			local := worldX - s.Left()
			if local >= 0 && local < s.Width {
				ch = groundPattern[int(local)%len(groundPattern)]
				break
			}
		}
		dst.SetColor(x, y, ch, core.ColorOrange)
	}
}

func (g *Game) drawCharacter(dst *core.Screen, p projection) {
	r := p.rect(g.character.BoundingRect())
	color := core.ColorGray
	if g.character.Lost() {
		color = core.ColorRed
	}
	dst.DrawRect(r, CharacterBody, color)

	// Eye on the leading edge of the head
	eye := CharacterEye
	if g.character.Lost() {
		eye = 'x'
	}
	dst.SetColor(r.Right()-2, r.Y, eye, core.ColorBrightWhite)

	if r.H < 2 {
		return
	}

	// Legs alternate with the run frame
	legY := r.Bottom() - 1
	for x := r.X; x < r.Right(); x++ {
		dst.SetColor(x, legY, ' ', core.ColorDefault)
	}
	switch g.character.Frame() {
	case 0:
		dst.SetColor(r.X+1, legY, CharacterLeg1, color)
		dst.SetColor(r.Right()-2, legY, CharacterLeg2, color)
	case 1:
		dst.SetColor(r.X+1, legY, CharacterLeg2, color)
		dst.SetColor(r.Right()-2, legY, CharacterLeg1, color)
	default:
		dst.SetColor(r.X+1, legY, CharacterLeg1, color)
		dst.SetColor(r.Right()-2, legY, CharacterLeg1, color)
	}
}

func (g *Game) drawObstacles(dst *core.Screen, p projection) {
	for _, o := range g.obstacles.Obstacles() {
		dst.DrawRect(p.rect(o.Rect()), ObstacleChar, core.ColorGreen)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf(" HI %05d  %05d ", g.score.HighScore(), g.score.Displayed())
	dst.DrawTextColor(dst.Width()-len(scoreText)-1, 0, scoreText, core.ColorBrightWhite)

	modeText := fmt.Sprintf(" %s ", g.cfg.Mode)
	dst.DrawTextColor(1, 0, modeText, core.ColorCyan)

	if g.ramp.IsEnabled() {
		speedText := fmt.Sprintf(" Spd: %.2f ", g.speedScale)
		dst.DrawTextColor(len(modeText)+2, 0, speedText, core.ColorYellow)
	}
}

// drawCurtain covers the world area; while opening, the covered part
// shrinks from the left.
func (g *Game) drawCurtain(dst *core.Screen, p projection) {
	width := p.maxCol - p.minCol
	x0 := p.minCol
	if g.curtain.State() == CurtainOpening {
		x0 += int(math.Round(g.curtain.Progress() * float64(width)))
	}
	r := core.NewRect(x0, p.minRow, p.maxCol-x0, p.maxRow-p.minRow)
	dst.DrawRect(r, CurtainChar, core.ColorGray)

	if g.curtain.State() == CurtainShown {
		dst.DrawTextCentered((p.minRow+p.maxRow)/2, " RESTARTING ", core.ColorBrightWhite)
	}
}

// drawCenteredMessage draws a two-line message in a box at screen center.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	centerY := dst.Height() / 2

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxX := (dst.Width() - boxW) / 2
	box := core.NewRect(boxX, centerY-2, boxW, 5)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(centerY-1, title, core.ColorYellow)
	dst.DrawTextCentered(centerY+1, subtitle, core.ColorWhite)
}
