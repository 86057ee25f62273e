package battleship

import (
	"fmt"
	"strings"

	engine "github.com/vovakirdan/tui-battleship/internal/battleship"
	"github.com/vovakirdan/tui-battleship/internal/core"
)

// Board panel geometry. Each cell is two columns wide so the grid reads square.
const (
	cellW     = 2
	gutterW   = 3 // row letter plus padding
	panelW    = gutterW + engine.BoardSize*cellW + 2
	panelH    = engine.BoardSize + 3 // header row plus border
	panelGap  = 6
	minWidth  = 2*panelW + panelGap
	minHeight = 22
)

// Cell glyphs.
const (
	glyphWater  = '·'
	glyphShip   = '■'
	glyphHit    = 'X'
	glyphMiss   = 'o'
	glyphCursor = '+'
)

// Resize adapts to a new terminal size without disturbing the match.
func (g *Game) Resize(w, h int) {
	g.rt.ScreenW, g.rt.ScreenH = w, h
	g.tooSmall = w < minWidth || h < minHeight
}

// Render draws both boards, the status lines and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || g.match == nil {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need at least %dx%d", minWidth, minHeight))
		return
	}

	dst.DrawTextCentered(0, "B A T T L E S H I P", core.ColorTitle)

	left := (dst.Width() - minWidth) / 2
	top := 2
	leftPanel := core.NewRect(left, top+1, panelW, panelH)
	rightPanel := core.NewRect(left+panelW+panelGap, top+1, panelW, panelH)

	p1, p2 := g.match.Player1(), g.match.Player2()
	if g.watch {
		dst.DrawTextColor(leftPanel.X, top, p1.Name()+"'s fleet", core.ColorDefault)
		dst.DrawTextColor(rightPanel.X, top, p2.Name()+"'s fleet", core.ColorDefault)
		g.renderBoard(dst, leftPanel, p1.Board(), true, g.lastShot[1], false)
		g.renderBoard(dst, rightPanel, p2.Board(), true, g.lastShot[0], false)
	} else {
		dst.DrawTextColor(leftPanel.X, top, "Your fleet", core.ColorDefault)
		dst.DrawTextColor(rightPanel.X, top, "Enemy waters", core.ColorDefault)
		reveal := g.phase == PhaseOver && g.cfg.Display.RevealEnemyOnEnd
		g.renderBoard(dst, leftPanel, p1.Board(), true, g.lastShot[1], g.phase == PhaseSetup)
		g.renderBoard(dst, rightPanel, p2.Board(), reveal, g.lastShot[0], g.phase == PhaseBattle && !g.match.Current().IsComputer())
		if g.phase == PhaseSetup {
			g.renderPreview(dst, leftPanel, p1.Board())
		}
	}

	y := leftPanel.Bottom() + 1
	msgColor := core.ColorDefault
	if g.alert {
		msgColor = core.ColorAlert
	}
	dst.DrawTextColor(left, y, g.message, msgColor)
	dst.DrawTextColor(left, y+1, g.statsLine(), core.ColorDim)
	dst.DrawTextColor(left, y+2, g.fleetLine(), core.ColorDim)
	dst.DrawTextColor(left, y+4, g.helpLine(), core.ColorDim)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderBoard draws one board inside r. showShips reveals unhit ship cells;
// last highlights the most recent shot against this board; cursor draws the
// player's cursor.
func (g *Game) renderBoard(dst *core.Screen, r core.Rect, b *engine.Board, showShips bool, last *engine.Coord, cursor bool) {
	dst.DrawBox(r, core.ColorDim)
	inner := r.Inset(1)

	for col := range engine.BoardSize {
		dst.DrawTextColor(inner.X+gutterW+col*cellW, inner.Y, fmt.Sprint(col+1), core.ColorDim)
	}

	for row := range engine.BoardSize {
		y := inner.Y + 1 + row
		dst.SetColor(inner.X+1, y, 'A'+rune(row), core.ColorDim)

		for col := range engine.BoardSize {
			c := engine.At(row, col)
			glyph, color := cellGlyph(b, c, showShips)
			if last != nil && *last == c {
				color = core.ColorAlert
			}
			if cursor && g.cursor == c {
				if glyph == glyphWater {
					glyph = glyphCursor
				}
				color = core.ColorCursor
			}
			dst.SetColor(inner.X+gutterW+col*cellW, y, glyph, color)
		}
	}
}

func cellGlyph(b *engine.Board, c engine.Coord, showShips bool) (rune, core.Color) {
	switch b.Cell(c) {
	case engine.CellHit:
		if s := b.ShipAt(c); s != nil && s.IsSunk() {
			return glyphHit, core.ColorSunk
		}
		return glyphHit, core.ColorHit
	case engine.CellMiss:
		return glyphMiss, core.ColorMiss
	case engine.CellShip:
		if showShips {
			return glyphShip, core.ColorShip
		}
	}
	return glyphWater, core.ColorWater
}

// renderPreview draws the next ship at the cursor, green if it fits and red
// if it does not.
func (g *Game) renderPreview(dst *core.Screen, r core.Rect, b *engine.Board) {
	next, ok := g.nextShip()
	if !ok {
		return
	}
	cells := engine.Run(g.cursor, g.dir, next.Length())

	color := core.ColorValid
	for _, c := range cells {
		if !c.InBounds() || b.Occupied(c) {
			color = core.ColorInvalid
			break
		}
	}

	inner := r.Inset(1)
	for _, c := range cells {
		if !c.InBounds() {
			continue
		}
		dst.SetColor(inner.X+gutterW+c.Col*cellW, inner.Y+1+c.Row, glyphShip, color)
	}
}

func (g *Game) statsLine() string {
	p1, p2 := g.match.Player1(), g.match.Player2()
	s1, s2 := g.match.Stats(p1), g.match.Stats(p2)
	line := fmt.Sprintf("%s: %d shots, %d hits (%.0f%%)   %s: %d shots, %d hits (%.0f%%)",
		p1.Name(), s1.Shots, s1.Hits, 100*s1.Accuracy(),
		p2.Name(), s2.Shots, s2.Hits, 100*s2.Accuracy())

	if g.cfg.Display.ShowComputerMode {
		for _, p := range []*engine.Player{p1, p2} {
			if ai := p.Targeting(); ai != nil {
				line += fmt.Sprintf("   [%s: %s]", p.Name(), ai.Mode())
			}
		}
	}
	return line
}

func (g *Game) fleetLine() string {
	if g.phase == PhaseSetup {
		pending := g.match.UnplacedShips(g.human)
		names := make([]string, len(pending))
		for i, s := range pending {
			names[i] = fmt.Sprintf("%s(%d)", s, s.Length())
		}
		return fmt.Sprintf("To place: %s   Direction: %s", strings.Join(names, " "), g.dir)
	}

	p1, p2 := g.match.Player1(), g.match.Player2()
	afloat := func(p *engine.Player) int {
		b := p.Board()
		return len(b.Ships()) - b.SunkCount()
	}
	return fmt.Sprintf("Ships afloat: %s %d   %s %d   Turn %d",
		p1.Name(), afloat(p1), p2.Name(), afloat(p2), g.match.Turns()+1)
}

func (g *Game) helpLine() string {
	switch {
	case g.phase == PhaseOver:
		return "N: new match   B: menu   Q: quit"
	case g.phase == PhaseSetup:
		return "Arrows: move   R: rotate   Enter: place   X: random   C: clear   Q: quit"
	case g.watch:
		return "P: pause   B: menu   Q: quit"
	default:
		return "Arrows: aim   Enter: fire   P: pause   B: menu   Q: quit"
	}
}

// renderOverlay draws a centered two-line box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-5)/2, boxW, 5)

	for y := box.Y; y < box.Bottom(); y++ {
		dst.DrawHLine(box.X, y, box.W, ' ', core.ColorDefault)
	}
	dst.DrawBox(box, core.ColorTitle)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorTitle)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
