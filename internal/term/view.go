// Package term draws a game session on a character terminal and maps keys to commands.
package term

import (
	"errors"
	"fmt"

	"go-maze-defense/internal/app"
	"go-maze-defense/internal/component"
	"go-maze-defense/internal/defs"
	"go-maze-defense/internal/event"
	"go-maze-defense/pkg/gridmap"
	mathutil "go-maze-defense/pkg/utils"

	"github.com/gdamore/tcell/v2"
)

const (
	boardX = 1
	boardY = 1
)

var (
	styleDefault    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	stylePassable   = styleDefault.Foreground(tcell.NewRGBColor(80, 80, 90))
	stylePath       = styleDefault.Foreground(tcell.NewRGBColor(70, 130, 160))
	styleDecoration = styleDefault.Foreground(tcell.NewRGBColor(140, 120, 100))
	styleEntry      = styleDefault.Foreground(tcell.ColorGreen)
	styleExit       = styleDefault.Foreground(tcell.ColorRed)
	styleEnemy      = styleDefault.Foreground(tcell.ColorYellow)
	styleMessage    = styleDefault.Foreground(tcell.ColorYellow)
)

// Glyphs used on the board.
const (
	GlyphPassable   = '.'
	GlyphPath       = ':'
	GlyphDecoration = '#'
	GlyphEntry      = 'S'
	GlyphExit       = 'E'
)

var towerGlyphs = map[defs.TowerKind]rune{
	defs.TowerRifleman:  'r',
	defs.TowerSniper:    's',
	defs.TowerBarricade: 'b',
}

var enemyGlyphs = map[defs.EnemyKind]rune{
	defs.EnemyWalker: 'W',
	defs.EnemyRunner: 'R',
}

// Action is what the main loop should do after a key press.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionTogglePause
)

// View keeps the cursor, the selected tower kind and the status line.
type View struct {
	game     *app.Game
	Cursor   gridmap.Coord
	Selected defs.TowerKind
	Paused   bool
	message  string
}

func NewView(game *app.Game) *View {
	return &View{
		game:     game,
		Cursor:   game.Grid().Start(),
		Selected: defs.TowerKinds[0],
	}
}

// Message returns the current status line.
func (v *View) Message() string {
	return v.message
}

// HandleKey applies one key press to the game.
func (v *View) HandleKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		v.moveCursor(0, -1)
	case tcell.KeyDown:
		v.moveCursor(0, 1)
	case tcell.KeyLeft:
		v.moveCursor(-1, 0)
	case tcell.KeyRight:
		v.moveCursor(1, 0)
	case tcell.KeyEnter:
		v.place()
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		v.remove()
	case tcell.KeyRune:
		return v.handleRune(ev.Rune())
	}
	return ActionNone
}

func (v *View) handleRune(r rune) Action {
	switch r {
	case 'q':
		return ActionQuit
	case 'p':
		v.Paused = !v.Paused
		return ActionTogglePause
	case 'h':
		v.moveCursor(-1, 0)
	case 'j':
		v.moveCursor(0, 1)
	case 'k':
		v.moveCursor(0, -1)
	case 'l':
		v.moveCursor(1, 0)
	case '1', '2', '3':
		v.Selected = defs.TowerKinds[r-'1']
	case 'x':
		v.remove()
	case ' ', 'n':
		if err := v.game.StartWave(); err != nil {
			v.message = err.Error()
		}
	case 'r':
		if !v.game.Phase().Finished() {
			return ActionNone
		}
		if err := v.game.Reset(); err != nil {
			v.message = err.Error()
			return ActionNone
		}
		v.Cursor = v.game.Grid().Start()
		v.message = fmt.Sprintf("new game, seed %d", v.game.Seed())
	}
	return ActionNone
}

func (v *View) moveCursor(dx, dy int) {
	grid := v.game.Grid()
	next := v.Cursor.Add(gridmap.Coord{X: dx, Y: dy})
	v.Cursor = gridmap.Coord{
		X: mathutil.ClampInt(next.X, 0, grid.Width()-1),
		Y: mathutil.ClampInt(next.Y, 0, grid.Height()-1),
	}
}

func (v *View) place() {
	if _, err := v.game.PlaceTower(v.Selected, v.Cursor); err != nil {
		v.message = err.Error()
		return
	}
	v.message = ""
}

func (v *View) remove() {
	err := v.game.RemoveTower(v.Cursor)
	switch {
	case err == nil:
		v.message = ""
	case errors.Is(err, gridmap.ErrNoTower):
		v.message = "no tower here"
	default:
		v.message = err.Error()
	}
}

// Observe updates the status line from one tick's events.
func (v *View) Observe(events []event.Event) {
	for _, e := range events {
		switch e.Type {
		case event.WaveComplete:
			if data, ok := e.Data.(event.WaveData); ok {
				v.message = fmt.Sprintf("wave %d/%d cleared", data.Number, data.Total)
			}
		case event.AllWavesComplete:
			v.message = "victory! r restarts, q quits"
		case event.GameOver:
			v.message = "game over. r restarts, q quits"
		}
	}
}

// Glyph returns what the board shows at c, ignoring the cursor.
func (v *View) Glyph(c gridmap.Coord, enemies map[gridmap.Coord]defs.EnemyKind, path map[gridmap.Coord]bool) (rune, tcell.Style) {
	grid := v.game.Grid()
	if kind, ok := enemies[c]; ok {
		return enemyGlyphs[kind], styleEnemy
	}
	switch {
	case c == grid.Start():
		return GlyphEntry, styleEntry
	case c == grid.End():
		return GlyphExit, styleExit
	}
	if t, ok := v.game.TowerAt(c); ok {
		def, _ := v.game.Library().Tower(t.Kind)
		clr := def.Visuals.Color
		return towerGlyphs[t.Kind], styleDefault.Foreground(tcell.NewRGBColor(int32(clr.R), int32(clr.G), int32(clr.B)))
	}
	if cell, err := grid.Cell(c); err == nil && cell.Kind == gridmap.CellDecoration {
		return GlyphDecoration, styleDecoration
	}
	if path[c] {
		return GlyphPath, stylePath
	}
	return GlyphPassable, stylePassable
}

// Draw renders the board, the cursor and the status lines.
func (v *View) Draw(screen tcell.Screen) {
	screen.Clear()
	grid := v.game.Grid()

	enemies := make(map[gridmap.Coord]defs.EnemyKind)
	for _, e := range v.game.Enemies() {
		if c, ok := grid.FromWorld(e.X, e.Y); ok {
			enemies[c] = e.Kind
		}
	}
	path := make(map[gridmap.Coord]bool)
	for _, c := range grid.Path() {
		path[c] = true
	}

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			c := gridmap.Coord{X: x, Y: y}
			r, style := v.Glyph(c, enemies, path)
			if c == v.Cursor {
				style = style.Reverse(true)
			}
			screen.SetContent(boardX+x, boardY+y, r, nil, style)
		}
	}

	row := boardY + grid.Height() + 1
	drawString(screen, boardX, row, v.statusLine(), styleDefault)
	drawString(screen, boardX, row+1, v.buildLine(), styleDefault)
	drawString(screen, boardX, row+2, v.message, styleMessage)
	drawString(screen, boardX, row+4, "arrows/hjkl move  enter build  x remove  space wave  p pause  q quit", stylePassable)
	screen.Show()
}

func (v *View) statusLine() string {
	econ := v.game.Economy()
	wave := v.game.WaveStatus()
	phase := v.game.Phase().String()
	if v.Paused && v.game.Phase() != component.GameOverState && v.game.Phase() != component.VictoryState {
		phase = "paused"
	}
	return fmt.Sprintf("$%d  lives %d/%d  wave %d/%d  %s  killed %d",
		econ.Money, econ.Lives, econ.MaxLives, wave.Current, wave.Total, phase, econ.EnemiesKilled)
}

func (v *View) buildLine() string {
	line := ""
	for i, kind := range defs.TowerKinds {
		def, _ := v.game.Library().Tower(kind)
		mark := " "
		if kind == v.Selected {
			mark = "*"
		}
		line += fmt.Sprintf("%s%d %s $%d  ", mark, i+1, def.Name, def.Cost)
	}
	return line
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
