// internal/state/play_state.go
package state

import (
	"errors"
	"fmt"
	"image/color"

	"go-maze-defense/internal/app"
	"go-maze-defense/internal/audio"
	"go-maze-defense/internal/component"
	"go-maze-defense/internal/config"
	"go-maze-defense/internal/event"
	"go-maze-defense/internal/log"
	"go-maze-defense/internal/snapshot"
	"go-maze-defense/internal/types"
	"go-maze-defense/internal/ui"
	"go-maze-defense/pkg/gridmap"
	"go-maze-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	tracerLifetime  = 0.12 // секунды
	messageLifetime = 2.0
	publishInterval = 0.25
)

// PlayConfig — зависимости игрового состояния. Всё, кроме Game, может быть nil.
type PlayConfig struct {
	Game        *app.Game
	Sound       *audio.SoundManager
	Events      *snapshot.EventLog
	Store       *snapshot.Store
	SnapshotDir string
	Logger      *log.Logger
}

// tracer — след мгновенного выстрела снайпера
type tracer struct {
	x1, y1, x2, y2 float64
	ttl            float64
}

// PlayState — основное состояние: ввод игрока, тик симуляции и отрисовка.
type PlayState struct {
	sm            *StateMachine
	game          *app.Game
	renderer      *render.GridRenderer
	indicator     *ui.StateIndicator
	waveIndicator *ui.WaveIndicator
	lives         *ui.LivesIndicator
	speedButton   *ui.SpeedButton
	pauseButton   *ui.PauseButton
	buildPanel    *ui.BuildPanel

	sound       *audio.SoundManager
	events      *snapshot.EventLog
	store       *snapshot.Store
	snapshotDir string
	logger      *log.Logger

	tracers      []tracer
	message      string
	messageTTL   float64
	publishTimer float64
}

func NewPlayState(sm *StateMachine, cfg PlayConfig) *PlayState {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Discard()
	}
	g := cfg.Game
	grid := g.Grid()
	layout := grid.Layout()
	boardBottom := int(layout.OffsetY + float64(grid.Height())*layout.TileSize)

	mapColors := render.MapColors{
		BackgroundColor:   config.BackgroundColor,
		GridLineColor:     config.GridLineColor,
		PassableColor:     config.PassableColor,
		DecorationColor:   config.DecorationColor,
		PathColor:         config.PathColor,
		EntryColor:        config.EntryColor,
		ExitColor:         config.ExitColor,
		ValidHoverColor:   config.ValidHoverColor,
		BlockedHoverColor: config.BlockedHoverColor,
		TextColor:         config.TextLightColor,
		StrokeWidth:       float32(config.StrokeWidth),
	}

	s := &PlayState{
		sm:            sm,
		game:          g,
		renderer:      render.NewGridRenderer(grid, mapColors, config.ScreenWidth, config.ScreenHeight),
		indicator:     ui.NewStateIndicator(float32(config.ScreenWidth-30), 25, 12),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2, 30, config.TextLightColor),
		lives:         ui.NewLivesIndicator(float32(layout.OffsetX)+240, float32(boardBottom+12)),
		speedButton: ui.NewSpeedButton(float32(config.ScreenWidth-80), 25, 8,
			[]color.RGBA{config.TextLightColor, config.BuildStateColor, config.WaveStateColor},
			[]float64{1, 2, 4}),
		pauseButton: ui.NewPauseButton(float32(config.ScreenWidth-130), 25, 9, config.TextLightColor, config.BuildStateColor),
		buildPanel:  ui.NewBuildPanel(int(layout.OffsetX), boardBottom+10, g.Library()),
		sound:       cfg.Sound,
		events:      cfg.Events,
		store:       cfg.Store,
		snapshotDir: cfg.SnapshotDir,
		logger:      logger,
	}
	s.renderer.RenderMapImage()
	return s
}

func (s *PlayState) Enter() {
	s.pauseButton.SetPaused(false)
	if s.sound != nil {
		s.sound.SetMuted(false)
	}
}

func (s *PlayState) Exit() {}

// Game returns the running session.
func (s *PlayState) Game() *app.Game {
	return s.game
}

func (s *PlayState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.pause()
		return
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		// Пустая машина состояний завершает игру
		s.sm.SetState(nil)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF6) {
		s.saveSnapshot()
	}
	if s.game.Phase().Finished() && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.restart()
		return
	}

	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
		if inpututil.IsKeyJustPressed(key) {
			s.buildPanel.Select(i + 1)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.startWave()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if !s.handleUIClick(x, y) {
			s.place(x, y)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) || inpututil.IsKeyJustPressed(ebiten.KeyX) {
		s.remove(ebiten.CursorPosition())
	}

	events := s.game.Update(deltaTime * s.speedButton.Multiplier())
	s.consume(events, deltaTime)
}

// handleUIClick обрабатывает клик по элементам интерфейса; false, если клик пришёлся на поле.
func (s *PlayState) handleUIClick(x, y int) bool {
	switch {
	case s.indicator.IsClicked(x, y):
		s.indicator.HandleClick()
		s.startWave()
	case s.speedButton.IsClicked(x, y):
		s.speedButton.ToggleState()
	case s.pauseButton.IsClicked(x, y):
		s.pause()
	case s.buildPanel.Contains(x, y):
		kind, _ := s.buildPanel.RowAt(x, y)
		s.buildPanel.Selected = kind
	default:
		return false
	}
	return true
}

func (s *PlayState) pause() {
	s.pauseButton.TogglePause()
	if s.sound != nil {
		s.sound.SetMuted(true)
	}
	s.sm.SetState(NewPauseState(s.sm, s))
}

func (s *PlayState) startWave() {
	if err := s.game.StartWave(); err != nil {
		s.notify(err.Error())
	}
}

func (s *PlayState) place(x, y int) {
	c, ok := s.game.Grid().FromWorld(float64(x), float64(y))
	if !ok {
		return
	}
	if _, err := s.game.PlaceTower(s.buildPanel.Selected, c); err != nil {
		s.notify(err.Error())
	}
}

func (s *PlayState) remove(x, y int) {
	c, ok := s.game.Grid().FromWorld(float64(x), float64(y))
	if !ok {
		return
	}
	if err := s.game.RemoveTower(c); err != nil && !errors.Is(err, gridmap.ErrNoTower) {
		s.notify(err.Error())
	}
}

func (s *PlayState) restart() {
	if err := s.game.Reset(); err != nil {
		s.logger.Errorf("restart: %v", err)
		return
	}
	s.renderer.SetGrid(s.game.Grid())
	s.tracers = nil
	if s.events != nil {
		s.events.Reset()
	}
	s.notify("new game, seed " + fmt.Sprint(s.game.Seed()))
	s.publish()
}

func (s *PlayState) saveSnapshot() {
	path, err := snapshot.Save(snapshot.Capture(s.game, s.events), s.snapshotDir)
	if err != nil {
		s.logger.Errorf("save snapshot: %v", err)
		s.notify("snapshot failed")
		return
	}
	s.logger.Infof("snapshot saved to %s", path)
	s.notify("saved " + path)
}

// consume раздаёт события тика звуку, журналу и отладочному серверу.
func (s *PlayState) consume(events []event.Event, realDelta float64) {
	if s.sound != nil {
		s.sound.HandleEvents(events)
	}
	if s.events != nil {
		s.events.Record(s.game.Clock(), events)
	}

	for _, e := range events {
		switch e.Type {
		case event.TowerPlaced, event.TowerRemoved:
			s.renderer.Invalidate()
		case event.GameOver:
			s.notify("game over, press R to restart")
		case event.AllWavesComplete:
			s.notify("victory, press R to play again")
		}
	}
	s.tracers = ageTracers(s.tracers, realDelta)
	s.tracers = append(s.tracers, newTracers(s.game.ECS.Positions, events)...)

	if s.messageTTL > 0 {
		s.messageTTL -= realDelta
	}
	s.publishTimer += realDelta
	if len(events) > 0 || s.publishTimer >= publishInterval {
		s.publish()
	}
}

func (s *PlayState) publish() {
	s.publishTimer = 0
	if s.store == nil {
		return
	}
	s.store.Publish(snapshot.Capture(s.game, s.events))
}

func (s *PlayState) notify(msg string) {
	s.message = msg
	s.messageTTL = messageLifetime
}

// newTracers строит следы мгновенных выстрелов. Если цель уже убрана из ECS,
// конец следа берётся из события EnemyKilled.
func newTracers(positions map[types.EntityID]*component.Position, events []event.Event) []tracer {
	killedAt := make(map[types.EntityID][2]float64)
	for _, e := range events {
		if e.Type != event.EnemyKilled {
			continue
		}
		if data, ok := e.Data.(event.EnemyData); ok {
			killedAt[data.ID] = [2]float64{data.X, data.Y}
		}
	}

	var out []tracer
	for _, e := range events {
		data, ok := e.Data.(event.FireData)
		if e.Type != event.TowerFired || !ok || !data.Instant {
			continue
		}
		from, ok := positions[data.TowerID]
		if !ok {
			continue
		}
		t := tracer{x1: from.X, y1: from.Y, ttl: tracerLifetime}
		if to, ok := positions[data.TargetID]; ok {
			t.x2, t.y2 = to.X, to.Y
		} else if p, ok := killedAt[data.TargetID]; ok {
			t.x2, t.y2 = p[0], p[1]
		} else {
			continue
		}
		out = append(out, t)
	}
	return out
}

func ageTracers(tracers []tracer, dt float64) []tracer {
	kept := tracers[:0]
	for _, t := range tracers {
		t.ttl -= dt
		if t.ttl > 0 {
			kept = append(kept, t)
		}
	}
	return kept
}

func phaseColor(phase component.GameState) color.RGBA {
	switch phase {
	case component.WaveState:
		return config.WaveStateColor
	case component.GameOverState:
		return config.ExitColor
	case component.VictoryState:
		return config.EntryColor
	default:
		return config.BuildStateColor
	}
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen)
	grid := s.game.Grid()
	layout := grid.Layout()

	mx, my := ebiten.CursorPosition()
	hover, onBoard := grid.FromWorld(float64(mx), float64(my))
	if onBoard && !s.game.Phase().Finished() {
		s.renderer.DrawHover(screen, hover, s.game.CanPlace(s.buildPanel.Selected, hover))
	}

	for _, t := range s.game.Towers() {
		def, _ := s.game.Library().Tower(t.Kind)
		radius := float32(layout.TileSize * def.Visuals.RadiusFactor)
		render.DrawCircle(screen, t.X, t.Y, radius, def.Visuals.Color, def.Visuals.StrokeWidth > 0)
		if onBoard && t.Cell == hover && t.Range > 0 {
			render.DrawRange(screen, t.X, t.Y, float32(t.Range), config.RangeColor)
		}
	}
	for _, e := range s.game.Enemies() {
		r, ok := s.game.ECS.Renderables[e.ID]
		if !ok {
			continue
		}
		clr := r.Color
		if e.Slowed {
			clr = render.DarkenColor(clr)
		}
		render.DrawCircle(screen, e.X, e.Y, r.Radius, clr, r.Outlined())
		render.DrawHealthBar(screen, e.X-float64(r.Radius), e.Y-float64(r.Radius)-5, r.Radius*2,
			e.HealthRatio(), config.HealthBarColor, config.HealthBackColor)
	}
	for _, p := range s.game.Projectiles() {
		render.DrawCircle(screen, p.X, p.Y, config.ProjectileRadius, config.ProjectileColor, false)
	}
	for _, t := range s.tracers {
		render.DrawLine(screen, t.x1, t.y1, t.x2, t.y2, config.SniperShotColor)
	}

	s.drawHUD(screen)
}

func (s *PlayState) drawHUD(screen *ebiten.Image) {
	econ := s.game.Economy()
	wave := s.game.WaveStatus()
	phase := s.game.Phase()

	render.DrawText(screen, fmt.Sprintf("$%d", econ.Money), config.TextOffsetX, config.TextOffsetY+6, config.TextLightColor)
	render.DrawText(screen, fmt.Sprintf("killed %d", econ.EnemiesKilled), config.TextOffsetX+80, config.TextOffsetY+6, config.TextLightColor)
	render.DrawText(screen, phase.String(), config.TextOffsetX+180, config.TextOffsetY+6, phaseColor(phase))

	s.waveIndicator.Draw(screen, wave.Current, wave.Total)
	s.indicator.Draw(screen, phaseColor(phase))
	s.speedButton.Draw(screen)
	s.pauseButton.Draw(screen)
	s.buildPanel.Draw(screen, econ.Money)
	s.lives.Draw(screen, econ.Lives, econ.MaxLives)

	if s.messageTTL > 0 && s.message != "" {
		alpha := uint8(255)
		if s.messageTTL < 0.5 {
			alpha = uint8(255 * s.messageTTL / 0.5)
		}
		w := render.TextWidth(s.message)
		render.DrawText(screen, s.message, (config.ScreenWidth-w)/2, config.ScreenHeight-20,
			render.WithAlpha(config.TextLightColor, alpha))
	}
}
