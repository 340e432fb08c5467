// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/boxkick/internal/application/scene"
	"github.com/younwookim/boxkick/internal/application/state"
	"github.com/younwookim/boxkick/internal/application/system"
	"github.com/younwookim/boxkick/internal/domain/entity"
	"github.com/younwookim/boxkick/internal/infrastructure/assets"
	"github.com/younwookim/boxkick/internal/infrastructure/audio"
	"github.com/younwookim/boxkick/internal/infrastructure/config"
	"github.com/younwookim/boxkick/internal/infrastructure/render"
)

const (
	colorClear = uint32(0xff000000)

	mapFadeAlpha   = 200 // black overlay right after a map change
	mapFadeSeconds = 0.4

	clearedAlpha   = 160
	clearedSeconds = 1.0
)

// Playing is the main gameplay scene
type Playing struct {
	cfg        *config.GameConfig
	prototypes []*entity.Map
	world      *entity.World
	engine     *system.Engine
	input      system.InputSource
	sink       audio.Sink

	sprites   *assets.Sprites
	frame     *render.Framebuffer
	presenter *render.Presenter

	prevInput system.InputState
	events    []system.Event
	ticks     int

	// Overlay fade
	fade      *gween.Tween
	fadeAlpha float32

	// Hot reload
	loader  *config.Loader
	watcher *config.Watcher

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene on the first map of cfg.
// If recordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, in system.InputSource, sprites *assets.Sprites, sink audio.Sink, recordPath string) *Playing {
	if sink == nil {
		sink = audio.NullSink{}
	}

	prototypes := system.LoadMaps(cfg.Maps, cfg.Tuning)
	disp := cfg.Tuning.Display

	p := &Playing{
		cfg:            cfg,
		prototypes:     prototypes,
		world:          entity.NewWorld(system.CloneMaps(prototypes)),
		engine:         system.NewEngine(cfg.Tuning),
		input:          in,
		sink:           sink,
		sprites:        sprites,
		frame:          render.NewFramebuffer(disp.ScreenWidth, disp.ScreenHeight),
		recordFilename: recordPath,
	}

	if recordPath != "" {
		p.recorder = NewRecorder(cfg.Tuning.Maps)
		log.Printf("Recording enabled: %s", recordPath)
	}

	return p
}

// SetWatcher enables hot reload: changed files reported by watcher are
// reloaded through loader at the start of the next tick.
func (p *Playing) SetWatcher(loader *config.Loader, watcher *config.Watcher) {
	p.loader = loader
	p.watcher = watcher
}

// World returns the simulation state
func (p *Playing) World() *entity.World {
	return p.world
}

// Events returns the side effects of the last tick
func (p *Playing) Events() []system.Event {
	return p.events
}

// Ticks returns the number of simulated ticks
func (p *Playing) Ticks() int {
	return p.ticks
}

// State returns the current game state
func (p *Playing) State() state.GameState {
	return state.Of(p.world.Player.GameOver, p.world.Cleared)
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	if err := p.Advance(dt); err != nil {
		return nil, err
	}
	return nil, nil // nil = stay on this scene
}

// Advance polls the input source once and runs one tick.
// Returns scene.ErrQuit when the input asks to leave.
func (p *Playing) Advance(dt float64) error {
	in := p.input.Poll()
	if in.Exit {
		return scene.ErrQuit
	}
	p.Step(in, dt)
	return nil
}

// Step runs one tick with the given input and plays its side effects.
// On the cleared screen a fresh press of Jump or Kick starts over.
func (p *Playing) Step(in system.InputState, dt float64) []system.Event {
	p.reload()

	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	var events []system.Event
	if p.world.Cleared {
		if (in.Jump && !p.prevInput.Jump) || (in.Kick && !p.prevInput.Kick) {
			p.restart()
		}
	} else {
		events = p.engine.Tick(p.world, in)
		p.handleEvents(events)
	}

	p.prevInput = in
	p.events = events
	p.ticks++
	p.updateFade(dt)
	return events
}

func (p *Playing) handleEvents(events []system.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case system.EventJump:
			p.sink.Play(audio.SoundJump)
		case system.EventLand, system.EventLandMild:
			p.sink.Play(audio.SoundLandMild)
		case system.EventFootstep:
			p.sink.Play(audio.Footstep(ev.Value))
		case system.EventKickHit:
			p.sink.Play(audio.SoundKickHit)
		case system.EventKickMiss:
			p.sink.Play(audio.SoundKickMiss)
		case system.EventBoxBreak:
			p.sink.Play(audio.SoundBoxBreak)
		case system.EventBoxLanded:
			p.sink.Play(audio.SoundBoxDown)
		case system.EventStopMovement:
			p.sink.StopAll()
		case system.EventGameOver:
			p.sink.Play(audio.SoundGameOver)
			log.Printf("Game over on map %d", ev.Value+1)
		case system.EventRespawn:
			log.Printf("Respawned on map %d", ev.Value+1)
		case system.EventMapChanged:
			log.Printf("Entered map %d/%d", ev.Value+1, len(p.world.Maps))
			p.startFade(mapFadeAlpha, 0, mapFadeSeconds)
		case system.EventCleared:
			log.Printf("All %d maps cleared", len(p.world.Maps))
			p.startFade(0, clearedAlpha, clearedSeconds)
			if p.recorder != nil {
				p.saveRecording()
			}
		}
	}
}

func (p *Playing) restart() {
	p.world = entity.NewWorld(system.CloneMaps(p.prototypes))
	p.sink.StopAll()
	if p.fadeAlpha > 0 {
		p.startFade(p.fadeAlpha, 0, mapFadeSeconds)
	}
	log.Printf("Restarted on map 1")
}

func (p *Playing) startFade(from, to, seconds float32) {
	p.fade = gween.New(from, to, seconds, ease.OutQuad)
	p.fadeAlpha = from
}

func (p *Playing) updateFade(dt float64) {
	if p.fade == nil {
		return
	}
	alpha, done := p.fade.Update(float32(dt))
	p.fadeAlpha = alpha
	if done {
		p.fade = nil
	}
}

// reload applies config changes reported by the watcher. A tuning change
// swaps the engine tuning in place, a map change restarts on the new maps.
func (p *Playing) reload() {
	if p.watcher == nil {
		return
	}

	select {
	case err := <-p.watcher.Errors:
		log.Printf("Config watcher error: %v", err)
	default:
	}

	changed := p.watcher.Poll()
	if len(changed) == 0 {
		return
	}

	tuningChanged, mapsChanged := false, false
	for _, path := range changed {
		if config.IsTuningFile(path) {
			tuningChanged = true
		} else {
			mapsChanged = true
		}
	}

	if tuningChanged {
		t, err := p.loader.LoadTuning()
		if err != nil {
			log.Printf("Failed to reload tuning: %v", err)
		} else {
			p.cfg.Tuning = t
			p.engine.SetTuning(t)
			log.Printf("Tuning reloaded")
		}
	}

	if mapsChanged {
		cfgs, err := p.loader.LoadMaps(p.cfg.Tuning)
		if err != nil {
			log.Printf("Failed to reload maps: %v", err)
			return
		}
		p.cfg.Maps = cfgs
		p.prototypes = system.LoadMaps(cfgs, p.cfg.Tuning)
		p.restart()
		log.Printf("Maps reloaded: %d maps", len(p.prototypes))
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Render draws the world into the low-resolution framebuffer
func (p *Playing) Render() *render.Framebuffer {
	fb := p.frame
	s := p.sprites
	w := p.world
	pl := w.Player

	fb.Clear(colorClear)

	// Background layers
	fb.Blit(0, 0, s.Background)
	grass := s.Grass[w.Background.GrassFrame%len(s.Grass)]
	fb.Blit(0, w.Map().Height()-grass.Height, grass)
	fb.Blit(0, 0, s.Sky[w.Background.SkyFrame%len(s.Sky)])

	for _, o := range w.Obstacles().Active() {
		fb.Blit(int(o.XLeft), int(o.YBottom), s.Box[boxFrame(o.Durability)])
	}

	if frame, ok := shadowFrame(pl); ok {
		ground := int(p.engine.Tuning().Physics.Ground)
		fb.Blit(int(pl.X), ground+entity.FootDrop, s.Shadow[frame])
	}

	sprite := p.playerSprite()
	fb.Blit(int(pl.X), int(pl.Y)-(sprite.Height-entity.FootDrop), sprite)

	if pl.GameOver {
		frame := p.engine.GameOverFrame(w)
		fb.Blit(0, 0, s.GameOver[frame%len(s.GameOver)])
	}

	if alpha := int(p.fadeAlpha); alpha > 0 {
		if alpha > 255 {
			alpha = 255
		}
		fb.Fill(image.Rect(0, 0, fb.Width, fb.Height), uint32(alpha)<<24)
	}

	return fb
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	fb := p.Render()

	if p.presenter == nil {
		b := screen.Bounds()
		p.presenter = render.NewPresenter(fb.Width, fb.Height, b.Dx(), b.Dy())
	}
	p.presenter.Present(fb, screen)

	p.drawUI(screen)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Map %d/%d", p.world.CurrentMap+1, len(p.world.Maps)))

	if p.world.Cleared {
		b := screen.Bounds()
		text := "CLEARED\n\nPress Jump or Kick to play again"
		ebitenutil.DebugPrintAt(screen, text, b.Dx()/2-100, b.Dy()/2-20)
	}
}

// poseSheet names the sprite sequence a pose is taken from
type poseSheet int

const (
	poseWalk poseSheet = iota
	poseKick
	poseJump
)

// pose picks the player frame: kick first, then the early landing pose,
// then airborne, otherwise the walk frame of the facing direction.
func pose(pl *entity.Player) (poseSheet, int) {
	left := pl.FacingLeft()
	switch {
	case pl.IsKicking:
		if left {
			return poseKick, 2 + pl.KickFrame
		}
		return poseKick, pl.KickFrame
	case pl.AlmostGround && !pl.OnObstacle:
		if left {
			return poseJump, 4
		}
		return poseJump, 1
	case !pl.OnGround && !pl.OnObstacle:
		if left {
			return poseJump, 5
		}
		return poseJump, 2
	case left:
		return poseWalk, pl.LeftIncrement
	default:
		return poseWalk, pl.RightIncrement
	}
}

func (p *Playing) playerSprite() assets.Sprite {
	sheet, idx := pose(p.world.Player)
	frames := p.sprites.Player
	switch sheet {
	case poseKick:
		frames = p.sprites.Kick
	case poseJump:
		frames = p.sprites.Jump
	}
	return frames[idx%len(frames)]
}

// shadowFrame picks the drop shadow frame. No shadow is drawn while an
// obstacle is underneath.
func shadowFrame(pl *entity.Player) (int, bool) {
	if pl.OnObstacle || pl.AboveObstacle {
		return 0, false
	}
	switch {
	case pl.OnGround:
		return 0, true
	case pl.AlmostGround:
		return 2, true
	default:
		return 1, true
	}
}

// boxFrame picks the box sprite for the remaining durability
func boxFrame(durability int) int {
	switch {
	case durability >= 2:
		return 0
	case durability == 1:
		return 1
	default:
		return 2
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	log.Printf("Starting on map 1/%d", len(p.world.Maps))
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.sink.StopAll()
	p.saveRecording()
}
