package main

import (
	"flag"
	"io/fs"
	"log"
	"os"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/boxkick/internal/application/game"
	"github.com/younwookim/boxkick/internal/application/replay"
	"github.com/younwookim/boxkick/internal/application/scene/playing"
	"github.com/younwookim/boxkick/internal/application/system"
	"github.com/younwookim/boxkick/internal/infrastructure/assets"
	"github.com/younwookim/boxkick/internal/infrastructure/audio"
	"github.com/younwookim/boxkick/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Load tuning and maps from this directory instead of the built-in ones")
	assetsDir := flag.String("assets", "", "Directory holding the sprite sheets (placeholder art when empty)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back recorded input from file")
	headless := flag.Bool("headless", false, "Run a replay without a window")
	fast := flag.Bool("fast", false, "Headless: run ticks back to back instead of at the frame rate")
	watch := flag.Bool("watch", false, "Reload tuning and maps when files under -config change")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	// Load configurations
	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sprites, err := loadSprites(*assetsDir)
	if err != nil {
		log.Fatalf("Failed to load sprites: %v", err)
	}

	var input system.InputSource = system.NewKeyboardInput(system.DefaultKeyBindings())
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if !slices.Equal(data.Maps, cfg.Tuning.Maps) {
			log.Printf("Replay was recorded on maps %v, playing on %v", data.Maps, cfg.Tuning.Maps)
		}
		log.Printf("Replaying %s (%d frames)", *replayFlag, len(data.Frames))
		input = replay.NewSource(*data)
	}

	if *headless {
		if *replayFlag == "" {
			log.Fatalf("Failed to start headless run: -headless needs -replay")
		}
		p := playing.New(cfg, input, sprites, audio.NullSink{}, *recordFlag)
		res, err := runHeadless(p, cfg.Tuning.Display.FrameDuration(), !*fast)
		if err != nil {
			log.Fatalf("Headless run failed: %v", err)
		}
		log.Printf("Replay finished: %s", res)
		return
	}

	p := playing.New(cfg, input, sprites, newSink(cfg.Tuning.Audio, *mute), *recordFlag)

	if *watch {
		if *configDir == "" {
			log.Printf("-watch needs -config, hot reload disabled")
		} else {
			watcher, err := config.NewWatcher(*configDir)
			if err != nil {
				log.Fatalf("Failed to watch config: %v", err)
			}
			defer func() { _ = watcher.Close() }()
			p.SetWatcher(loader, watcher)
			log.Printf("Watching %s for changes", *configDir)
		}
	}

	disp := cfg.Tuning.Display
	g := game.New(p, disp.WindowWidth, disp.WindowHeight)

	// Set up ebiten
	ebiten.SetWindowSize(disp.WindowWidth, disp.WindowHeight)
	ebiten.SetWindowTitle("Box Kick")
	ebiten.SetTPS(disp.Framerate)
	ebiten.SetWindowClosingHandled(true)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// newLoader reads configs from dir, or from the embedded copy when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// loadSprites reads the sprite sheets from dir, or builds placeholder art
// when dir is empty
func loadSprites(dir string) (*assets.Sprites, error) {
	if dir == "" {
		return assets.Placeholder(), nil
	}
	return assets.Load(os.DirFS(dir))
}

// newSink starts audio playback. Without a working audio device the game
// runs muted.
func newSink(cfg config.AudioConfig, mute bool) audio.Sink {
	if mute {
		return audio.NullSink{}
	}
	sink, err := audio.NewEbitenSink(cfg.SampleRate, cfg.Volume)
	if err != nil {
		log.Printf("Failed to start audio, running muted: %v", err)
		return audio.NullSink{}
	}
	return sink
}
