package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/younwookim/multiscene/internal/application/game"
	"github.com/younwookim/multiscene/internal/application/replay"
	"github.com/younwookim/multiscene/internal/application/system"
	"github.com/younwookim/multiscene/internal/domain/event"
	"github.com/younwookim/multiscene/internal/infrastructure/assets"
	"github.com/younwookim/multiscene/internal/infrastructure/clock"
	"github.com/younwookim/multiscene/internal/infrastructure/config"
	"github.com/younwookim/multiscene/internal/infrastructure/music"
)

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Config directory (embedded configs if empty)")
	assetsDir := flag.String("assets", "data", "Directory holding the soundtrack files")
	mute := flag.Bool("mute", false, "Run without audio")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back input from a recorded file")
	headless := flag.Bool("headless", false, "Run without a window (requires -replay)")
	debug := flag.Bool("debug", false, "Show FPS and log source lines")
	flag.Parse()

	if *debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
	if *headless && *replayFlag == "" {
		log.Fatalf("-headless requires -replay")
	}

	cfg, err := loadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	catalog := assets.NewCatalog(*assetsDir, cfg.Roster.Assets)

	// Only one audio context may exist per process
	var ch music.Channel = &music.Silent{}
	if !*mute && !*headless {
		ctx := audio.NewContext(cfg.Audio.SampleRate)
		ch = music.NewMixer(ctx, music.Options{
			Volume:  cfg.Audio.Volume,
			FadeIn:  cfg.Audio.FadeIn(),
			FadeOut: cfg.Audio.FadeOut(),
		})
	}

	seq, err := buildSequence(cfg.Roster, catalog, ch)
	if err != nil {
		log.Fatalf("Failed to build scenes: %v", err)
	}
	director := game.NewDirector(seq, ch)

	source, err := inputSource(*replayFlag)
	if err != nil {
		log.Fatalf("Failed to load replay: %v", err)
	}

	var recorder *replay.Recorder
	if *recordFlag != "" {
		recorder = replay.NewRecorder(source, cfg.Roster.Name)
		source = recorder
		log.Printf("Recording enabled: %s", *recordFlag)
	}

	if *headless {
		err = runHeadless(director, source)
	} else {
		err = runWindow(cfg.Display, director, source, *debug)
	}
	director.Close()

	if recorder != nil {
		if saveErr := recorder.Save(*recordFlag); saveErr != nil {
			log.Printf("Failed to save recording: %v", saveErr)
		} else {
			log.Printf("Recording saved: %s (%d frames)", *recordFlag, recorder.FrameCount())
		}
	}

	if err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads configs from dir, or from the embedded copy when dir
// is empty
func loadConfig(dir string) (*config.GameConfig, error) {
	var loader *config.Loader
	if dir != "" {
		loader = config.NewLoader(dir)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, fmt.Errorf("failed to get config subfs: %w", err)
		}
		loader = config.NewFSLoader(fsys, "configs")
	}
	return loader.LoadAll()
}

func inputSource(replayFile string) (event.Source, error) {
	if replayFile == "" {
		return system.NewInputSystem(), nil
	}

	data, err := replay.LoadReplay(replayFile)
	if err != nil {
		return nil, err
	}
	log.Printf("Replaying %s: roster %q, %d frames", replayFile, data.Roster, data.Length)
	return replay.NewReplayer(*data), nil
}

func runWindow(display *config.DisplayConfig, director *game.Director, source event.Source, debug bool) error {
	g := game.New(director, source, display.ScreenWidth, display.ScreenHeight)
	g.SetShowFPS(display.ShowFPS || debug)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(director.FrameRate())

	return ebiten.RunGame(g)
}

func runHeadless(director *game.Director, source event.Source) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loop := game.NewLoop(director, source, clock.New())
	err := loop.Run(ctx)
	log.Printf("Headless run finished after %d frames, %d scene activations", director.Frames(), director.Activations())
	return err
}
