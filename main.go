package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/leonelquinteros/gotext"

	"loopescape/pkg/engine/assets"
	"loopescape/pkg/engine/audio"
	"loopescape/pkg/engine/input"
	"loopescape/pkg/engine/logging"
	"loopescape/pkg/engine/world"
	"loopescape/pkg/game/cinematic"
	"loopescape/pkg/game/config"
	"loopescape/pkg/game/devtools"
	"loopescape/pkg/game/modes"
	"loopescape/pkg/game/renderer/ebiten"
	"loopescape/pkg/game/room"
)

const musicTrack = "music/ambient.wav"

func main() {
	windowed := flag.Bool("windowed", false, "start in a window instead of fullscreen")
	rooms := flag.Int("rooms", 0, fmt.Sprintf("room layout: %d or %d (default from config)", config.RoomsStandard, config.RoomsCompact))
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error)")
	dumpRooms := flag.Bool("dump-rooms", false, "print the room graph and exit")
	dumpFile := flag.Bool("dump-rooms-file", false, "write the room graph to rooms.txt and exit")
	flag.Parse()

	cfg, cfgErr := config.Load()
	if *windowed {
		cfg.Fullscreen = false
	}
	if *rooms != 0 {
		cfg.RoomCount = *rooms
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logging.Init(cfg.LogLevel)
	log := logging.New("main")
	if cfgErr != nil {
		log.Warn().Err(cfgErr).Msg("configuration partially loaded")
	}

	metrics := world.NewMetrics(cfg.LogicalWidth, cfg.LogicalHeight)

	if *dumpRooms || *dumpFile {
		mgr, err := room.NewDefaultManager(metrics, cfg.RoomCount, cfg.TeleportCooldown)
		if err != nil {
			log.Fatal().Err(err).Int("rooms", cfg.RoomCount).Msg("cannot build room layout")
		}
		if *dumpFile {
			path, err := devtools.DumpRoomsToFile(mgr)
			if err != nil {
				log.Fatal().Err(err).Msg("room dump failed")
			}
			fmt.Println(path)
			return
		}
		devtools.WriteRoomDump(os.Stdout, mgr, true)
		return
	}

	gotext.Configure(cfg.LocaleDir, cfg.Language, "default")
	if err := input.ApplyOverrides(cfg.Bindings); err != nil {
		log.Warn().Err(err).Msg("ignoring invalid key bindings")
	}

	cache := assets.Init(cfg.AssetDir)

	sound := audio.NewManager(cache, audio.Settings{
		MusicOn:     cfg.MusicOn,
		MusicVolume: cfg.MusicVolume,
		SFXVolume:   cfg.SFXVolume,
	})
	sound.Init()
	defer sound.Close()
	sound.StartMusic(musicTrack)

	window := ebiten.Window{Width: cfg.WindowWidth, Height: cfg.WindowHeight}
	ctrl := modes.NewController(modes.Deps{
		Config:     cfg,
		Metrics:    metrics,
		Cinematics: cinematic.NewStandard(cache, sound),
		Audio:      sound,
		Display:    window,
	})

	r, err := ebiten.New(ctrl, cache, metrics)
	if err != nil {
		log.Fatal().Err(err).Msg("renderer setup failed")
	}
	if err := ebiten.Run(r, cfg); err != nil {
		log.Error().Err(err).Msg("game loop failed")
		sound.Close()
		os.Exit(1)
	}
	log.Info().Msg("bye")
}
