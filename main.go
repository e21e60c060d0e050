package main

import (
	"io"
	"path/filepath"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pborman/getopt"
	"github.com/sirupsen/logrus"

	"mappy/config"
	"mappy/game"
	"mappy/host"
	"mappy/logger"
	"mappy/maps"
	"mappy/module"
	"mappy/modules"
	"mappy/modules/flag"
	"mappy/settings"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	logger.Init()
	log := logger.For("main")

	app, err := config.LoadApp()
	if err != nil {
		log.WithError(err).Fatal("load configuration")
	}

	process := getopt.StringLong("process", 'p', app.ProcessName, "game process name")
	replay := getopt.StringLong("replay", 'r', app.ReplayFile, "replay a host snapshot instead of attaching")
	catalog := getopt.StringLong("maps", 'm', app.MapCatalog, "map catalog file")
	offsetsFile := getopt.StringLong("offsets", 'o', app.OffsetsFile, "offsets profile")
	settingsDir := getopt.StringLong("settings", 's', app.SettingsDir, "settings directory")
	iconDir := getopt.StringLong("icons", 'i', app.IconDir, "icon directory")
	width := getopt.IntLong("width", 'w', app.WindowWidth, "width of the window")
	height := getopt.IntLong("height", 'h', app.WindowHeight, "height of the window")
	help := getopt.BoolLong("help", '?', "show usage")
	getopt.Parse()

	if *help {
		getopt.Usage()
		return
	}

	app.ProcessName = *process
	app.ReplayFile = *replay
	app.MapCatalog = *catalog
	app.OffsetsFile = *offsetsFile
	app.SettingsDir = *settingsDir
	app.IconDir = *iconDir
	app.WindowWidth = *width
	app.WindowHeight = *height
	if err := app.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	offsets, err := config.LoadOffsets(app.OffsetsFile)
	if err != nil {
		log.WithError(err).Warn("offsets profile rejected, using compiled defaults")
	}
	log.WithField("game_version", offsets.GameVersion).Info("offsets loaded")

	src, closer, source := openSource(app, offsets, log)
	live := host.NewLive(src)

	cat, err := maps.LoadCatalog(app.MapCatalog)
	if err != nil {
		log.WithError(err).Fatal("load map catalog")
	}
	log.WithField("maps", cat.Len()).Info("map catalog loaded")
	mapCtl := maps.NewController(cat)

	f := flag.New(live)
	store := settings.NewStore(app.SettingsDir)
	modCtl := module.NewController(store, mapCtl, logger.For("modules"), modules.Registry(live, f)...)
	modCtl.Load()

	g, err := game.NewGame(game.Options{
		App:        app,
		Live:       live,
		Maps:       mapCtl,
		Modules:    modCtl,
		Flag:       f,
		TextureDir: filepath.Dir(app.MapCatalog),
		Source:     source,
		Log:        logger.For("game"),
	})
	if err != nil {
		log.WithError(err).Fatal("create window")
	}

	ebiten.SetWindowSize(app.WindowWidth, app.WindowHeight)
	ebiten.SetWindowTitle("Mappy")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Error("window closed with error")
	}

	g.Close()
	if err := modCtl.Save(); err != nil {
		log.WithError(err).Warn("save settings")
	}
	modCtl.Unload()
	if err := closer.Close(); err != nil {
		log.WithError(err).Debug("close host source")
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openSource picks the replay file when one is given and otherwise attaches
// to the game, retrying until it is running.
func openSource(app config.App, offsets config.Offsets, log *logrus.Entry) (host.Source, io.Closer, string) {
	if app.ReplayFile != "" {
		src, err := host.LoadReplay(app.ReplayFile)
		if err != nil {
			log.WithError(err).Fatal("load replay")
		}
		log.WithField("file", app.ReplayFile).Info("replaying host snapshot")
		return src, nopCloser{}, "replay " + filepath.Base(app.ReplayFile)
	}

	r := host.NewReattach(func() (host.Source, io.Closer, error) {
		src, closer, err := host.Attach(app.ProcessName, offsets)
		if err != nil {
			return nil, nil, err
		}
		log.WithField("process", app.ProcessName).Info("attached")
		return src, closer, nil
	}, 2*time.Second)
	return r, r, app.ProcessName
}
