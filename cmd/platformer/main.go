package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/automoto/platformer/input"
	"github.com/automoto/platformer/leveldata"
	"github.com/automoto/platformer/logging"
	"github.com/automoto/platformer/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Game struct {
	scene   *scenes.PlatformerScene
	log     *logging.Logger
	reloads <-chan string
}

func (g *Game) Update() error {
	select {
	case path := <-g.reloads:
		g.reload(path)
	default:
	}
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

// reload applies a changed config file between frames. A file that fails to
// load or validate leaves the running values untouched.
func (g *Game) reload(path string) {
	if err := config.LoadFile(path); err != nil {
		g.log.Warn("config reload rejected", zap.Error(err))
		return
	}
	if err := g.log.SetLevel(config.Log.Level); err != nil {
		g.log.Warn("log level unchanged", zap.Error(err))
	}
	ebiten.SetTPS(config.C.TPS)
	if err := g.scene.ApplyConfig(); err != nil {
		g.log.Error("apply reloaded config", zap.Error(err))
		return
	}
	g.log.Info("config reloaded", zap.String("path", path))
}

func loadLevel(name string) (*leveldata.CollisionData, error) {
	if strings.HasSuffix(name, ".tmx") {
		return leveldata.Load(os.DirFS(filepath.Dir(name)), filepath.Base(name))
	}
	return assets.LoadLevel(name)
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default configuration")
	levelName := flag.String("level", "", "embedded level name or path to a .tmx file")
	watch := flag.Bool("watch", false, "reload -config when it changes")
	debug := flag.Bool("debug", false, "draw the ground probe and state readout")
	headless := flag.Duration("headless", 0, "run without a window for the given duration")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *debug {
		config.Debug.DrawProbe = true
		config.Log.Level = "debug"
	}

	logger, err := logging.New(config.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if *levelName == "" {
		*levelName = config.Level.DefaultLevel
	}
	level, err := loadLevel(*levelName)
	if err != nil {
		logger.Fatal("load level", zap.Error(err))
	}

	if *headless > 0 {
		if err := runHeadless(*levelName, level, logger.Logger, *headless); err != nil {
			logger.Fatal("headless run", zap.Error(err))
		}
		return
	}

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal("load fonts", zap.Error(err))
	}

	scene, err := scenes.NewPlatformerScene(*levelName, level, input.NewDevice(), logger.Logger)
	if err != nil {
		logger.Fatal("build scene", zap.Error(err))
	}

	game := &Game{scene: scene, log: logger}
	if *watch && *configPath != "" {
		watcher, err := config.NewWatcher(*configPath)
		if err != nil {
			logger.Fatal("watch config", zap.Error(err))
		}
		defer func() { _ = watcher.Close() }()
		go logWatchErrors(logger.Logger, watcher.Errors)
		game.reloads = watcher.Events
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("run game", zap.Error(err))
	}
}

func logWatchErrors(log *zap.Logger, errs <-chan error) {
	for err := range errs {
		log.Warn("config watcher", zap.Error(err))
	}
}

// runHeadless simulates the level without input until d elapses or the
// process is interrupted, then logs the character's final state.
func runHeadless(name string, level *leveldata.CollisionData, log *zap.Logger, d time.Duration) error {
	scene, err := scenes.NewPlatformerScene(name, level, nil, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	err = scene.Loop().Run(ctx, config.C.TPS)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		return err
	}

	state := scene.PlayerState()
	log.Info("headless run finished",
		zap.Uint64("frames", scene.Loop().Frames()),
		zap.Float64("x", state.Position.X),
		zap.Float64("y", state.Position.Y),
		zap.Bool("grounded", state.Grounded),
		zap.Bool("alive", state.Alive))
	return nil
}
