package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/tictactoe/client/game"
	"github.com/cbodonnell/tictactoe/pkg/config"
	"github.com/cbodonnell/tictactoe/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	logLevel := flag.String("log-level", "info", "Log level")
	logFormat := flag.String("log-format", "json", "Log format (json or text)")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	width := flag.Int("width", game.DefaultScreenWidth, "Window width")
	height := flag.Int("height", game.DefaultScreenHeight, "Window height")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprintln(flag.CommandLine.Output(), config.Usage())
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// flags set on the command line take precedence over the config file and environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		case "debug":
			cfg.Debug = *debug
		case "width":
			cfg.Window.Width = *width
		case "height":
			cfg.Window.Height = *height
		}
	})
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid config: %v", err))
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	parsedLogFormat, err := log.ParseFormat(cfg.LogFormat)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log format: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	logger.SetFormat(parsedLogFormat)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	g, err := game.NewGame(game.NewGameOptions{
		Debug: cfg.Debug,
		Title: cfg.Window.Title,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(game.WindowTitle(cfg.Window.Title, "In progress"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
	log.Info("Goodbye")
}
