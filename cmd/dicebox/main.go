package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dicebox/internal/config"
	"dicebox/internal/dice"
	"dicebox/internal/game"
	"dicebox/internal/logging"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	configDir := flag.String("config", ".", "directory containing dicebox.json")
	diceList := flag.String("dice", "", "comma separated dice to roll, e.g. d6,d6,d20")
	modifier := flag.Int("mod", 0, "flat modifier added to the dice total")
	modifierName := flag.String("name", "", "label shown next to the modifier")
	seed := flag.Int64("seed", 0, "throw seed, 0 for random")
	flag.Parse()

	settings, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *diceList != "" {
		settings.Dice = *diceList
	}
	if *modifier != 0 {
		settings.Modifier = *modifier
	}
	if *modifierName != "" {
		settings.ModifierName = *modifierName
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	logger := logging.NewConsole(settings.LogLevel, os.Stderr)

	rollCfg, err := settings.RollConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid dice list")
	}

	g, err := game.New(&game.Config{
		Settings: settings,
		Roll:     rollCfg,
		Logger:   logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start")
	}
	logger.Info().Str("dice", dice.FormatDiceList(rollCfg.Dice)).Msg("starting viewer")
	g.Run()
}
