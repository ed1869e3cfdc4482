package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"wordsquared/pkg/config"
	"wordsquared/pkg/scrabble"
)

func main() {
	start := time.Now()

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg.GetBool(config.ConfigDebug))
	log.Debug().Interface("config", cfg.SanitizedSettings()).Msg("loaded-config")

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("")
	}

	elapsed := time.Since(start)
	fmt.Println("Took", elapsed)
}

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	var logger zerolog.Logger
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	log.Logger = logger
}

func run(cfg *config.Config) error {
	dawg, err := loadDictionary(cfg)
	if err != nil {
		return err
	}
	if pattern := cfg.GetString(config.ConfigMatch); pattern != "" {
		for _, w := range dawg.Match(pattern) {
			fmt.Println(w)
		}
		return nil
	}
	if cfg.GetString(config.ConfigWordList) != "" && cfg.GetString(config.ConfigCompileOut) != "" &&
		cfg.GetString(config.ConfigBoard) == "" && cfg.GetString(config.ConfigRack) == "" {
		// Compile only
		return nil
	}

	layout := scrabble.WordsquaredLayout()
	var board *scrabble.Board
	if f := cfg.GetString(config.ConfigBoard); f != "" {
		board, err = scrabble.LoadSnapshot(f, layout)
	} else {
		board, err = scrabble.NewBoard(scrabble.DefaultBoardSize, scrabble.DefaultBoardSize, layout)
	}
	if err != nil {
		return err
	}
	if !cfg.GetBool(config.ConfigFirstMove) {
		board.SetFirstMove(false)
	}

	opts := cfg.GeneratorOptions()
	var rack *scrabble.Rack
	if r := cfg.GetString(config.ConfigRack); r != "" {
		rack, err = scrabble.RackFromString(r)
	} else {
		rack, err = scrabble.NewBag(opts.TileSet).DrawRack(opts.RackSize)
	}
	if err != nil {
		return fmt.Errorf("rack: %w", err)
	}

	strategy, err := cfg.Strategy()
	if err != nil {
		return err
	}

	gen := scrabble.NewGenerator(dawg, opts)
	moves := strategy.Order(gen.Generate(board, rack))

	fmt.Println(board)
	fmt.Printf("\nRack %q: %d moves\n", rack.String(), len(moves))
	top := cfg.GetInt(config.ConfigTop)
	if top > 0 && top < len(moves) {
		moves = moves[:top]
	}
	for _, m := range moves {
		fmt.Println(m)
	}
	return nil
}

func loadDictionary(cfg *config.Config) (*scrabble.DAWG, error) {
	if f := cfg.GetString(config.ConfigWordList); f != "" {
		dawg, data, err := scrabble.CompileWordList(f)
		if err != nil {
			return nil, err
		}
		if out := cfg.GetString(config.ConfigCompileOut); out != "" {
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return nil, err
			}
			log.Info().Str("filename", out).Int("num-nodes", dawg.NumNodes()).Msg("wrote-dawg")
		}
		return dawg, nil
	}
	if f := cfg.GetString(config.ConfigDawg); f != "" {
		return scrabble.LoadDawg(f)
	}
	return nil, fmt.Errorf("one of --%s or --%s is required", config.ConfigDawg, config.ConfigWordList)
}
