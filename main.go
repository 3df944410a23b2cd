package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/internal/config"
	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/httpserver"
	"github.com/robalobadob/wordle/internal/randutil"
	"github.com/robalobadob/wordle/internal/store"
	"github.com/robalobadob/wordle/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if lvl, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.Logging.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	list, err := words.Load(cfg.Game.WordLength, cfg.Game.WordsAnswersFile, cfg.Game.WordsAllowedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	answers, allowed := list.Stats()
	log.Info().Int("answers", answers).Int("allowed", allowed).Msg("word lists loaded")

	eng, err := game.NewEngine(list, randutil.FromConfig(cfg.Game.Seed), game.Config{
		WordLength:  cfg.Game.WordLength,
		MaxAttempts: cfg.Game.MaxAttempts,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("invalid game configuration")
	}

	srv := httpserver.New(eng, store.NewMemoryStore(), cfg, log.Logger)
	if err := srv.Start(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
