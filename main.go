package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"gamesolver/experiments"
	"gamesolver/game"
	"gamesolver/game/dots"
	"gamesolver/game/noughts"
	"gamesolver/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	name := flag.String("game", "noughts", "Game to play: noughts or dots")
	size := flag.Int("size", 3, "Board size for noughts")
	width := flag.Int("width", 2, "Grid width for dots")
	height := flag.Int("height", 2, "Grid height for dots")
	agent1 := flag.String("agent1", meta.AGENT_CONFIG, "Config of the first agent")
	agent2 := flag.String("agent2", "first", "Config of the second agent")
	games := flag.Int("games", experiments.NumGames, "Number of games, agents swap seats every game")
	debug := flag.Bool("debug", false, "Log every search and action")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var newState func() game.State
	switch *name {
	case "noughts":
		newState = func() game.State { return noughts.New(*size) }
	case "dots":
		newState = func() game.State { return dots.New(*width, *height) }
	default:
		log.Fatal().Msgf("unknown game %q", *name)
	}
	if *size <= 0 || *width <= 0 || *height <= 0 {
		log.Fatal().Msg("board dimensions must be positive")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	matchUps := []experiments.MatchUp{{
		{ID: 1, Config: *agent1},
		{ID: 2, Config: *agent2},
	}}
	results, err := experiments.Run(ctx, *name, newState, matchUps, *games)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	for _, record := range results.Games {
		log.Info().
			Int("game", record.ID).
			Int("max", record.Agent1).
			Int("min", record.Agent2).
			Float64("reward", record.Reward).
			Int("moves", record.TotalMoves).
			Dur("duration", record.Duration).
			Send()
	}
	for _, config := range matchUps[0] {
		log.Info().Msgf("agent%d %q won %d of %d", config.ID, config.Config, results.Wins[config.ID], len(results.Games))
	}
	log.Info().Msgf("%d draws", results.Draws)
}
