package experiments

import (
	"context"
	"strconv"

	"gamesolver/engine"
	"gamesolver/experiments/metrics"
	"gamesolver/game"
	"gamesolver/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const NumGames = 2 // Per match up, one per seat

type MatchUp [2]metrics.AgentConfig

type Results struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
	Wins  map[int]int // AgentConfig.ID -> games won
	Draws int
}

// DepthMatchUps pairs a minimax agent of each depth against the baseline.
func DepthMatchUps(baseline metrics.AgentConfig, depths ...int) []MatchUp {
	matchUps := []MatchUp{}
	for i, depth := range depths {
		config := metrics.AgentConfig{ID: baseline.ID + i + 1, Config: "minimax:depth=" + strconv.Itoa(depth)}
		matchUps = append(matchUps, MatchUp{baseline, config})
	}
	return matchUps
}

// Run plays games of each match up from newState. The agents swap seats
// every game so that neither always moves first.
func Run(ctx context.Context, name string, newState func() game.State, matchUps []MatchUp, games int) (Results, error) {
	results := Results{Wins: map[int]int{}}
	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < games; i++ {
			first, second := matchUp[0], matchUp[1]
			if i%2 == 1 {
				first, second = second, first
			}

			outcome, err := runGame(ctx, newState(), first, second)
			if err != nil {
				return results, errors.WithMessagef(err, "matchup %d game %d", mi+1, i+1)
			}

			id := len(results.Games) + 1
			results.Games = append(results.Games, metrics.GameRecord{
				ID:         id,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: outcome.GameMetric,
			})
			for _, mm := range outcome.MoveMetrics {
				results.Moves = append(results.Moves, metrics.MoveRecord{
					Game:       id,
					MoveMetric: mm,
				})
			}
			switch outcome.Winner {
			case game.Max:
				results.Wins[first.ID]++
			case game.Min:
				results.Wins[second.ID]++
			default:
				results.Draws++
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %v", mi+1, len(matchUps), i+1, outcome.Winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)
	return results, nil
}

// runGame executes a single game with first playing Max and second playing Min
func runGame(ctx context.Context, state game.State, first, second metrics.AgentConfig) (engine.Outcome, error) {
	agents := map[game.Player]agent.Agent{}
	for player, config := range map[game.Player]metrics.AgentConfig{game.Max: first, game.Min: second} {
		a, err := agent.New(config.Config)
		if err != nil {
			return engine.Outcome{}, err
		}
		agents[player] = a
	}

	outcome, err := engine.NewLocalEngine(state, agents).Run(ctx)
	if err != nil {
		return outcome, err
	}
	if !outcome.Finished() {
		return outcome, errors.Errorf("game did not finish after %d actions", len(outcome.Actions))
	}
	return outcome, nil
}
