package engine

import (
	"context"

	"gamesolver/experiments/metrics"
	"gamesolver/game"
)

type Engine interface {
	// Run plays until the state is terminal or the turn limit is reached
	Run(ctx context.Context) (Outcome, error)
}

type Outcome struct {
	Final       game.State
	Reward      game.Reward
	Winner      game.Player // 0 for a draw or an unfinished game
	Actions     []game.Action
	MoveMetrics []metrics.MoveMetric
	GameMetric  metrics.GameMetric
}

// Finished reports whether the game reached a terminal state.
func (o Outcome) Finished() bool {
	return o.Final != nil && o.Final.Terminal()
}

func winner(r game.Reward) game.Player {
	v, decided := r.Value()
	switch {
	case !decided:
		return 0
	case v > 0:
		return game.Max
	case v < 0:
		return game.Min
	}
	return 0
}
