package agent

import (
	"context"

	"gamesolver/experiments/metrics"
	"gamesolver/game"
	"gamesolver/meta"
	"gamesolver/searcher"

	"github.com/pkg/errors"
)

var evaluations = map[string]game.Evaluate{
	"reward":    game.EvaluateReward,
	"heuristic": game.EvaluateHeuristic,
}

type minimaxAgent struct {
	minimax *searcher.Minimax
}

// NewMinimaxAgent returns an agent that plays the action chosen by the search.
func NewMinimaxAgent(minimax *searcher.Minimax) Agent {
	return minimaxAgent{minimax: minimax}
}

// newMinimaxAgent understands depth (int, at least 1) and eval (reward or heuristic).
func newMinimaxAgent(params map[string]string) (Agent, error) {
	depth, err := PopParamOr(params, "depth", meta.DEPTH)
	if err != nil {
		return nil, err
	}
	if depth < 1 {
		return nil, errors.Errorf("depth must be at least 1, got %d", depth)
	}
	eval, err := PopParamOr(params, "eval", "reward")
	if err != nil {
		return nil, err
	}
	evaluate, ok := evaluations[eval]
	if !ok {
		return nil, errors.Errorf("unknown evaluation %q", eval)
	}

	return NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(depth), searcher.WithEvaluationFn(evaluate))), nil
}

func (a minimaxAgent) FindAction(ctx context.Context, state game.State) (game.Action, metrics.SearchMetric, error) {
	result, err := a.minimax.SearchContext(ctx, state)
	if err != nil {
		return nil, result.Metric(), err
	}
	if result.Action == nil {
		return nil, result.Metric(), errors.Errorf("search found no action (terminal=%v)", state.Terminal())
	}
	return result.Action, result.Metric(), nil
}
