package searcher

import (
	"gamesolver/experiments/metrics"
	"gamesolver/game"
	"gamesolver/meta"
)

type Option func(m *Minimax)

// WithDepth sets the search horizon in plies; negative depths are treated as 0.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		m.depth = max(depth, 0)
	}
}

// WithEvaluationFn replaces the horizon evaluation, by default the state's reward.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

// WithCollector attaches an observer that is notified of every visited node and cutoff.
func WithCollector(collector metrics.Collector) Option {
	return func(m *Minimax) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:    meta.DEPTH,
		evaluate: game.EvaluateReward,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Solve searches state to the given depth and returns the backed-up value
// and the chosen action. The action is nil only when state is terminal or
// depth is 0.
func Solve(state game.State, depth int) (float64, game.Action, error) {
	result, err := NewMinimax(WithDepth(depth)).Search(state)
	return result.Value, result.Action, err
}

// Metrics returns the attached collector, a no-op one unless WithMetrics or WithCollector was given.
func (m *Minimax) Metrics() metrics.Collector {
	return m.metrics
}
