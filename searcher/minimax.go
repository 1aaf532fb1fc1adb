package searcher

import (
	"context"
	"fmt"
	"math"
	"time"

	"gamesolver/experiments/metrics"
	"gamesolver/game"

	"github.com/rs/zerolog/log"
)

// Minimax is a depth-limited minimax search with alpha-beta pruning. Max
// (+1) maximises the value and Min (-1) minimises it. It knows nothing about
// the game beyond the game.State contract.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

type Result struct {
	Value    float64
	Action   game.Action
	Depth    int
	Duration time.Duration
	Nodes    int
	Cutoffs  int
}

func (r Result) Metric() metrics.SearchMetric {
	return metrics.SearchMetric{
		Depth:    r.Depth,
		Duration: r.Duration,
		Nodes:    r.Nodes,
		Cutoffs:  r.Cutoffs,
	}
}

func (m *Minimax) Depth() int {
	return m.depth
}

func (m *Minimax) Search(state game.State) (Result, error) {
	return m.SearchContext(context.Background(), state)
}

// SearchContext checks ctx between the evaluations of the root's actions.
// A subtree that has started is always searched to completion.
func (m *Minimax) SearchContext(ctx context.Context, state game.State) (Result, error) {
	s := &search{evaluate: m.evaluate, metrics: m.metrics}
	start := time.Now()
	m.metrics.Start(m.depth)

	value, action, err := s.alphaBeta(state, m.depth, math.Inf(-1), math.Inf(1), ctx.Err)
	result := Result{
		Value:    value,
		Action:   action,
		Depth:    m.depth,
		Duration: time.Since(start),
		Nodes:    s.nodes,
		Cutoffs:  s.cutoffs,
	}
	if err != nil {
		return result, err
	}

	log.Debug().
		Int("depth", m.depth).
		Float64("value", value).
		Stringer("action", action).
		Int("nodes", s.nodes).
		Int("cutoffs", s.cutoffs).
		Dur("elapsed", result.Duration).
		Msg("minimax search complete")
	return result, nil
}

// search holds the per-call node counters, so searches never share state.
type search struct {
	evaluate game.Evaluate
	metrics  metrics.Collector
	nodes    int
	cutoffs  int
}

func (s *search) visit() {
	s.nodes++
	s.metrics.AddNode()
}

func (s *search) cutoff() {
	s.cutoffs++
	s.metrics.AddCutoff()
}

// alphaBeta returns the value of state within the window (lower, upper) and
// the action that achieves it. interrupted is consulted before each action
// of this node only; children are searched without it.
func (s *search) alphaBeta(state game.State, depth int, lower, upper float64, interrupted func() error) (float64, game.Action, error) {
	s.visit()

	if state.Terminal() {
		return game.TerminalValue(state.Reward()), nil, nil
	}
	if depth == 0 {
		return s.evaluate(state), nil, nil
	}

	maximizing := state.Player() == game.Max
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}

	var chosen game.Action
	for _, action := range state.Actions() {
		if interrupted != nil {
			if err := interrupted(); err != nil {
				return best, chosen, err
			}
		}

		child, err := state.Transition(action)
		if err != nil {
			return 0, nil, fmt.Errorf("transition %v: %w", action, err)
		}

		var value float64
		if maximizing {
			value, _, err = s.alphaBeta(child, depth-1, best, upper, nil)
		} else {
			value, _, err = s.alphaBeta(child, depth-1, lower, best, nil)
		}
		if err != nil {
			return 0, nil, err
		}

		// Only a strictly better value replaces the current choice. The first
		// action is kept when every value is as bad as the initial bound.
		if maximizing {
			if value > best || chosen == nil {
				best, chosen = value, action
				if value > upper {
					s.cutoff()
					return best, chosen, nil
				}
			}
		} else {
			if value < best || chosen == nil {
				best, chosen = value, action
				if value < lower {
					s.cutoff()
					return best, chosen, nil
				}
			}
		}
	}
	return best, chosen, nil
}
