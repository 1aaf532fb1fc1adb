package engine

import (
	"context"
	"time"

	"gamesolver/experiments/metrics"
	"gamesolver/game"
	"gamesolver/meta"
	"gamesolver/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// LocalEngine plays a game in-process between one agent per player.
type LocalEngine struct {
	State    game.State
	Agents   map[game.Player]agent.Agent
	maxTurns int
}

func NewLocalEngine(state game.State, agents map[game.Player]agent.Agent, options ...Option) *LocalEngine {
	if state == nil {
		panic("need an initial state")
	}
	for _, player := range []game.Player{game.Max, game.Min} {
		if agents[player] == nil {
			panic("need an agent for " + player.String())
		}
	}

	e := &LocalEngine{
		State:    state,
		Agents:   agents,
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the state is terminal. e.State always
// holds the latest state, also when an error is returned.
func (e *LocalEngine) Run(ctx context.Context) (Outcome, error) {
	start := time.Now()
	startingPlayer := e.State.Player()
	log.Info().Msgf("player %v is starting", startingPlayer)

	outcome := Outcome{}
	turn := 1
	for !e.State.Terminal() && turn <= e.maxTurns {
		if err := ctx.Err(); err != nil {
			return e.finish(outcome, startingPlayer, start), errors.Wrapf(err, "game interrupted at turn %d", turn)
		}

		player := e.State.Player()
		action, searchMetric, err := e.Agents[player].FindAction(ctx, e.State)
		if err != nil {
			return e.finish(outcome, startingPlayer, start), errors.Wrapf(err, "turn %d: agent for %v failed", turn, player)
		}

		next, err := e.State.Transition(action)
		if err != nil {
			return e.finish(outcome, startingPlayer, start), errors.Wrapf(err, "turn %d: %v played %v", turn, player, action)
		}

		log.Debug().
			Int("turn", turn).
			Stringer("player", player).
			Stringer("action", action).
			Stringer("reward", next.Reward()).
			Int("nodes", searchMetric.Nodes).
			Msg("action played")

		outcome.Actions = append(outcome.Actions, action)
		outcome.MoveMetrics = append(outcome.MoveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player,
			Action:       action,
			SearchMetric: searchMetric,
		})
		e.State = next
		turn++
	}

	if !e.State.Terminal() {
		log.Warn().Msgf("stopped after %d turns without a terminal state", e.maxTurns)
	}
	outcome = e.finish(outcome, startingPlayer, start)
	log.Info().Msgf("game over after %d actions, reward %v", len(outcome.Actions), outcome.Reward)
	return outcome, nil
}

func (e *LocalEngine) finish(outcome Outcome, startingPlayer game.Player, start time.Time) Outcome {
	end := time.Now()
	outcome.Final = e.State
	outcome.Reward = e.State.Reward()
	if e.State.Terminal() {
		outcome.Winner = winner(outcome.Reward)
	}
	outcome.GameMetric = metrics.GameMetric{
		StartingPlayer: startingPlayer,
		Winner:         outcome.Winner,
		Reward:         outcome.Reward.Float(),
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
		TotalMoves:     len(outcome.Actions),
	}
	return outcome
}
