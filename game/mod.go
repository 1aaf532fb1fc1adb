package game

import (
	"fmt"
	"math"
)

// Player is the side to move, either Max (+1) or Min (-1).
type Player int8

const (
	Max Player = 1
	Min Player = -1
)

func (p Player) Opponent() Player {
	return -p
}

// Sign returns the player as a multiplier for rewards and scores.
func (p Player) Sign() float64 {
	return float64(p)
}

func (p Player) String() string {
	switch p {
	case Max:
		return "max"
	case Min:
		return "min"
	}
	return "none"
}

// Action identifies a move by the acting player and game-specific coordinates.
// Implementations are small comparable structs, so equality and map keys are
// structural over every field including the player.
type Action interface {
	Player() Player
	fmt.Stringer
}

// State must be immutable - Transition always returns a new copy and never
// touches the receiver.
type State interface {
	// Player returns the side to move
	Player() Player
	// Actions lists the legal actions in a deterministic order, empty once the game is over
	Actions() []Action
	Transition(Action) (State, error)
	Terminal() bool
	Reward() Reward
}

// Heuristic is an optional capability of a State.
type Heuristic interface {
	// Heuristic is a static evaluation of the current position
	Heuristic() float64
	// ActionHeuristic estimates the value of playing the action relative to the current position
	ActionHeuristic(Action) float64
}

// Evaluates a non-terminal state at the search horizon.
type Evaluate func(State) float64

// Reward is a tri-state score: either undecided, or a decided numeric value.
// An undecided reward is never equal to a decided draw.
type Reward struct {
	value   float64
	decided bool
}

func Decided(value float64) Reward {
	return Reward{value: value, decided: true}
}

func Undecided() Reward {
	return Reward{}
}

func (r Reward) Value() (float64, bool) {
	return r.value, r.decided
}

func (r Reward) IsDecided() bool {
	return r.decided
}

// Float returns the reward value, 0 if undecided.
func (r Reward) Float() float64 {
	return r.value
}

// IsZero reports whether the reward carries no score, i.e. it is undecided or a draw.
func (r Reward) IsZero() bool {
	return r.value == 0
}

func (r Reward) String() string {
	if !r.decided {
		return "undecided"
	}
	return fmt.Sprintf("%g", r.value)
}

// EvaluateReward is the default horizon evaluation: the state's reward, 0 while undecided.
func EvaluateReward(s State) float64 {
	return s.Reward().Float()
}

// EvaluateHeuristic uses the state's static heuristic when it has one and
// falls back to the reward otherwise.
func EvaluateHeuristic(s State) float64 {
	if h, ok := s.(Heuristic); ok {
		return h.Heuristic()
	}
	return EvaluateReward(s)
}

// TerminalValue maps a terminal reward to an unbounded win/loss signal, 0 for a draw.
func TerminalValue(r Reward) float64 {
	switch {
	case r.value > 0:
		return math.Inf(1)
	case r.value < 0:
		return math.Inf(-1)
	}
	return 0
}
