package searcher

import (
	"fmt"

	"gamesolver/game"
)

type mockAction struct {
	player game.Player
	id     int
}

func (m mockAction) Player() game.Player {
	return m.player
}

func (m mockAction) String() string {
	return fmt.Sprintf("#%d", m.id)
}

// mockState is an explicit game tree. Leaves without children are only
// terminal when marked so; otherwise they are evaluated by their reward.
type mockState struct {
	player   game.Player
	children []*mockState
	reward   game.Reward
	terminal bool
	broken   bool // Transition rejects every action
}

func (m *mockState) Player() game.Player {
	return m.player
}

func (m *mockState) Actions() []game.Action {
	actions := make([]game.Action, len(m.children))
	for i := range m.children {
		actions[i] = mockAction{player: m.player, id: i}
	}
	return actions
}

func (m *mockState) Transition(a game.Action) (game.State, error) {
	action, ok := a.(mockAction)
	if !ok || m.broken || action.id >= len(m.children) {
		return nil, game.InvalidAction(a, "no such child")
	}
	return m.children[action.id], nil
}

func (m *mockState) Terminal() bool {
	return m.terminal
}

func (m *mockState) Reward() game.Reward {
	return m.reward
}

func leaf(value float64) *mockState {
	return &mockState{reward: game.Decided(value)}
}

func node(player game.Player, children ...*mockState) *mockState {
	for _, child := range children {
		if child.player == 0 {
			child.player = player.Opponent()
		}
	}
	return &mockState{player: player, children: children, reward: game.Undecided()}
}
