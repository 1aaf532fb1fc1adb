package dots

import (
	"testing"

	"gamesolver/game"

	"github.com/stretchr/testify/require"
)

type edge struct {
	o    Orientation
	x, y int
}

func v(x, y int) edge { return edge{Vertical, x, y} }

func h(x, y int) edge { return edge{Horizontal, x, y} }

// draw plays the given edges in order, each by the side to move.
func draw(t *testing.T, s *State, edges ...edge) *State {
	t.Helper()
	for _, e := range edges {
		next, err := s.Transition(Action{Mover: s.Player(), X: e.x, Y: e.y, Orientation: e.o})
		require.NoError(t, err)
		s = next.(*State)
	}
	return s
}

// requireScoreConsistent checks points against box ownership.
func requireScoreConsistent(t *testing.T, s *State) {
	t.Helper()
	boxes := s.Boxes()
	require.LessOrEqual(t, boxes[game.Max]+boxes[game.Min], s.Width()*s.Height())
	require.Equal(t, boxes[game.Max]-boxes[game.Min], s.Points())
	require.Equal(t, game.Decided(float64(s.Points())), s.Reward())
}

func TestNew(t *testing.T) {
	s := New(2, 1)

	require.Equal(t, 2, s.Width())
	require.Equal(t, 1, s.Height())
	require.Equal(t, game.Max, s.Player())
	require.Equal(t, 7, s.EdgeCount())
	require.Equal(t, game.Decided(0), s.Reward())
	require.False(t, s.Terminal())

	require.Panics(t, func() { New(0, 1) })
	require.Panics(t, func() { New(1, -1) })
}

func TestActions(t *testing.T) {
	t.Run("vertical edges first, each group in (y, x) order", func(t *testing.T) {
		require.Equal(t, []game.Action{
			Action{Mover: game.Max, X: 0, Y: 0, Orientation: Vertical},
			Action{Mover: game.Max, X: 1, Y: 0, Orientation: Vertical},
			Action{Mover: game.Max, X: 2, Y: 0, Orientation: Vertical},
			Action{Mover: game.Max, X: 0, Y: 0, Orientation: Horizontal},
			Action{Mover: game.Max, X: 1, Y: 0, Orientation: Horizontal},
			Action{Mover: game.Max, X: 0, Y: 1, Orientation: Horizontal},
			Action{Mover: game.Max, X: 1, Y: 1, Orientation: Horizontal},
		}, New(2, 1).Actions())
	})

	t.Run("drawn edges are skipped", func(t *testing.T) {
		s := draw(t, New(2, 1), v(1, 0), h(0, 1))
		actions := s.Actions()

		require.Len(t, actions, 5)
		require.NotContains(t, actions, Action{Mover: game.Max, X: 1, Y: 0, Orientation: Vertical})
		require.NotContains(t, actions, Action{Mover: game.Max, X: 0, Y: 1, Orientation: Horizontal})
		require.Equal(t, s.Actions(), actions, "Actions should be idempotent")
	})

	t.Run("action identity", func(t *testing.T) {
		seen := map[game.Action]bool{Action{Mover: game.Max, X: 1, Y: 0, Orientation: Vertical}: true}
		require.True(t, seen[Action{Mover: game.Max, X: 1, Y: 0, Orientation: Vertical}])
		require.False(t, seen[Action{Mover: game.Max, X: 1, Y: 0, Orientation: Horizontal}])
		require.False(t, seen[Action{Mover: game.Min, X: 1, Y: 0, Orientation: Vertical}])
		require.Equal(t, "(1, 2, 3)", Action{Mover: game.Max, X: 2, Y: 3, Orientation: Horizontal}.String())
	})
}

func TestSingleBox(t *testing.T) {
	s := New(1, 1)
	require.Equal(t, 4, s.EdgeCount())
	require.Len(t, s.Actions(), 4)

	s = draw(t, s, v(0, 0))
	require.Equal(t, game.Min, s.Player())
	s = draw(t, s, v(1, 0))
	require.Equal(t, game.Max, s.Player())
	s = draw(t, s, h(0, 0))
	require.Equal(t, game.Min, s.Player())
	require.False(t, s.Terminal())
	require.Equal(t, 0, s.Points())

	s = draw(t, s, h(0, 1))
	require.Equal(t, -1, s.Points())
	require.Equal(t, game.Decided(-1), s.Reward())
	require.Equal(t, game.Min, s.Owner(0, 0))
	require.Equal(t, game.Min, s.Player(), "Completing a box should keep the turn")
	require.True(t, s.Terminal())
	require.Empty(t, s.Actions())
	requireScoreConsistent(t, s)
}

func TestTransition(t *testing.T) {
	t.Run("completing one box keeps the turn", func(t *testing.T) {
		s := draw(t, New(2, 1), h(0, 0), h(0, 1), v(0, 0))
		require.Equal(t, game.Min, s.Player())

		s = draw(t, s, v(1, 0))
		require.Equal(t, game.Min, s.Player())
		require.Equal(t, -1, s.Points())
		require.Equal(t, game.Min, s.Owner(0, 0))
		require.Equal(t, game.Player(0), s.Owner(1, 0))
		require.False(t, s.Terminal())
		requireScoreConsistent(t, s)
	})

	t.Run("one vertical edge completes two boxes", func(t *testing.T) {
		s := draw(t, New(2, 1), v(0, 0), v(2, 0), h(0, 0), h(1, 0), h(0, 1), h(1, 1))
		require.Equal(t, game.Max, s.Player())
		require.Equal(t, 0, s.Points())

		s = draw(t, s, v(1, 0))
		require.Equal(t, 2, s.Points())
		require.Equal(t, game.Max, s.Owner(0, 0))
		require.Equal(t, game.Max, s.Owner(1, 0))
		require.Equal(t, game.Max, s.Player())
		require.True(t, s.Terminal())
		requireScoreConsistent(t, s)
	})

	t.Run("one horizontal edge completes two boxes", func(t *testing.T) {
		s := draw(t, New(1, 2), v(0, 0), v(1, 0), v(0, 1), v(1, 1), h(0, 0), h(0, 2))
		require.Equal(t, game.Max, s.Player())

		s = draw(t, s, h(0, 1))
		require.Equal(t, 2, s.Points())
		require.Equal(t, game.Max, s.Owner(0, 0))
		require.Equal(t, game.Max, s.Owner(0, 1))
		require.True(t, s.Terminal())
	})

	t.Run("edge on the border only touches one box", func(t *testing.T) {
		s := draw(t, New(2, 1), h(1, 0), h(1, 1), v(1, 0))
		require.Equal(t, game.Min, s.Player())

		s = draw(t, s, v(2, 0))
		require.Equal(t, -1, s.Points())
		require.Equal(t, game.Min, s.Owner(1, 0))
		require.Equal(t, game.Player(0), s.Owner(0, 0))
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		s := draw(t, New(2, 2), v(0, 0), h(1, 2))
		actions := s.Actions()
		player := s.Player()

		next, err := s.Transition(Action{Mover: player, X: 1, Y: 1, Orientation: Vertical})
		require.NoError(t, err)

		require.Equal(t, actions, s.Actions())
		require.Equal(t, player, s.Player())
		require.Equal(t, game.Player(0), s.Edge(Vertical, 1, 1))
		require.Equal(t, player, next.(*State).Edge(Vertical, 1, 1))
	})

	t.Run("states do not share grids", func(t *testing.T) {
		s := draw(t, New(1, 1), v(0, 0), v(1, 0), h(0, 0))
		a := draw(t, s, h(0, 1))
		require.Equal(t, game.Player(0), s.Owner(0, 0))
		require.Equal(t, game.Min, a.Owner(0, 0))
		require.Equal(t, 0, s.Points())
	})

	t.Run("rejects invalid actions", func(t *testing.T) {
		s := draw(t, New(1, 1), v(0, 0))
		for name, action := range map[string]game.Action{
			"drawn edge":             Action{Mover: game.Min, X: 0, Y: 0, Orientation: Vertical},
			"vertical x too large":   Action{Mover: game.Min, X: 2, Y: 0, Orientation: Vertical},
			"vertical y too large":   Action{Mover: game.Min, X: 0, Y: 1, Orientation: Vertical},
			"horizontal x too large": Action{Mover: game.Min, X: 1, Y: 0, Orientation: Horizontal},
			"horizontal y too large": Action{Mover: game.Min, X: 0, Y: 2, Orientation: Horizontal},
			"negative coordinate":    Action{Mover: game.Min, X: -1, Y: 0, Orientation: Horizontal},
			"unknown orientation":    Action{Mover: game.Min, X: 0, Y: 0, Orientation: 7},
			"not to move":            Action{Mover: game.Max, X: 1, Y: 0, Orientation: Vertical},
			"other game action":      otherAction{},
		} {
			_, err := s.Transition(action)
			require.ErrorIs(t, err, game.ErrInvalidAction, name)
		}
	})
}

type otherAction struct{}

func (otherAction) Player() game.Player {
	return game.Min
}

func (otherAction) String() string {
	return "other"
}

func TestBoxCompletionOutsideGrid(t *testing.T) {
	s := New(1, 1)
	for _, b := range [][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}, {5, 5}} {
		require.False(t, s.complete(b[0], b[1]))
		require.Equal(t, 0, s.sides(b[0], b[1]))
	}
}

func TestPlayToTheEnd(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {2, 1}, {3, 2}, {3, 3}} {
		s := New(size[0], size[1])
		moves := 0
		for !s.Terminal() {
			before := s.Player()
			first := s.Actions()[0].(Action)
			next := draw(t, s, edge{first.Orientation, first.X, first.Y})

			completed := abs(next.Points() - s.Points())
			if completed > 0 {
				require.Equal(t, before, next.Player())
			} else {
				require.Equal(t, before.Opponent(), next.Player())
			}
			require.LessOrEqual(t, completed, 2)
			requireScoreConsistent(t, next)

			s = next
			moves++
			require.LessOrEqual(t, moves, s.EdgeCount())
		}
		require.Equal(t, s.EdgeCount(), moves)
		boxes := s.Boxes()
		require.Equal(t, size[0]*size[1], boxes[game.Max]+boxes[game.Min])
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestHeuristic(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		require.Equal(t, 0.0, New(2, 2).Heuristic())
	})

	t.Run("a box the side to move can close", func(t *testing.T) {
		s := draw(t, New(1, 1), v(0, 0), v(1, 0), h(0, 0))
		require.Equal(t, game.Min, s.Player())
		require.Equal(t, -0.5, s.Heuristic())
		require.Equal(t, -1.0, s.ActionHeuristic(Action{Mover: game.Min, X: 0, Y: 1, Orientation: Horizontal}))
	})

	t.Run("an edge that leaves a three-sided box", func(t *testing.T) {
		s := draw(t, New(1, 1), v(0, 0), v(1, 0))
		require.Equal(t, game.Max, s.Player())
		require.Equal(t, -0.5, s.ActionHeuristic(Action{Mover: game.Max, X: 0, Y: 0, Orientation: Horizontal}))
	})

	t.Run("score counts once boxes are taken", func(t *testing.T) {
		s := draw(t, New(2, 1), v(0, 0), v(2, 0), h(0, 0), h(1, 0), h(0, 1), h(1, 1), v(1, 0))
		require.Equal(t, 1.0, s.Heuristic())
	})

	t.Run("illegal actions score 0", func(t *testing.T) {
		s := draw(t, New(1, 1), v(0, 0))
		require.Equal(t, 0.0, s.ActionHeuristic(Action{Mover: game.Min, X: 0, Y: 0, Orientation: Vertical}))
		require.Equal(t, 0.0, s.ActionHeuristic(Action{Mover: game.Min, X: 9, Y: 0, Orientation: Vertical}))
		require.Equal(t, 0.0, s.ActionHeuristic(otherAction{}))
	})

	var _ game.Heuristic = (*State)(nil)
}
