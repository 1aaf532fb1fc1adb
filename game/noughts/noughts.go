// Package noughts implements Noughts-and-Crosses (tic-tac-toe) on a square
// board of any size. A line is won when every cell in a row, column or one of
// the two diagonals is held by the same player.
package noughts

import (
	"fmt"

	"gamesolver/game"

	"golang.org/x/exp/slices"
)

// Action places the mover's mark on cell (X, Y).
type Action struct {
	Mover game.Player
	X, Y  int
}

func (a Action) Player() game.Player {
	return a.Mover
}

func (a Action) String() string {
	return fmt.Sprintf("(%d, %d)", a.X, a.Y)
}

// State is a Noughts-and-Crosses position. Cells hold 0 when empty, otherwise
// the player who marked them. The board is indexed board[x][y].
type State struct {
	player game.Player
	size   int
	board  [][]game.Player
}

// New returns an empty size×size board with Max to move.
func New(size int) *State {
	if size <= 0 {
		panic("board size must be positive")
	}
	board := make([][]game.Player, size)
	for i := range board {
		board[i] = make([]game.Player, size)
	}
	return &State{player: game.Max, size: size, board: board}
}

// TicTacToe returns the classic 3×3 game.
func TicTacToe() *State {
	return New(3)
}

func (s *State) Player() game.Player {
	return s.player
}

func (s *State) Size() int {
	return s.size
}

// Cell returns the owner of (x, y), 0 if empty or out of range.
func (s *State) Cell(x, y int) game.Player {
	if !s.inside(x, y) {
		return 0
	}
	return s.board[x][y]
}

// Occupied counts the marked cells.
func (s *State) Occupied() int {
	count := 0
	for _, row := range s.board {
		for _, c := range row {
			if c != 0 {
				count++
			}
		}
	}
	return count
}

func (s *State) inside(x, y int) bool {
	return x >= 0 && x < s.size && y >= 0 && y < s.size
}

func (s *State) Actions() []game.Action {
	actions := make([]game.Action, 0, s.size*s.size)
	for x := range s.board {
		for y, c := range s.board[x] {
			if c == 0 {
				actions = append(actions, Action{Mover: s.player, X: x, Y: y})
			}
		}
	}
	return actions
}

func (s *State) Transition(a game.Action) (game.State, error) {
	action, ok := a.(Action)
	if !ok {
		return nil, game.InvalidAction(a, "not a noughts-and-crosses action (%T)", a)
	}
	if action.Mover != s.player {
		return nil, game.InvalidAction(a, "%v is not to move", action.Mover)
	}
	if !s.inside(action.X, action.Y) {
		return nil, game.InvalidAction(a, "cell outside %dx%d board", s.size, s.size)
	}
	if s.board[action.X][action.Y] != 0 {
		return nil, game.InvalidAction(a, "cell already held by %v", s.board[action.X][action.Y])
	}

	next := s.clone()
	next.board[action.X][action.Y] = action.Mover
	next.player = s.player.Opponent()
	return next, nil
}

func (s *State) clone() *State {
	board := make([][]game.Player, s.size)
	for i, row := range s.board {
		board[i] = slices.Clone(row)
	}
	return &State{player: s.player, size: s.size, board: board}
}

// Reward scans rows, columns, the main diagonal and the anti-diagonal, and
// returns ±1 for the first completed line. A full board without a line is a
// draw; anything else is undecided.
func (s *State) Reward() game.Reward {
	for _, line := range s.lines() {
		if sum := s.sum(line); abs(sum) == s.size {
			return game.Decided(float64(sum) / float64(s.size))
		}
	}
	if s.Occupied() == s.size*s.size {
		return game.Decided(0)
	}
	return game.Undecided()
}

func (s *State) Terminal() bool {
	if r := s.Reward(); r.IsDecided() && !r.IsZero() {
		return true
	}
	return len(s.Actions()) == 0
}

type cell struct{ x, y int }

func (s *State) lines() [][]cell {
	n := s.size
	lines := make([][]cell, 0, 2*n+2)
	for x := 0; x < n; x++ {
		row := make([]cell, n)
		for y := range row {
			row[y] = cell{x, y}
		}
		lines = append(lines, row)
	}
	for y := 0; y < n; y++ {
		column := make([]cell, n)
		for x := range column {
			column[x] = cell{x, y}
		}
		lines = append(lines, column)
	}
	diagonal := make([]cell, n)
	anti := make([]cell, n)
	for i := 0; i < n; i++ {
		diagonal[i] = cell{i, i}
		anti[i] = cell{i, n - i - 1}
	}
	return append(lines, diagonal, anti)
}

func (s *State) sum(line []cell) int {
	total := 0
	for _, c := range line {
		total += int(s.board[c.x][c.y])
	}
	return total
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
