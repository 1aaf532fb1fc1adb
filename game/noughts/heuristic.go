package noughts

import "gamesolver/game"

// Center and corner cells are weighted 2 and 1 respectively.

// Heuristic is the weighted sum of all marks, normalised by 2·size².
// An empty or symmetric board scores 0.
func (s *State) Heuristic() float64 {
	value := 0
	for x := range s.board {
		for y, c := range s.board[x] {
			value += int(c) * s.weight(x, y)
		}
	}
	return float64(value) / 2 / float64(s.size) / float64(s.size)
}

// ActionHeuristic is the unnormalised weight of the target cell, signed by the side to move.
func (s *State) ActionHeuristic(a game.Action) float64 {
	action, ok := a.(Action)
	if !ok {
		return 0
	}
	return s.player.Sign() * float64(s.weight(action.X, action.Y))
}

func (s *State) weight(x, y int) int {
	return 2*s.middle(x, y) + s.corner(x, y)
}

// middle compares each axis against both size/2 and ceil(size/2).
func (s *State) middle(x, y int) int {
	n := s.size
	lo, hi := n/2, (n+1)/2
	if (x == lo || x == hi) && (y == lo || y == hi) {
		return 1
	}
	return 0
}

func (s *State) corner(x, y int) int {
	n := s.size
	if (x == 0 || x == n-1) && (y == 0 || y == n-1) {
		return 1
	}
	return 0
}
