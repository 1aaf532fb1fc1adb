package dots

import "gamesolver/game"

// Weight of a box with three drawn sides: whoever moves next can take it.
const threeSidedWeight = 0.5

// Heuristic is the score plus half a box for each box the side to move can
// close right away, normalised by the number of boxes.
func (s *State) Heuristic() float64 {
	open := 0
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			if s.sides(x, y) == 3 {
				open++
			}
		}
	}
	value := float64(s.points) + s.player.Sign()*threeSidedWeight*float64(open)
	return value / float64(s.width*s.height)
}

// ActionHeuristic values an edge by the boxes it completes, minus half a box
// for every box it leaves with three sides for the opponent. Illegal actions score 0.
func (s *State) ActionHeuristic(a game.Action) float64 {
	action, ok := a.(Action)
	if !ok {
		return 0
	}
	if drawn, inside := s.edges(action.Orientation).at(action.X, action.Y); !inside || drawn != 0 {
		return 0
	}

	completed, gifted := 0, 0
	for _, b := range neighbours(action) {
		if _, inside := s.boxes.at(b.x, b.y); !inside {
			continue
		}
		switch s.sides(b.x, b.y) {
		case 3:
			completed++
		case 2:
			gifted++
		}
	}
	if completed > 0 { // the mover keeps the turn and can close them too
		gifted = 0
	}
	return s.player.Sign() * (float64(completed) - threeSidedWeight*float64(gifted))
}
