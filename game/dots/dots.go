// Package dots implements Dots-and-Boxes on a width×height grid of boxes.
//
// Edges live in two grids: vertical edges are indexed [y][x] over
// height×(width+1), horizontal edges over (height+1)×width. Box (x, y) is
// bounded by vertical edges (x, y) and (x+1, y) and horizontal edges (x, y)
// and (x, y+1). A player who completes a box owns it and moves again.
package dots

import (
	"fmt"

	"gamesolver/game"

	"golang.org/x/exp/slices"
)

type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Action draws the edge at (X, Y) in the grid given by Orientation.
type Action struct {
	Mover       game.Player
	X, Y        int
	Orientation Orientation
}

func (a Action) Player() game.Player {
	return a.Mover
}

func (a Action) String() string {
	return fmt.Sprintf("(%d, %d, %d)", a.Orientation, a.X, a.Y)
}

type grid [][]game.Player

func newGrid(rows, cols int) grid {
	g := make(grid, rows)
	for i := range g {
		g[i] = make([]game.Player, cols)
	}
	return g
}

func (g grid) clone() grid {
	c := make(grid, len(g))
	for i, row := range g {
		c[i] = slices.Clone(row)
	}
	return c
}

// at returns the value at [y][x], and false when outside the grid.
func (g grid) at(x, y int) (game.Player, bool) {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		return 0, false
	}
	return g[y][x], true
}

// State is a Dots-and-Boxes position. Every grid is owned by exactly one
// state; Transition copies them before drawing.
type State struct {
	player     game.Player
	width      int
	height     int
	vertical   grid
	horizontal grid
	boxes      grid
	points     int
}

// New returns an empty board of width×height boxes with Max to move.
func New(width, height int) *State {
	if width <= 0 || height <= 0 {
		panic("board dimensions must be positive")
	}
	return &State{
		player:     game.Max,
		width:      width,
		height:     height,
		vertical:   newGrid(height, width+1),
		horizontal: newGrid(height+1, width),
		boxes:      newGrid(height, width),
	}
}

func (s *State) Player() game.Player {
	return s.player
}

func (s *State) Width() int {
	return s.width
}

func (s *State) Height() int {
	return s.height
}

// Points is the running score: boxes owned by Max minus boxes owned by Min.
func (s *State) Points() int {
	return s.points
}

// Edge returns who drew the edge, 0 if it is undrawn or outside the grid.
func (s *State) Edge(o Orientation, x, y int) game.Player {
	v, _ := s.edges(o).at(x, y)
	return v
}

// Owner returns who completed box (x, y), 0 if nobody has.
func (s *State) Owner(x, y int) game.Player {
	v, _ := s.boxes.at(x, y)
	return v
}

// Boxes counts the completed boxes of each player.
func (s *State) Boxes() map[game.Player]int {
	counts := map[game.Player]int{game.Max: 0, game.Min: 0}
	for _, row := range s.boxes {
		for _, owner := range row {
			if owner != 0 {
				counts[owner]++
			}
		}
	}
	return counts
}

// EdgeCount is the total number of edges on the board, drawn or not.
func (s *State) EdgeCount() int {
	return s.height*(s.width+1) + (s.height+1)*s.width
}

func (s *State) edges(o Orientation) grid {
	if o == Horizontal {
		return s.horizontal
	}
	return s.vertical
}

// Actions lists undrawn vertical edges, then undrawn horizontal edges, each
// in ascending (y, x) order.
func (s *State) Actions() []game.Action {
	actions := []game.Action{}
	for _, o := range []Orientation{Vertical, Horizontal} {
		for y, row := range s.edges(o) {
			for x, drawn := range row {
				if drawn == 0 {
					actions = append(actions, Action{Mover: s.player, X: x, Y: y, Orientation: o})
				}
			}
		}
	}
	return actions
}

func (s *State) Transition(a game.Action) (game.State, error) {
	action, ok := a.(Action)
	if !ok {
		return nil, game.InvalidAction(a, "not a dots-and-boxes action (%T)", a)
	}
	if action.Mover != s.player {
		return nil, game.InvalidAction(a, "%v is not to move", action.Mover)
	}
	if action.Orientation != Vertical && action.Orientation != Horizontal {
		return nil, game.InvalidAction(a, "unknown orientation %d", action.Orientation)
	}
	drawn, inside := s.edges(action.Orientation).at(action.X, action.Y)
	if !inside {
		return nil, game.InvalidAction(a, "%v edge outside %dx%d board", action.Orientation, s.width, s.height)
	}
	if drawn != 0 {
		return nil, game.InvalidAction(a, "edge already drawn by %v", drawn)
	}

	next := s.clone()
	next.edges(action.Orientation)[action.Y][action.X] = action.Mover

	completed := 0
	for _, b := range neighbours(action) {
		if next.complete(b.x, b.y) {
			next.boxes[b.y][b.x] = action.Mover
			completed++
		}
	}

	if completed > 0 {
		next.points += completed * int(action.Mover)
	} else {
		next.player = s.player.Opponent()
	}
	return next, nil
}

type box struct{ x, y int }

// neighbours returns the two boxes on either side of an edge; either may lie
// outside the grid.
func neighbours(a Action) [2]box {
	if a.Orientation == Vertical {
		return [2]box{{a.X, a.Y}, {a.X - 1, a.Y}}
	}
	return [2]box{{a.X, a.Y}, {a.X, a.Y - 1}}
}

// complete reports whether all four sides of box (x, y) are drawn. A box
// outside the grid is never complete.
func (s *State) complete(x, y int) bool {
	return s.sides(x, y) == 4
}

// sides counts the drawn edges around box (x, y), 0 outside the grid.
func (s *State) sides(x, y int) int {
	if _, inside := s.boxes.at(x, y); !inside {
		return 0
	}
	count := 0
	for _, e := range []struct {
		g    grid
		x, y int
	}{
		{s.horizontal, x, y},     // top
		{s.horizontal, x, y + 1}, // bottom
		{s.vertical, x, y},       // left
		{s.vertical, x + 1, y},   // right
	} {
		if v, ok := e.g.at(e.x, e.y); ok && v != 0 {
			count++
		}
	}
	return count
}

func (s *State) clone() *State {
	return &State{
		player:     s.player,
		width:      s.width,
		height:     s.height,
		vertical:   s.vertical.clone(),
		horizontal: s.horizontal.clone(),
		boxes:      s.boxes.clone(),
		points:     s.points,
	}
}

// Reward is the running score; partial scores are valid at any point.
func (s *State) Reward() game.Reward {
	return game.Decided(float64(s.points))
}

// Terminal is reached only once every edge is drawn.
func (s *State) Terminal() bool {
	return len(s.Actions()) == 0
}
