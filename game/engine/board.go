package engine

// Board geometry and lookups. The board holds only unaffiliated tiles;
// tiles owned by a chain live in the chain's tile list.

func (g *GameEngine) inBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.cfg.Rows && c.Col >= 0 && c.Col < g.cfg.Cols
}

// neighbors returns the orthogonal neighbors of c that are on the grid.
func (g *GameEngine) neighbors(c Coord) []Coord {
	candidates := [4]Coord{
		{Row: c.Row - 1, Col: c.Col},
		{Row: c.Row + 1, Col: c.Col},
		{Row: c.Row, Col: c.Col - 1},
		{Row: c.Row, Col: c.Col + 1},
	}
	result := make([]Coord, 0, 4)
	for _, n := range candidates {
		if g.inBounds(n) {
			result = append(result, n)
		}
	}
	return result
}

// onBoard reports whether c is an unaffiliated tile on the board.
func (g *GameEngine) onBoard(c Coord) bool {
	for _, t := range g.board {
		if t == c {
			return true
		}
	}
	return false
}

func (g *GameEngine) removeFromBoard(c Coord) {
	for i, t := range g.board {
		if t == c {
			g.board = append(g.board[:i], g.board[i+1:]...)
			return
		}
	}
}

// hotelAt returns the chain owning the given cell, or nil.
func (g *GameEngine) hotelAt(c Coord) *Hotel {
	for _, h := range g.hotels {
		for _, t := range h.Tiles {
			if t == c {
				return h
			}
		}
	}
	return nil
}

// adjacentHotels returns the distinct chains orthogonally adjacent to c,
// in canonical chain order.
func (g *GameEngine) adjacentHotels(c Coord) []*Hotel {
	seen := [HotelCount]bool{}
	for _, n := range g.neighbors(c) {
		if h := g.hotelAt(n); h != nil {
			seen[h.ID] = true
		}
	}
	var result []*Hotel
	for id := 0; id < HotelCount; id++ {
		if seen[id] {
			result = append(result, g.hotels[id])
		}
	}
	return result
}

// connectedUnaffiliated flood-fills from c across unaffiliated board tiles
// and returns the component, excluding c itself. c does not need to be on
// the board yet.
func (g *GameEngine) connectedUnaffiliated(c Coord) []Coord {
	visited := map[Coord]bool{c: true}
	queue := []Coord{c}
	var component []Coord
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.neighbors(cur) {
			if visited[n] || !g.onBoard(n) {
				continue
			}
			visited[n] = true
			component = append(component, n)
			queue = append(queue, n)
		}
	}
	return component
}

// safeCount returns how many of the given chains have reached safe size.
func (g *GameEngine) safeCount(hotels []*Hotel) int {
	count := 0
	for _, h := range hotels {
		if h.Size() >= g.cfg.SafeSize {
			count++
		}
	}
	return count
}

// unfoundedHotel reports whether any chain is off the board and available
// to found.
func (g *GameEngine) unfoundedHotel() bool {
	for _, h := range g.hotels {
		if !h.Founded() {
			return true
		}
	}
	return false
}

// anyFoundedHotel reports whether at least one chain is on the board.
func (g *GameEngine) anyFoundedHotel() bool {
	for _, h := range g.hotels {
		if h.Founded() {
			return true
		}
	}
	return false
}
