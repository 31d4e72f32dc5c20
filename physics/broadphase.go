package physics

import "math"

type cell struct {
	x, y int
}

// candidatePairs bins bodies into a uniform grid whose cells are as wide as
// the largest body and returns index pairs i < j from neighbouring cells.
func (s *Space) candidatePairs() [][2]int {
	if len(s.bodies) < 2 {
		return nil
	}

	size := 2 * s.maxRadius
	if size <= 0 {
		size = 1
	}

	cellOf := func(p Vec) cell {
		return cell{int(math.Floor(p.X / size)), int(math.Floor(p.Y / size))}
	}

	grid := make(map[cell][]int, len(s.bodies))
	for i, b := range s.bodies {
		k := cellOf(b.pos)
		grid[k] = append(grid[k], i)
	}

	var pairs [][2]int
	for i, b := range s.bodies {
		home := cellOf(b.pos)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for _, j := range grid[cell{home.x + dx, home.y + dy}] {
					if j > i {
						pairs = append(pairs, [2]int{i, j})
					}
				}
			}
		}
	}

	return pairs
}
