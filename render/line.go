package render

// cell is a terminal coordinate.
type cell struct{ x, y int }

// line returns the cells of the segment a-b, both ends included, using
// Bresenham's integer algorithm. The order runs from a to b.
//
// Complexity: O(max(|dx|, |dy|)).
func line(a, b cell) []cell {
	dx := abs(b.x - a.x)
	dy := -abs(b.y - a.y)
	sx, sy := 1, 1
	if a.x > b.x {
		sx = -1
	}
	if a.y > b.y {
		sy = -1
	}

	out := make([]cell, 0, max(dx, -dy)+1)
	x, y, e := a.x, a.y, dx+dy
	for {
		out = append(out, cell{x, y})
		if x == b.x && y == b.y {
			return out
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
