// Package layout decides which cells of an N×N×N puzzle grid are visible and
// where each one sits.
//
// Cells are 1-indexed. Layer 1 of an axis lies on the positive side, layer N on
// the negative side, matching the face order right/left, top/bottom, front/back.
package layout

import "iter"

// Cell is a grid coordinate, 1-indexed on every axis.
type Cell struct {
	X, Y, Z int
}

// Coord returns the coordinate on axis 0 (X), 1 (Y) or 2 (Z).
func (c Cell) Coord(axis int) int {
	switch axis {
	case 0:
		return c.X
	case 1:
		return c.Y
	default:
		return c.Z
	}
}

// Opposite returns the cell reflected through the grid centre.
func (c Cell) Opposite(dimension int) Cell {
	n := dimension + 1
	return Cell{n - c.X, n - c.Y, n - c.Z}
}

// OnShell reports whether c touches the outside of a grid of the given size.
func (c Cell) OnShell(dimension int) bool {
	for axis := range 3 {
		v := c.Coord(axis)
		if v == 1 || v == dimension {
			return true
		}
	}
	return false
}

// ShellCount is the number of cells Shell yields: d³ - (d-2)³ for d >= 2.
func ShellCount(dimension int) int {
	switch {
	case dimension < 1:
		return 0
	case dimension == 1:
		return 1
	default:
		return 6*dimension*dimension - 12*dimension + 8
	}
}

// Shell yields every cell on the outside of a d×d×d grid exactly once. The
// interior is never visited: the X end layers are emitted whole, then the Y
// end layers without the X end columns, then the Z end layers without either.
func Shell(dimension int) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		d := dimension
		if d < 1 {
			return
		}
		if d == 1 {
			yield(Cell{1, 1, 1})
			return
		}

		for _, x := range [2]int{1, d} {
			for y := 1; y <= d; y++ {
				for z := 1; z <= d; z++ {
					if !yield(Cell{x, y, z}) {
						return
					}
				}
			}
		}

		for _, y := range [2]int{1, d} {
			for z := 1; z <= d; z++ {
				for x := 2; x < d; x++ {
					if !yield(Cell{x, y, z}) {
						return
					}
				}
			}
		}

		for _, z := range [2]int{1, d} {
			for x := 2; x < d; x++ {
				for y := 2; y < d; y++ {
					if !yield(Cell{x, y, z}) {
						return
					}
				}
			}
		}
	}
}
