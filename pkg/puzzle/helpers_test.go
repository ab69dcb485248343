package puzzle

import "github.com/Faultbox/twisty/pkg/layout"

func cell(x, y, z int) layout.Cell {
	return layout.Cell{X: x, Y: y, Z: z}
}
