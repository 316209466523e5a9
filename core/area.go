package core

// Area represents a rectangular screen region in cells
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Contains checks if the cell is within the area
func (a Area) Contains(x, y int) bool {
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}

// Bottom returns the first row below the area
func (a Area) Bottom() int {
	return a.Y + a.Height
}

// Right returns the first column right of the area
func (a Area) Right() int {
	return a.X + a.Width
}

// Offset returns the area moved by dx, dy
func (a Area) Offset(dx, dy int) Area {
	a.X += dx
	a.Y += dy
	return a
}
