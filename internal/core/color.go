package core

// Color is the semantic foreground color of a screen cell. The platform maps
// each value to a terminal color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWater         // unattacked open sea
	ColorShip          // own ship, or an enemy ship revealed after the game
	ColorHit
	ColorMiss
	ColorSunk
	ColorCursor
	ColorValid   // placement preview that fits
	ColorInvalid // placement preview that is rejected
	ColorTitle
	ColorDim
	ColorAlert
)

// String returns the color name, used in screenshots and test failures.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorWater:
		return "water"
	case ColorShip:
		return "ship"
	case ColorHit:
		return "hit"
	case ColorMiss:
		return "miss"
	case ColorSunk:
		return "sunk"
	case ColorCursor:
		return "cursor"
	case ColorValid:
		return "valid"
	case ColorInvalid:
		return "invalid"
	case ColorTitle:
		return "title"
	case ColorDim:
		return "dim"
	case ColorAlert:
		return "alert"
	default:
		return "unknown"
	}
}
