package keyboard

import (
	"strings"
)

// Direction is a key action slot. 0 is a tap; 1..8 are swipes clockwise
// from up.
type Direction int

const (
	Tap Direction = iota
	Up
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
)

// NumDirections is the number of action slots on a key.
const NumDirections = 9

var directionNames = [NumDirections]string{
	"tap", "up", "up-right", "right", "down-right", "down", "down-left", "left", "up-left",
}

func (d Direction) String() string {
	if d.Valid() {
		return directionNames[d]
	}
	return "invalid"
}

func (d Direction) Valid() bool { return d >= Tap && d <= UpLeft }

// DispatchStyle maps swipe angles to directions.
type DispatchStyle uint8

const (
	// DispatchCross resolves to up, right, down or left.
	DispatchCross DispatchStyle = iota
	// DispatchDiagonal resolves to the four diagonals.
	DispatchDiagonal
	// DispatchEightWay resolves to all eight directions.
	DispatchEightWay
)

func (s DispatchStyle) String() string {
	switch s {
	case DispatchCross:
		return "cross"
	case DispatchDiagonal:
		return "diagonal"
	case DispatchEightWay:
		return "eight_way"
	default:
		return "unknown"
	}
}

// ParseDispatchStyle maps a config name to a DispatchStyle.
func ParseDispatchStyle(name string) (DispatchStyle, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cross":
		return DispatchCross, true
	case "diagonal", "diag":
		return DispatchDiagonal, true
	case "eight_way", "8way", "eight-way":
		return DispatchEightWay, true
	default:
		return DispatchCross, false
	}
}

// Angles are in degrees: -90 is up, 0 right, 90 down, ±180 left.
var dispatchers = map[DispatchStyle]func(angle float64) Direction{
	DispatchCross:    dispatchCross,
	DispatchDiagonal: dispatchDiagonal,
	DispatchEightWay: dispatchEightWay,
}

// Dispatch resolves a swipe angle to a direction.
func (s DispatchStyle) Dispatch(angle float64) Direction {
	fn, ok := dispatchers[s]
	if !ok {
		fn = dispatchCross
	}
	return fn(angle)
}

func dispatchCross(angle float64) Direction {
	switch {
	case angle > -135 && angle <= -45:
		return Up
	case angle > -45 && angle <= 45:
		return Right
	case angle > 45 && angle <= 135:
		return Down
	}
	return Left
}

func dispatchDiagonal(angle float64) Direction {
	switch {
	case angle > -90 && angle <= 0:
		return UpRight
	case angle > 0 && angle <= 90:
		return DownRight
	case angle > 90 && angle <= 180:
		return DownLeft
	}
	return UpLeft
}

func dispatchEightWay(angle float64) Direction {
	switch {
	case angle > -158 && angle <= -113:
		return UpLeft
	case angle > -113 && angle <= -68:
		return Up
	case angle > -68 && angle <= -23:
		return UpRight
	case angle > -23 && angle <= 23:
		return Right
	case angle > 23 && angle <= 68:
		return DownRight
	case angle > 68 && angle <= 113:
		return Down
	case angle > 113 && angle <= 158:
		return DownLeft
	}
	return Left
}

// HintStyle selects which slots a key shows hints for.
type HintStyle uint8

const (
	HintCross HintStyle = iota
	HintDiagonal
	HintEightWay
)

func (s HintStyle) String() string {
	return DispatchStyle(s).String()
}

// ParseHintStyle maps a config name to a HintStyle.
func ParseHintStyle(name string) (HintStyle, bool) {
	s, ok := ParseDispatchStyle(name)
	return HintStyle(s), ok
}

// NoDirection marks an empty cell in a hint grid.
const NoDirection Direction = -1

// Grid returns the 3x3 placement of hint slots, row by row.
func (s HintStyle) Grid() [3][3]Direction {
	const n = NoDirection
	switch s {
	case HintDiagonal:
		return [3][3]Direction{{UpLeft, n, UpRight}, {n, Tap, n}, {DownLeft, n, DownRight}}
	case HintEightWay:
		return [3][3]Direction{{UpLeft, Up, UpRight}, {Left, Tap, Right}, {DownLeft, Down, DownRight}}
	default:
		return [3][3]Direction{{Up, n, Right}, {n, Tap, n}, {Left, n, Down}}
	}
}
