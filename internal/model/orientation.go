package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Orientation is the direction a word runs on the board
type Orientation int

const (
	Across Orientation = iota // Increasing x, fixed y
	Down                      // Increasing y, fixed x
)

// Orientations lists both orientations in the order placement searches them
var Orientations = []Orientation{Across, Down}

// String returns the lowercase name of the orientation
func (o Orientation) String() string {
	switch o {
	case Across:
		return "across"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

// Valid returns true for Across and Down
func (o Orientation) Valid() bool {
	return o == Across || o == Down
}

// Step returns the unit offset between consecutive letters
func (o Orientation) Step() (dx, dy int) {
	if o == Down {
		return 0, 1
	}
	return 1, 0
}

// ParseOrientation parses "across"/"down" (or "a"/"d"), ignoring case
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "across", "a":
		return Across, nil
	case "down", "d":
		return Down, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidOrientation, s)
	}
}

// MarshalJSON encodes the orientation as its name
func (o Orientation) MarshalJSON() ([]byte, error) {
	if !o.Valid() {
		return nil, ErrInvalidOrientation
	}
	return json.Marshal(o.String())
}

// UnmarshalJSON decodes an orientation name
func (o *Orientation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseOrientation(s)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
