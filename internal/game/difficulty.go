package game

import "fmt"

// Difficulty is the ordinal difficulty setting chosen in the dialogs.
// Incremental scales the tick delay with board progress; the other three
// are fixed speeds.
type Difficulty int

const (
	Incremental Difficulty = iota
	Easy
	Medium
	Hard
)

// String returns the lowercase difficulty name used in config files and
// score records.
func (d Difficulty) String() string {
	switch d {
	case Incremental:
		return "incremental"
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty converts a difficulty name into its ordinal value.
func ParseDifficulty(name string) (Difficulty, error) {
	switch name {
	case "incremental":
		return Incremental, nil
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Incremental, fmt.Errorf("game: unknown difficulty %q", name)
	}
}
