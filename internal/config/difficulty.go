package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownDifficulty is returned by ParseDifficulty for unrecognized input.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty is the speed level chosen in the menu (1, 2 or 3).
// It fixes the spawn interval and fall speed for the next round.
type Difficulty int

const (
	DifficultyNovice Difficulty = iota + 1
	DifficultyMini
	DifficultyMaster
)

// DifficultyCount is the number of selectable levels.
const DifficultyCount = DifficultyMaster

// Valid reports whether d is one of the three levels.
func (d Difficulty) Valid() bool {
	return d >= DifficultyNovice && d <= DifficultyMaster
}

// String returns the menu label for the level.
func (d Difficulty) String() string {
	switch d {
	case DifficultyNovice:
		return "Novice"
	case DifficultyMini:
		return "Mini"
	case DifficultyMaster:
		return "Master"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// Difficulties returns all levels in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyNovice, DifficultyMini, DifficultyMaster}
}

// ParseDifficulty accepts a level number or its name, case-insensitively.
// An empty string yields Novice.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return DifficultyNovice, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		d := Difficulty(n)
		if !d.Valid() {
			return 0, fmt.Errorf("%w: %d (expected 1-3)", ErrUnknownDifficulty, n)
		}
		return d, nil
	}
	for _, d := range Difficulties() {
		if strings.ToLower(d.String()) == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}
