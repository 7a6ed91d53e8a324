// Package screen models the navigation of the game's front ends as a
// finite set of screens with explicit transitions. It is not part of the
// stored game record.
package screen

import (
	"errors"
	"fmt"
)

// Screen identifies one view of the game
type Screen int

const (
	Home Screen = iota
	TownMap
	Gym
	Library
	Shop
	Customize
	SaveGame
)

var names = [...]string{
	Home:      "home",
	TownMap:   "townMap",
	Gym:       "gym",
	Library:   "library",
	Shop:      "shop",
	Customize: "customize",
	SaveGame:  "saveGame",
}

// Errors returned by Parse and Next
var (
	ErrUnknownScreen     = errors.New("unknown screen")
	ErrInvalidTransition = errors.New("screen not reachable from here")
)

// All returns every screen in menu order
func All() []Screen {
	return []Screen{Home, TownMap, Gym, Library, Shop, Customize, SaveGame}
}

func (s Screen) String() string {
	if s < 0 || int(s) >= len(names) {
		return fmt.Sprintf("Screen(%d)", int(s))
	}
	return names[s]
}

// Parse maps a screen name back to its Screen
func Parse(name string) (Screen, error) {
	for i, n := range names {
		if n == name {
			return Screen(i), nil
		}
	}
	return Home, fmt.Errorf("%w: %q", ErrUnknownScreen, name)
}

// InBottomBar reports whether the screen is reachable from anywhere
func (s Screen) InBottomBar() bool {
	switch s {
	case Home, TownMap, Customize, SaveGame:
		return true
	}
	return false
}

// Next validates a move from one screen to another. Bottom bar screens are
// always reachable; town locations only from the town map.
func Next(from, to Screen) (Screen, error) {
	switch {
	case to == from, to.InBottomBar():
		return to, nil
	case from == TownMap && (to == Gym || to == Library || to == Shop):
		return to, nil
	}
	return from, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// LocationKey returns the quest location offered on the screen
func (s Screen) LocationKey() (string, bool) {
	switch s {
	case Home, Gym, Library:
		return s.String(), true
	}
	return "", false
}

// AfterCompleteQuest is where the player lands after finishing a quest
func AfterCompleteQuest() Screen {
	return Home
}

// AfterLoadGame is where the player lands after loading a save
func AfterLoadGame() Screen {
	return Home
}
