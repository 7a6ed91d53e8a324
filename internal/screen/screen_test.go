package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseString(t *testing.T) {
	for _, s := range All() {
		got, err := Parse(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := Parse("arcade")
	assert.ErrorIs(t, err, ErrUnknownScreen)
	assert.Equal(t, "Screen(42)", Screen(42).String())
}

func TestNext(t *testing.T) {
	tests := []struct {
		from, to Screen
		ok       bool
	}{
		{Home, TownMap, true},
		{Gym, Customize, true},
		{Shop, SaveGame, true},
		{Library, Home, true},
		{TownMap, Gym, true},
		{TownMap, Library, true},
		{TownMap, Shop, true},
		{Shop, Shop, true},
		{Home, Gym, false},
		{Gym, Library, false},
		{Customize, Shop, false},
	}

	for _, tt := range tests {
		got, err := Next(tt.from, tt.to)
		if tt.ok {
			assert.NoError(t, err, "%s -> %s", tt.from, tt.to)
			assert.Equal(t, tt.to, got)
		} else {
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", tt.from, tt.to)
			assert.Equal(t, tt.from, got)
		}
	}
}

func TestLocationKey(t *testing.T) {
	for s, want := range map[Screen]string{Home: "home", Gym: "gym", Library: "library"} {
		key, ok := s.LocationKey()
		assert.True(t, ok)
		assert.Equal(t, want, key)
	}
	for _, s := range []Screen{TownMap, Shop, Customize, SaveGame} {
		_, ok := s.LocationKey()
		assert.False(t, ok, s.String())
	}
}

func TestPostOperationScreens(t *testing.T) {
	assert.Equal(t, Home, AfterCompleteQuest())
	assert.Equal(t, Home, AfterLoadGame())
}
