package main

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestNewLoadingState(t *testing.T) {
	tests := []struct {
		name string
		keys []string
	}{
		{
			name: "empty keys",
			keys: []string{},
		},
		{
			name: "texture keys",
			keys: []string{lightTexturesKey, darkTexturesKey},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := newLoadingState(tt.keys...)

			for _, key := range tt.keys {
				value, exists := ls[key]
				be.True(t, exists)
				be.False(t, value)
			}

			be.Equal(t, len(tt.keys), len(ls))
		})
	}
}

func TestLoadingStateSetUnset(t *testing.T) {
	ls := newLoadingState(lightTexturesKey, darkTexturesKey)

	ls.set(lightTexturesKey)
	be.True(t, ls[lightTexturesKey])
	be.False(t, ls[darkTexturesKey])

	ls.unset(lightTexturesKey)
	be.False(t, ls[lightTexturesKey])
}

func TestLoadingStateAllLoaded(t *testing.T) {
	tests := []struct {
		name            string
		keys            []string
		setKeys         []string
		expectLoaded    bool
		expectNotLoaded string
		expectPending   []string
	}{
		{
			name:         "empty state - all loaded",
			expectLoaded: true,
		},
		{
			name:            "none loaded",
			keys:            []string{lightTexturesKey, darkTexturesKey},
			expectNotLoaded: darkTexturesKey,
			expectPending:   []string{darkTexturesKey, lightTexturesKey},
		},
		{
			name:            "partially loaded",
			keys:            []string{lightTexturesKey, darkTexturesKey},
			setKeys:         []string{darkTexturesKey},
			expectNotLoaded: lightTexturesKey,
			expectPending:   []string{lightTexturesKey},
		},
		{
			name:         "all loaded",
			keys:         []string{lightTexturesKey, darkTexturesKey},
			setKeys:      []string{lightTexturesKey, darkTexturesKey},
			expectLoaded: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := newLoadingState(tt.keys...)
			for _, key := range tt.setKeys {
				ls.set(key)
			}

			loaded, notLoaded := ls.allLoaded()
			be.Equal(t, tt.expectLoaded, loaded)
			be.Equal(t, tt.expectNotLoaded, notLoaded)
			be.AllEqual(t, tt.expectPending, ls.pending())
		})
	}
}
