package main

import (
	"maps"
	"slices"
)

// loadingState tracks which startup jobs have finished
type loadingState map[string]bool

func newLoadingState(keys ...string) loadingState {
	l := make(loadingState, len(keys))
	for _, k := range keys {
		l[k] = false
	}
	return l
}

// set marks the job as done
func (l loadingState) set(key string) {
	l[key] = true
}

// unset marks the job as pending again
func (l loadingState) unset(key string) {
	l[key] = false
}

// pending returns the unfinished jobs in name order
func (l loadingState) pending() []string {
	var keys []string
	for _, k := range slices.Sorted(maps.Keys(l)) {
		if !l[k] {
			keys = append(keys, k)
		}
	}
	return keys
}

// allLoaded reports whether every job is done, and otherwise the first
// pending one
func (l loadingState) allLoaded() (bool, string) {
	if p := l.pending(); len(p) > 0 {
		return false, p[0]
	}
	return true, ""
}
