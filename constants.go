package main

// Session states
type sessionState int

const (
	jarState sessionState = iota
	historyState
	depositState
	withdrawState
	levelsState
	configView
	loading
	errorState
)

func (ss sessionState) String() string {
	switch ss {
	case jarState:
		return "jar"
	case historyState:
		return "history"
	case depositState:
		return "deposit"
	case withdrawState:
		return "withdraw"
	case levelsState:
		return "levels"
	case configView:
		return "configuration"
	case loading:
		return "loading"
	case errorState:
		return "error"
	}

	return "unknown"
}

// Loading keys
const (
	lightTexturesKey = "light textures"
	darkTexturesKey  = "dark textures"
)
