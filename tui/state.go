package tui

// state identifies the active screen.
type state int

const (
	stateSearch state = iota
	stateLoading
	stateBrowse
	stateDetails
	stateError
)
