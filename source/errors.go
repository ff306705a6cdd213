package source

import "errors"

var (
	// ErrNotEnabled is returned when an operation is invoked before Enable.
	ErrNotEnabled = errors.New("source is not enabled")

	// ErrChannelsUnsupported is returned by channel operations on providers
	// that have no channel concept.
	ErrChannelsUnsupported = errors.New("channels are not supported by this source")

	// ErrNoPlayableSource is returned when a page resolves but contains no
	// recognizable video manifest or file.
	ErrNoPlayableSource = errors.New("no playable video source found")

	// ErrNotAuthenticated is returned when an operation requires a logged-in
	// session and none is available.
	ErrNotAuthenticated = errors.New("not authenticated, login required")
)
