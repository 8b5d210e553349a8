package cli

import "github.com/serigraf/bancada/internal/board"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	Controller *board.Controller

	// Actor name attached to comments and moves made from this terminal.
	Actor string

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
