package life

import "errors"

var (
	// ErrEmptyGrid is returned by operations that need at least one row.
	ErrEmptyGrid = errors.New("life: empty grid")

	// ErrOutOfRange is returned when a coordinate lies outside the grid.
	ErrOutOfRange = errors.New("life: coordinate out of range")

	// ErrNegativeDimension is returned for negative widths or heights.
	ErrNegativeDimension = errors.New("life: negative dimension")

	// ErrMalformed is returned for ragged rows or invalid cell values.
	ErrMalformed = errors.New("life: malformed grid")

	// ErrNilChooser is returned when a random constructor gets no chooser.
	ErrNilChooser = errors.New("life: nil chooser")
)
