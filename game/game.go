// Package game defines the contract between the radial renderer and the
// component that owns the game rules.
package game

import (
	"github.com/plus3/radial/palette"
	"github.com/plus3/radial/pixbuf"
)

// PreviewSize is the width and height of the next-piece preview region.
const PreviewSize = 4

// Source is the game-state collaborator. The renderer only reads it through
// Capture and drives it through the command methods, all of which must be
// safe to call in any state.
type Source interface {
	IsGameOver() bool
	Score() int
	Rows() int
	Cols() int
	// Value returns the color code of a board cell, 0 for empty.
	Value(col, row int) int
	// NextValue returns the color code of a cell of the PreviewSize×PreviewSize
	// next-piece preview.
	NextValue(col, row int) int

	Start()
	Update()
	Move(dir int)
	Rotate()
	Down()
}

// Snapshot is an immutable copy of everything the renderer needs from a
// Source for one frame.
type Snapshot struct {
	Board    *pixbuf.Grid[palette.Index]
	Next     *pixbuf.Grid[palette.Index]
	Score    int
	GameOver bool
}

// Capture copies the visible state of src. Color codes are validated with v
// so a misbehaving source can never index outside the palette.
func Capture(src Source, v *palette.Validator) Snapshot {
	cols, rows := src.Cols(), src.Rows()
	board := pixbuf.NewGrid[palette.Index](cols, rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			board.Set(col, row, v.Clamp(src.Value(col, row)))
		}
	}

	next := pixbuf.NewGrid[palette.Index](PreviewSize, PreviewSize)
	for row := 0; row < PreviewSize; row++ {
		for col := 0; col < PreviewSize; col++ {
			next.Set(col, row, v.Clamp(src.NextValue(col, row)))
		}
	}

	return Snapshot{
		Board:    board,
		Next:     next,
		Score:    src.Score(),
		GameOver: src.IsGameOver(),
	}
}
