// Package palette defines the closed set of block colors and the tones used
// to draw them.
package palette

import (
	"fmt"
	"image/color"
)

// Index identifies a block color. The zero value is Empty, which is reserved
// for empty cells and renders as background.
type Index uint8

const (
	Empty Index = iota
	Red
	Green
	Blue
	Yellow
	Cyan
	Magenta
	Azure

	// Size is the number of valid indices. Valid indices are [0, Size).
	Size = int(Azure) + 1
)

var names = [Size]string{"empty", "red", "green", "blue", "yellow", "cyan", "magenta", "azure"}

func (i Index) String() string {
	if int(i) < Size {
		return names[i]
	}
	return fmt.Sprintf("Index(%d)", uint8(i))
}

// Valid reports whether i is one of the defined indices.
func (i Index) Valid() bool { return int(i) < Size }

// Entry holds the two tones of a color: the cell body and its outline.
type Entry struct {
	Fill color.RGBA
	Edge color.RGBA
}

var (
	Background = color.RGBA{255, 255, 255, 255}
	Black      = color.RGBA{0, 0, 0, 255}
	Gray       = color.RGBA{128, 128, 128, 255}
	DarkGray   = color.RGBA{64, 64, 64, 255}
	RailRed    = color.RGBA{255, 0, 0, 255}
)

var table = [Size]Entry{
	Empty:   {Fill: Background, Edge: Background},
	Red:     {Fill: color.RGBA{255, 0, 0, 255}, Edge: color.RGBA{110, 0, 0, 255}},
	Green:   {Fill: color.RGBA{0, 255, 0, 255}, Edge: color.RGBA{0, 110, 0, 255}},
	Blue:    {Fill: color.RGBA{0, 0, 255, 255}, Edge: color.RGBA{0, 0, 110, 255}},
	Yellow:  {Fill: color.RGBA{255, 255, 0, 255}, Edge: color.RGBA{110, 110, 0, 255}},
	Cyan:    {Fill: color.RGBA{0, 255, 255, 255}, Edge: color.RGBA{0, 110, 110, 255}},
	Magenta: {Fill: color.RGBA{255, 0, 255, 255}, Edge: color.RGBA{110, 0, 110, 255}},
	Azure:   {Fill: color.RGBA{55, 155, 255, 255}, Edge: color.RGBA{10, 50, 110, 255}},
}

// Lookup returns the entry for i. Invalid indices resolve to the Empty entry.
func Lookup(i Index) Entry {
	if !i.Valid() {
		return table[Empty]
	}
	return table[i]
}

// Tone selects which color of a texel is drawn.
type Tone uint8

const (
	ToneFill Tone = iota
	ToneEdge
	// Decoration tones ignore the texel index.
	ToneWell
	ToneWellEdge
	ToneRail
)

// Texel is one sample of the grid texture. The zero Texel is background.
type Texel struct {
	Index Index
	Tone  Tone
}

var (
	Well     = Texel{Tone: ToneWell}
	WellEdge = Texel{Tone: ToneWellEdge}
	Rail     = Texel{Tone: ToneRail}
)

// Fill returns the body texel of color i.
func Fill(i Index) Texel { return Texel{Index: i, Tone: ToneFill} }

// Edge returns the outline texel of color i.
func Edge(i Index) Texel { return Texel{Index: i, Tone: ToneEdge} }

// RGBA resolves the texel to a display color.
func (t Texel) RGBA() color.RGBA {
	switch t.Tone {
	case ToneEdge:
		return Lookup(t.Index).Edge
	case ToneWell:
		return Gray
	case ToneWellEdge:
		return DarkGray
	case ToneRail:
		return RailRed
	default:
		return Lookup(t.Index).Fill
	}
}
