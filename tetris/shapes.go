package tetris

type piece uint8

const (
	pieceI piece = iota
	pieceO
	pieceT
	pieceS
	pieceZ
	pieceJ
	pieceL

	pieceCount = 7
)

// shapes are 4×4 masks indexed [row][col] in spawn orientation.
var shapes = [pieceCount][4][4]bool{
	pieceI: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	pieceO: {
		{false, false, false, false},
		{false, true, true, false},
		{false, true, true, false},
		{false, false, false, false},
	},
	pieceT: {
		{false, false, false, false},
		{false, true, false, false},
		{true, true, true, false},
		{false, false, false, false},
	},
	pieceS: {
		{false, false, false, false},
		{false, true, true, false},
		{true, true, false, false},
		{false, false, false, false},
	},
	pieceZ: {
		{false, false, false, false},
		{true, true, false, false},
		{false, true, true, false},
		{false, false, false, false},
	},
	pieceJ: {
		{false, false, false, false},
		{true, false, false, false},
		{true, true, true, false},
		{false, false, false, false},
	},
	pieceL: {
		{false, false, false, false},
		{false, false, true, false},
		{true, true, true, false},
		{false, false, false, false},
	},
}

// color is the palette code of the piece, 1..7.
func (p piece) color() uint8 { return uint8(p) + 1 }

type shape [4][4]bool

func rotateClockwise(s shape) shape {
	var r shape
	for i := range 4 {
		for j := range 4 {
			r[j][3-i] = s[i][j]
		}
	}
	return r
}
