// Package tetris is a reference falling-block game implementing game.Source.
//
// The board has four hidden spawn rows on top of the visible well. A new
// game starts over: call Start to play.
package tetris

import (
	"math/rand/v2"

	"github.com/plus3/radial/game"
)

const (
	DefaultCols = 20
	DefaultRows = 24

	// HiddenRows is the number of spawn rows above the visible well.
	HiddenRows = 4

	pointsPerLine = 100
)

type point struct {
	x, y int
}

// Model holds one game. It is not safe for concurrent use; the radial loop
// only touches it from its tick goroutine.
type Model struct {
	cols, rows int
	board      []uint8 // 0 empty, else color code 1..7

	cur    piece
	curRot shape
	curPos point
	active bool

	next piece
	bag  []piece
	rng  *rand.Rand

	score    int
	lines    int
	gameOver bool
}

var _ game.Source = (*Model)(nil)

// New creates a model with the default board size. The game is over until
// Start is called.
func New(seed uint64) *Model {
	return NewSize(DefaultCols, DefaultRows, seed)
}

// NewSize creates a model with a cols×rows board.
func NewSize(cols, rows int, seed uint64) *Model {
	return &Model{
		cols:     max(cols, 4),
		rows:     max(rows, HiddenRows+1),
		board:    make([]uint8, max(cols, 4)*max(rows, HiddenRows+1)),
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		gameOver: true,
	}
}

func (m *Model) IsGameOver() bool { return m.gameOver }
func (m *Model) Score() int       { return m.score }
func (m *Model) Lines() int       { return m.lines }
func (m *Model) Rows() int        { return m.rows }
func (m *Model) Cols() int        { return m.cols }

// Value returns the color code at (col, row), including the falling piece.
func (m *Model) Value(col, row int) int {
	if col < 0 || row < 0 || col >= m.cols || row >= m.rows {
		return 0
	}
	if m.active && !m.gameOver {
		dx, dy := col-m.curPos.x, row-m.curPos.y
		if dx >= 0 && dx < 4 && dy >= 0 && dy < 4 && m.curRot[dy][dx] {
			return int(m.cur.color())
		}
	}
	return int(m.board[row*m.cols+col])
}

// NextValue returns the preview of the upcoming piece.
func (m *Model) NextValue(col, row int) int {
	if col < 0 || row < 0 || col >= game.PreviewSize || row >= game.PreviewSize {
		return 0
	}
	if shapes[m.next][row][col] {
		return int(m.next.color())
	}
	return 0
}

// Start clears the board and begins a new game.
func (m *Model) Start() {
	clear(m.board)
	m.score = 0
	m.lines = 0
	m.bag = m.bag[:0]
	m.active = false
	m.gameOver = false
	m.next = m.draw()
	m.spawn()
}

// Update advances gravity by one row, locking the piece when it lands.
func (m *Model) Update() {
	if m.gameOver {
		return
	}
	if !m.active {
		m.spawn()
		return
	}
	if m.try(m.curRot, point{m.curPos.x, m.curPos.y + 1}) {
		return
	}
	m.lock()
	m.clearLines()
	m.spawn()
}

// Move shifts the falling piece one column left (dir < 0) or right (dir > 0).
func (m *Model) Move(dir int) {
	if m.gameOver || !m.active || dir == 0 {
		return
	}
	step := 1
	if dir < 0 {
		step = -1
	}
	m.try(m.curRot, point{m.curPos.x + step, m.curPos.y})
}

// Rotate turns the falling piece clockwise if it fits.
func (m *Model) Rotate() {
	if m.gameOver || !m.active {
		return
	}
	m.try(rotateClockwise(m.curRot), m.curPos)
}

// Down soft-drops the falling piece by one row if it fits.
func (m *Model) Down() {
	if m.gameOver || !m.active {
		return
	}
	m.try(m.curRot, point{m.curPos.x, m.curPos.y + 1})
}

// try moves the piece to (s, pos) when it fits and reports whether it did.
func (m *Model) try(s shape, pos point) bool {
	if m.collides(s, pos) {
		return false
	}
	m.curRot = s
	m.curPos = pos
	return true
}

func (m *Model) collides(s shape, pos point) bool {
	for i := range 4 {
		for j := range 4 {
			if !s[i][j] {
				continue
			}
			x, y := pos.x+j, pos.y+i
			if x < 0 || x >= m.cols || y < 0 || y >= m.rows {
				return true
			}
			if m.board[y*m.cols+x] != 0 {
				return true
			}
		}
	}
	return false
}

func (m *Model) lock() {
	for i := range 4 {
		for j := range 4 {
			if !m.curRot[i][j] {
				continue
			}
			x, y := m.curPos.x+j, m.curPos.y+i
			if x >= 0 && x < m.cols && y >= 0 && y < m.rows {
				m.board[y*m.cols+x] = m.cur.color()
			}
		}
	}
	m.active = false
}

func (m *Model) clearLines() {
	cleared := 0
	for row := m.rows - 1; row >= 0; {
		if !m.rowFull(row) {
			row--
			continue
		}
		copy(m.board[m.cols:(row+1)*m.cols], m.board[:row*m.cols])
		clear(m.board[:m.cols])
		cleared++
	}
	m.lines += cleared
	m.score += cleared * pointsPerLine
}

func (m *Model) rowFull(row int) bool {
	for col := 0; col < m.cols; col++ {
		if m.board[row*m.cols+col] == 0 {
			return false
		}
	}
	return true
}

func (m *Model) spawn() {
	m.cur = m.next
	m.curRot = shapes[m.cur]
	m.curPos = point{x: m.cols/2 - 2, y: 0}
	m.next = m.draw()
	if m.collides(m.curRot, m.curPos) {
		m.active = false
		m.gameOver = true
		return
	}
	m.active = true
}

// draw takes the next piece from a shuffled bag of all seven.
func (m *Model) draw() piece {
	if len(m.bag) == 0 {
		for p := range piece(pieceCount) {
			m.bag = append(m.bag, p)
		}
		m.rng.Shuffle(len(m.bag), func(i, j int) {
			m.bag[i], m.bag[j] = m.bag[j], m.bag[i]
		})
	}
	p := m.bag[0]
	m.bag = m.bag[1:]
	return p
}
