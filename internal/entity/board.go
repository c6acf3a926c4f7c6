package entity

import (
	"fmt"

	"github.com/rocketscienceinc/jogo-da-velha/internal/apperror"
)

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize
)

// Index is a row or column number, valid in 0..BoardSize-1.
type Index uint8

func (that Index) Valid() bool {
	return that < BoardSize
}

type Position struct {
	Row    Index `json:"row"`
	Column Index `json:"column"`
}

// NewPosition - validates raw coordinates coming from a presentation layer.
func NewPosition(row, column int) (Position, error) {
	if row < 0 || row >= BoardSize || column < 0 || column >= BoardSize {
		return Position{}, fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCoordinate, row, column)
	}

	return Position{Row: Index(row), Column: Index(column)}, nil
}

// PositionFromKey - maps a keypad number 1..9 (left to right, top to bottom) to a position.
func PositionFromKey(key int) (Position, error) {
	if key < 1 || key > CellCount {
		return Position{}, fmt.Errorf("%w: key %d", apperror.ErrInvalidCoordinate, key)
	}

	return NewPosition((key-1)/BoardSize, (key-1)%BoardSize)
}

type Cell struct {
	Owner   Marker `json:"owner,omitempty"`
	Winning bool   `json:"winning,omitempty"`
}

func (that Cell) IsEmpty() bool {
	return that.Owner == NoMarker
}

type Board [BoardSize][BoardSize]Cell

// Line is one of the eight winning lines of the board.
type Line [BoardSize]Position

// WinLines lists the winning lines in scan order: rows top to bottom,
// columns left to right, main diagonal, anti-diagonal.
var WinLines = [8]Line{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

func (that *Board) At(pos Position) Cell {
	return that[pos.Row][pos.Column]
}

func (that *Board) Mark(pos Position, owner Marker) {
	that[pos.Row][pos.Column] = Cell{Owner: owner}
}

// Highlight - flags every cell of the line as part of the winning line.
func (that *Board) Highlight(line Line) {
	for _, pos := range line {
		that[pos.Row][pos.Column].Winning = true
	}
}

// Filled - counts the non-empty cells.
func (that *Board) Filled() int {
	filled := 0
	for _, row := range that {
		for _, cell := range row {
			if !cell.IsEmpty() {
				filled++
			}
		}
	}

	return filled
}

// CompletedLine - returns the first line, in scan order, whose three cells share an owner.
func (that *Board) CompletedLine() (Line, Marker, bool) {
	for _, line := range WinLines {
		a, b, c := that.At(line[0]), that.At(line[1]), that.At(line[2])
		if !a.IsEmpty() && a.Owner == b.Owner && b.Owner == c.Owner {
			return line, a.Owner, true
		}
	}

	return Line{}, NoMarker, false
}
