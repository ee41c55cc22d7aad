package model

import "fmt"

// BoardSize is the edge length of the grid. The variant plays on 10x10.
const BoardSize = 10

// Square addresses a board cell. Row 0 is black's home rank, row BoardSize-1
// is white's; white pawns move toward decreasing rows.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Notation is the algebraic square name: file letter plus rank number, where
// rank counts up from white's side ("a1" is row 9, col 0).
func (s Square) Notation() string {
	return fmt.Sprintf("%s%d", s.fileNotation(), BoardSize-s.Row)
}

func (s Square) fileNotation() string {
	return string(rune('a' + s.Col))
}

// Board is the 10x10 grid. A nil cell is an empty square. It serializes as a
// nested array of null / two-character piece codes, which the browser client
// renders directly.
type Board [BoardSize][BoardSize]*Piece

// PieceAt returns the occupant of sq, or nil for an empty square. The caller
// guarantees sq is in bounds.
func (b *Board) PieceAt(sq Square) *Piece {
	return b[sq.Row][sq.Col]
}

// PathClear reports whether every square strictly between from and to is
// empty. It is only meaningful for horizontal, vertical or diagonal pairs;
// callers check the line shape first.
func (b *Board) PathClear(from, to Square) bool {
	stepRow := sign(to.Row - from.Row)
	stepCol := sign(to.Col - from.Col)
	cur := Square{Row: from.Row + stepRow, Col: from.Col + stepCol}
	for cur != to {
		if b[cur.Row][cur.Col] != nil {
			return false
		}
		cur.Row += stepRow
		cur.Col += stepCol
	}
	return true
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// backRankOrder is each side's piece row left to right.
var backRankOrder = [BoardSize]PieceType{
	Rook, Knight, Bishop, Noble, Queen, King, Noble, Bishop, Knight, Rook,
}

// NewBoard builds the starting position: black on rows 0-1, white on rows
// 8-9, full pawn ranks in front of the back ranks.
func NewBoard() *Board {
	b := &Board{}
	for col, pt := range backRankOrder {
		b[0][col] = &Piece{Color: Black, Type: pt}
		b[BoardSize-1][col] = &Piece{Color: White, Type: pt}
	}
	for col := 0; col < BoardSize; col++ {
		b[1][col] = &Piece{Color: Black, Type: Pawn}
		b[BoardSize-2][col] = &Piece{Color: White, Type: Pawn}
	}
	return b
}
