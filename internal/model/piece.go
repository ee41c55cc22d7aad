package model

import "fmt"

// Color is the side a piece belongs to.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

func (c Color) code() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// MarshalText serializes a color as "white"/"black" for the client.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	switch string(text) {
	case "white", "w":
		*c = White
	case "black", "b":
		*c = Black
	default:
		return fmt.Errorf("invalid color %q", string(text))
	}
	return nil
}

// PieceType enumerates the seven piece kinds of the variant. Noble is the
// tenth-rank addition and moves exactly like a King.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	Noble
)

// Letter is the single-character code used on the wire and in notation.
func (p PieceType) Letter() string {
	switch p {
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Noble:
		return "A"
	default:
		return "?"
	}
}

func (p PieceType) String() string {
	switch p {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	case Noble:
		return "noble"
	default:
		return fmt.Sprintf("piece(%d)", uint8(p))
	}
}

// notationPrefix is the piece letter used in move notation; pawns have none.
func (p PieceType) notationPrefix() string {
	if p == Pawn {
		return ""
	}
	return p.Letter()
}

// Piece is an occupant of a board square.
type Piece struct {
	Color Color
	Type  PieceType
}

// Code is the two-character wire form, e.g. "wP" or "bA". The client depends
// on this exact encoding.
func (p Piece) Code() string {
	return string(p.Color.code()) + p.Type.Letter()
}

func (p Piece) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.Code() + `"`), nil
}

func (p *Piece) UnmarshalJSON(data []byte) error {
	if len(data) != 4 || data[0] != '"' || data[3] != '"' {
		return fmt.Errorf("invalid piece code %s", string(data))
	}
	parsed, err := ParsePiece(string(data[1:3]))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePiece decodes a two-character code back into a Piece.
func ParsePiece(code string) (Piece, error) {
	if len(code) != 2 {
		return Piece{}, fmt.Errorf("invalid piece code %q", code)
	}
	var p Piece
	switch code[0] {
	case 'w':
		p.Color = White
	case 'b':
		p.Color = Black
	default:
		return Piece{}, fmt.Errorf("invalid piece color in %q", code)
	}
	switch code[1] {
	case 'P':
		p.Type = Pawn
	case 'N':
		p.Type = Knight
	case 'B':
		p.Type = Bishop
	case 'R':
		p.Type = Rook
	case 'Q':
		p.Type = Queen
	case 'K':
		p.Type = King
	case 'A':
		p.Type = Noble
	default:
		return Piece{}, fmt.Errorf("invalid piece type in %q", code)
	}
	return p, nil
}
