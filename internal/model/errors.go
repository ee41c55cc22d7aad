package model

import "errors"

// The closed set of rejection reasons. Reason text is shown verbatim to the
// player, so these read as messages rather than lowercase error strings.
var (
	ErrGameOver      = errors.New("Game is already over.")
	ErrOutOfBounds   = errors.New("Move is out of bounds.")
	ErrSameSquare    = errors.New("Source and destination are the same square.")
	ErrEmptySource   = errors.New("No piece on the source square.")
	ErrWrongTurn     = errors.New("It is not that color's turn.")
	ErrFriendlyFire  = errors.New("Cannot capture your own piece.")
	ErrIllegalPawn   = errors.New("Illegal pawn move.")
	ErrIllegalKnight = errors.New("Illegal knight move.")
	ErrIllegalBishop = errors.New("Illegal bishop move.")
	ErrIllegalRook   = errors.New("Illegal rook move.")
	ErrIllegalQueen  = errors.New("Illegal queen move.")
	ErrIllegalKing   = errors.New("Illegal king move.")
	ErrIllegalNoble  = errors.New("Illegal noble move.")
	ErrUnknownPiece  = errors.New("Unknown piece type.")
)

// illegalMoveError maps a piece type to its shape/path rejection reason.
func illegalMoveError(pt PieceType) error {
	switch pt {
	case Pawn:
		return ErrIllegalPawn
	case Knight:
		return ErrIllegalKnight
	case Bishop:
		return ErrIllegalBishop
	case Rook:
		return ErrIllegalRook
	case Queen:
		return ErrIllegalQueen
	case King:
		return ErrIllegalKing
	case Noble:
		return ErrIllegalNoble
	default:
		return ErrUnknownPiece
	}
}
