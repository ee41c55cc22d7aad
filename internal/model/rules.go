package model

// forwardDir is the row delta of a single pawn step for the given color.
func forwardDir(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// pawnStartRank is the row a color's pawns begin on, from which the
// double-step advance is allowed.
func pawnStartRank(c Color) int {
	if c == White {
		return BoardSize - 2
	}
	return 1
}

// promotionRank is the farthest row from a color's own side.
func promotionRank(c Color) int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// validateMove checks a candidate move against the current position and
// en-passant window. epTarget is the square a capturing pawn must enter,
// epPawn the square of the pawn that just double-stepped; both are nil when
// no window is open. The preconditions short-circuit in order, so the first
// failure determines the rejection reason.
func validateMove(b *Board, from, to Square, turn Color, epTarget, epPawn *Square) error {
	if !from.InBounds() || !to.InBounds() {
		return ErrOutOfBounds
	}
	if from == to {
		return ErrSameSquare
	}
	piece := b.PieceAt(from)
	if piece == nil {
		return ErrEmptySource
	}
	if piece.Color != turn {
		return ErrWrongTurn
	}
	if dest := b.PieceAt(to); dest != nil && dest.Color == piece.Color {
		return ErrFriendlyFire
	}

	dr := to.Row - from.Row
	dc := to.Col - from.Col

	switch piece.Type {
	case Pawn:
		if !pawnMoveLegal(b, from, to, piece.Color, epTarget, epPawn) {
			return ErrIllegalPawn
		}
	case Knight:
		if !(abs(dr) == 2 && abs(dc) == 1 || abs(dr) == 1 && abs(dc) == 2) {
			return ErrIllegalKnight
		}
	case Bishop:
		if abs(dr) != abs(dc) || !b.PathClear(from, to) {
			return ErrIllegalBishop
		}
	case Rook:
		if dr != 0 && dc != 0 || !b.PathClear(from, to) {
			return ErrIllegalRook
		}
	case Queen:
		straight := dr == 0 || dc == 0
		diagonal := abs(dr) == abs(dc)
		if !straight && !diagonal || !b.PathClear(from, to) {
			return ErrIllegalQueen
		}
	case King:
		if abs(dr) > 1 || abs(dc) > 1 {
			return ErrIllegalKing
		}
	case Noble:
		// Nobles move exactly like kings.
		if abs(dr) > 1 || abs(dc) > 1 {
			return ErrIllegalNoble
		}
	default:
		return ErrUnknownPiece
	}
	return nil
}

// pawnMoveLegal covers the four legal pawn shapes: single push, double push
// from the starting rank, diagonal capture, and en passant.
func pawnMoveLegal(b *Board, from, to Square, mover Color, epTarget, epPawn *Square) bool {
	dir := forwardDir(mover)
	dr := to.Row - from.Row
	dc := to.Col - from.Col
	dest := b.PieceAt(to)

	// Straight pushes never capture.
	if dc == 0 {
		if dest != nil {
			return false
		}
		if dr == dir {
			return true
		}
		if dr == 2*dir && from.Row == pawnStartRank(mover) {
			between := Square{Row: from.Row + dir, Col: from.Col}
			return b.PieceAt(between) == nil
		}
		return false
	}

	if abs(dc) != 1 || dr != dir {
		return false
	}
	if dest != nil {
		// Opposing occupant is already guaranteed by the friendly-fire check.
		return true
	}
	return isEnPassantCapture(b, from, to, mover, epTarget, epPawn)
}

// isEnPassantCapture reports whether a diagonal pawn move onto an empty
// square is a valid en-passant capture: the destination must be the open
// window's target, the victim must sit beside the mover on the destination
// file, and the victim must be an opposing pawn.
func isEnPassantCapture(b *Board, from, to Square, mover Color, epTarget, epPawn *Square) bool {
	if epTarget == nil || epPawn == nil {
		return false
	}
	if to != *epTarget {
		return false
	}
	if epPawn.Row != from.Row || epPawn.Col != to.Col {
		return false
	}
	victim := b.PieceAt(*epPawn)
	return victim != nil && victim.Type == Pawn && victim.Color == mover.Opposite()
}
