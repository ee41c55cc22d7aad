package model

import "strings"

// enPassantSuffix marks en-passant captures in the move history.
const enPassantSuffix = " e.p."

// moveNotation renders one move as an algebraic string. Pawn moves carry no
// piece letter; pawn captures are prefixed with the origin file. Suffixes
// follow the order the effects are resolved in: promotion, game end, en
// passant.
func moveNotation(from, to Square, pt PieceType, isCapture, isPromotion, isEnPassant, isGameEnding bool) string {
	var sb strings.Builder
	if pt == Pawn {
		if isCapture {
			sb.WriteString(from.fileNotation())
			sb.WriteString("x")
		}
	} else {
		sb.WriteString(pt.notationPrefix())
		if isCapture {
			sb.WriteString("x")
		}
	}
	sb.WriteString(to.Notation())
	if isPromotion {
		sb.WriteString("=Q")
	}
	if isGameEnding {
		sb.WriteString("#")
	}
	if isEnPassant {
		sb.WriteString(enPassantSuffix)
	}
	return sb.String()
}
