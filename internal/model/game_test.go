package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return NewGame("test", zap.NewNop())
}

func mustMove(t *testing.T, g *Game, from, to Square) GameState {
	t.Helper()
	state, err := g.MakeMove(from, to)
	if err != nil {
		t.Fatalf("MakeMove(%v, %v): %v", from, to, err)
	}
	return state
}

func TestInitialState(t *testing.T) {
	g := newTestGame(t)
	state := g.GetState()

	if state.ToMove != White {
		t.Errorf("ToMove = %v, want white", state.ToMove)
	}
	if state.MoveNumber != 1 {
		t.Errorf("MoveNumber = %d, want 1", state.MoveNumber)
	}
	if state.IsOver {
		t.Error("IsOver = true, want false")
	}
	if state.EnPassantTarget != nil || state.EnPassantPawn != nil {
		t.Error("en-passant window open in initial state")
	}
	if len(state.Moves) != 0 {
		t.Errorf("Moves = %v, want empty", state.Moves)
	}
}

func TestDoubleStepOpensWindow(t *testing.T) {
	g := newTestGame(t)
	state := mustMove(t, g, Square{Row: 8, Col: 4}, Square{Row: 6, Col: 4})

	wantTarget := Square{Row: 7, Col: 4}
	wantPawn := Square{Row: 6, Col: 4}
	if state.EnPassantTarget == nil || *state.EnPassantTarget != wantTarget {
		t.Errorf("EnPassantTarget = %v, want %v", state.EnPassantTarget, wantTarget)
	}
	if state.EnPassantPawn == nil || *state.EnPassantPawn != wantPawn {
		t.Errorf("EnPassantPawn = %v, want %v", state.EnPassantPawn, wantPawn)
	}
	if state.ToMove != Black {
		t.Errorf("ToMove = %v, want black", state.ToMove)
	}
	if state.MoveNumber != 1 {
		t.Errorf("MoveNumber = %d, want 1", state.MoveNumber)
	}
	if got := state.Moves[len(state.Moves)-1]; got != "e4" {
		t.Errorf("notation = %q, want %q", got, "e4")
	}
}

func TestSingleStepClosesWindow(t *testing.T) {
	g := newTestGame(t)
	mustMove(t, g, Square{Row: 8, Col: 4}, Square{Row: 6, Col: 4})
	state := mustMove(t, g, Square{Row: 1, Col: 0}, Square{Row: 2, Col: 0})

	// Black replied with a single step, so a fresh window must not open and
	// white's expired one must be gone.
	if state.EnPassantTarget != nil || state.EnPassantPawn != nil {
		t.Errorf("window = %v/%v, want closed", state.EnPassantTarget, state.EnPassantPawn)
	}
}

// marchToEnPassant plays white's e-pawn up the board and opens black's
// d-pawn double-step window: white pawn ends on (3,4), black pawn on (3,3),
// target (2,3).
func marchToEnPassant(t *testing.T, g *Game) {
	t.Helper()
	moves := []struct{ from, to Square }{
		{Square{8, 4}, Square{6, 4}}, // white double step
		{Square{1, 0}, Square{3, 0}}, // black filler
		{Square{6, 4}, Square{5, 4}},
		{Square{3, 0}, Square{4, 0}},
		{Square{5, 4}, Square{4, 4}},
		{Square{4, 0}, Square{5, 0}},
		{Square{4, 4}, Square{3, 4}},
		{Square{1, 3}, Square{3, 3}}, // black double step opens the window
	}
	for _, m := range moves {
		mustMove(t, g, m.from, m.to)
	}
}

func TestEnPassantCapture(t *testing.T) {
	g := newTestGame(t)
	marchToEnPassant(t, g)

	state := mustMove(t, g, Square{Row: 3, Col: 4}, Square{Row: 2, Col: 3})

	if p := state.Board.PieceAt(Square{Row: 2, Col: 3}); p == nil || p.Color != White || p.Type != Pawn {
		t.Errorf("destination square: want white pawn, got %v", p)
	}
	if p := state.Board.PieceAt(Square{Row: 3, Col: 4}); p != nil {
		t.Errorf("source square: want empty, got %v", p)
	}
	if p := state.Board.PieceAt(Square{Row: 3, Col: 3}); p != nil {
		t.Errorf("victim square: want empty, got %v", p)
	}
	if got := state.Moves[len(state.Moves)-1]; got != "exd8 e.p." {
		t.Errorf("notation = %q, want %q", got, "exd8 e.p.")
	}
}

func TestEnPassantWindowExpires(t *testing.T) {
	g := newTestGame(t)
	marchToEnPassant(t, g)

	// White declines the capture; the window closes and a later attempt at
	// the same target must be rejected as an ordinary illegal pawn move.
	mustMove(t, g, Square{Row: 8, Col: 0}, Square{Row: 7, Col: 0})
	mustMove(t, g, Square{Row: 1, Col: 9}, Square{Row: 2, Col: 9})

	_, err := g.MakeMove(Square{Row: 3, Col: 4}, Square{Row: 2, Col: 3})
	if !errors.Is(err, ErrIllegalPawn) {
		t.Errorf("MakeMove = %v, want %v", err, ErrIllegalPawn)
	}
}

func TestRejectedMoveLeavesStateUnchanged(t *testing.T) {
	g := newTestGame(t)
	before := g.GetState()

	_, err := g.MakeMove(Square{Row: 9, Col: 2}, Square{Row: 6, Col: 5})
	if !errors.Is(err, ErrIllegalBishop) {
		t.Fatalf("MakeMove = %v, want %v", err, ErrIllegalBishop)
	}
	if err.Error() != "Illegal bishop move." {
		t.Errorf("reason = %q, want %q", err.Error(), "Illegal bishop move.")
	}

	after := g.GetState()
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("state changed by rejected move (-before +after):\n%s", diff)
	}
}

func TestPromotionAlwaysQueen(t *testing.T) {
	t.Run("by push", func(t *testing.T) {
		g := newTestGame(t)
		b := &Board{}
		place(b, 1, 2, White, Pawn)
		place(b, 9, 5, White, King)
		place(b, 0, 9, Black, King)
		g.state.Board = b

		state := mustMove(t, g, Square{Row: 1, Col: 2}, Square{Row: 0, Col: 2})
		if p := state.Board.PieceAt(Square{Row: 0, Col: 2}); p == nil || p.Color != White || p.Type != Queen {
			t.Errorf("promoted piece = %v, want white queen", p)
		}
		if got := state.Moves[len(state.Moves)-1]; got != "c10=Q" {
			t.Errorf("notation = %q, want %q", got, "c10=Q")
		}
	})

	t.Run("by capture", func(t *testing.T) {
		g := newTestGame(t)
		b := &Board{}
		place(b, 1, 2, White, Pawn)
		place(b, 0, 3, Black, Rook)
		place(b, 9, 5, White, King)
		place(b, 0, 9, Black, King)
		g.state.Board = b

		state := mustMove(t, g, Square{Row: 1, Col: 2}, Square{Row: 0, Col: 3})
		if p := state.Board.PieceAt(Square{Row: 0, Col: 3}); p == nil || p.Color != White || p.Type != Queen {
			t.Errorf("promoted piece = %v, want white queen", p)
		}
		if got := state.Moves[len(state.Moves)-1]; got != "cxd10=Q" {
			t.Errorf("notation = %q, want %q", got, "cxd10=Q")
		}
	})

	t.Run("black pawn on far rank", func(t *testing.T) {
		g := newTestGame(t)
		b := &Board{}
		place(b, 8, 6, Black, Pawn)
		place(b, 9, 0, White, King)
		place(b, 0, 9, Black, King)
		g.state.Board = b
		g.state.ToMove = Black

		state := mustMove(t, g, Square{Row: 8, Col: 6}, Square{Row: 9, Col: 6})
		if p := state.Board.PieceAt(Square{Row: 9, Col: 6}); p == nil || p.Color != Black || p.Type != Queen {
			t.Errorf("promoted piece = %v, want black queen", p)
		}
	})
}

func TestKingCaptureEndsGame(t *testing.T) {
	g := newTestGame(t)
	b := &Board{}
	place(b, 5, 5, White, Rook)
	place(b, 9, 0, White, King)
	place(b, 0, 5, Black, King)
	g.state.Board = b

	state := mustMove(t, g, Square{Row: 5, Col: 5}, Square{Row: 0, Col: 5})
	if !state.IsOver {
		t.Fatal("IsOver = false after king capture")
	}
	if got := state.Moves[len(state.Moves)-1]; got != "Rxf10#" {
		t.Errorf("notation = %q, want %q", got, "Rxf10#")
	}

	frozen := g.GetState()
	_, err := g.MakeMove(Square{Row: 9, Col: 0}, Square{Row: 8, Col: 0})
	if !errors.Is(err, ErrGameOver) {
		t.Fatalf("MakeMove after game over = %v, want %v", err, ErrGameOver)
	}
	if diff := cmp.Diff(frozen, g.GetState()); diff != "" {
		t.Errorf("state changed after game over (-before +after):\n%s", diff)
	}
}

func TestMoveNumberPacing(t *testing.T) {
	g := newTestGame(t)

	state := mustMove(t, g, Square{Row: 8, Col: 0}, Square{Row: 7, Col: 0})
	if state.MoveNumber != 1 {
		t.Errorf("after white's move: MoveNumber = %d, want 1", state.MoveNumber)
	}
	state = mustMove(t, g, Square{Row: 1, Col: 0}, Square{Row: 2, Col: 0})
	if state.MoveNumber != 2 {
		t.Errorf("after black's reply: MoveNumber = %d, want 2", state.MoveNumber)
	}
	state = mustMove(t, g, Square{Row: 7, Col: 0}, Square{Row: 6, Col: 0})
	if state.MoveNumber != 2 {
		t.Errorf("after white's second move: MoveNumber = %d, want 2", state.MoveNumber)
	}
}

func TestMoveRelocatesExactlyOnePiece(t *testing.T) {
	g := newTestGame(t)
	state := mustMove(t, g, Square{Row: 9, Col: 1}, Square{Row: 7, Col: 2})

	if p := state.Board.PieceAt(Square{Row: 7, Col: 2}); p == nil || p.Type != Knight {
		t.Errorf("destination: want knight, got %v", p)
	}
	if p := state.Board.PieceAt(Square{Row: 9, Col: 1}); p != nil {
		t.Errorf("source: want empty, got %v", p)
	}
}

func TestReset(t *testing.T) {
	g := newTestGame(t)
	mustMove(t, g, Square{Row: 8, Col: 4}, Square{Row: 6, Col: 4})
	mustMove(t, g, Square{Row: 1, Col: 4}, Square{Row: 3, Col: 4})

	state := g.Reset()
	fresh := NewGame("fresh", zap.NewNop()).GetState()
	if diff := cmp.Diff(fresh, state); diff != "" {
		t.Errorf("reset state differs from a fresh game (-fresh +reset):\n%s", diff)
	}
}

func TestGetStateReturnsSnapshot(t *testing.T) {
	g := newTestGame(t)
	snapshot := g.GetState()

	// Mutating the snapshot must not leak into the live game.
	snapshot.Board[8][4] = nil
	snapshot.Moves = append(snapshot.Moves, "bogus")

	live := g.GetState()
	if live.Board.PieceAt(Square{Row: 8, Col: 4}) == nil {
		t.Error("mutating a snapshot board changed the live game")
	}
	if len(live.Moves) != 0 {
		t.Errorf("live Moves = %v, want empty", live.Moves)
	}
}
