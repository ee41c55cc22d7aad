package model

import (
	"encoding/json"
	"sync"

	"github.com/CharlesD9/ChessX100/internal/ws"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

// GameConnections holds the websocket subscribers for a game, keyed by
// client ID.
type GameConnections struct {
	connections map[string]*websocket.Conn
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// Game owns the single mutable game state. Every move and reset runs to
// completion under the mutex, so two in-flight applications can never
// interleave against the same state.
type Game struct {
	ID          string
	mu          sync.Mutex
	state       GameState
	connections *GameConnections
	log         *zap.Logger
}

// GameState is the full serializable state returned to callers after every
// operation. EnPassantTarget is the square a capturing pawn must enter and
// EnPassantPawn the square of the pawn it would remove; both are nil except
// for the single move following a double-step advance.
type GameState struct {
	Board           *Board   `json:"board"`
	ToMove          Color    `json:"toMove"`
	MoveNumber      int      `json:"moveNumber"`
	IsOver          bool     `json:"isOver"`
	EnPassantTarget *Square  `json:"enPassantTarget"`
	EnPassantPawn   *Square  `json:"enPassantPawn"`
	Moves           []string `json:"moves"`
}

func NewGame(id string, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{
		ID:          id,
		state:       newGameState(),
		connections: NewGameConnections(),
		log:         log,
	}
}

func newGameState() GameState {
	return GameState{
		Board:      NewBoard(),
		ToMove:     White,
		MoveNumber: 1,
		IsOver:     false,
		Moves:      make([]string, 0),
	}
}

// clone copies the state deeply enough that the caller can hold it while the
// game keeps mutating: the board array is copied by value and the optional
// squares and history get fresh backing.
func (gs GameState) clone() GameState {
	out := gs
	if gs.Board != nil {
		board := *gs.Board
		out.Board = &board
	}
	if gs.EnPassantTarget != nil {
		target := *gs.EnPassantTarget
		out.EnPassantTarget = &target
	}
	if gs.EnPassantPawn != nil {
		pawn := *gs.EnPassantPawn
		out.EnPassantPawn = &pawn
	}
	out.Moves = append(make([]string, 0, len(gs.Moves)), gs.Moves...)
	return out
}

// GetState returns a snapshot of the current state.
func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state.clone()
}

// MakeMove validates and applies one move as a single atomic unit. On
// rejection the state is untouched and the reason is returned; on success the
// updated snapshot is returned and broadcast to subscribers.
func (g *Game) MakeMove(from, to Square) (GameState, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.IsOver {
		return GameState{}, ErrGameOver
	}
	if err := validateMove(g.state.Board, from, to, g.state.ToMove,
		g.state.EnPassantTarget, g.state.EnPassantPawn); err != nil {
		g.log.Debug("move rejected",
			zap.String("game", g.ID),
			zap.Stringer("turn", g.state.ToMove),
			zap.String("from", from.Notation()),
			zap.String("to", to.Notation()),
			zap.Error(err))
		return GameState{}, err
	}

	notation := g.applyMove(from, to)
	g.log.Info("move applied",
		zap.String("game", g.ID),
		zap.String("notation", notation),
		zap.Int("moveNumber", g.state.MoveNumber),
		zap.Bool("isOver", g.state.IsOver))

	snapshot := g.state.clone()
	go g.broadcastState(snapshot)
	return snapshot, nil
}

// applyMove mutates the state for an already-validated move and returns the
// move's notation. Classification happens before any mutation so capture and
// en-passant flags reflect the position the move was played in.
func (g *Game) applyMove(from, to Square) string {
	board := g.state.Board
	piece := board.PieceAt(from)
	mover := piece.Color

	captured := board.PieceAt(to)
	epCapture := piece.Type == Pawn && captured == nil &&
		isEnPassantCapture(board, from, to, mover, g.state.EnPassantTarget, g.state.EnPassantPawn)

	// Relocate the piece, removing the en-passant victim if needed.
	board[to.Row][to.Col] = piece
	board[from.Row][from.Col] = nil
	if epCapture {
		victim := *g.state.EnPassantPawn
		captured = board.PieceAt(victim)
		board[victim.Row][victim.Col] = nil
	}

	// The window never survives past the move that follows it. A fresh one
	// opens only on a double-step advance.
	g.state.EnPassantTarget = nil
	g.state.EnPassantPawn = nil
	if piece.Type == Pawn && abs(to.Row-from.Row) == 2 && to.Col == from.Col {
		g.state.EnPassantTarget = &Square{Row: from.Row + forwardDir(mover), Col: from.Col}
		g.state.EnPassantPawn = &Square{Row: to.Row, Col: to.Col}
	}

	promoted := piece.Type == Pawn && to.Row == promotionRank(mover)
	if promoted {
		board[to.Row][to.Col] = &Piece{Color: mover, Type: Queen}
	}

	if captured != nil && captured.Type == King {
		g.state.IsOver = true
	}

	g.state.ToMove = mover.Opposite()
	if mover == Black {
		g.state.MoveNumber++
	}

	notation := moveNotation(from, to, piece.Type,
		captured != nil, promoted, epCapture, g.state.IsOver)
	g.state.Moves = append(g.state.Moves, notation)
	return notation
}

// Reset discards the current state and reinitializes the starting position.
func (g *Game) Reset() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.state = newGameState()
	g.log.Info("game reset", zap.String("game", g.ID))

	snapshot := g.state.clone()
	go g.broadcastState(snapshot)
	return snapshot
}

// RegisterConnection subscribes a websocket connection to state broadcasts.
// A second connection under the same client ID replaces the first.
func (g *Game) RegisterConnection(clientID string, conn *websocket.Conn) {
	g.connections.mu.Lock()
	if old, exists := g.connections.connections[clientID]; exists {
		old.Close()
	}
	g.connections.connections[clientID] = conn
	g.connections.mu.Unlock()

	g.log.Info("connection registered",
		zap.String("game", g.ID), zap.String("client", clientID))

	go g.broadcastState(g.GetState())
}

func (g *Game) UnregisterConnection(clientID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if _, exists := g.connections.connections[clientID]; exists {
		delete(g.connections.connections, clientID)
		g.log.Info("connection unregistered",
			zap.String("game", g.ID), zap.String("client", clientID))
	}
}

// broadcastState pushes a state snapshot to every subscriber, dropping
// connections that fail to write.
func (g *Game) broadcastState(state GameState) {
	payload, err := json.Marshal(state)
	if err != nil {
		g.log.Error("marshal state", zap.Error(err))
		return
	}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	for clientID, conn := range g.connections.connections {
		msg := ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		}
		if err := conn.WriteJSON(msg); err != nil {
			g.log.Warn("broadcast failed, dropping connection",
				zap.String("client", clientID), zap.Error(err))
			conn.Close()
			delete(g.connections.connections, clientID)
		}
	}
}
