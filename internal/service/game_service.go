package service

import (
	"github.com/CharlesD9/ChessX100/internal/model"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GameService owns the process's single game instance. All transport
// handlers go through it; none of them touch the model directly.
type GameService struct {
	game *model.Game
	log  *zap.Logger
}

func NewGameService(log *zap.Logger) *GameService {
	return &GameService{
		game: model.NewGame(uuid.New().String(), log),
		log:  log,
	}
}

func (gs *GameService) GetGameState() model.GameState {
	return gs.game.GetState()
}

func (gs *GameService) HandleMove(from, to model.Square) (model.GameState, error) {
	return gs.game.MakeMove(from, to)
}

func (gs *GameService) ResetGame() model.GameState {
	return gs.game.Reset()
}

func (gs *GameService) RegisterConnection(clientID string, conn *websocket.Conn) {
	gs.game.RegisterConnection(clientID, conn)
}

func (gs *GameService) UnregisterConnection(clientID string) {
	gs.game.UnregisterConnection(clientID)
}
