package controller

import (
	"github.com/CharlesD9/ChessX100/internal/model"
	"github.com/CharlesD9/ChessX100/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type moveRequest struct {
	From *model.Square `json:"from"`
	To   *model.Square `json:"to"`
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	return c.JSON(gc.gameService.GetGameState())
}

// SubmitMove applies a move. Malformed requests are a transport concern and
// rejected here; rule rejections come back from the engine as reasons and are
// reported with ok=false so the client can surface them.
func (gc *GameController) SubmitMove(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":     false,
			"reason": "Invalid move request body.",
		})
	}
	if req.From == nil || req.To == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":     false,
			"reason": "Both from and to squares are required.",
		})
	}

	state, err := gc.gameService.HandleMove(*req.From, *req.To)
	if err != nil {
		return c.JSON(fiber.Map{
			"ok":     false,
			"reason": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"ok":   true,
		"game": state,
	})
}

func (gc *GameController) ResetGame(c *fiber.Ctx) error {
	return c.JSON(gc.gameService.ResetGame())
}
