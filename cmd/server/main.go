package main

import (
	"log"

	"github.com/CharlesD9/ChessX100/internal/config"
	"github.com/CharlesD9/ChessX100/internal/controller"
	"github.com/CharlesD9/ChessX100/internal/middleware"
	"github.com/CharlesD9/ChessX100/internal/obslog"
	"github.com/CharlesD9/ChessX100/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

func main() {
	if err := obslog.InitFromEnv(); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer obslog.Sync()
	logger := obslog.L()

	cfg := config.Load()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Client-ID",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	app.Use(middleware.RequestLog(logger))

	// Initialize services
	gameService := service.NewGameService(logger)

	// Initialize controllers
	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService, logger)

	// Live state feed for the browser
	app.Use("/ws", middleware.EnsureClientID(), middleware.WebSocketUpgrade())
	app.Get("/ws", websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	// JSON API
	api := app.Group("/api", middleware.EnsureClientID())
	gameRoutes := api.Group("/game")
	gameRoutes.Get("/", gameController.GetGameState)
	gameRoutes.Post("/move", gameController.SubmitMove)
	gameRoutes.Post("/reset", gameController.ResetGame)

	// The browser client
	app.Static("/", cfg.StaticDir)

	logger.Info("server listening", zap.String("addr", cfg.ListenAddr))
	if err := app.Listen(cfg.ListenAddr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
