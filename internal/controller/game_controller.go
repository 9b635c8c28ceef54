package controller

import (
	"time"

	"github.com/astark117/falconchess-backend/internal/model"
	"github.com/astark117/falconchess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	color, err := gc.gameService.JoinGame(gameID, playerID)
	if err != nil {
		return gameError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return gameError(c, err)
	}
	return c.JSON(gameState)
}

// MakeMove submits a move over REST. The body carries square tokens, e.g.
// {"from": "e2", "to": "e4"}.
func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	var move model.MoveRequest
	if err := c.BodyParser(&move); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed move payload",
		})
	}

	if err := gc.gameService.HandleMove(gameID, playerID, move); err != nil {
		return gameError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Move applied"})
}

// EnterFairy submits a fairy-piece entry over REST, e.g.
// {"piece": "F", "square": "a1"}.
func (gc *GameController) EnterFairy(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	var entry model.FairyRequest
	if err := c.BodyParser(&entry); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed fairy entry payload",
		})
	}

	if err := gc.gameService.HandleFairyEntry(gameID, playerID, entry); err != nil {
		return gameError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Fairy piece entered"})
}

func (gc *GameController) JoinMatchmaking(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	if err := gc.gameService.JoinMatchmaking(playerID); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "queued"})
}

// WaitForMatch long-polls until the matchmaking loop pairs the player or the
// wait times out.
func (gc *GameController) WaitForMatch(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	ch := make(chan service.MatchFoundEvent, 1)
	gc.gameService.RegisterMatchmakingChannel(playerID, ch)
	defer gc.gameService.UnregisterMatchmakingChannel(playerID)

	select {
	case event, ok := <-ch:
		if !ok {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "matchmaking subscription replaced",
			})
		}
		return c.JSON(event)
	case <-time.After(30 * time.Second):
		return c.Status(fiber.StatusRequestTimeout).JSON(fiber.Map{
			"status": "still queued",
		})
	}
}

// gameError maps the model's two error classes, plus lookup failures, onto
// HTTP statuses.
func gameError(c *fiber.Ctx, err error) error {
	status := fiber.StatusConflict // rule violation
	switch {
	case err.Error() == "game not found":
		status = fiber.StatusNotFound
	case model.IsInvalidInput(err):
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
