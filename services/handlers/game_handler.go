package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kurs-wjo/wjo_api/dto"
	"github.com/kurs-wjo/wjo_api/shared"
)

type GameHandler struct {
	gameSvc GameServiceInterface
}

func NewGameHandler(gameSvc GameServiceInterface) *GameHandler {
	return &GameHandler{
		gameSvc: gameSvc,
	}
}

func userID(c *fiber.Ctx) string {
	id, _ := c.Locals(shared.UserID).(string)
	return id
}

// @Summary Start Session
// @Description Starts a quiz session for the named flow (daily_sprint, category_sprint, onboarding, demo)
// @Tags game
// @Accept  json
// @Produce json
// @Param startSessionRequest body dto.StartSessionRequest true "Start session request"
// @Success 200 {object} shared.Response{data=dto.SessionResponse}
// @Security BearerAuth
// @Router /api/v1/game/session [post]
func (h *GameHandler) StartSession(c *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	res, err := h.gameSvc.StartSession(userID(c), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", res)
}

// @Summary Get Session Screen
// @Description Returns the current screen of a running session
// @Tags game
// @Accept  json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} shared.Response{data=dto.SessionResponse}
// @Security BearerAuth
// @Router /api/v1/game/session/{sessionId} [get]
func (h *GameHandler) GetSession(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	res, err := h.gameSvc.GetSession(userID(c), sessionID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", res)
}

// @Summary Handle Session Action
// @Description Routes one player action (NEXT, SUBMIT_ANSWER, NEXT_QUESTION, FINISH, REVIEW_MISTAKES) into the session
// @Tags game
// @Accept  json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param actionRequest body dto.ActionRequest true "Action request"
// @Success 200 {object} shared.Response{data=dto.SessionResponse}
// @Security BearerAuth
// @Router /api/v1/game/session/{sessionId}/action [post]
func (h *GameHandler) HandleAction(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	var req dto.ActionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	res, err := h.gameSvc.HandleAction(userID(c), sessionID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", res)
}

// @Summary End Session
// @Description Ends a session, flushing any pending progress accounting
// @Tags game
// @Accept  json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200
// @Security BearerAuth
// @Router /api/v1/game/session/{sessionId} [delete]
func (h *GameHandler) EndSession(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	if err := h.gameSvc.EndSession(userID(c), sessionID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", nil)
}

// @Summary Dashboard
// @Description Returns the landing dashboard: mastery totals, streak, finish estimate and category tiles
// @Tags game
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=game.UIModel}
// @Security BearerAuth
// @Router /api/v1/game/dashboard [get]
func (h *GameHandler) Dashboard(c *fiber.Ctx) error {
	ui, err := h.gameSvc.Dashboard(userID(c))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", ui)
}
