package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kurs-wjo/wjo_api/dto"
	"github.com/kurs-wjo/wjo_api/shared"
)

type ProfileHandler struct {
	profileSvc ProfileServiceInterface
}

func NewProfileHandler(profileSvc ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{
		profileSvc: profileSvc,
	}
}

// @Summary Get Profile
// @Description Returns the caller's gamification profile with bonus mode flag and overall mastery
// @Tags profile
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.ProfileResponse}
// @Security BearerAuth
// @Router /api/v1/profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	res, err := h.profileSvc.GetProfile(userID(c))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", res)
}

// @Summary Set Preferred Language
// @Description Sets the question display language (pl, en, uk, ka)
// @Tags profile
// @Accept  json
// @Produce json
// @Param updateLanguageRequest body dto.UpdateLanguageRequest true "Language request"
// @Success 200 {object} shared.Response{data=model.UserProfile}
// @Security BearerAuth
// @Router /api/v1/profile/language [put]
func (h *ProfileHandler) SetLanguage(c *fiber.Ctx) error {
	var req dto.UpdateLanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	profile, err := h.profileSvc.SetLanguage(userID(c), req.Language)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", profile)
}

// @Summary Set Daily Goal
// @Description Sets how many new answers count as a completed day
// @Tags profile
// @Accept  json
// @Produce json
// @Param updateDailyGoalRequest body dto.UpdateDailyGoalRequest true "Daily goal request"
// @Success 200 {object} shared.Response{data=model.UserProfile}
// @Security BearerAuth
// @Router /api/v1/profile/daily-goal [put]
func (h *ProfileHandler) SetDailyGoal(c *fiber.Ctx) error {
	var req dto.UpdateDailyGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	profile, err := h.profileSvc.SetDailyGoal(userID(c), req.DailyGoal)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", profile)
}

// @Summary Reset Progress
// @Description Wipes all attempts and the profile; the next call mints a fresh profile
// @Tags profile
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.ResetProgressResponse}
// @Security BearerAuth
// @Router /api/v1/profile/reset [post]
func (h *ProfileHandler) ResetProgress(c *fiber.Ctx) error {
	uid := userID(c)
	if err := h.profileSvc.ResetProgress(uid); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", dto.ResetProgressResponse{
		UserID:  uid,
		Deleted: true,
	})
}
