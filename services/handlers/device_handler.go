package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kurs-wjo/wjo_api/dto"
	"github.com/kurs-wjo/wjo_api/shared"
)

type DeviceHandler struct {
	deviceSvc DeviceServiceInterface
}

func NewDeviceHandler(deviceSvc DeviceServiceInterface) *DeviceHandler {
	return &DeviceHandler{
		deviceSvc: deviceSvc,
	}
}

// @Summary Register Device
// @Description Binds a device installation id to a stable anonymous user identity and returns tokens. Idempotent per device id.
// @Tags device
// @Accept  json
// @Produce json
// @Param registerDeviceRequest body dto.RegisterDeviceRequest true "Register device request"
// @Success 200 {object} shared.Response{data=dto.RegisterDeviceResponse}
// @Router /api/v1/device/register [post]
func (h *DeviceHandler) RegisterDevice(c *fiber.Ctx) error {
	var req dto.RegisterDeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	res, err := h.deviceSvc.RegisterDevice(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", res)
}

// @Summary Refresh Token
// @Description Rotates the token pair for a valid refresh token
// @Tags device
// @Accept  json
// @Produce json
// @Param refreshTokenRequest body dto.RefreshTokenRequest true "Refresh token request"
// @Success 200 {object} shared.Response{data=dto.TokenPair}
// @Router /api/v1/device/refresh [post]
func (h *DeviceHandler) RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	tokens, err := h.deviceSvc.RefreshToken(req)
	if err != nil {
		return shared.NewUnauthorizedError(err, "Invalid refresh token")
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", tokens)
}
