package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/kurs-wjo/wjo_api/dto"
	"github.com/kurs-wjo/wjo_api/shared"
)

type AdminHandler struct {
	contentSvc ContentServiceInterface
	mediaSvc   MediaServiceInterface
}

func NewAdminHandler(contentSvc ContentServiceInterface, mediaSvc MediaServiceInterface) *AdminHandler {
	return &AdminHandler{
		contentSvc: contentSvc,
		mediaSvc:   mediaSvc,
	}
}

// @Summary List Questions
// @Description Lists the question bank with pagination
// @Tags admin
// @Accept  json
// @Produce json
// @Param offset query int false "Offset"
// @Param limit query int false "Limit"
// @Success 200 {object} shared.Response{data=dto.QuestionListResponse}
// @Security AdminKey
// @Router /api/v1/admin/questions [get]
func (h *AdminHandler) ListQuestions(c *fiber.Ctx) error {
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	res, err := h.contentSvc.ListQuestions(offset, limit)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", res)
}

// @Summary Get Question
// @Description Returns one question by id
// @Tags admin
// @Accept  json
// @Produce json
// @Param questionId path string true "Question ID"
// @Success 200 {object} shared.Response{data=model.Question}
// @Security AdminKey
// @Router /api/v1/admin/questions/{questionId} [get]
func (h *AdminHandler) GetQuestion(c *fiber.Ctx) error {
	question, err := h.contentSvc.GetQuestion(c.Params("questionId"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", question)
}

// @Summary Create Question
// @Description Adds one question to the bank
// @Tags admin
// @Accept  json
// @Produce json
// @Param createQuestionRequest body dto.CreateQuestionRequest true "Create question request"
// @Success 201 {object} shared.Response{data=model.Question}
// @Security AdminKey
// @Router /api/v1/admin/questions [post]
func (h *AdminHandler) CreateQuestion(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	question, err := h.contentSvc.CreateQuestion(req)
	if err != nil {
		return err
	}

	return shared.ResponseCreated(c, question)
}

// @Summary Update Question
// @Description Updates the provided fields of a question
// @Tags admin
// @Accept  json
// @Produce json
// @Param questionId path string true "Question ID"
// @Param updateQuestionRequest body dto.UpdateQuestionRequest true "Update question request"
// @Success 200 {object} shared.Response{data=model.Question}
// @Security AdminKey
// @Router /api/v1/admin/questions/{questionId} [put]
func (h *AdminHandler) UpdateQuestion(c *fiber.Ctx) error {
	var req dto.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	question, err := h.contentSvc.UpdateQuestion(c.Params("questionId"), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", question)
}

// @Summary Delete Question
// @Description Removes one question from the bank
// @Tags admin
// @Accept  json
// @Produce json
// @Param questionId path string true "Question ID"
// @Success 200
// @Security AdminKey
// @Router /api/v1/admin/questions/{questionId} [delete]
func (h *AdminHandler) DeleteQuestion(c *fiber.Ctx) error {
	if err := h.contentSvc.DeleteQuestion(c.Params("questionId")); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", nil)
}

// @Summary Import Questions
// @Description Bulk upserts a question bank export; existing ids are overwritten
// @Tags admin
// @Accept  json
// @Produce json
// @Param importQuestionsRequest body dto.ImportQuestionsRequest true "Import request"
// @Success 200 {object} shared.Response{data=dto.ImportQuestionsResponse}
// @Security AdminKey
// @Router /api/v1/admin/questions/import [post]
func (h *AdminHandler) ImportQuestions(c *fiber.Ctx) error {
	var req dto.ImportQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	imported, err := h.contentSvc.ImportQuestions(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", dto.ImportQuestionsResponse{Imported: imported})
}

// @Summary Upload Question Image
// @Description Uploads an illustration for a question and stores its URL on the row
// @Tags admin
// @Accept  multipart/form-data
// @Produce json
// @Param questionId path string true "Question ID"
// @Param image formData file true "Image file (JPG, PNG, WEBP, max 5MB)"
// @Success 200 {object} shared.Response{data=model.Question}
// @Security AdminKey
// @Router /api/v1/admin/questions/{questionId}/image [post]
func (h *AdminHandler) UploadQuestionImage(c *fiber.Ctx) error {
	questionID := c.Params("questionId")

	file, err := c.FormFile("image")
	if err != nil {
		return shared.NewBadRequestError(err, "Image file is required")
	}

	upload, err := h.mediaSvc.UploadQuestionImage(questionID, file)
	if err != nil {
		return err
	}

	question, err := h.contentSvc.SetQuestionImage(questionID, upload.URL)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", question)
}
