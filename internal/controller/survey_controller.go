package controller

import (
	"net/url"

	"onboarding-survey-be/internal/dto"
	"onboarding-survey-be/internal/pkg/serverutils"
	"onboarding-survey-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISurveyController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Start(ctx *fiber.Ctx) error
	ShowSection(ctx *fiber.Ctx) error
	SubmitSection(ctx *fiber.Ctx) error
}

type surveyController struct {
	surveyService service.ISurveyService
}

func NewSurveyController(surveyService service.ISurveyService) ISurveyController {
	return &surveyController{
		surveyService: surveyService,
	}
}

func (c *surveyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/survey/v1")
	h.Get("", c.List)
	h.Get(":surveyId", c.Start)
	h.Get(":surveyId/:sessionId/:sectionTitle", c.ShowSection)
	h.Post(":surveyId/:sessionId/:sectionTitle", c.SubmitSection)
}

func (c *surveyController) List(ctx *fiber.Ctx) error {
	var req dto.ListSurveysRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.surveyService.ListSurveys(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list surveys", res))
}

func (c *surveyController) Start(ctx *fiber.Ctx) error {
	surveyId, _ := uuid.Parse(ctx.Params("surveyId"))
	userId, _ := ctx.Locals("user_id").(string)

	res, err := c.surveyService.Start(ctx.Context(), surveyId, userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success start survey", res))
}

func (c *surveyController) ShowSection(ctx *fiber.Ctx) error {
	surveyId, _ := uuid.Parse(ctx.Params("surveyId"))
	sessionId := ctx.Params("sessionId")
	sectionTitle := sectionTitleParam(ctx)

	res, err := c.surveyService.ViewSection(ctx.Context(), surveyId, sessionId, sectionTitle)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show section", res))
}

func (c *surveyController) SubmitSection(ctx *fiber.Ctx) error {
	surveyId, _ := uuid.Parse(ctx.Params("surveyId"))
	sessionId := ctx.Params("sessionId")
	sectionTitle := sectionTitleParam(ctx)
	userId, _ := ctx.Locals("user_id").(string)

	var req dto.SubmitSectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.surveyService.SubmitSection(ctx.Context(), surveyId, sessionId, sectionTitle, req, userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit section", res))
}

// Section titles carry spaces, so the path segment arrives percent-encoded.
func sectionTitleParam(ctx *fiber.Ctx) string {
	raw := ctx.Params("sectionTitle")
	if title, err := url.PathUnescape(raw); err == nil {
		return title
	}
	return raw
}
