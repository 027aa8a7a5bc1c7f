package controller

import (
	"strconv"

	"studysnap-be/internal/dto"
	"studysnap-be/internal/pkg/apperrors"
	"studysnap-be/internal/pkg/serverutils"
	"studysnap-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INotesController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Rate(ctx *fiber.Ctx) error
	AverageRating(ctx *fiber.Ctx) error
}

type notesController struct {
	notesService service.INotesService
	auth         fiber.Handler
}

func NewNotesController(notesService service.INotesService, auth fiber.Handler) INotesController {
	return &notesController{
		notesService: notesService,
		auth:         auth,
	}
}

func (c *notesController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Use(c.auth)
	h.Post("search", c.Search)
	h.Post("", c.Create)
	h.Put("", c.Update)
	h.Delete("", c.Delete)
	h.Get("by-id/:id", c.Show)
	h.Put("by-id/:id/rate", c.Rate)
	h.Get("by-id/:id/rating", c.AverageRating)
}

func (c *notesController) Show(ctx *fiber.Ctx) error {
	noteId, err := parseNoteId(ctx)
	if err != nil {
		return err
	}

	note, err := c.notesService.GetNoteWithID(ctx.Context(), noteId, serverutils.UserId(ctx), nil)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.NewNoteResponse(note))
}

func (c *notesController) Search(ctx *fiber.Ctx) error {
	var req dto.SearchNotesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	notes, err := c.notesService.GetNotesUsingES(ctx.Context(), serverutils.UserId(ctx), req.QueryType, req.Query, req.ClassId)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.NewNoteResponses(notes))
}

func (c *notesController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	note, err := c.notesService.CreateNoteWithFile(ctx.Context(), &req, serverutils.UserId(ctx))
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(dto.NewNoteResponse(note))
}

func (c *notesController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	note, err := c.notesService.UpdateNoteWithID(ctx.Context(), serverutils.UserId(ctx), req.NoteId, req.Data)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.NewNoteResponse(note))
}

func (c *notesController) Delete(ctx *fiber.Ctx) error {
	var req dto.DeleteNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.notesService.DeleteNoteWithID(ctx.Context(), serverutils.UserId(ctx), req.NoteId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.StatusMessage(fiber.StatusOK, "Note deleted"))
}

func (c *notesController) Rate(ctx *fiber.Ctx) error {
	noteId, err := parseNoteId(ctx)
	if err != nil {
		return err
	}

	var req dto.RateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	note, err := c.notesService.AddOrUpdateRating(ctx.Context(), noteId, serverutils.UserId(ctx), req.Value)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.NewNoteResponse(note))
}

func (c *notesController) AverageRating(ctx *fiber.Ctx) error {
	noteId, err := parseNoteId(ctx)
	if err != nil {
		return err
	}

	value, err := c.notesService.GetAverageRating(ctx.Context(), noteId, serverutils.UserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(dto.AverageRatingResponse{Value: value})
}

func parseNoteId(ctx *fiber.Ctx) (int64, error) {
	noteId, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewBadRequest("Invalid note id")
	}
	return noteId, nil
}
