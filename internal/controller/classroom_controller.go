package controller

import (
	"studysnap-be/internal/dto"
	"studysnap-be/internal/pkg/apperrors"
	"studysnap-be/internal/pkg/serverutils"
	"studysnap-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IClassroomController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Users(ctx *fiber.Ctx) error
	Notes(ctx *fiber.Ctx) error
	TopNotes(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type classroomController struct {
	classroomService service.IClassroomService
	auth             fiber.Handler
}

func NewClassroomController(classroomService service.IClassroomService, auth fiber.Handler) IClassroomController {
	return &classroomController{
		classroomService: classroomService,
		auth:             auth,
	}
}

func (c *classroomController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/classrooms")
	h.Get("", c.List)
	h.Get("by-uuid/:id", c.Show)
	h.Get("by-uuid/:id/users", c.auth, c.Users)
	h.Get("by-uuid/:id/notes", c.auth, c.Notes)
	h.Get("by-uuid/:id/notes/top", c.auth, c.TopNotes)
	h.Post("", c.auth, c.Create)
	h.Put("", c.auth, c.Update)
	h.Delete("", c.auth, c.Delete)
}

func (c *classroomController) List(ctx *fiber.Ctx) error {
	classrooms, err := c.classroomService.GetAvailableClassrooms(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(dto.NewClassroomResponses(classrooms))
}

func (c *classroomController) Show(ctx *fiber.Ctx) error {
	classId, err := parseClassId(ctx)
	if err != nil {
		return err
	}

	classroom, err := c.classroomService.GetClassroomWithID(ctx.Context(), classId)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.NewClassroomResponse(classroom))
}

func (c *classroomController) Users(ctx *fiber.Ctx) error {
	classId, err := parseClassId(ctx)
	if err != nil {
		return err
	}

	users, err := c.classroomService.GetClassroomUsers(ctx.Context(), classId, serverutils.UserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(dto.NewUserResponses(users))
}

func (c *classroomController) Notes(ctx *fiber.Ctx) error {
	classId, err := parseClassId(ctx)
	if err != nil {
		return err
	}

	notes, err := c.classroomService.GetClassroomNotes(ctx.Context(), classId, serverutils.UserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(dto.NewNoteResponses(notes))
}

func (c *classroomController) TopNotes(ctx *fiber.Ctx) error {
	classId, err := parseClassId(ctx)
	if err != nil {
		return err
	}

	notes, err := c.classroomService.GetTopClassroomNotesByRating(ctx.Context(), serverutils.UserId(ctx), classId)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.NewNoteResponses(notes))
}

func (c *classroomController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateClassroomRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	classroom, err := c.classroomService.CreateClassroom(ctx.Context(), req.Name, serverutils.UserId(ctx), req.ThumbnailUri)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(dto.NewClassroomResponse(classroom))
}

func (c *classroomController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateClassroomRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	classroom, err := c.classroomService.UpdateClassroom(ctx.Context(), req.ClassId, serverutils.UserId(ctx), req.Data)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.NewClassroomResponse(classroom))
}

func (c *classroomController) Delete(ctx *fiber.Ctx) error {
	var req dto.DeleteClassroomRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.classroomService.DeleteClassroom(ctx.Context(), req.ClassId, serverutils.UserId(ctx)); err != nil {
		return err
	}

	return ctx.JSON(serverutils.StatusMessage(fiber.StatusOK, "Classroom deleted"))
}

func parseClassId(ctx *fiber.Ctx) (uuid.UUID, error) {
	classId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperrors.NewBadRequest("Invalid classroom id")
	}
	return classId, nil
}
