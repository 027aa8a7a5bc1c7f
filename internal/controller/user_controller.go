package controller

import (
	"strconv"

	"studysnap-be/internal/dto"
	"studysnap-be/internal/pkg/apperrors"
	"studysnap-be/internal/pkg/serverutils"
	"studysnap-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Self(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Classrooms(ctx *fiber.Ctx) error
	Notes(ctx *fiber.Ctx) error
	JoinClassroom(ctx *fiber.Ctx) error
	LeaveClassroom(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
	auth        fiber.Handler
}

func NewUserController(userService service.IUserService, auth fiber.Handler) IUserController {
	return &userController{
		userService: userService,
		auth:        auth,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users")
	h.Get("", c.auth, c.Self)
	h.Get("by-id/:id", c.Show)
	h.Get("by-id/:id/classrooms", c.auth, c.Classrooms)
	h.Get("by-id/:id/notes", c.auth, c.Notes)
	h.Post("classroom/join/:classId", c.auth, c.JoinClassroom)
	h.Post("classroom/leave/:classId", c.auth, c.LeaveClassroom)
}

func (c *userController) Self(ctx *fiber.Ctx) error {
	user, err := c.userService.GetUserWithID(ctx.Context(), serverutils.UserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(dto.NewUserResponse(user))
}

func (c *userController) Show(ctx *fiber.Ctx) error {
	userId, err := parseUserId(ctx)
	if err != nil {
		return err
	}

	user, err := c.userService.GetUserWithID(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.NewUserResponse(user))
}

func (c *userController) Classrooms(ctx *fiber.Ctx) error {
	userId, err := parseUserId(ctx)
	if err != nil {
		return err
	}

	classrooms, err := c.userService.GetUserClassrooms(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.NewClassroomResponses(classrooms))
}

func (c *userController) Notes(ctx *fiber.Ctx) error {
	userId, err := parseUserId(ctx)
	if err != nil {
		return err
	}

	notes, err := c.userService.GetUserNotes(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.NewNoteResponses(notes))
}

func (c *userController) JoinClassroom(ctx *fiber.Ctx) error {
	classId, err := uuid.Parse(ctx.Params("classId"))
	if err != nil {
		return apperrors.NewBadRequest("Invalid classroom id")
	}

	if err := c.userService.JoinClassroom(ctx.Context(), serverutils.UserId(ctx), classId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.StatusMessage(fiber.StatusOK, "Joined classroom"))
}

func (c *userController) LeaveClassroom(ctx *fiber.Ctx) error {
	classId, err := uuid.Parse(ctx.Params("classId"))
	if err != nil {
		return apperrors.NewBadRequest("Invalid classroom id")
	}

	if err := c.userService.LeaveClassroom(ctx.Context(), serverutils.UserId(ctx), classId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.StatusMessage(fiber.StatusOK, "Left classroom"))
}

func parseUserId(ctx *fiber.Ctx) (int64, error) {
	userId, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewBadRequest("Invalid user id")
	}
	return userId, nil
}
