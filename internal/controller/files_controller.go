package controller

import (
	"studysnap-be/internal/dto"
	"studysnap-be/internal/pkg/apperrors"
	"studysnap-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFilesController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
}

type filesController struct {
	filesService service.IFilesService
	auth         fiber.Handler
}

func NewFilesController(filesService service.IFilesService, auth fiber.Handler) IFilesController {
	return &filesController{
		filesService: filesService,
		auth:         auth,
	}
}

func (c *filesController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/files")
	h.Post("", c.auth, c.Upload)
}

// Upload stores a multipart note document and hands back the generated file
// uri. The note row referencing it is created by a separate request.
func (c *filesController) Upload(ctx *fiber.Ctx) error {
	header, err := ctx.FormFile("file")
	if err != nil {
		return apperrors.NewBadRequest("No file attached")
	}

	file, err := header.Open()
	if err != nil {
		return apperrors.NewInternal("could not read uploaded file: %v", err)
	}
	defer file.Close()

	fileUri, err := c.filesService.CreateFile(ctx.Context(), service.SpaceNotes, header.Filename, file, header.Size)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(dto.FileCreateResponse{
		StatusCode: fiber.StatusCreated,
		FileUri:    fileUri,
		Message:    "File uploaded",
	})
}
