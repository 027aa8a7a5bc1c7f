package bootstrap

import (
	"log"

	"studysnap-be/internal/config"
	"studysnap-be/internal/controller"
	"studysnap-be/internal/pkg/logger"
	"studysnap-be/internal/pkg/serverutils"
	"studysnap-be/internal/repository/unitofwork"
	"studysnap-be/internal/service"
	"studysnap-be/pkg/searchindex"
	"studysnap-be/pkg/spaces"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ClassroomController controller.IClassroomController
	UserController      controller.IUserController
	NotesController     controller.INotesController
	FilesController     controller.IFilesController

	// Exposed for the pre-run checks and graceful shutdown
	Spaces      *spaces.Client
	SearchIndex *searchindex.Client
	Logger      logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Infrastructure Clients
	spacesClient, err := spaces.New(spaces.Config{
		Endpoint:  cfg.Spaces.Endpoint,
		AccessKey: cfg.Spaces.AccessKey,
		SecretKey: cfg.Spaces.SecretKey,
		UseSSL:    cfg.Spaces.UseSSL,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize object storage client: %v", err)
	}

	searchClient, err := searchindex.New(cfg.Search.Address)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize search index client: %v", err)
	}

	// 3. Services
	filesService := service.NewFilesService(spacesClient, cfg.Spaces)
	searchIndexService := service.NewSearchIndexService(searchClient, cfg.Search.NoteIndex)
	ratingsService := service.NewRatingsService(uowFactory)
	classroomService := service.NewClassroomService(uowFactory, filesService, searchIndexService, cfg.Spaces.DefaultThumbnailURI, sysLogger)
	userService := service.NewUserService(uowFactory, classroomService)
	notesService := service.NewNotesService(uowFactory, classroomService, filesService, searchIndexService, ratingsService, sysLogger)

	// 4. Controllers
	auth := serverutils.NewJwtMiddleware(cfg.Auth.JWTSecret)

	return &Container{
		ClassroomController: controller.NewClassroomController(classroomService, auth),
		UserController:      controller.NewUserController(userService, auth),
		NotesController:     controller.NewNotesController(notesService, auth),
		FilesController:     controller.NewFilesController(filesService, auth),
		Spaces:              spacesClient,
		SearchIndex:         searchClient,
		Logger:              sysLogger,
	}
}
