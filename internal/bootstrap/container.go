package bootstrap

import (
	"notes-be/internal/config"
	"notes-be/internal/controller"
	"notes-be/internal/pkg/logger"
	"notes-be/internal/pkg/serverutils"
	"notes-be/internal/repository/memory"
	"notes-be/internal/repository/unitofwork"
	"notes-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController controller.IAuthController
	UserController controller.IUserController
	NoteController controller.INoteController

	// Auth gate shared by all protected routes
	JwtMiddleware fiber.Handler

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	publisherService := service.NewPublisherService(cfg.Events.NoteActivityTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Events.NoteActivityTopic, sysLogger)

	// 3. Services
	profileCache := memory.NewProfileCache()

	authService := service.NewAuthService(uowFactory, cfg.Auth)
	userService := service.NewUserService(uowFactory, profileCache)
	noteService := service.NewNoteService(uowFactory, publisherService, sysLogger)

	// 4. Controllers
	return &Container{
		AuthController: controller.NewAuthController(authService),
		UserController: controller.NewUserController(userService),
		NoteController: controller.NewNoteController(noteService),

		JwtMiddleware: serverutils.NewJwtMiddleware(cfg.Auth.JWTSecret),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
