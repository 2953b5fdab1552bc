package bootstrap

import (
	"context"
	"log"

	"charterflow-be/internal/config"
	"charterflow-be/internal/controller"
	"charterflow-be/internal/pkg/logger"
	"charterflow-be/internal/pkg/mailer"
	"charterflow-be/internal/pkg/sessions"
	"charterflow-be/internal/pkg/storage"
	"charterflow-be/internal/repository/memory"
	"charterflow-be/internal/repository/unitofwork"
	"charterflow-be/internal/service"
	pkgNats "charterflow-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	UserController      controller.IUserController
	WorkspaceController controller.IWorkspaceController
	NotebookController  controller.INotebookController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	TokenBlacklist *sessions.TokenBlacklist
	Logger         logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	fileStorage, err := storage.New(storage.Config{
		Type:      storage.Type(cfg.Upload.Backend),
		LocalDir:  cfg.Upload.Dir,
		S3Bucket:  cfg.Upload.S3Bucket,
		S3Region:  cfg.Upload.S3Region,
		AccessKey: cfg.Upload.AccessKey,
		SecretKey: cfg.Upload.SecretKey,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize storage backend: %v", err)
	}

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	blacklist := sessions.NewTokenBlacklist(rdb)

	verificationStore := memory.NewVerificationStore()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Events.ActivityTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Events.ActivityTopic, sysLogger)

	authService := service.NewAuthService(uowFactory, verificationStore, blacklist, emailService, natsPub, sysLogger)
	userService := service.NewUserService(uowFactory, fileStorage, cfg.App.BaseURL)
	workspaceService := service.NewWorkspaceService(uowFactory)
	notebookService := service.NewNotebookService(uowFactory, publisherService)

	// 4. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		UserController:      controller.NewUserController(userService),
		WorkspaceController: controller.NewWorkspaceController(workspaceService),
		NotebookController:  controller.NewNotebookController(notebookService, fileStorage, sysLogger),

		ConsumerService: consumerService,

		TokenBlacklist: blacklist,
		Logger:         sysLogger,
	}
}
