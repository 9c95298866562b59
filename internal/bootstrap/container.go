package bootstrap

import (
	"context"
	"log"

	"career-ai-be/internal/config"
	"career-ai-be/internal/controller"
	"career-ai-be/internal/pkg/logger"
	"career-ai-be/internal/pkg/mailer"
	"career-ai-be/internal/pkg/serverutils"
	"career-ai-be/internal/repository/memory"
	"career-ai-be/internal/repository/unitofwork"
	"career-ai-be/internal/service"
	"career-ai-be/pkg/authstore"
	"career-ai-be/pkg/chat"
	"career-ai-be/pkg/dashboard"
	"career-ai-be/pkg/datastore"
	"career-ai-be/pkg/events"
	"career-ai-be/pkg/modelbackend"
	pktNats "career-ai-be/pkg/nats"
	"career-ai-be/pkg/provisioning"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	UserController      controller.IUserController
	ChatController      controller.IChatController
	DashboardController controller.IDashboardController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	closers []func()
}

// NewContainer wires the application. A nil db selects the in-memory
// repositories.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	c := &Container{Logger: sysLogger}

	// 1. Persistence
	var uowFactory unitofwork.RepositoryFactory
	if db != nil {
		uowFactory = unitofwork.NewRepositoryFactory(db)
	} else {
		log.Println("[WARN] No database configured, using in-memory repositories")
		uowFactory = memory.NewRepositoryFactory(memory.NewStore())
	}

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })
	busPublisher := events.NewBusPublisher(pubSub, events.Topic)

	var forwarder events.Publisher
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			forwarder = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// 3. Auth store
	revocations := authstore.NewMemoryRevocationList()
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v. Sessions revoke in-memory only", err)
			_ = rdb.Close()
		} else {
			revocations = authstore.NewRedisRevocationList(rdb)
			c.closers = append(c.closers, func() { _ = rdb.Close() })
		}
	}

	var emailService mailer.IEmailService
	if cfg.SMTP.Host != "" {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.SenderName,
			cfg.App.ClientURL,
		)
	}

	// Every AuthStore and DataStore call below carries STORE_TIMEOUT_SECONDS.
	authStore := authstore.WithTimeout(authstore.NewLocalStore(
		uowFactory,
		authstore.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL),
		revocations,
		emailService,
		sysLogger,
	), cfg.Store.Timeout)

	// 4. Core components
	dataStore := datastore.WithTimeout(datastore.NewRepositoryStore(uowFactory, authStore), cfg.Store.Timeout)
	aggregator := dashboard.NewAggregator(dataStore, sysLogger, cfg.Store.Timeout)
	coordinator := provisioning.NewCoordinator(
		authStore,
		dataStore,
		provisioning.NewEventPublisher(busPublisher, sysLogger),
		sysLogger,
		cfg.Store.Timeout,
	)
	gateway := chat.NewGateway(modelbackend.NewHTTPClient(cfg.Ai.BackendURL, cfg.Ai.Timeout), sysLogger)
	if cfg.Ai.BackendURL == "" {
		log.Println("[WARN] AI_BACKEND_URL is not set; chat replies will report a configuration error")
	}

	// 5. Services
	authService := service.NewAuthService(authStore, coordinator)
	profileService := service.NewProfileService(dataStore, sysLogger)
	dashboardService := service.NewDashboardService(aggregator, dataStore, sysLogger, cfg.Store.Timeout)
	chatService := service.NewChatService(gateway, aggregator)

	var eventsLogger logger.ILogger = sysLogger
	if cfg.IsProduction() {
		eventsLogger = logger.NewIsolatedLogger("logs/events.log")
	}
	c.ConsumerService = service.NewConsumerService(pubSub, events.Topic, forwarder, eventsLogger)

	// 6. Controllers
	jwtMiddleware := serverutils.NewJwtMiddleware(authStore)
	c.AuthController = controller.NewAuthController(authService)
	c.UserController = controller.NewUserController(profileService, jwtMiddleware)
	c.ChatController = controller.NewChatController(chatService, jwtMiddleware)
	c.DashboardController = controller.NewDashboardController(dashboardService, jwtMiddleware)

	return c
}

// Close releases broker and cache connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
