package container

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"toolindex-backend/internal/config"
	"toolindex-backend/internal/infrastructure/cache"
	"toolindex-backend/internal/infrastructure/database"
	"toolindex-backend/internal/infrastructure/storage"
	"toolindex-backend/internal/shared/authz"
	pkgcache "toolindex-backend/pkg/cache"
	"toolindex-backend/pkg/jwt"
	"toolindex-backend/pkg/logger"

	blogHandler "toolindex-backend/internal/domains/blog/handler"
	blogRepo "toolindex-backend/internal/domains/blog/repository"
	blogService "toolindex-backend/internal/domains/blog/service"
	categoryHandler "toolindex-backend/internal/domains/category/handler"
	categoryRepo "toolindex-backend/internal/domains/category/repository"
	contactHandler "toolindex-backend/internal/domains/contact/handler"
	contactRepo "toolindex-backend/internal/domains/contact/repository"
	contactService "toolindex-backend/internal/domains/contact/service"
	notificationHandler "toolindex-backend/internal/domains/notification/handler"
	notificationRepo "toolindex-backend/internal/domains/notification/repository"
	paymentRepo "toolindex-backend/internal/domains/payment/repository"
	profileRepo "toolindex-backend/internal/domains/profile/repository"
	reviewHandler "toolindex-backend/internal/domains/review/handler"
	reviewRepo "toolindex-backend/internal/domains/review/repository"
	reviewService "toolindex-backend/internal/domains/review/service"
	seoHandler "toolindex-backend/internal/domains/seo/handler"
	seoRepo "toolindex-backend/internal/domains/seo/repository"
	seoService "toolindex-backend/internal/domains/seo/service"
	settingsHandler "toolindex-backend/internal/domains/settings/handler"
	settingsRepo "toolindex-backend/internal/domains/settings/repository"
	statsHandler "toolindex-backend/internal/domains/stats/handler"
	statsService "toolindex-backend/internal/domains/stats/service"
	toolHandler "toolindex-backend/internal/domains/tool/handler"
	toolRepo "toolindex-backend/internal/domains/tool/repository"
	toolService "toolindex-backend/internal/domains/tool/service"
	uploadHandler "toolindex-backend/internal/domains/upload/handler"
	uploadService "toolindex-backend/internal/domains/upload/service"
)

// =====================================================
// CONTAINER
// =====================================================

// Container is the root of the dependency graph. Initialization
// order: config, infrastructure, repositories, services, handlers.
type Container struct {
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       pkgcache.Cache
	JWTManager  *jwt.Manager
	Storage     *storage.MinIOStorage
	AsynqClient *asynq.Client
	Guard       *authz.Guard

	// Repositories
	ProfileRepo  profileRepo.ProfileRepository
	ToolRepo     toolRepo.ToolRepository
	ReviewRepo   reviewRepo.ReviewRepository
	CategoryRepo categoryRepo.CategoryRepository
	BlogRepo     blogRepo.BlogRepository
	ContactRepo  contactRepo.ContactRepository
	SettingsRepo settingsRepo.SettingsRepository
	PaymentRepo  paymentRepo.PaymentRepository
	PrefsRepo    notificationRepo.PreferencesRepository
	SEORepo      seoRepo.SEORepository

	// Services
	ToolService    toolService.ToolService
	ReviewService  reviewService.ReviewService
	BlogService    blogService.BlogService
	ContactService contactService.ContactService
	StatsService   statsService.StatsService
	SEOService     seoService.SEOService
	UploadService  uploadService.UploadService

	// Handlers
	ToolHandler     *toolHandler.ToolHandler
	ReviewHandler   *reviewHandler.ReviewHandler
	CategoryHandler *categoryHandler.CategoryHandler
	BlogHandler     *blogHandler.BlogHandler
	ContactHandler  *contactHandler.ContactHandler
	SettingsHandler *settingsHandler.SettingsHandler
	PrefsHandler    *notificationHandler.PreferencesHandler
	StatsHandler    *statsHandler.StatsHandler
	SEOHandler      *seoHandler.SEOHandler
	UploadHandler   *uploadHandler.UploadHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

// =====================================================
// INITIALIZATION STEPS
// =====================================================

func (c *Container) initInfrastructure() error {
	ctx := context.Background()

	db := database.NewPostgresDB(c.Config.Database)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	c.DB = db

	redisCache := cache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Cache = redisCache

	minioStorage, err := storage.NewMinIOStorage(c.Config.MinIO)
	if err != nil {
		return fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = minioStorage

	c.JWTManager = jwt.NewManager(c.Config.JWT.Secret)

	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     c.Config.Redis.Host,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})

	return nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.ProfileRepo = profileRepo.NewPostgresProfileRepository(pool)
	c.ToolRepo = toolRepo.NewPostgresToolRepository(pool)
	c.ReviewRepo = reviewRepo.NewPostgresReviewRepository(pool)
	c.CategoryRepo = categoryRepo.NewPostgresCategoryRepository(pool)
	c.BlogRepo = blogRepo.NewPostgresBlogRepository(pool)
	c.ContactRepo = contactRepo.NewPostgresContactRepository(pool)
	c.SettingsRepo = settingsRepo.NewPostgresSettingsRepository(pool)
	c.PaymentRepo = paymentRepo.NewPostgresPaymentRepository(pool)
	c.PrefsRepo = notificationRepo.NewPostgresPreferencesRepository(pool)
	c.SEORepo = seoRepo.NewPostgresSEORepository(pool)

	c.Guard = authz.NewGuard(c.ProfileRepo)
}

func (c *Container) initServices() {
	c.ToolService = toolService.NewToolService(c.ToolRepo, c.ReviewRepo)
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.ToolRepo, c.ProfileRepo, c.ToolService)
	c.BlogService = blogService.NewBlogService(c.BlogRepo, c.ProfileRepo)
	c.ContactService = contactService.NewContactService(c.ContactRepo, c.AsynqClient)
	c.StatsService = statsService.NewStatsService(c.ToolRepo, c.ReviewRepo, c.PaymentRepo)
	c.SEOService = seoService.NewSEOService(c.SEORepo, c.Cache, c.Config.Site.BaseURL)

	processor := storage.NewImageProcessor(5 << 20)
	c.UploadService = uploadService.NewUploadService(c.Storage, processor)
}

func (c *Container) initHandlers() {
	c.ToolHandler = toolHandler.NewToolHandler(c.ToolService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryRepo)
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)
	c.ContactHandler = contactHandler.NewContactHandler(c.ContactService)
	c.SettingsHandler = settingsHandler.NewSettingsHandler(c.SettingsRepo, c.Cache)
	c.PrefsHandler = notificationHandler.NewPreferencesHandler(c.PrefsRepo)
	c.StatsHandler = statsHandler.NewStatsHandler(c.StatsService)
	c.SEOHandler = seoHandler.NewSEOHandler(c.SEOService)
	c.UploadHandler = uploadHandler.NewUploadHandler(c.UploadService)
}

// =====================================================
// CLEANUP
// =====================================================

// Cleanup releases long-lived resources on shutdown, reverse of the
// initialization order.
func (c *Container) Cleanup() {
	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			logger.Error("failed to close asynq client", err)
		}
	}
	if closer, ok := c.Cache.(interface{ Close() error }); ok && closer != nil {
		if err := closer.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	logger.Info("container cleaned up", nil)
}
