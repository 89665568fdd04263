package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"abq-api/pkg/cache"
	"abq-api/pkg/config"
	"abq-api/pkg/database"
	"abq-api/pkg/jwt"
	"abq-api/pkg/logger"
	"abq-api/pkg/mailer"
	"abq-api/pkg/metrics"
	"abq-api/pkg/middleware"
	"abq-api/pkg/s3"
	landingHTTP "abq-api/services/landing/internal/controller/http"
	"abq-api/services/landing/internal/repo/persistent"
	"abq-api/services/landing/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "abq-api/services/landing/docs" // Swagger docs
)

const (
	metricsNamespace = "abq_landing"
	cachePrefix      = "landing"
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	sender      mailer.Sender
	jwtService  *jwt.Service
	metrics     *metrics.Manager
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.NewWithOptions(cfg.LogLevel, cfg.LogFormat)

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		// Views are served uncached and /contact is not rate limited.
		log.Error("Failed to connect to redis: %v (continuing without cache)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	sender, err := mailer.NewSMTPSender(cfg, log)
	if err != nil {
		log.Error("Failed to configure mailer: %v", err)
		return nil, err
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		sender:      sender,
		jwtService:  jwt.NewService(cfg.JWTSecret),
		metrics:     metrics.NewManager(metricsNamespace),
	}, nil
}

// handlers groups every HTTP handler the router mounts.
type handlers struct {
	venture *landingHTTP.VentureHandler
	blog    *landingHTTP.BlogHandler
	contact *landingHTTP.ContactHandler
	auth    *landingHTTP.AuthHandler
	catalog *landingHTTP.CatalogHandler
	image   *landingHTTP.ImageHandler
	article *landingHTTP.ArticleHandler
}

func (a *App) Run() error {
	// Initialize repositories
	ventureRepo := persistent.NewVentureRepository(a.db)
	imageRepo := persistent.NewImageRepository(a.db)
	blogRepo := persistent.NewBlogRepository(a.db)
	taxonomyRepo := persistent.NewTaxonomyRepository(a.db)
	adminRepo := persistent.NewAdminRepository(a.db)

	viewCache := cache.NewJSONCache(a.redisClient, cachePrefix, a.cfg.CacheTTL)

	// Initialize use cases
	ventureUseCase := usecase.NewVentureUseCase(ventureRepo, a.s3Client, viewCache, a.metrics, a.log)
	blogUseCase := usecase.NewBlogUseCase(blogRepo, a.s3Client, viewCache, nil, a.metrics, a.log)
	contactUseCase := usecase.NewContactUseCase(a.sender, a.cfg.ContactRecipient, a.metrics, a.log)
	authUseCase := usecase.NewAuthUseCase(adminRepo, a.jwtService, a.log)
	catalogUseCase := usecase.NewCatalogUseCase(ventureRepo, taxonomyRepo, viewCache, a.log)
	imageUseCase := usecase.NewImageUseCase(imageRepo, ventureRepo, a.s3Client, viewCache, a.metrics, a.log)
	articleUseCase := usecase.NewArticleUseCase(blogRepo, taxonomyRepo, a.s3Client, viewCache, a.log)

	// Initialize HTTP handlers
	h := handlers{
		venture: landingHTTP.NewVentureHandler(ventureUseCase, a.log),
		blog:    landingHTTP.NewBlogHandler(blogUseCase, a.log),
		contact: landingHTTP.NewContactHandler(contactUseCase, a.log),
		auth:    landingHTTP.NewAuthHandler(authUseCase, a.log),
		catalog: landingHTTP.NewCatalogHandler(catalogUseCase, a.s3Client, a.log),
		image:   landingHTTP.NewImageHandler(imageUseCase, a.s3Client, a.log),
		article: landingHTTP.NewArticleHandler(articleUseCase, a.s3Client, a.log),
	}

	a.httpServer = &http.Server{
		Addr:              ":" + a.cfg.ServerPort,
		Handler:           newRouter(a.cfg, a.log, a.metrics, a.jwtService, a.redisClient, h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Landing service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func newRouter(
	cfg *config.Config,
	log *logger.Logger,
	m *metrics.Manager,
	jwtService *jwt.Service,
	redisClient *redis.Client,
	h handlers,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	// Both /venture and /venture/ are served; no 301 between them.
	r.RedirectTrailingSlash = false

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(m.GinMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	for _, prefix := range []string{"/venture", "/venture/"} {
		r.GET(prefix, h.venture.Collection)
	}
	for _, path := range []string{"/venture/:slug", "/venture/:slug/"} {
		r.GET(path, h.venture.Detail)
	}
	for _, prefix := range []string{"/blog", "/blog/"} {
		r.GET(prefix, h.blog.List)
	}
	for _, path := range []string{"/blog/:slug", "/blog/:slug/"} {
		r.GET(path, h.blog.Detail)
	}

	contactLimit := middleware.RateLimitMiddleware(redisClient, cfg.ContactRateLimit, cfg.ContactRateWindow, log)
	r.Any("/contact", contactLimit, h.contact.Send)
	r.Any("/contact/", contactLimit, h.contact.Send)

	admin := r.Group("/admin")
	admin.POST("/login", h.auth.Login)

	protected := admin.Group("")
	protected.Use(middleware.AuthMiddleware(jwtService))
	protected.Use(middleware.RequireRole("admin", "editor"))
	adminOnly := middleware.RequireRole("admin")
	{
		protected.GET("/statuses", h.catalog.ListStatuses)
		protected.POST("/statuses", adminOnly, h.catalog.SaveStatus)
		protected.PUT("/statuses/:id", adminOnly, h.catalog.SaveStatus)
		protected.DELETE("/statuses/:id", adminOnly, h.catalog.DeleteStatus)

		protected.GET("/categories", h.catalog.ListCategories)
		protected.POST("/categories", adminOnly, h.catalog.SaveCategory)
		protected.PUT("/categories/:id", adminOnly, h.catalog.SaveCategory)
		protected.DELETE("/categories/:id", adminOnly, h.catalog.DeleteCategory)

		protected.GET("/tags", h.article.ListTags)
		protected.POST("/tags", adminOnly, h.article.SaveTag)
		protected.PUT("/tags/:id", adminOnly, h.article.SaveTag)
		protected.DELETE("/tags/:id", adminOnly, h.article.DeleteTag)

		protected.GET("/ventures", h.catalog.ListVentures)
		protected.POST("/ventures", h.catalog.CreateVenture)
		protected.GET("/ventures/:id", h.catalog.GetVenture)
		protected.PUT("/ventures/:id", h.catalog.UpdateVenture)
		protected.PUT("/ventures/:id/active", adminOnly, h.catalog.SetVentureActive)
		protected.DELETE("/ventures/:id", adminOnly, h.catalog.DeactivateVenture)

		protected.POST("/ventures/:id/highlights", h.catalog.SaveHighlight)
		protected.PUT("/ventures/:id/highlights/:childId", h.catalog.SaveHighlight)
		protected.DELETE("/ventures/:id/highlights/:childId", adminOnly, h.catalog.DeleteHighlight)
		protected.POST("/ventures/:id/amenities", h.catalog.SaveAmenity)
		protected.PUT("/ventures/:id/amenities/:childId", h.catalog.SaveAmenity)
		protected.DELETE("/ventures/:id/amenities/:childId", adminOnly, h.catalog.DeleteAmenity)
		protected.POST("/ventures/:id/floor-plans", h.catalog.SaveFloorPlan)
		protected.PUT("/ventures/:id/floor-plans/:childId", h.catalog.SaveFloorPlan)
		protected.DELETE("/ventures/:id/floor-plans/:childId", adminOnly, h.catalog.DeleteFloorPlan)
		protected.POST("/ventures/:id/areas", h.catalog.SaveArea)
		protected.PUT("/ventures/:id/areas/:childId", h.catalog.SaveArea)
		protected.DELETE("/ventures/:id/areas/:childId", adminOnly, h.catalog.DeleteArea)

		protected.POST("/ventures/:id/images", h.image.Upload)
		protected.PATCH("/ventures/:id/images/:imageId", h.image.Update)
		protected.PUT("/ventures/:id/images/:imageId/order", h.image.Move)
		protected.POST("/ventures/:id/images/:imageId/cover", h.image.SetCover)
		protected.DELETE("/ventures/:id/images/:imageId", adminOnly, h.image.Deactivate)

		protected.GET("/articles", h.article.ListArticles)
		protected.POST("/articles", h.article.CreateArticle)
		protected.GET("/articles/:id", h.article.GetArticle)
		protected.PUT("/articles/:id", h.article.UpdateArticle)
		protected.DELETE("/articles/:id", adminOnly, h.article.DeactivateArticle)
		protected.POST("/articles/:id/cover", h.article.UploadCover)
	}

	return r
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down landing service...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown server first so in-flight requests can still use the pools
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	// Close database connection
	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	a.log.Info("Landing service exited")
	_ = a.log.Sync()
	return nil
}
