package server

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/veeda241/DAC-website/internal/catalog"
	"github.com/veeda241/DAC-website/internal/config"
	"github.com/veeda241/DAC-website/internal/gateway"
	"github.com/veeda241/DAC-website/internal/middleware"
	"github.com/veeda241/DAC-website/internal/notify"
	"github.com/veeda241/DAC-website/internal/reconcile"
	"github.com/veeda241/DAC-website/internal/session"
	"github.com/veeda241/DAC-website/internal/state"
	"github.com/veeda241/DAC-website/pkg/storage"

	activityHttp "github.com/veeda241/DAC-website/internal/modules/activity/delivery/http"

	authHttp "github.com/veeda241/DAC-website/internal/modules/auth/delivery/http"
	authService "github.com/veeda241/DAC-website/internal/modules/auth/service"

	eventHttp "github.com/veeda241/DAC-website/internal/modules/event/delivery/http"
	eventService "github.com/veeda241/DAC-website/internal/modules/event/service"

	memberHttp "github.com/veeda241/DAC-website/internal/modules/member/delivery/http"
	memberService "github.com/veeda241/DAC-website/internal/modules/member/service"

	notifHttp "github.com/veeda241/DAC-website/internal/modules/notification/delivery/http"

	photoHttp "github.com/veeda241/DAC-website/internal/modules/photo/delivery/http"
	photoService "github.com/veeda241/DAC-website/internal/modules/photo/service"

	reportHttp "github.com/veeda241/DAC-website/internal/modules/report/delivery/http"
	reportService "github.com/veeda241/DAC-website/internal/modules/report/service"

	searchService "github.com/veeda241/DAC-website/internal/modules/search/service"

	taskHttp "github.com/veeda241/DAC-website/internal/modules/task/delivery/http"
	taskService "github.com/veeda241/DAC-website/internal/modules/task/service"

	uploadHttp "github.com/veeda241/DAC-website/internal/modules/upload/delivery/http"
	uploadService "github.com/veeda241/DAC-website/internal/modules/upload/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	gw := gateway.New(db, cfg.GatewayTimeout)
	if err := gateway.Migrate(db); err != nil {
		log.Printf("schema migration skipped: %v", err)
	}

	club := state.New()
	loadClubState(gw, club)

	perms := session.NewPermissionChecker()
	provider := session.DemoProvider{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
	}
	notifier := notify.New(cfg.ToastTTL, redisClient)

	var meiliClient meilisearch.ServiceManager
	if cfg.MeiliSearchHost != "" {
		host := cfg.MeiliSearchHost
		if !strings.HasPrefix(host, "http") {
			host = "http://" + host + ":7700"
		}
		meiliClient = meilisearch.New(host, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	}
	indexSvc := searchService.NewIndexService(meiliClient)

	fileStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		log.Printf("cloudinary storage unavailable, uploads disabled: %v", err)
		fileStorage = nil
	}

	authSvc := authService.NewAuthService(gw, club, provider, notifier, cfg.JWTSecret, cfg.JWTTTL)
	authHandler := authHttp.NewAuthHandler(authSvc)

	eventSvc := eventService.NewEventService(gw, club, perms, notifier, indexSvc)
	eventHandler := eventHttp.NewEventHandler(eventSvc)

	taskSvc := taskService.NewTaskService(gw, club, perms, notifier)
	taskHandler := taskHttp.NewTaskHandler(taskSvc)

	reportSvc := reportService.NewReportService(gw, club, perms, notifier, indexSvc)
	reportHandler := reportHttp.NewReportHandler(reportSvc)

	photoSvc := photoService.NewPhotoService(gw, club, perms, notifier)
	photoHandler := photoHttp.NewPhotoHandler(photoSvc)

	memberSvc := memberService.NewMemberService(gw, club, perms, notifier)
	memberHandler := memberHttp.NewMemberHandler(memberSvc)

	uploadSvc := uploadService.NewUploadService(fileStorage)
	uploadHandler := uploadHttp.NewUploadHandler(uploadSvc)

	activityHandler := activityHttp.NewActivityHandler(club)
	notificationHandler := notifHttp.NewNotificationHandler(notifier, redisClient)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(club, perms, cfg.JWTSecret)

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
	}

	api.GET("/events", eventHandler.ListEvents)
	api.GET("/reports", reportHandler.ListReports)
	api.GET("/photos", photoHandler.ListPhotos)
	api.GET("/team", memberHandler.ListTeam)
	api.GET("/mentors", memberHandler.ListMentors)

	// Protected routes (apply auth middleware explicitly)
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.POST("/auth/logout", authHandler.Logout)

		protected.GET("/profile", memberHandler.GetProfile)
		protected.PUT("/profile", memberHandler.UpdateProfile)

		protected.GET("/activity", activityHandler.ListActivity)

		protected.GET("/notifications", notificationHandler.GetNotifications)
		protected.DELETE("/notifications/:id", notificationHandler.Dismiss)
		protected.GET("/notifications/ws", notificationHandler.HandleWebSocket)

		protected.GET("/tasks", taskHandler.ListTasks)
		protected.POST("/upload", uploadHandler.UploadFile)

		// Management routes (all roles except plain members)
		managed := protected.Group("")
		managed.Use(authMiddleware.RequireManager())
		{
			managed.POST("/events", eventHandler.CreateEvent)
			managed.PUT("/events/:id", eventHandler.UpdateEvent)
			managed.DELETE("/events/:id", eventHandler.DeleteEvent)

			managed.POST("/tasks", taskHandler.CreateTask)
			managed.PUT("/tasks/:id/status", taskHandler.UpdateTaskStatus)
			managed.DELETE("/tasks/:id", taskHandler.DeleteTask)

			managed.POST("/reports", reportHandler.CreateReport)
			managed.DELETE("/reports/:id", reportHandler.DeleteReport)

			managed.POST("/photos", photoHandler.CreatePhoto)
			managed.DELETE("/photos/:id", photoHandler.DeletePhoto)
		}

		// Admin routes
		adminGroup := protected.Group("/admin")
		adminGroup.Use(authMiddleware.RequireAdmin())
		{
			adminGroup.GET("/users", memberHandler.ListUsers)
			adminGroup.PUT("/users/:id", memberHandler.UpdateProfile)
			adminGroup.PUT("/users/:id/role", memberHandler.UpdateRole)
			adminGroup.DELETE("/users/:id", memberHandler.DeleteUser)
		}
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

// loadClubState merges the curated seed catalog with whatever the remote
// store returns. With the gateway offline the fetches come back empty and
// the seeds win wholesale.
func loadClubState(gw gateway.Gateway, club *state.Club) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users := reconcile.MergeUsers(catalog.Users(), gw.FetchUsers(ctx))
	events := reconcile.MergeEvents(catalog.Events(), gw.FetchEvents(ctx))
	tasks := reconcile.MergeTasks(catalog.Tasks(), gw.FetchTasks(ctx))
	reports := reconcile.MergeReports(catalog.Reports(), gw.FetchReports(ctx))
	photos := reconcile.MergePhotos(catalog.Photos(), gw.FetchPhotos(ctx))

	club.Load(users, events, tasks, reports, photos)
	log.Printf("club state loaded: %d users, %d events, %d tasks, %d reports, %d photos",
		len(users), len(events), len(tasks), len(reports), len(photos))
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
