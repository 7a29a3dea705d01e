package bootstrap

import (
	"BalaghAPI/ent"
	"BalaghAPI/internal/adapter"
	"BalaghAPI/internal/config"
	"BalaghAPI/internal/controller"
	"BalaghAPI/internal/middleware"
	"BalaghAPI/internal/repository"
	"BalaghAPI/internal/service"
	"BalaghAPI/internal/upload"
	"BalaghAPI/internal/websocket"
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// App holds the long-lived pieces that need an orderly shutdown.
type App struct {
	feed          *adapter.ChangeFeedAdapter
	uploadService *service.UploadService
	resendLimiter *config.RateLimiter
	stopStatuses  func()
}

func Init(ctx context.Context, appConfig *config.AppConfig, client *ent.Client, redisAdapter *adapter.RedisAdapter, s3Client *s3.Client, httpClient *http.Client, validator *validator.Validate, chiMux *chi.Mux) (*App, error) {
	repo := repository.NewRepository(client, redisAdapter)

	storageAdapter := adapter.NewStorageAdapter(appConfig, s3Client)
	emailAdapter := adapter.NewEmailAdapter(appConfig)
	captchaAdapter := adapter.NewCaptchaAdapter(appConfig, httpClient)
	authProvider := adapter.NewAuthProvider(appConfig, repo.User, repo.Session, emailAdapter)

	feed, err := adapter.NewChangeFeedAdapter(appConfig)
	if err != nil {
		return nil, err
	}
	go feed.Run(ctx)

	limits := upload.Limits{
		MaxFiles:      appConfig.UploadMaxFiles,
		MaxFileSizeMB: appConfig.UploadMaxFileSizeMB,
		AcceptedTypes: appConfig.UploadAcceptedTypes,
	}
	previews, err := upload.NewPreviewStore(appConfig.PreviewCacheSize)
	if err != nil {
		feed.Close()
		return nil, err
	}
	queue := upload.NewQueue(storageAdapter, appConfig.S3MediaPrefix, limits)

	resendLimiter := config.NewResendLimiter(appConfig)

	authService := service.NewAuthService(authProvider, captchaAdapter, resendLimiter, validator)
	reportService := service.NewReportService(repo.Report, validator, appConfig.AppURL)
	dashboardService := service.NewDashboardService(repo.Report, feed)
	uploadService := service.NewUploadService(limits, previews, queue, os.TempDir(), time.Duration(appConfig.UploadIdleTTLMin)*time.Minute)
	submissionService := service.NewSubmissionService(repo.Draft, repo.Report, uploadService, storageAdapter, validator)
	shellService := service.NewShellService()

	hub := websocket.NewHub()
	go hub.Run(ctx)

	statuses, stopStatuses := uploadService.Statuses()
	go hub.ForwardUploads(ctx, statuses)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(repo.RateLimit, appConfig)

	route := NewRoute(
		appConfig,
		chiMux,
		authMiddleware,
		rateLimitMiddleware,
		controller.NewAuthController(authService, rateLimitMiddleware.ClientIP),
		controller.NewReportController(reportService),
		controller.NewSubmissionController(submissionService),
		controller.NewUploadController(uploadService, limits),
		controller.NewDashboardController(dashboardService),
		controller.NewShellController(shellService),
		controller.NewWebSocketController(hub, authProvider, dashboardService, appConfig.AppCorsAllowedOrigins),
	)
	route.Register()

	return &App{
		feed:          feed,
		uploadService: uploadService,
		resendLimiter: resendLimiter,
		stopStatuses:  stopStatuses,
	}, nil
}

func (a *App) Close() {
	a.stopStatuses()
	a.uploadService.Close()
	a.resendLimiter.Stop()
	if err := a.feed.Close(); err != nil {
		slog.Error("Error closing change feed", "error", err)
	}
}
