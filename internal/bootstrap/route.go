package bootstrap

import (
	"BalaghAPI/internal/config"
	"BalaghAPI/internal/controller"
	"BalaghAPI/internal/middleware"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Route struct {
	cfg                  *config.AppConfig
	chi                  *chi.Mux
	authMiddleware       *middleware.AuthMiddleware
	rateLimitMiddleware  *middleware.RateLimitMiddleware
	authController       *controller.AuthController
	reportController     *controller.ReportController
	submissionController *controller.SubmissionController
	uploadController     *controller.UploadController
	dashboardController  *controller.DashboardController
	shellController      *controller.ShellController
	websocketController  *controller.WebSocketController
}

func NewRoute(
	cfg *config.AppConfig,
	chi *chi.Mux,
	authMiddleware *middleware.AuthMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	authController *controller.AuthController,
	reportController *controller.ReportController,
	submissionController *controller.SubmissionController,
	uploadController *controller.UploadController,
	dashboardController *controller.DashboardController,
	shellController *controller.ShellController,
	websocketController *controller.WebSocketController,
) *Route {
	return &Route{
		cfg:                  cfg,
		chi:                  chi,
		authMiddleware:       authMiddleware,
		rateLimitMiddleware:  rateLimitMiddleware,
		authController:       authController,
		reportController:     reportController,
		submissionController: submissionController,
		uploadController:     uploadController,
		dashboardController:  dashboardController,
		shellController:      shellController,
		websocketController:  websocketController,
	}
}

func (route *Route) Register() {
	route.chi.Use(middleware.Recover(route.cfg.IsDevelopment()))
	route.chi.Use(middleware.Metrics)

	route.chi.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Welcome to BalaghAPI"))
	})
	route.chi.Handle("/metrics", promhttp.Handler())

	route.chi.With(route.authMiddleware.VerifyWSToken).Get("/ws", route.websocketController.ServeWS)

	route.chi.Route("/api", func(r chi.Router) {
		r.Use(config.RequestTimeout())

		r.Group(func(r chi.Router) {
			r.Use(route.authMiddleware.Optional)

			r.Get("/shell", route.shellController.Shell)
			r.Get("/home", route.reportController.Home)
			r.Get("/reports", route.reportController.ListReports)
			r.With(route.rateLimitMiddleware.Limit("report_view", 60, time.Minute)).
				Get("/reports/{id}", route.reportController.GetReport)
		})

		r.Route("/auth", func(r chi.Router) {
			r.With(route.rateLimitMiddleware.Limit("signup", 5, time.Hour)).Post("/signup", route.authController.SignUp)
			r.With(route.rateLimitMiddleware.Limit("signin", 10, 15*time.Minute)).Post("/signin", route.authController.SignIn)
			r.With(route.rateLimitMiddleware.Limit("google", 10, 15*time.Minute)).Post("/google", route.authController.GoogleSignIn)
			r.Post("/signout", route.authController.SignOut)
			r.Get("/session", route.authController.Session)
			r.Get("/confirm", route.authController.ConfirmEmail)
			r.With(route.rateLimitMiddleware.Limit("resend_confirmation", 5, time.Hour)).
				Post("/resend-confirmation", route.authController.ResendConfirmation)
		})

		r.Group(func(r chi.Router) {
			r.Use(route.authMiddleware.VerifyToken)

			r.Get("/dashboard", route.dashboardController.GetDashboard)
			r.With(route.rateLimitMiddleware.Limit("like", 30, time.Minute)).
				Post("/reports/{id}/like", route.reportController.ToggleLike)

			r.Route("/submission", func(r chi.Router) {
				r.Get("/draft", route.submissionController.GetDraft)
				r.Put("/draft", route.submissionController.UpdateDraft)
				r.Delete("/draft", route.submissionController.DiscardDraft)
				r.Post("/next", route.submissionController.Next)
				r.Post("/previous", route.submissionController.Previous)
				r.Post("/locate", route.submissionController.Locate)
				r.With(route.rateLimitMiddleware.Limit("submit", 10, time.Hour)).
					Post("/submit", route.submissionController.Submit)
			})

			r.Route("/uploads", func(r chi.Router) {
				r.With(route.rateLimitMiddleware.Limit("upload_stage", 30, time.Minute)).
					Post("/", route.uploadController.StageFiles)
				r.Get("/", route.uploadController.ListFiles)
				r.Delete("/", route.uploadController.ClearFiles)
				r.Delete("/{id}", route.uploadController.RemoveFile)
				r.Post("/start", route.uploadController.StartUpload)
				r.Get("/previews/{token}", route.uploadController.Preview)
			})
		})
	})
}
