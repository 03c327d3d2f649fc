package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/ceramiqa/quality-management/internal/activitylog"
	"github.com/ceramiqa/quality-management/internal/auth"
	"github.com/ceramiqa/quality-management/internal/campaign"
	"github.com/ceramiqa/quality-management/internal/compliance"
	"github.com/ceramiqa/quality-management/internal/dashboard"
	"github.com/ceramiqa/quality-management/internal/energy"
	"github.com/ceramiqa/quality-management/internal/production"
	"github.com/ceramiqa/quality-management/internal/quality"
	"github.com/ceramiqa/quality-management/internal/transport/middleware"
	"github.com/ceramiqa/quality-management/internal/transport/swagger"
	"github.com/ceramiqa/quality-management/internal/user"
	"github.com/ceramiqa/quality-management/internal/waste"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// Handlers carries every HTTP handler the router mounts. Nil entries are
// skipped so partial wiring in tests stays cheap.
type Handlers struct {
	Auth        *auth.Handler
	User        *user.Handler
	Production  *production.Handler
	Quality     *quality.Handler
	Energy      *energy.Handler
	Waste       *waste.Handler
	Compliance  *compliance.Handler
	Campaign    *campaign.Handler
	Dashboard   *dashboard.Handler
	ActivityLog *activitylog.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, rbac *auth.RBACAuthorization, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Logging(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if h.Auth != nil {
			r.Route("/auth", func(sr chi.Router) {
				sr.Post("/login", h.Auth.Login)
				sr.Post("/register", h.Auth.Register)
				sr.Post("/refresh", h.Auth.RefreshToken)
				sr.Post("/logout", h.Auth.Logout)

				sr.Group(func(pr chi.Router) {
					pr.Use(h.Auth.AuthMiddleware)
					pr.Get("/me", h.Auth.Me)
				})
			})
		}

		if h.Auth == nil {
			return
		}

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			if h.Dashboard != nil {
				pr.Group(func(gr chi.Router) {
					gr.Use(rbac.Require(auth.PermViewDashboard))
					gr.Get("/dashboard/metrics", h.Dashboard.GetMetrics)
				})
			}

			if h.Production != nil {
				pr.Route("/production-lots", func(er chi.Router) {
					er.With(rbac.Require(auth.PermViewProductionLots)).Get("/", h.Production.ListLots)
					er.With(rbac.Require(auth.PermCreateProductionLots)).Post("/", h.Production.CreateLot)
				})
			}

			if h.Quality != nil {
				pr.Route("/quality-tests", func(er chi.Router) {
					er.With(rbac.Require(auth.PermViewQualityTests)).Get("/", h.Quality.ListTests)
					er.With(rbac.Require(auth.PermCreateQualityTests)).Post("/", h.Quality.CreateTest)
					er.With(rbac.Require(auth.PermEditQualityTests)).Put("/{id}", h.Quality.UpdateTest)
				})
			}

			if h.Energy != nil {
				pr.Route("/energy-consumption", func(er chi.Router) {
					er.With(rbac.Require(auth.PermViewEnergyRecords)).Get("/", h.Energy.ListRecords)
					er.With(rbac.Require(auth.PermCreateEnergyRecords)).Post("/", h.Energy.CreateRecord)
				})
			}

			if h.Waste != nil {
				pr.Route("/waste-records", func(er chi.Router) {
					er.With(rbac.Require(auth.PermViewWasteRecords)).Get("/", h.Waste.ListRecords)
					er.With(rbac.Require(auth.PermCreateWasteRecords)).Post("/", h.Waste.CreateRecord)
				})
			}

			if h.Compliance != nil {
				pr.Route("/compliance-documents", func(er chi.Router) {
					er.With(rbac.Require(auth.PermViewCompliance)).Get("/", h.Compliance.ListDocuments)
					er.With(rbac.Require(auth.PermManageCompliance)).Post("/", h.Compliance.CreateDocument)
					er.With(rbac.Require(auth.PermManageCompliance)).Put("/{id}", h.Compliance.UpdateDocument)
				})
			}

			if h.Campaign != nil {
				pr.Route("/testing-campaigns", func(er chi.Router) {
					er.With(rbac.Require(auth.PermViewCampaigns)).Get("/", h.Campaign.ListCampaigns)
					er.With(rbac.Require(auth.PermManageCampaigns)).Post("/", h.Campaign.CreateCampaign)
					er.With(rbac.Require(auth.PermManageCampaigns)).Put("/{id}", h.Campaign.UpdateCampaign)
				})
			}

			if h.User != nil {
				pr.Route("/users", func(er chi.Router) {
					er.With(rbac.Require(auth.PermManageUsers)).Get("/", h.User.ListUsers)
					er.With(rbac.Require(auth.PermManageUsers)).Put("/{id}/role", h.User.UpdateRole)
				})
			}

			if h.ActivityLog != nil {
				pr.With(rbac.RequireAdmin()).Get("/activity-logs", h.ActivityLog.ListRecent)
			}
		})
	})
}
