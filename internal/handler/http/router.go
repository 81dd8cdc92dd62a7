package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/peoplehub/leave-backend-go/internal/domain/user"
	"github.com/peoplehub/leave-backend-go/internal/handler/http/middleware"
	"github.com/peoplehub/leave-backend-go/internal/pkg/jwt"
)

func NewRouter(JWTService jwt.Service, policyHandler PolicyHandler, leaveHandler LeaveHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "leave-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/policies", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionViewPolicies)).
					Get("/my", policyHandler.ListActive)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionManagePolicies))
					r.Get("/", policyHandler.List)
					r.Post("/", policyHandler.Create)
					r.Get("/history", policyHandler.History)
					r.Get("/{id}", policyHandler.Get)
					r.Put("/{id}", policyHandler.Update)
					r.Get("/{id}/history", policyHandler.HistoryByPolicy)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionSubmitLeave)).
					Post("/", leaveHandler.Submit)
				r.With(middleware.RequirePermission(user.PermissionSubmitLeave)).
					Get("/me", leaveHandler.GetMyRequests)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionViewAllLeave))
					r.Get("/", leaveHandler.List)
					r.Get("/{id}", leaveHandler.Get)
				})

				r.With(middleware.RequirePermission(user.PermissionReviewLeave)).
					Put("/{id}", leaveHandler.Transition)
			})
		})
	})
	return r
}
