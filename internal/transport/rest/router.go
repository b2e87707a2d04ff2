package rest

import (
	"database/sql"
	"log/slog"

	"github.com/hrpulse/hrpulse/internal/analytics"
	"github.com/hrpulse/hrpulse/internal/board"
	"github.com/hrpulse/hrpulse/internal/export"
	"github.com/hrpulse/hrpulse/internal/prefs"
	"github.com/hrpulse/hrpulse/internal/transport/middleware"

	"github.com/go-chi/chi"
)

// RegisterAllRoutes mounts the dashboard API under /api/v1.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, allowedOrigins string, analyticsHandler *analytics.Handler, boardHandler *board.Handler, prefsHandler *prefs.Handler, exportHandler *export.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/kpis", func(kr chi.Router) {
			kr.Get("/", analyticsHandler.GetAllKPIs)
			kr.Get("/headcount/detail", analyticsHandler.GetHeadcountDetail)
			kr.Get("/{id}", analyticsHandler.GetKPI)
			kr.Get("/{id}/chart", analyticsHandler.GetKPIChartData)
		})
		r.Get("/insight", analyticsHandler.GetGlobalInsight)
		r.Post("/dataset/regenerate", analyticsHandler.RegenerateDataset)

		r.Route("/boards", func(br chi.Router) {
			br.Get("/", boardHandler.ListBoards)
			br.Post("/", boardHandler.CreateBoard)
			br.Get("/active", boardHandler.GetActiveBoard)
			br.Route("/{id}", func(ir chi.Router) {
				ir.Get("/", boardHandler.GetBoard)
				ir.Put("/", boardHandler.UpdateBoard)
				ir.Delete("/", boardHandler.DeleteBoard)
				ir.Put("/order", boardHandler.ReorderBoard)
				ir.Post("/kpis/{kpiID}", boardHandler.AddKPI)
				ir.Delete("/kpis/{kpiID}", boardHandler.RemoveKPI)
				ir.Post("/activate", boardHandler.ActivateBoard)
			})
		})

		r.Get("/preferences", prefsHandler.GetPreferences)
		r.Put("/preferences", prefsHandler.UpdatePreferences)

		r.Route("/exports", func(er chi.Router) {
			er.Get("/kpis.{format}", exportHandler.ExportKPIs)
			er.Get("/demographics.csv", exportHandler.ExportDemographics)
		})
	})
}
