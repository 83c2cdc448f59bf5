package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"studypulse/internal/auth"
	"studypulse/internal/config"
	"studypulse/internal/dashboard"
	"studypulse/internal/http/handler"
	mw "studypulse/internal/http/middleware"
	"studypulse/internal/ingest"
	"studypulse/internal/logger"
	"studypulse/internal/store"
)

// Deps are the collaborators the handlers are built from.
type Deps struct {
	Store     store.Store
	Ingest    *ingest.Service
	Dashboard *dashboard.Aggregator
	Streaks   handler.StreakEvaluator
	Goals     handler.GoalTracker
	JWT       *auth.JWT
	Log       *logger.Logger
	Now       func() time.Time
}

func NewRouter(cfg config.Config, d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger(d.Log))
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	logs := &handler.StudyLogHandler{Svc: d.Ingest, Logs: d.Store, Log: d.Log}
	subjects := &handler.SubjectHandler{Subjects: d.Store, DefaultTargetHours: cfg.DefaultTargetHours, Log: d.Log}
	deadlines := &handler.DeadlineHandler{Deadlines: d.Store, Subjects: d.Store, Log: d.Log, Now: d.Now, Location: cfg.Location()}
	insights := &handler.InsightHandler{Insights: d.Store, Log: d.Log}
	streaks := &handler.StreakHandler{Streaks: d.Streaks, Log: d.Log, Now: d.Now, Location: cfg.Location()}
	goals := &handler.GoalHandler{Goals: d.Store, Tracker: d.Goals, Log: d.Log, Now: d.Now, Location: cfg.Location()}
	dash := &handler.DashboardHandler{Agg: d.Dashboard, Log: d.Log}
	me := &handler.MeHandler{}

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(d.JWT))

		r.Get("/me", me.Me)

		r.Route("/study-logs", func(r chi.Router) {
			r.Post("/process", logs.Process)
			r.Get("/", logs.List)
			r.Patch("/{id}", logs.Update)
			r.Delete("/{id}", logs.Delete)
		})

		r.Route("/subjects", func(r chi.Router) {
			r.Get("/", subjects.List)
			r.Post("/", subjects.Create)
			r.Patch("/{id}", subjects.Update)
			r.Delete("/{id}", subjects.Delete)
		})

		r.Route("/deadlines", func(r chi.Router) {
			r.Get("/", deadlines.List)
			r.Post("/", deadlines.Create)
			r.Patch("/{id}", deadlines.UpdateStatus)
			r.Delete("/{id}", deadlines.Delete)
		})

		r.Route("/goals", func(r chi.Router) {
			r.Get("/", goals.List)
			r.Post("/", goals.Create)
			r.Patch("/{id}", goals.Update)
			r.Delete("/{id}", goals.Delete)
		})

		r.Get("/insights", insights.List)
		r.Post("/insights/{id}/read", insights.MarkRead)
		r.Get("/streaks", streaks.List)
		r.Get("/dashboard", dash.Get)
	})

	return r
}
