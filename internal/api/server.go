package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"intake-insights-go/internal/livecalls"
	"intake-insights-go/internal/logger"
	"intake-insights-go/internal/patients"
	"intake-insights-go/internal/processor"
	"intake-insights-go/internal/store"
	"intake-insights-go/internal/types"
)

const maxBodyBytes = 1 << 20

// BotService is the subset of the voice platform client the dashboard uses.
type BotService interface {
	Configured() bool
	ListBots(ctx context.Context) ([]types.Bot, error)
	CreateBot(ctx context.Context, bot types.Bot) (types.Bot, error)
	UpdateBot(ctx context.Context, id string, bot types.Bot) (types.Bot, error)
	DeleteBot(ctx context.Context, id string) error
	ListCallLogs(ctx context.Context, botUID string) ([]map[string]any, error)
}

type Deps struct {
	Processor *processor.Processor
	Store     store.CallLogStore
	Patients  *patients.Directory
	Bots      BotService
	LiveCalls *livecalls.Board
	Log       *logger.Logger
}

type Server struct {
	Deps
	router *chi.Mux
	log    *logger.Logger
}

func NewServer(d Deps) *Server {
	s := &Server{Deps: d, router: chi.NewRouter(), log: d.Log.Component("api")}

	s.router.Use(d.Log.Middleware)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", s.health)

	s.router.Route("/webhook", func(r chi.Router) {
		r.Post("/pre-call", s.preCall)
		r.Post("/function-call", s.functionCall)
		r.Get("/function-call", s.functionCallLookup)
		r.Post("/post-call", s.postCall)
		r.Get("/post-call", s.postCallLogs)
	})

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/functions/get-patient-record", s.getPatientRecord)

		r.Get("/logs", s.logs)
		r.Get("/logs/summary", s.logsSummary)
		r.Get("/logs/export", s.logsExport)
		r.Get("/logs/{id}", s.getLog)

		r.Route("/bots", func(r chi.Router) {
			r.Use(s.requireBots)
			r.Get("/", s.listBots)
			r.Post("/", s.createBot)
			r.Put("/{id}", s.updateBot)
			r.Delete("/{id}", s.deleteBot)
		})

		r.Get("/calls/active", s.listActiveCalls)
		r.Get("/calls/active/{id}", s.getActiveCall)
		r.Post("/calls/active/{id}/end", s.endActiveCall)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, errMsg, message string) {
	body := map[string]any{"success": false, "error": errMsg}
	if message != "" {
		body["message"] = message
	}
	writeJSON(w, status, body)
}

// decodeJSON reads a bounded JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
