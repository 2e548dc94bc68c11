package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"intake-insights-go/internal/openmic"
	"intake-insights-go/internal/types"
)

func (s *Server) requireBots(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Bots == nil || !s.Bots.Configured() {
			writeError(w, http.StatusServiceUnavailable, "OpenMic API key not configured", "")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// botError maps platform failures onto dashboard responses.
func (s *Server) botError(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, openmic.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, "OpenMic API key not configured", "")
	case openmic.IsNotFound(err):
		writeError(w, http.StatusNotFound, "Bot not found", "")
	default:
		s.log.WithRequest(r).WithField("error", err.Error()).Error(action + " failed")
		writeError(w, http.StatusBadGateway, "Failed to "+action, err.Error())
	}
}

func (s *Server) listBots(w http.ResponseWriter, r *http.Request) {
	bots, err := s.Bots.ListBots(r.Context())
	if err != nil {
		s.botError(w, r, err, "fetch bots")
		return
	}
	if bots == nil {
		bots = []types.Bot{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": bots})
}

func (s *Server) createBot(w http.ResponseWriter, r *http.Request) {
	var bot types.Bot
	if err := decodeJSON(w, r, &bot); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}
	if strings.TrimSpace(bot.Name) == "" {
		writeError(w, http.StatusBadRequest, "Bot name is required", "")
		return
	}

	created, err := s.Bots.CreateBot(r.Context(), bot)
	if err != nil {
		s.botError(w, r, err, "create bot")
		return
	}
	s.log.WithRequest(r).WithField("bot_id", created.ID).Info("bot created")
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "data": created})
}

func (s *Server) updateBot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var bot types.Bot
	if err := decodeJSON(w, r, &bot); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	updated, err := s.Bots.UpdateBot(r.Context(), id, bot)
	if err != nil {
		s.botError(w, r, err, "update bot")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": updated})
}

func (s *Server) deleteBot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.Bots.DeleteBot(r.Context(), id); err != nil {
		s.botError(w, r, err, "delete bot")
		return
	}
	s.log.WithRequest(r).WithField("bot_id", id).Info("bot deleted")
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
