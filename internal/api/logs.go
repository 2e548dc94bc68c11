package api

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"intake-insights-go/internal/aggregator"
	"intake-insights-go/internal/dataset"
	"intake-insights-go/internal/store"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) filter(r *http.Request) store.Filter {
	f := store.Filter{BotID: r.URL.Query().Get("bot_uid")}
	if n, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && n > 0 {
		f.Limit = n
	}
	return f
}

// logs merges platform call logs with locally processed ones. A platform
// failure degrades to an empty platform list rather than failing the view.
func (s *Server) logs(w http.ResponseWriter, r *http.Request) {
	reqLog := s.log.WithRequest(r).WithField("handler", "logs")
	f := s.filter(r)

	platform := []map[string]any{}
	if s.Bots != nil && s.Bots.Configured() {
		got, err := s.Bots.ListCallLogs(r.Context(), f.BotID)
		if err != nil {
			reqLog.WithField("error", err.Error()).Warn("openmic call logs unavailable")
		} else if got != nil {
			platform = got
		}
	}

	processed, err := s.Store.List(r.Context(), f)
	if err != nil {
		reqLog.WithField("error", err.Error()).Error("list call logs failed")
		writeError(w, http.StatusInternalServerError, "Failed to fetch logs", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"openmic_logs":   platform,
		"processed_logs": processed,
		"total_calls":    len(platform) + len(processed),
	})
}

func (s *Server) logsSummary(w http.ResponseWriter, r *http.Request) {
	processed, err := s.Store.List(r.Context(), s.filter(r))
	if err != nil {
		s.log.WithRequest(r).WithField("error", err.Error()).Error("list call logs failed")
		writeError(w, http.StatusInternalServerError, "Failed to summarize logs", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    aggregator.Aggregate(processed),
	})
}

func (s *Server) logsExport(w http.ResponseWriter, r *http.Request) {
	reqLog := s.log.WithRequest(r).WithField("handler", "logs-export")

	processed, err := s.Store.List(r.Context(), s.filter(r))
	if err != nil {
		reqLog.WithField("error", err.Error()).Error("list call logs failed")
		writeError(w, http.StatusInternalServerError, "Failed to export logs", err.Error())
		return
	}

	// Render fully before writing headers so a failure can still be a 500.
	var buf bytes.Buffer
	if err := dataset.ExportCallLogs(&buf, processed); err != nil {
		reqLog.WithField("error", err.Error()).Error("export call logs failed")
		writeError(w, http.StatusInternalServerError, "Failed to export logs", err.Error())
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="call-logs.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) getLog(w http.ResponseWriter, r *http.Request) {
	cl, err := s.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Call log not found", "")
		return
	}
	if err != nil {
		s.log.WithRequest(r).WithField("error", err.Error()).Error("get call log failed")
		writeError(w, http.StatusInternalServerError, "Failed to fetch log", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": cl})
}
