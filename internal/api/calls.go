package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) listActiveCalls(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": s.LiveCalls.List()})
}

func (s *Server) getActiveCall(w http.ResponseWriter, r *http.Request) {
	call, err := s.LiveCalls.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Call not found", "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": call})
}

func (s *Server) endActiveCall(w http.ResponseWriter, r *http.Request) {
	call, err := s.LiveCalls.End(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Call not found", "")
		return
	}
	s.log.WithRequest(r).WithField("call_id", call.ID).Info("active call ended")
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": call})
}
