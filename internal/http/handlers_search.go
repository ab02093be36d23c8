package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mistakeknot/significado/internal/core"
	"github.com/mistakeknot/significado/internal/storage"
)

// SessionCookie carries the browser session whose last search is kept.
const SessionCookie = "significado_session"

type searchRequest struct {
	Name string `json:"name"`
}

type searchResponse struct {
	SessionID string `json:"session_id"`
	Name      string `json:"name"`
}

type resultResponse struct {
	Name     string `json:"name"`
	Report   string `json:"report"`
	Fallback bool   `json:"fallback"`
}

func sessionFrom(r *http.Request) string {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(c.Value)
}

func (s *Service) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeError(w, http.StatusBadRequest, "name required")
		return
	}

	session := sessionFrom(r)
	if session == "" {
		session = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    session,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	saved, err := s.store.SaveSearch(r.Context(), session, name)
	if err != nil {
		s.log.Error("save search", zap.String("session", session), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not save search")
		return
	}
	s.emit(core.EventSearchSaved, session, func(ev *core.Event) { ev.Name = saved.Name })

	writeJSON(w, http.StatusOK, searchResponse{SessionID: session, Name: saved.Name})
}

func (s *Service) handleResult(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	if session == "" {
		writeError(w, http.StatusNotFound, "no search")
		return
	}
	search, err := s.store.LastSearch(r.Context(), session)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no search")
		return
	}
	if err != nil {
		s.log.Error("load search", zap.String("session", session), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not load search")
		return
	}

	s.emit(core.EventReportAnalyzing, session, func(ev *core.Event) { ev.Name = search.Name })
	report, fallback, err := s.gen.Describe(search.Name)
	if err != nil {
		s.log.Error("describe", zap.String("name", search.Name), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not compose report")
		return
	}
	if fallback {
		s.log.Warn("served fallback report", zap.String("name", search.Name))
	}
	s.emit(core.EventReportReady, session, func(ev *core.Event) {
		ev.Name = search.Name
		ev.Report = report
		ev.Fallback = fallback
	})

	writeJSON(w, http.StatusOK, resultResponse{Name: search.Name, Report: report, Fallback: fallback})
}

func (s *Service) emit(typ core.EventType, session string, fill func(*core.Event)) {
	if s.bus == nil {
		return
	}
	ev := core.Event{ID: uuid.NewString(), Type: typ, SessionID: session, CreatedAt: s.now()}
	if fill != nil {
		fill(&ev)
	}
	s.bus.Broadcast(session, ev)
}
