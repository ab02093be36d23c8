package httpapi

import (
	"errors"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mistakeknot/significado/internal/names"
	"github.com/mistakeknot/significado/internal/render"
)

type fallbackResponse struct {
	Name   string `json:"name"`
	Report string `json:"report"`
}

func nameParam(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if r.URL.RawPath != "" {
		if v, err := url.PathUnescape(raw); err == nil {
			raw = v
		}
	}
	return strings.TrimSpace(raw)
}

func (s *Service) handleMeaning(w http.ResponseWriter, r *http.Request) {
	a, err := s.gen.Analyze(nameParam(r))
	switch {
	case errors.Is(err, names.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		s.log.Error("analyze", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not compose report")
	default:
		writeJSON(w, http.StatusOK, a)
	}
}

func (s *Service) handleFallback(w http.ResponseWriter, r *http.Request) {
	name := nameParam(r)
	report, err := s.gen.Fallback(name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, fallbackResponse{Name: name, Report: report})
}

func (s *Service) handleImage(w http.ResponseWriter, r *http.Request) {
	name := nameParam(r)
	report, _, err := s.gen.Describe(name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	data, err := s.images.PNG("Significado de "+name, report)
	if err != nil {
		s.log.Error("render image", zap.String("name", name), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not render image")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition",
		mime.FormatMediaType("attachment", map[string]string{"filename": render.Filename(name)}))
	_, _ = w.Write(data)
}
