package httpapi

import (
	"time"

	"go.uber.org/zap"

	"github.com/mistakeknot/significado/internal/names"
	"github.com/mistakeknot/significado/internal/render"
	"github.com/mistakeknot/significado/internal/storage"
)

// Service holds what the handlers share. Reports are generated per request
// and never stored; only the searched name is.
type Service struct {
	store  storage.Store
	bus    Broadcaster
	gen    *names.Generator
	images ImageRenderer
	log    *zap.Logger
	now    func() time.Time
}

type Broadcaster interface {
	Broadcast(sessionID string, event any)
}

// ImageRenderer turns a report into PNG bytes.
type ImageRenderer interface {
	PNG(title, report string) ([]byte, error)
}

func NewService(store storage.Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:  store,
		gen:    names.NewGenerator(),
		images: render.Default,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) WithBroadcaster(b Broadcaster) *Service {
	s.bus = b
	return s
}

func (s *Service) WithGenerator(g *names.Generator) *Service {
	s.gen = g
	return s
}

func (s *Service) WithRenderer(r ImageRenderer) *Service {
	s.images = r
	return s
}
