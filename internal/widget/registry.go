package widget

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"city-weather/internal/geocoding"
	"city-weather/internal/weather"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("widget session not found")

// Session is one widget instance: a panel wired to its own controller and renderer
type Session struct {
	ID         string
	CreatedAt  time.Time
	Panel      *Panel
	Controller *Controller
	Renderer   *Renderer
}

// Input records the new field value and notifies the controller
func (s *Session) Input(value string) {
	s.Panel.SetValue(value)
	s.Controller.OnInput(value)
}

// Registry holds live widget sessions in memory
type Registry struct {
	geocoder    geocoding.Service
	weather     weather.Service
	quietPeriod time.Duration
	logger      *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry(geocoder geocoding.Service, weatherService weather.Service, quietPeriod time.Duration, logger *slog.Logger) *Registry {
	return &Registry{
		geocoder:    geocoder,
		weather:     weatherService,
		quietPeriod: quietPeriod,
		logger:      logger.With("component", "widget-registry"),
		sessions:    make(map[string]*Session),
	}
}

func (r *Registry) Create() *Session {
	panel := NewPanel()
	renderer := NewRenderer(panel, r.weather, r.logger)
	controller := NewController(panel, panel, panel, renderer, r.geocoder, r.quietPeriod, r.logger)

	session := &Session{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		Panel:      panel,
		Controller: controller,
		Renderer:   renderer,
	}

	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()

	r.logger.Debug("created widget session", "session_id", session.ID)

	return session
}

func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	session, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	session.Controller.Close()
	r.logger.Debug("deleted widget session", "session_id", id)
	return nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Close shuts down every session
func (r *Registry) Close() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, session := range sessions {
		session.Controller.Close()
	}
}
