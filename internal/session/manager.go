package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"

	"ghost-dashboard/internal/dashboard"
	"ghost-dashboard/internal/dataset"
	"ghost-dashboard/internal/surface"
)

// ErrSessionNotFound is returned for unknown or evicted sessions
var ErrSessionNotFound = errors.New("session not found")

// ErrInvalidToken is returned when a session token fails verification
var ErrInvalidToken = errors.New("invalid session token")

type entry struct {
	dash     *dashboard.Dashboard
	lastSeen time.Time
}

// Manager owns one dashboard per browser session.
// A new session starts with the AllRegions filter, like a page reload.
type Manager struct {
	store  *dataset.Store
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

// NewManager creates a session manager. Sessions idle longer than ttl are evicted.
func NewManager(store *dataset.Store, secret string, ttl time.Duration) *Manager {
	return &Manager{
		store:    store,
		secret:   []byte(secret),
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*entry),
	}
}

// Create starts a session and returns its id and signed token
func (m *Manager) Create() (string, string, error) {
	dash, err := dashboard.New(m.store, surface.NewMemory())
	if err != nil {
		return "", "", fmt.Errorf("error building dashboard: %w", err)
	}

	id := uuid.NewString()
	now := m.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": id,
		"iat":        now.Unix(),
		"exp":        now.Add(m.ttl).Unix(),
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		dash.Close()
		return "", "", err
	}

	m.mu.Lock()
	m.sessions[id] = &entry{dash: dash, lastSeen: now}
	count := len(m.sessions)
	m.mu.Unlock()

	log.Printf("Created dashboard session %s (%d active)", id, count)
	return id, signed, nil
}

// ParseToken verifies a session token and returns its session id
func (m *Manager) ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	id, ok := claims["session_id"].(string)
	if !ok || id == "" {
		return "", ErrInvalidToken
	}
	return id, nil
}

// Get returns the dashboard of a session and marks it as used
func (m *Manager) Get(id string) (*dashboard.Dashboard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	e.lastSeen = m.now()
	return e.dash, nil
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep evicts sessions idle since before now-ttl and returns how many were removed
func (m *Manager) Sweep(now time.Time) int {
	m.mu.Lock()
	var expired []*entry
	for id, e := range m.sessions {
		if now.Sub(e.lastSeen) > m.ttl {
			expired = append(expired, e)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, e := range expired {
		e.dash.Close()
	}
	return len(expired)
}

// RunSweeper evicts idle sessions periodically until ctx is done
func (m *Manager) RunSweeper(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(m.now()); n > 0 {
				log.Printf("Evicted %d idle dashboard sessions", n)
			}
		}
	}
}
