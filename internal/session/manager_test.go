package session

import (
	"errors"
	"testing"
	"time"

	"ghost-dashboard/internal/dataset"
)

func newManager(t *testing.T) *Manager {
	t.Helper()
	store, err := dataset.NewStore(dataset.Sample())
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}
	return NewManager(store, "test-secret", time.Hour)
}

func TestCreateAndParseToken(t *testing.T) {
	m := newManager(t)

	id, token, err := m.Create()
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	got, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if got != id {
		t.Fatalf("ParseToken = %q, want %q", got, id)
	}
	if _, err := m.Get(id); err != nil {
		t.Fatalf("Get error: %v", err)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	m := newManager(t)

	a, _, _ := m.Create()
	b, _, _ := m.Create()
	if a == b {
		t.Fatalf("duplicate session ids")
	}

	dashA, _ := m.Get(a)
	dashB, _ := m.Get(b)
	if err := dashA.SelectRegion("reg5"); err != nil {
		t.Fatalf("SelectRegion error: %v", err)
	}
	if dashB.Selection().ID != "all" {
		t.Fatalf("session b selection = %+v", dashB.Selection())
	}
}

func TestParseTokenRejectsForeignAndExpiredTokens(t *testing.T) {
	m := newManager(t)
	_, token, _ := m.Create()

	other := newManager(t)
	other.secret = []byte("another-secret")
	if _, err := other.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("foreign token error = %v", err)
	}
	if _, err := m.ParseToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("garbage token error = %v", err)
	}

	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	_, expired, _ := m.Create()
	if _, err := m.ParseToken(expired); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired token error = %v", err)
	}
}

func TestSweepEvictsIdleSessions(t *testing.T) {
	m := newManager(t)
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base }

	stale, _, _ := m.Create()
	m.now = func() time.Time { return base.Add(50 * time.Minute) }
	fresh, _, _ := m.Create()

	if n := m.Sweep(base.Add(90 * time.Minute)); n != 1 {
		t.Fatalf("Sweep removed %d, want 1", n)
	}
	if _, err := m.Get(stale); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Get(stale) error = %v", err)
	}
	if _, err := m.Get(fresh); err != nil {
		t.Fatalf("Get(fresh) error = %v", err)
	}
	if m.Len() != 1 {
		t.Fatalf("Len() = %d", m.Len())
	}
}
