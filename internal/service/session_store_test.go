package service

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestSessionKey(t *testing.T) {
	if got := SessionKey("acc-1", "s-9"); got != "session:acc-1:s-9" {
		t.Errorf("unexpected key %q", got)
	}
	if got := SessionKey("acc-1", "*"); got != "session:acc-1:*" {
		t.Errorf("unexpected scan pattern %q", got)
	}
}

func TestCalculateTTL(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	s := NewSessionStore(nil, log)

	if ttl := s.calculateTTL(time.Now().Add(-time.Hour)); ttl != time.Minute {
		t.Errorf("expected 1m floor for an expired session, got %v", ttl)
	}

	ttl := s.calculateTTL(time.Now().Add(2 * time.Hour))
	if ttl <= time.Hour || ttl > 2*time.Hour {
		t.Errorf("expected about 2h, got %v", ttl)
	}
}
