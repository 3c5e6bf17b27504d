package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/maksimkurb/mobile-manager/src/internal/mocks"
)

func TestSessionStore_ReusesManagerForCookie(t *testing.T) {
	s := NewSessionStore(&mocks.MockMobileClient{}, time.Hour)

	rec := httptest.NewRecorder()
	first := s.Manager(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != SessionCookieName {
		t.Fatalf("Expected session cookie, got %v", cookies)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	second := s.Manager(rec, req)

	if first != second {
		t.Error("Expected the same manager for the same session")
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("Expected no new cookie for a known session")
	}
}

func TestSessionStore_UnknownCookieStartsSession(t *testing.T) {
	s := NewSessionStore(&mocks.MockMobileClient{}, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "forged"})
	rec := httptest.NewRecorder()
	s.Manager(rec, req)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value == "forged" {
		t.Errorf("Expected a fresh session id, got %v", cookies)
	}
}

func TestSessionStore_ExpiresIdleSessions(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewSessionStore(&mocks.MockMobileClient{}, time.Hour)
	s.now = func() time.Time { return now }

	rec := httptest.NewRecorder()
	first := s.Manager(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	cookie := rec.Result().Cookies()[0]

	now = now.Add(2 * time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	second := s.Manager(httptest.NewRecorder(), req)

	if first == second {
		t.Error("Expected expired session to be replaced")
	}
	if s.Len() != 1 {
		t.Errorf("Expected expired session to be pruned, have %d", s.Len())
	}
}
