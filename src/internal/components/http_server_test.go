package components

import (
	"io"
	"net/http"
	"testing"
)

var _ Component = (*HTTPServer)(nil)

func TestHTTPServer_Lifecycle(t *testing.T) {
	s := NewHTTPServer("Test", "127.0.0.1:0", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	}))

	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := s.Start(); err == nil {
		t.Error("Expected second Start to fail")
	}

	resp, err := http.Get("http://" + s.Addr() + "/")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "pong" {
		t.Errorf("Unexpected body %q", body)
	}

	if err := s.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if err := s.Stop(); err == nil {
		t.Error("Expected Stop of a stopped server to fail")
	}
}

func TestHTTPServer_BindError(t *testing.T) {
	first := NewHTTPServer("First", "127.0.0.1:0", http.NotFoundHandler())
	if err := first.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer first.Stop()

	second := NewHTTPServer("Second", first.Addr(), http.NotFoundHandler())
	if err := second.Start(); err == nil {
		second.Stop()
		t.Error("Expected bind on a used address to fail")
	}
}
