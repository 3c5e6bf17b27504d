package mobileapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/maksimkurb/mobile-manager/src/internal/errors"
	"github.com/maksimkurb/mobile-manager/src/internal/models"
)

// mockHTTPClient lets tests fail or inspect requests without a server.
type mockHTTPClient struct {
	DoFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.DoFunc(req)
}

func textResponse(code int, body string) *http.Response {
	return &http.Response{
		StatusCode: code,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestNewClient_BaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://localhost:8080", "http://localhost:8080/api/mobiles"},
		{"http://localhost:8080/", "http://localhost:8080/api/mobiles"},
		{"https://inventory.example.com//", "https://inventory.example.com/api/mobiles"},
	}

	for _, tt := range tests {
		if got := NewClient(tt.in, nil).BaseURL(); got != tt.want {
			t.Errorf("NewClient(%q).BaseURL() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWithID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"5", "/get/5"},
		{"", "/get/"},
		{"a b", "/get/a%20b"},
		{"../x", "/get/..%2Fx"},
	}

	for _, tt := range tests {
		if got := withID(endpointGet, tt.id); got != tt.want {
			t.Errorf("withID(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestClient_RequestShape(t *testing.T) {
	tests := []struct {
		name       string
		call       func(c *Client) error
		wantMethod string
		wantPath   string
		wantBody   string
	}{
		{
			name:       "list",
			call:       func(c *Client) error { _, err := c.ListAll(context.Background()); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/api/mobiles/all",
		},
		{
			name:       "get",
			call:       func(c *Client) error { _, err := c.GetByID(context.Background(), "7"); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/api/mobiles/get/7",
		},
		{
			name: "add",
			call: func(c *Client) error {
				_, err := c.Add(context.Background(), models.Mobile{ID: 1, Brand: "A", Model: "B", Price: 2.5, Color: "C"})
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/mobiles/add",
			wantBody:   `{"id":1,"brand":"A","model":"B","price":2.5,"color":"C"}`,
		},
		{
			name: "update",
			call: func(c *Client) error {
				_, err := c.Update(context.Background(), models.Mobile{ID: 1, Brand: "A", Model: "B", Price: 3, Color: "C"})
				return err
			},
			wantMethod: http.MethodPut,
			wantPath:   "/api/mobiles/update",
			wantBody:   `{"id":1,"brand":"A","model":"B","price":3,"color":"C"}`,
		},
		{
			name:       "delete",
			call:       func(c *Client) error { _, err := c.DeleteByID(context.Background(), "7"); return err },
			wantMethod: http.MethodDelete,
			wantPath:   "/api/mobiles/delete/7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotMethod, gotPath, gotBody, gotContentType string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotMethod, gotPath = r.Method, r.URL.EscapedPath()
				gotContentType = r.Header.Get("Content-Type")
				body, _ := io.ReadAll(r.Body)
				gotBody = string(body)
				w.Write([]byte("[]"))
			}))
			defer srv.Close()

			tt.call(NewClient(srv.URL, srv.Client()))

			if gotMethod != tt.wantMethod || gotPath != tt.wantPath {
				t.Errorf("Got %s %s, want %s %s", gotMethod, gotPath, tt.wantMethod, tt.wantPath)
			}
			if gotBody != tt.wantBody {
				t.Errorf("Got body %q, want %q", gotBody, tt.wantBody)
			}
			if tt.wantBody != "" && gotContentType != "application/json" {
				t.Errorf("Expected JSON content type, got %q", gotContentType)
			}
		})
	}
}

func TestClient_DeleteByID_Body(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"plain text", "Deleted mobile 5", "Deleted mobile 5"},
		{"json string", `"Deleted mobile 5"`, "Deleted mobile 5"},
		{"trailing newline", "Deleted mobile 5\n", "Deleted mobile 5"},
		{"json object kept raw", `{"ok":true}`, `{"ok":true}`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient("http://api.test", &mockHTTPClient{
				DoFunc: func(req *http.Request) (*http.Response, error) {
					return textResponse(http.StatusOK, tt.body), nil
				},
			})

			got, err := client.DeleteByID(context.Background(), "5")
			if err != nil {
				t.Fatalf("DeleteByID failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("DeleteByID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name string
		do   func(req *http.Request) (*http.Response, error)
	}{
		{
			name: "network failure",
			do: func(req *http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			},
		},
		{
			name: "not found",
			do: func(req *http.Request) (*http.Response, error) {
				return textResponse(http.StatusNotFound, `{"error":{"code":"not_found"}}`), nil
			},
		},
		{
			name: "server error",
			do: func(req *http.Request) (*http.Response, error) {
				return textResponse(http.StatusInternalServerError, "oops"), nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient("http://api.test", &mockHTTPClient{DoFunc: tt.do})
			ctx := context.Background()

			if _, err := client.ListAll(ctx); !apperrors.HasCode(err, apperrors.ErrCodeTransport) {
				t.Errorf("ListAll: expected transport error, got %v", err)
			}
			if _, err := client.GetByID(ctx, "1"); !apperrors.HasCode(err, apperrors.ErrCodeTransport) {
				t.Errorf("GetByID: expected transport error, got %v", err)
			}
			if _, err := client.Add(ctx, models.Mobile{ID: 1}); !apperrors.HasCode(err, apperrors.ErrCodeTransport) {
				t.Errorf("Add: expected transport error, got %v", err)
			}
			if _, err := client.Update(ctx, models.Mobile{ID: 1}); !apperrors.HasCode(err, apperrors.ErrCodeTransport) {
				t.Errorf("Update: expected transport error, got %v", err)
			}
			if _, err := client.DeleteByID(ctx, "1"); !apperrors.HasCode(err, apperrors.ErrCodeTransport) {
				t.Errorf("DeleteByID: expected transport error, got %v", err)
			}
		})
	}
}

func TestClient_AddIgnoresNonRecordBody(t *testing.T) {
	client := NewClient("http://api.test", &mockHTTPClient{
		DoFunc: func(req *http.Request) (*http.Response, error) {
			return textResponse(http.StatusCreated, "created"), nil
		},
	})

	got, err := client.Add(context.Background(), models.Mobile{ID: 1})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil record for non-JSON body, got %+v", got)
	}
}

func TestClient_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL, srv.Client()).ListAll(ctx)
	if !apperrors.HasCode(err, apperrors.ErrCodeTransport) {
		t.Errorf("Expected transport error for cancelled context, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected wrapped context.Canceled, got %v", err)
	}
}
