package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/maksimkurb/mobile-manager/src/internal/inventory"
	"github.com/maksimkurb/mobile-manager/src/internal/models"
)

func newTestBackend(t *testing.T, initial ...models.Mobile) (http.Handler, *inventory.Store) {
	t.Helper()
	store, err := inventory.NewStore(initial...)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return NewBackendRouter(store), store
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) APIError {
	t.Helper()
	var resp ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response %q: %v", rec.Body.String(), err)
	}
	return resp.Error
}

var phone = models.Mobile{ID: 1, Brand: "Acme", Model: "X1", Price: 199.99, Color: "black"}

func TestBackend_ListAll(t *testing.T) {
	h, _ := newTestBackend(t, models.Mobile{ID: 2, Brand: "B", Model: "M", Price: 1, Color: "c"}, phone)

	rec := serve(h, http.MethodGet, "/api/mobiles/all", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var got []models.Mobile
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("Expected records ordered by id, got %+v", got)
	}
}

func TestBackend_ListAllEmptyIsArray(t *testing.T) {
	h, _ := newTestBackend(t)

	rec := serve(h, http.MethodGet, "/api/mobiles/all", "")
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("Expected empty JSON array, got %q", rec.Body.String())
	}
}

func TestBackend_GetByID(t *testing.T) {
	h, _ := newTestBackend(t, phone)

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantErr  ErrorCode
	}{
		{"found", "/api/mobiles/get/1", http.StatusOK, ""},
		{"missing", "/api/mobiles/get/99", http.StatusNotFound, ErrCodeNotFound},
		{"not a number", "/api/mobiles/get/abc", http.StatusBadRequest, ErrCodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h, http.MethodGet, tt.path, "")
			if rec.Code != tt.wantCode {
				t.Fatalf("Expected %d, got %d", tt.wantCode, rec.Code)
			}
			if tt.wantErr != "" {
				if got := decodeError(t, rec); got.Code != tt.wantErr {
					t.Errorf("Expected error code %s, got %s", tt.wantErr, got.Code)
				}
				return
			}
			var got models.Mobile
			json.NewDecoder(rec.Body).Decode(&got)
			if !reflect.DeepEqual(got, phone) {
				t.Errorf("Got %+v, want %+v", got, phone)
			}
		})
	}
}

func TestBackend_Add(t *testing.T) {
	h, store := newTestBackend(t, phone)

	rec := serve(h, http.MethodPost, "/api/mobiles/add", `{"id":5,"brand":"Globex","model":"G5","price":50,"color":"red"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if _, err := store.Get(5); err != nil {
		t.Errorf("Expected record 5 to be stored: %v", err)
	}

	rec = serve(h, http.MethodPost, "/api/mobiles/add", `{"brand":"Globex","model":"G6","price":60,"color":"red"}`)
	var created models.Mobile
	json.NewDecoder(rec.Body).Decode(&created)
	if created.ID != 6 {
		t.Errorf("Expected assigned id 6, got %d", created.ID)
	}
}

func TestBackend_AddErrors(t *testing.T) {
	h, _ := newTestBackend(t, phone)

	tests := []struct {
		name        string
		body        string
		contentType string
		wantCode    int
		wantErr     ErrorCode
		wantField   string
	}{
		{"duplicate id", `{"id":1,"brand":"A","model":"B","price":1,"color":"C"}`, "application/json", http.StatusConflict, ErrCodeConflict, ""},
		{"blank brand", `{"id":2,"brand":"  ","model":"B","price":1,"color":"C"}`, "application/json", http.StatusBadRequest, ErrCodeValidationFailed, "brand"},
		{"zero price", `{"id":2,"brand":"A","model":"B","price":0,"color":"C"}`, "application/json", http.StatusBadRequest, ErrCodeValidationFailed, "price"},
		{"malformed", `{"id":`, "application/json", http.StatusBadRequest, ErrCodeInvalidRequest, ""},
		{"wrong content type", `id=2`, "text/plain", http.StatusBadRequest, ErrCodeInvalidRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/mobiles/add", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("Expected %d, got %d: %s", tt.wantCode, rec.Code, rec.Body.String())
			}
			apiErr := decodeError(t, rec)
			if apiErr.Code != tt.wantErr {
				t.Errorf("Expected code %s, got %s", tt.wantErr, apiErr.Code)
			}
			if tt.wantField != "" {
				if _, ok := apiErr.Details[tt.wantField]; !ok {
					t.Errorf("Expected details for %q, got %v", tt.wantField, apiErr.Details)
				}
			}
		})
	}
}

func TestBackend_Update(t *testing.T) {
	h, store := newTestBackend(t, phone)

	rec := serve(h, http.MethodPut, "/api/mobiles/update", `{"id":1,"brand":"Acme","model":"X1","price":149.5,"color":"white"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got, _ := store.Get(1); got.Price != 149.5 || got.Color != "white" {
		t.Errorf("Record not updated: %+v", got)
	}

	rec = serve(h, http.MethodPut, "/api/mobiles/update", `{"id":42,"brand":"A","model":"B","price":1,"color":"C"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for missing record, got %d", rec.Code)
	}

	rec = serve(h, http.MethodPut, "/api/mobiles/update", `{"brand":"A","model":"B","price":1,"color":"C"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing id, got %d", rec.Code)
	}
}

func TestBackend_Delete(t *testing.T) {
	h, store := newTestBackend(t, phone)

	rec := serve(h, http.MethodDelete, "/api/mobiles/delete/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "Deleted mobile 1" {
		t.Errorf("Unexpected body %q", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Expected text/plain, got %q", ct)
	}
	if store.Len() != 0 {
		t.Errorf("Expected record to be removed")
	}

	rec = serve(h, http.MethodDelete, "/api/mobiles/delete/1", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 on second delete, got %d", rec.Code)
	}
}

func TestBackend_CORSPreflight(t *testing.T) {
	h, _ := newTestBackend(t)

	rec := serve(h, http.MethodOptions, "/api/mobiles/add", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected 204, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("Expected CORS header")
	}
}
