package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/maksimkurb/mobile-manager/src/internal/inventory"
	"github.com/maksimkurb/mobile-manager/src/internal/log"
	"github.com/maksimkurb/mobile-manager/src/internal/models"
)

// maxBodyBytes caps the size of a decoded request body.
const maxBodyBytes = 1 << 20

// BackendHandler serves the /api/mobiles endpoints from an inventory store.
type BackendHandler struct {
	store    *inventory.Store
	validate *validator.Validate
}

// NewBackendHandler creates a handler backed by store.
func NewBackendHandler(store *inventory.Store) *BackendHandler {
	return &BackendHandler{
		store:    store,
		validate: newRecordValidator(),
	}
}

// newRecordValidator returns a validator that knows the "notblank" tag and
// reports fields by their JSON names.
func newRecordValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ListAll returns every record ordered by id.
// GET /api/mobiles/all
func (h *BackendHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.List())
}

// GetByID returns a single record.
// GET /api/mobiles/get/{id}
func (h *BackendHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	mobile, err := h.store.Get(id)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mobile)
}

// Add creates a record. An id of 0 is replaced by the next free id.
// POST /api/mobiles/add
func (h *BackendHandler) Add(w http.ResponseWriter, r *http.Request) {
	mobile, ok := h.decodeMobile(w, r)
	if !ok {
		return
	}

	created, err := h.store.Add(mobile)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	log.Infof("Added mobile %d (%s %s)", created.ID, created.Brand, created.Model)
	writeJSON(w, http.StatusCreated, created)
}

// Update replaces the record with the body's id.
// PUT /api/mobiles/update
func (h *BackendHandler) Update(w http.ResponseWriter, r *http.Request) {
	mobile, ok := h.decodeMobile(w, r)
	if !ok {
		return
	}
	if mobile.ID == 0 {
		WriteValidationError(w, "Validation failed", map[string]interface{}{
			"id": "id is required for update",
		})
		return
	}

	updated, err := h.store.Update(mobile)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	log.Infof("Updated mobile %d", updated.ID)
	writeJSON(w, http.StatusOK, updated)
}

// DeleteByID removes a record and answers with a plain-text confirmation.
// DELETE /api/mobiles/delete/{id}
func (h *BackendHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(id); err != nil {
		WriteDomainError(w, err)
		return
	}

	log.Infof("Deleted mobile %d", id)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Deleted mobile %d", id)
}

// decodeMobile reads and validates a record body. On failure it writes the
// error response and returns false.
func (h *BackendHandler) decodeMobile(w http.ResponseWriter, r *http.Request) (models.Mobile, bool) {
	var mobile models.Mobile
	if err := decodeJSON(w, r, &mobile); err != nil {
		WriteInvalidRequest(w, "Invalid JSON: "+err.Error())
		return mobile, false
	}

	if err := h.validate.Struct(mobile); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			WriteInternalError(w, err.Error())
			return mobile, false
		}

		details := make(map[string]interface{}, len(verrs))
		for _, e := range verrs {
			details[e.Field()] = fieldMessage(e)
		}
		WriteValidationError(w, "Validation failed", details)
		return mobile, false
	}

	return mobile, true
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "notblank":
		return e.Field() + " is required"
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "gte":
		return e.Field() + " must be at least " + e.Param()
	}
	return fmt.Sprintf("%s failed on %s", e.Field(), e.Tag())
}

// parseIDParam reads the {id} URL parameter. On failure it writes a 400.
func parseIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		WriteInvalidRequest(w, fmt.Sprintf("Invalid id %q", raw))
		return 0, false
	}
	return id, true
}

// writeJSON writes data as a JSON response.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Warnf("Failed to encode response: %v", err)
	}
}

// decodeJSON decodes JSON from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}
