package api

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maksimkurb/mobile-manager/src/frontend"
	"github.com/maksimkurb/mobile-manager/src/internal/log"
	"github.com/maksimkurb/mobile-manager/src/internal/manager"
	"github.com/maksimkurb/mobile-manager/src/internal/models"
)

// Form actions accepted by POST /form.
const (
	ActionAdd    = "add"
	ActionUpdate = "update"
	ActionCancel = "cancel"
)

var fieldLabels = map[string]string{
	manager.FieldID:    "ID",
	manager.FieldBrand: "Brand",
	manager.FieldModel: "Model",
	manager.FieldPrice: "Price",
	manager.FieldColor: "Color",
}

// inputView describes one form input.
type inputView struct {
	Name  string
	Label string
	Type  string
	Value string
}

// pageView is the data passed to the page template.
type pageView struct {
	Status       manager.Status
	Heading      string
	Editing      bool
	Inputs       []inputView
	LookupID     string
	LookupResult *models.Mobile
	Columns      []string
	Records      []models.Mobile
}

func newPageView(s manager.State) pageView {
	view := pageView{
		Status:       s.Status,
		Heading:      "Add Mobile",
		Editing:      s.Mode() == manager.ModeEditing,
		LookupID:     s.LookupID,
		LookupResult: s.LookupResult,
		Columns:      manager.FieldOrder,
		Records:      s.Records,
	}
	if view.Editing {
		view.Heading = "Edit Mobile"
	}

	for _, field := range manager.FieldOrder {
		inputType := "text"
		if field == manager.FieldID || field == manager.FieldPrice {
			inputType = "number"
		}
		view.Inputs = append(view.Inputs, inputView{
			Name:  field,
			Label: fieldLabels[field],
			Type:  inputType,
			Value: s.Form.Get(field),
		})
	}
	return view
}

// UIHandler serves the Manager View.
type UIHandler struct {
	sessions  *SessionStore
	templates *template.Template
}

// NewUIHandler creates a UI handler using the embedded page template.
func NewUIHandler(sessions *SessionStore) (*UIHandler, error) {
	tmpl, err := frontend.Templates()
	if err != nil {
		return nil, err
	}
	return &UIHandler{sessions: sessions, templates: tmpl}, nil
}

// manager returns the session's Manager, loading its list on first use.
func (h *UIHandler) manager(w http.ResponseWriter, r *http.Request) *manager.Manager {
	m := h.sessions.Manager(w, r)
	m.Mount(r.Context())
	return m
}

// Index renders the page.
// GET /
func (h *UIHandler) Index(w http.ResponseWriter, r *http.Request) {
	m := h.manager(w, r)

	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, frontend.IndexTemplate, newPageView(m.State())); err != nil {
		log.Errorf("Failed to render page: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(buf.Bytes())
}

// SubmitForm copies the posted inputs into the form and runs the action.
// POST /form
func (h *UIHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	m := h.manager(w, r)

	action := r.PostForm.Get("action")
	if action == ActionCancel {
		m.ResetForm()
		redirectHome(w, r)
		return
	}

	for _, field := range manager.FieldOrder {
		if values, ok := r.PostForm[field]; ok && len(values) > 0 {
			m.ChangeField(field, values[0])
		}
	}

	switch action {
	case ActionAdd:
		m.SubmitAdd(r.Context())
	case ActionUpdate:
		m.SubmitUpdate(r.Context())
	default:
		http.Error(w, "Unknown action", http.StatusBadRequest)
		return
	}
	redirectHome(w, r)
}

// Lookup fetches the record whose id was posted as lookup_id.
// POST /lookup
func (h *UIHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	m := h.manager(w, r)

	m.SetLookupID(r.PostForm.Get("lookup_id"))
	m.FetchByID(r.Context())
	redirectHome(w, r)
}

// Edit loads a listed record into the form.
// POST /edit/{id}
func (h *UIHandler) Edit(w http.ResponseWriter, r *http.Request) {
	m := h.manager(w, r)

	id := chi.URLParam(r, "id")
	if !m.EditByID(id) {
		log.Debugf("Edit of unlisted mobile %q ignored", id)
	}
	redirectHome(w, r)
}

// Delete removes a record.
// POST /delete/{id}
func (h *UIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	m := h.manager(w, r)
	m.Delete(r.Context(), chi.URLParam(r, "id"))
	redirectHome(w, r)
}

// Health answers liveness probes.
// GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
