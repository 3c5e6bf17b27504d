package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maksimkurb/mobile-manager/src/frontend"
	"github.com/maksimkurb/mobile-manager/src/internal/domain"
	"github.com/maksimkurb/mobile-manager/src/internal/inventory"
	"github.com/maksimkurb/mobile-manager/src/internal/mobileapi"
)

// RouterOptions tunes the UI router.
type RouterOptions struct {
	// PrivateSubnetOnly rejects clients outside loopback and private ranges.
	PrivateSubnetOnly bool

	// StaticDir serves /static/ from disk instead of the embedded assets.
	StaticDir string
}

// NewRouter creates the Manager View router.
func NewRouter(deps *domain.AppDependencies, opts RouterOptions) (http.Handler, error) {
	h, err := NewUIHandler(NewSessionStore(deps.MobileClient(), DefaultSessionTTL))
	if err != nil {
		return nil, err
	}

	staticFS, err := frontend.GetHTTPFileSystem(opts.StaticDir)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(Recovery)
	r.Use(Logger)
	if opts.PrivateSubnetOnly {
		r.Use(PrivateSubnetOnly)
	}

	r.Get("/", h.Index)
	r.Post("/form", h.SubmitForm)
	r.Post("/lookup", h.Lookup)
	r.Post("/edit/{id}", h.Edit)
	r.Post("/delete/{id}", h.Delete)
	r.Get("/health", Health)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(staticFS)))

	return r, nil
}

// NewBackendRouter creates the /api/mobiles router backed by store.
func NewBackendRouter(store *inventory.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(Recovery)
	r.Use(Logger)
	r.Use(CORS)
	r.Use(JSONContentType)

	h := NewBackendHandler(store)

	r.Route(mobileapi.PathPrefix, func(r chi.Router) {
		r.Get("/all", h.ListAll)
		r.Get("/get/{id}", h.GetByID)
		r.Post("/add", h.Add)
		r.Put("/update", h.Update)
		r.Delete("/delete/{id}", h.DeleteByID)
	})

	r.Get("/health", Health)

	return r
}
