package manager

import (
	"context"
	"strconv"
	"sync"

	"github.com/maksimkurb/mobile-manager/src/internal/domain"
	"github.com/maksimkurb/mobile-manager/src/internal/log"
	"github.com/maksimkurb/mobile-manager/src/internal/models"
)

// Manager drives one screen: it owns a State and turns user intents into API
// calls and actions.
//
// The mutex only keeps State consistent in memory. API calls run without it,
// so two overlapping operations both apply their result and the one that
// finishes last wins.
type Manager struct {
	client domain.MobileClient

	mu      sync.Mutex
	state   State
	mounted bool
}

// NewManager creates a manager in the initial Adding state with an empty list.
func NewManager(client domain.MobileClient) *Manager {
	return &Manager{
		client: client,
		state:  InitialState(),
	}
}

// State returns a snapshot of the current state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone()
}

// Dispatch applies an action to the state.
func (m *Manager) Dispatch(a Action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = Reduce(m.state, a)
}

// Mount loads the list the first time it is called and does nothing afterwards.
func (m *Manager) Mount(ctx context.Context) {
	m.mu.Lock()
	if m.mounted {
		m.mu.Unlock()
		return
	}
	m.mounted = true
	m.mu.Unlock()

	m.Refresh(ctx)
}

// Refresh re-fetches the full list.
func (m *Manager) Refresh(ctx context.Context) {
	records, err := m.client.ListAll(ctx)
	if err != nil {
		log.Warnf("Failed to fetch mobiles: %v", err)
		m.Dispatch(ListFailed{})
		return
	}
	m.Dispatch(ListLoaded{Records: records})
}

// ChangeField updates one form input. Unknown field names are ignored and
// reported as false.
func (m *Manager) ChangeField(field, value string) bool {
	var f Form
	if !f.Set(field, value) {
		log.Debugf("Ignoring change of unknown field %q", field)
		return false
	}
	m.Dispatch(FieldChanged{Field: field, Value: value})
	return true
}

// SetLookupID updates the lookup input.
func (m *Manager) SetLookupID(id string) {
	m.Dispatch(LookupIDChanged{ID: id})
}

// SubmitAdd validates the form and creates a record from it.
func (m *Manager) SubmitAdd(ctx context.Context) {
	m.submit(ctx, "add", m.client.Add, AddSucceeded{}, AddFailed{})
}

// SubmitUpdate validates the form and updates the record its id points at.
func (m *Manager) SubmitUpdate(ctx context.Context) {
	m.submit(ctx, "update", m.client.Update, UpdateSucceeded{}, UpdateFailed{})
}

func (m *Manager) submit(
	ctx context.Context,
	op string,
	call func(context.Context, models.Mobile) (*models.Mobile, error),
	succeeded, failed Action,
) {
	form := m.State().Form

	if verr := Validate(form); verr != nil {
		m.Dispatch(ValidationFailed{Err: verr})
		return
	}

	mobile, err := form.Mobile()
	if err != nil {
		// Validate already rejected unparsable values.
		m.Dispatch(failed)
		return
	}

	if _, err := call(ctx, mobile); err != nil {
		log.Warnf("Failed to %s mobile %d: %v", op, mobile.ID, err)
		m.Dispatch(failed)
		return
	}

	log.Debugf("Mobile %d: %s succeeded", mobile.ID, op)
	m.Dispatch(succeeded)
	m.Refresh(ctx)
}

// Delete removes a record and shows the server's confirmation verbatim.
func (m *Manager) Delete(ctx context.Context, id string) {
	message, err := m.client.DeleteByID(ctx, id)
	if err != nil {
		log.Warnf("Failed to delete mobile %s: %v", id, err)
		m.Dispatch(DeleteFailed{})
		return
	}

	m.Dispatch(DeleteSucceeded{Message: message})
	m.Refresh(ctx)
}

// FetchByID looks up the record whose id is in the lookup input.
func (m *Manager) FetchByID(ctx context.Context) {
	id := m.State().LookupID

	mobile, err := m.client.GetByID(ctx, id)
	if err != nil || mobile == nil {
		log.Debugf("Lookup of mobile %q failed: %v", id, err)
		m.Dispatch(LookupFailed{})
		return
	}
	m.Dispatch(LookupSucceeded{Record: *mobile})
}

// BeginEdit copies a record into the form and switches to edit mode.
func (m *Manager) BeginEdit(record models.Mobile) {
	m.Dispatch(EditBegan{Record: record})
}

// EditByID begins editing the listed record with the given id. It reports
// false when the id is not in the current list.
func (m *Manager) EditByID(id string) bool {
	parsed, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return false
	}

	record, ok := m.State().FindRecord(parsed)
	if !ok {
		return false
	}
	m.BeginEdit(record)
	return true
}

// ResetForm clears the form and leaves edit mode.
func (m *Manager) ResetForm() {
	m.Dispatch(FormReset{})
}
