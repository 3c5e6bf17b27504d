package manager

import (
	"github.com/maksimkurb/mobile-manager/src/internal/models"
)

// Action is an event that changes State. See Reduce.
type Action interface {
	isAction()
}

type (
	// FieldChanged edits one form input.
	FieldChanged struct{ Field, Value string }
	// LookupIDChanged edits the lookup input.
	LookupIDChanged struct{ ID string }
	// ListLoaded replaces the record list.
	ListLoaded struct{ Records []models.Mobile }
	// ListFailed reports a failed list fetch.
	ListFailed struct{}
	// ValidationFailed reports a form rejected before sending.
	ValidationFailed struct{ Err *ValidationError }
	AddSucceeded     struct{}
	AddFailed        struct{}
	UpdateSucceeded  struct{}
	UpdateFailed     struct{}
	// DeleteSucceeded carries the server's confirmation text.
	DeleteSucceeded struct{ Message string }
	DeleteFailed    struct{}
	LookupSucceeded struct{ Record models.Mobile }
	LookupFailed    struct{}
	// EditBegan loads a record into the form.
	EditBegan struct{ Record models.Mobile }
	// FormReset clears the form and leaves edit mode.
	FormReset struct{}
)

func (FieldChanged) isAction()     {}
func (LookupIDChanged) isAction()  {}
func (ListLoaded) isAction()       {}
func (ListFailed) isAction()       {}
func (ValidationFailed) isAction() {}
func (AddSucceeded) isAction()     {}
func (AddFailed) isAction()        {}
func (UpdateSucceeded) isAction()  {}
func (UpdateFailed) isAction()     {}
func (DeleteSucceeded) isAction()  {}
func (DeleteFailed) isAction()     {}
func (LookupSucceeded) isAction()  {}
func (LookupFailed) isAction()     {}
func (EditBegan) isAction()        {}
func (FormReset) isAction()        {}

// Reduce returns the state that follows s after a. It never modifies s.
func Reduce(s State, a Action) State {
	next := s.Clone()

	switch a := a.(type) {
	case FieldChanged:
		next.Form.Set(a.Field, a.Value)

	case LookupIDChanged:
		next.LookupID = a.ID

	case ListLoaded:
		next.Records = append([]models.Mobile{}, a.Records...)

	case ListFailed:
		next.Status = Status{Text: MsgFetchFailed, Kind: StatusError}

	case ValidationFailed:
		next.Status = Status{Text: a.Err.Message(), Kind: StatusError}

	case AddSucceeded:
		next.Status = Status{Text: MsgAdded, Kind: StatusSuccess}
		resetForm(&next)

	case AddFailed:
		next.Status = Status{Text: MsgAddFailed, Kind: StatusError}

	case UpdateSucceeded:
		next.Status = Status{Text: MsgUpdated, Kind: StatusSuccess}
		resetForm(&next)

	case UpdateFailed:
		next.Status = Status{Text: MsgUpdateFailed, Kind: StatusError}

	case DeleteSucceeded:
		next.Status = Status{Text: a.Message, Kind: StatusSuccess}

	case DeleteFailed:
		next.Status = Status{Text: MsgDeleteFailed, Kind: StatusError}

	case LookupSucceeded:
		r := a.Record
		next.LookupResult = &r
		next.Status = Status{}

	case LookupFailed:
		next.LookupResult = nil
		next.Status = Status{Text: MsgNotFound, Kind: StatusError}

	case EditBegan:
		next.Form = FormFromMobile(a.Record)
		next.Editing = true
		next.Status = Status{Text: EditingMessage(a.Record.ID), Kind: StatusInfo}

	case FormReset:
		resetForm(&next)
	}

	return next
}

func resetForm(s *State) {
	s.Form = Form{}
	s.Editing = false
}
