package manager

import (
	"github.com/maksimkurb/mobile-manager/src/internal/models"
)

// StatusKind selects how a status message is presented.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusSuccess
	StatusError
	StatusInfo
)

func (k StatusKind) String() string {
	switch k {
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	case StatusInfo:
		return "info"
	}
	return ""
}

// Status is the banner message.
type Status struct {
	Text string
	Kind StatusKind
}

// Mode is the form mode.
type Mode int

const (
	ModeAdding Mode = iota
	ModeEditing
)

func (m Mode) String() string {
	if m == ModeEditing {
		return "editing"
	}
	return "adding"
}

// State is everything the screen shows.
type State struct {
	Records      []models.Mobile
	Form         Form
	LookupID     string
	LookupResult *models.Mobile
	Status       Status
	Editing      bool
}

// InitialState is the state before the first list load.
func InitialState() State {
	return State{Records: []models.Mobile{}}
}

// Mode returns ModeEditing while an existing record is loaded in the form.
func (s State) Mode() Mode {
	if s.Editing {
		return ModeEditing
	}
	return ModeAdding
}

// FindRecord looks a record up in the current list.
func (s State) FindRecord(id int64) (models.Mobile, bool) {
	for _, r := range s.Records {
		if r.ID == id {
			return r, true
		}
	}
	return models.Mobile{}, false
}

// Clone returns a copy that shares no memory with s.
func (s State) Clone() State {
	c := s
	c.Records = append([]models.Mobile{}, s.Records...)
	if s.LookupResult != nil {
		r := *s.LookupResult
		c.LookupResult = &r
	}
	return c
}
