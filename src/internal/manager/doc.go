// Package manager implements the mobile management screen independently of
// how it is rendered.
//
// All screen state lives in one State value. Every event (a field edit, a
// finished API call, a click on "Edit") is an Action, and Reduce computes the
// next State from the previous one without side effects. Manager wraps a
// State with the API calls that produce those actions:
//
//	m := manager.NewManager(client)
//	m.Mount(ctx)                    // loads the list once
//	m.ChangeField("brand", "Acme")
//	m.SubmitAdd(ctx)                // validate, POST, reset form, reload list
//	st := m.State()                 // snapshot for rendering
//
// The form has two modes. It starts in ModeAdding, switches to ModeEditing on
// BeginEdit, and goes back on a successful submit or ResetForm.
//
// Remote failures never escape a Manager method: they become a status message
// from the fixed set in messages.go.
package manager
