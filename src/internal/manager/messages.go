package manager

import (
	"strconv"

	"github.com/valyala/fasttemplate"
)

const (
	MsgFetchFailed  = "Failed to fetch mobiles."
	MsgAdded        = "Mobile added successfully."
	MsgAddFailed    = "Error adding mobile."
	MsgUpdated      = "Mobile updated successfully."
	MsgUpdateFailed = "Error updating mobile."
	MsgDeleteFailed = "Error deleting mobile."
	MsgNotFound     = "Mobile not found."
	MsgInvalidPrice = "Price must be a valid positive number."
	MsgInvalidID    = "ID must be a valid number."
)

var (
	editingTemplate  = fasttemplate.New("Editing mobile with ID {{id}}", "{{", "}}")
	requiredTemplate = fasttemplate.New("Please fill out the {{field}} field.", "{{", "}}")
)

// EditingMessage is shown when a record is loaded into the form.
func EditingMessage(id int64) string {
	return editingTemplate.ExecuteString(map[string]interface{}{
		"id": strconv.FormatInt(id, 10),
	})
}

// RequiredMessage names the first empty field.
func RequiredMessage(field string) string {
	return requiredTemplate.ExecuteString(map[string]interface{}{
		"field": field,
	})
}
