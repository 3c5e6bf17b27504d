// Package models defines the records exchanged with the mobiles REST API.
package models

// Mobile is a single inventory entry. ID is assigned by the user and is the
// key for lookup, update and delete.
type Mobile struct {
	ID    int64   `json:"id" toml:"id" validate:"gte=0"`
	Brand string  `json:"brand" toml:"brand" validate:"notblank"`
	Model string  `json:"model" toml:"model" validate:"notblank"`
	Price float64 `json:"price" toml:"price" validate:"gt=0"`
	Color string  `json:"color" toml:"color" validate:"notblank"`
}
