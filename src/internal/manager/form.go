package manager

import (
	"strconv"
	"strings"

	"github.com/maksimkurb/mobile-manager/src/internal/models"
)

const (
	FieldID    = "id"
	FieldBrand = "brand"
	FieldModel = "model"
	FieldPrice = "price"
	FieldColor = "color"
)

// FieldOrder is the order of form inputs, table columns and validation.
// The first empty field in this order is the one named in the error message.
var FieldOrder = []string{FieldID, FieldBrand, FieldModel, FieldPrice, FieldColor}

// Form holds the raw text of the five inputs.
type Form struct {
	ID    string
	Brand string
	Model string
	Price string
	Color string
}

// Get returns the value of a field by name, or "" for unknown names.
func (f Form) Get(field string) string {
	switch field {
	case FieldID:
		return f.ID
	case FieldBrand:
		return f.Brand
	case FieldModel:
		return f.Model
	case FieldPrice:
		return f.Price
	case FieldColor:
		return f.Color
	}
	return ""
}

// Set updates a field by name. It reports false for unknown names and leaves
// the form untouched.
func (f *Form) Set(field, value string) bool {
	switch field {
	case FieldID:
		f.ID = value
	case FieldBrand:
		f.Brand = value
	case FieldModel:
		f.Model = value
	case FieldPrice:
		f.Price = value
	case FieldColor:
		f.Color = value
	default:
		return false
	}
	return true
}

// IsEmpty reports whether the form is at its defaults.
func (f Form) IsEmpty() bool {
	return f == (Form{})
}

// FormFromMobile fills a form with a record's values.
func FormFromMobile(m models.Mobile) Form {
	return Form{
		ID:    strconv.FormatInt(m.ID, 10),
		Brand: m.Brand,
		Model: m.Model,
		Price: strconv.FormatFloat(m.Price, 'f', -1, 64),
		Color: m.Color,
	}
}

// Mobile converts a form to a record. Run Validate first; Mobile only
// reports parse failures.
func (f Form) Mobile() (models.Mobile, error) {
	id, err := parseID(f.ID)
	if err != nil {
		return models.Mobile{}, err
	}
	price, err := parsePrice(f.Price)
	if err != nil {
		return models.Mobile{}, err
	}

	return models.Mobile{
		ID:    id,
		Brand: strings.TrimSpace(f.Brand),
		Model: strings.TrimSpace(f.Model),
		Price: price,
		Color: strings.TrimSpace(f.Color),
	}, nil
}

func parseID(value string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(value), 10, 64)
}

func parsePrice(value string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(value), 64)
}
