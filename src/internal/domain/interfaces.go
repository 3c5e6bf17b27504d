// Package domain defines core interfaces for dependency injection and abstraction.
//
// This package contains the interfaces that decouple the Manager View and the
// HTTP layer from the concrete API client, so tests can substitute mocks.
package domain

import (
	"context"

	"github.com/maksimkurb/mobile-manager/src/internal/models"
)

// MobileClient defines the operations of the mobiles REST API.
//
// Every method returns an error for network failures and non-2xx statuses;
// callers must not rely on the error's shape beyond that.
type MobileClient interface {
	// ListAll returns the full collection.
	ListAll(ctx context.Context) ([]models.Mobile, error)

	// GetByID returns one record or an error if it cannot be fetched.
	GetByID(ctx context.Context, id string) (*models.Mobile, error)

	// Add creates a record and returns the echoed record, if any.
	Add(ctx context.Context, mobile models.Mobile) (*models.Mobile, error)

	// Update replaces the record identified by mobile.ID.
	Update(ctx context.Context, mobile models.Mobile) (*models.Mobile, error)

	// DeleteByID removes a record and returns the confirmation message.
	DeleteByID(ctx context.Context, id string) (string, error)
}
