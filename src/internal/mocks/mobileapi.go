// Package mocks provides mock implementations for testing.
//
// This package should ONLY be imported in test files (_test.go).
package mocks

import (
	"context"
	"sync"

	"github.com/maksimkurb/mobile-manager/src/internal/models"
)

// MockMobileClient is a mock implementation of the domain.MobileClient interface.
//
// Each method delegates to the matching function field when it is set.
// If a function field is nil, the method succeeds with an empty result.
// Every call is recorded so tests can assert what reached the "server".
//
// Example usage:
//
//	mock := &MockMobileClient{
//	    ListAllFunc: func(ctx context.Context) ([]models.Mobile, error) {
//	        return []models.Mobile{{ID: 1, Brand: "Acme"}}, nil
//	    },
//	}
type MockMobileClient struct {
	ListAllFunc    func(ctx context.Context) ([]models.Mobile, error)
	GetByIDFunc    func(ctx context.Context, id string) (*models.Mobile, error)
	AddFunc        func(ctx context.Context, mobile models.Mobile) (*models.Mobile, error)
	UpdateFunc     func(ctx context.Context, mobile models.Mobile) (*models.Mobile, error)
	DeleteByIDFunc func(ctx context.Context, id string) (string, error)

	mu    sync.Mutex
	calls []Call
}

// Call records one invocation.
type Call struct {
	Method string
	ID     string
	Mobile *models.Mobile
}

// Calls returns a copy of the recorded calls.
func (m *MockMobileClient) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

// CallsTo returns the recorded calls of one method.
func (m *MockMobileClient) CallsTo(method string) []Call {
	var result []Call
	for _, c := range m.Calls() {
		if c.Method == method {
			result = append(result, c)
		}
	}
	return result
}

func (m *MockMobileClient) record(c Call) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, c)
}

// ListAll returns the list from ListAllFunc or an empty list.
func (m *MockMobileClient) ListAll(ctx context.Context) ([]models.Mobile, error) {
	m.record(Call{Method: "ListAll"})
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return []models.Mobile{}, nil
}

// GetByID returns the record from GetByIDFunc or a zero record.
func (m *MockMobileClient) GetByID(ctx context.Context, id string) (*models.Mobile, error) {
	m.record(Call{Method: "GetByID", ID: id})
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &models.Mobile{}, nil
}

// Add returns the result of AddFunc or echoes the record.
func (m *MockMobileClient) Add(ctx context.Context, mobile models.Mobile) (*models.Mobile, error) {
	m.record(Call{Method: "Add", Mobile: &mobile})
	if m.AddFunc != nil {
		return m.AddFunc(ctx, mobile)
	}
	return &mobile, nil
}

// Update returns the result of UpdateFunc or echoes the record.
func (m *MockMobileClient) Update(ctx context.Context, mobile models.Mobile) (*models.Mobile, error) {
	m.record(Call{Method: "Update", Mobile: &mobile})
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, mobile)
	}
	return &mobile, nil
}

// DeleteByID returns the result of DeleteByIDFunc or an empty message.
func (m *MockMobileClient) DeleteByID(ctx context.Context, id string) (string, error) {
	m.record(Call{Method: "DeleteByID", ID: id})
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return "", nil
}
