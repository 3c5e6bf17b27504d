package mobileapi_test

import (
	"context"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/maksimkurb/mobile-manager/src/internal/api"
	apperrors "github.com/maksimkurb/mobile-manager/src/internal/errors"
	"github.com/maksimkurb/mobile-manager/src/internal/inventory"
	"github.com/maksimkurb/mobile-manager/src/internal/mobileapi"
	"github.com/maksimkurb/mobile-manager/src/internal/models"
)

func TestClient_AgainstBackend(t *testing.T) {
	store, err := inventory.NewStore()
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	srv := httptest.NewServer(api.NewBackendRouter(store))
	defer srv.Close()

	client := mobileapi.NewClient(srv.URL+"/", srv.Client())
	ctx := context.Background()

	list, err := client.ListAll(ctx)
	if err != nil || len(list) != 0 {
		t.Fatalf("ListAll() = %v, %v; want empty", list, err)
	}

	acme := models.Mobile{ID: 1, Brand: "Acme", Model: "X1", Price: 199.99, Color: "black"}
	created, err := client.Add(ctx, acme)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if created == nil || !reflect.DeepEqual(*created, acme) {
		t.Errorf("Add() = %+v, want %+v", created, acme)
	}

	if _, err := client.Add(ctx, acme); !apperrors.HasCode(err, apperrors.ErrCodeTransport) {
		t.Errorf("Expected duplicate add to fail, got %v", err)
	}

	got, err := client.GetByID(ctx, "1")
	if err != nil || !reflect.DeepEqual(*got, acme) {
		t.Errorf("GetByID() = %+v, %v", got, err)
	}

	if _, err := client.GetByID(ctx, "999"); !apperrors.HasCode(err, apperrors.ErrCodeTransport) {
		t.Errorf("Expected 404 to surface as transport error, got %v", err)
	}

	acme.Price = 149.5
	updated, err := client.Update(ctx, acme)
	if err != nil || updated.Price != 149.5 {
		t.Errorf("Update() = %+v, %v", updated, err)
	}

	message, err := client.DeleteByID(ctx, "1")
	if err != nil {
		t.Fatalf("DeleteByID failed: %v", err)
	}
	if message != "Deleted mobile 1" {
		t.Errorf("DeleteByID() = %q", message)
	}

	if list, _ := client.ListAll(ctx); len(list) != 0 {
		t.Errorf("Expected empty list after delete, got %+v", list)
	}
}
