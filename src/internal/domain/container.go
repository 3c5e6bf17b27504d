package domain

import (
	"net/http"
	"time"

	"github.com/maksimkurb/mobile-manager/src/internal/mobileapi"
)

// AppDependencies is a dependency injection container that holds all application dependencies.
//
// Usage:
//
//	deps := domain.NewAppDependencies(domain.AppConfig{
//	    APIURL: "http://localhost:8080",
//	})
//	mobiles, err := deps.MobileClient().ListAll(ctx)
type AppDependencies struct {
	mobileClient MobileClient
}

// AppConfig holds configuration for creating application dependencies.
type AppConfig struct {
	// APIURL is the base URL of the mobiles REST API. "/api/mobiles" is appended.
	APIURL string

	// RequestTimeout bounds each API request. Zero keeps the transport default.
	RequestTimeout time.Duration
}

// NewAppDependencies creates a new dependency container with production implementations.
func NewAppDependencies(cfg AppConfig) *AppDependencies {
	httpClient := &http.Client{Timeout: cfg.RequestTimeout}

	return &AppDependencies{
		mobileClient: mobileapi.NewClient(cfg.APIURL, httpClient),
	}
}

// NewTestDependencies creates a container around an injected client.
func NewTestDependencies(client MobileClient) *AppDependencies {
	return &AppDependencies{mobileClient: client}
}

// MobileClient returns the API client.
func (d *AppDependencies) MobileClient() MobileClient {
	return d.mobileClient
}
