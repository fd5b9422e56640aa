package recordstore

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds every request when Config.Timeout is zero
const DefaultTimeout = 10 * time.Second

// Config holds configuration for the record store client
type Config struct {
	// BaseURL is the database root, e.g. https://example.firebaseio.com
	BaseURL string

	// Secret is sent as the auth query parameter
	Secret string

	// Timeout applies to each request
	Timeout time.Duration

	// HTTPClient defaults to a client with Timeout
	HTTPClient *http.Client
}

// Query filters the children of a path. Zero values are omitted.
type Query struct {
	// OrderBy is a child key, "$key" or "$value". Defaults to "$key".
	OrderBy      string
	LimitToFirst int
	LimitToLast  int
	StartAt      *string
	EndAt        *string
	EqualTo      *string
}
