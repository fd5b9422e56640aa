package recordstore

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/KirkDiggler/waterstone/internal/clients/recordstore Client

import "context"

// Client reads and writes JSON documents addressed by slash-separated paths
type Client interface {
	// Get decodes the value at path into out and reports whether it exists
	Get(ctx context.Context, path string, out interface{}) (bool, error)

	// Set overwrites the value at path
	Set(ctx context.Context, path string, value interface{}) error

	// Update merges fields into the value at path
	Update(ctx context.Context, path string, fields map[string]interface{}) error

	// Delete removes the value at path
	Delete(ctx context.Context, path string) error

	// Push appends value under path and returns the generated key
	Push(ctx context.Context, path string, value interface{}) (string, error)

	// Query decodes the filtered children of path into out
	Query(ctx context.Context, path string, query *Query, out interface{}) (bool, error)

	// Exists reports whether a value is stored at path
	Exists(ctx context.Context, path string) (bool, error)

	// Increment adds amount to the number at path and returns the new value
	Increment(ctx context.Context, path string, amount float64) (float64, error)

	// TestConnection writes, reads back and deletes a probe document
	TestConnection(ctx context.Context) error
}
