package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/fhuszti/showcase-ms-go/internal/querycatalog"
)

type stubBackend map[string]error

func (b stubBackend) Check(_ context.Context, spec querycatalog.QuerySpec) error {
	return b[spec.Name]
}

func TestVerifyIndexesHandler(t *testing.T) {
	tests := []struct {
		name    string
		backend stubBackend
	}{
		{name: "all ready", backend: stubBackend{}},
		{name: "missing index", backend: stubBackend{
			querycatalog.ProductsFeatured.Name: &querycatalog.IndexMissingError{
				Spec:       querycatalog.ProductsFeatured,
				Statements: []string{querycatalog.ProductsFeatured.CreateIndexStatement()},
			},
		}},
		{name: "backend down", backend: stubBackend{querycatalog.EventsActive.Name: errors.New("connection refused")}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := querycatalog.NewVerifier(tc.backend, nil)
			if err := VerifyIndexesHandler(context.Background(), v); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
