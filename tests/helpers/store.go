// Package helpers builds the in-memory fixtures shared by package tests.
package helpers

import (
	"context"
	"testing"

	"github.com/helloasmak/vyra/internal/content"
	"github.com/helloasmak/vyra/internal/policy"
	"github.com/helloasmak/vyra/internal/repository"
)

// NewTestSQLiteStore opens an in-memory inquiry store closed at test cleanup.
func NewTestSQLiteStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create sqlite store: %v", err)
	}

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

// NewTestCatalog returns the embedded content catalog.
func NewTestCatalog(t *testing.T) *content.Store {
	t.Helper()

	catalog, err := content.Default()
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return catalog
}

// NewTestPolicyEngine compiles the default admission policy.
func NewTestPolicyEngine(t *testing.T) *policy.Engine {
	t.Helper()

	engine, err := policy.NewEngine(context.Background(), policy.DefaultPolicy)
	if err != nil {
		t.Fatalf("failed to create policy engine: %v", err)
	}
	return engine
}
