package sqlite

import (
	"database/sql"
	"testing"

	"github.com/kamyarmaaf/planner/internal/store"
	"github.com/kamyarmaaf/planner/internal/store/storetest"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	db, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open memory db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	s, err := NewWithDB(db)
	if err != nil {
		t.Fatalf("adapter: %v", err)
	}
	return s
}

func TestSqliteStore_Conformance(t *testing.T) {
	storetest.Run(t, newTestStore)
}
