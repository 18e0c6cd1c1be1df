package repository

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		fmt.Println("TEST_DATABASE_URL not set, skipping repository integration tests")
		os.Exit(0)
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect to test database: %v\n", err)
		os.Exit(1)
	}
	testPool = pool

	code := m.Run()
	pool.Close()
	os.Exit(code)
}

// cleanupTable truncates tables in FK order before a test runs.
func cleanupTable(t *testing.T, tables ...string) {
	t.Helper()
	for _, table := range tables {
		if _, err := testPool.Exec(context.Background(), fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Fatalf("cleanup table %s: %v", table, err)
		}
	}
}
