//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"comma-backend/internal/pkg/password"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const (
	// "testpass123" hashed once per process; bcrypt is too slow to run per insert.
	TestEmployeePassword = "testpass123"

	SeedBranchName = "Cairo"
)

var (
	hashOnce     sync.Once
	passwordHash string
)

func testPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		hash, err := password.HashPassword(TestEmployeePassword)
		require.NoError(t, err)
		passwordHash = hash
	})
	return passwordHash
}

func CreateTestEmployee(t *testing.T, db DBLike, nationalID, role string) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx,
		`INSERT INTO employees (name, password_hash, role, national_id, branch)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (national_id) DO UPDATE SET role = EXCLUDED.role
		 RETURNING id`,
		"Test "+role, testPasswordHash(t), role, nationalID, SeedBranchName).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestCustomer(t *testing.T, db DBLike, code, name string) string {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		`INSERT INTO customers (id, name, phone) VALUES ($1, $2, '0100000000')
		 ON CONFLICT (id) DO NOTHING`, code, name)
	require.NoError(t, err)

	return code
}

func CreateTestRoom(t *testing.T, db DBLike, name string, price float64, priceType string) int64 {
	t.Helper()

	ctx := context.Background()
	var branchID int64
	err := db.QueryRow(ctx, "SELECT id FROM branches WHERE name = $1", SeedBranchName).Scan(&branchID)
	require.NoError(t, err)

	var id int64
	err = db.QueryRow(ctx,
		`INSERT INTO rooms (name, branch_id, type, capacity, price, price_type)
		 VALUES ($1, $2, 'private', 4, $3, $4)
		 ON CONFLICT (name) DO UPDATE SET price = EXCLUDED.price
		 RETURNING id`,
		name, branchID, price, priceType).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestKitchenItem(t *testing.T, db DBLike, name string, price float64) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx,
		`INSERT INTO kitchen_items (name, price, category, availability)
		 VALUES ($1, $2, 'drinks', 'available') RETURNING id`,
		name, price).Scan(&id)
	require.NoError(t, err)

	return id
}

// BackdateCheckIn rewrites a booking's check-in time so elapsed-time billing
// can be asserted without sleeping in tests.
func BackdateCheckIn(t *testing.T, db DBLike, table string, minutes int) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		fmt.Sprintf("UPDATE %s SET check_in_time = check_in_time - make_interval(mins => $1) WHERE status = 'active'", table),
		minutes)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		"UPDATE active_customers SET check_in_time = check_in_time - make_interval(mins => $1)", minutes)
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO branches (name, location, phone) VALUES
		    ('Cairo', 'Downtown', '0221234567'),
		    ('Alexandria', 'Corniche', '0349876543')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
