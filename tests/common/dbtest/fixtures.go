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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPasswordHash is the bcrypt hash of "password123".
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, password_hash, role, first_name, last_name, phone, is_active)
		VALUES ($1, $2, $3, $4, 'Test', 'User', '+54 11 5555-0000', true)
		ON CONFLICT (lower(email)) DO NOTHING`,
		userID, email, TestPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE lower(email) = lower($1)", email).Scan(&userID)
	}

	return userID
}

func CreateTestReservation(t *testing.T, db DBLike, customerID uuid.UUID, date time.Time, turn, zone string, partySize int) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `INSERT INTO reservations (customer_id, date, turn, zone, party_size)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		customerID, date, turn, zone, partySize).Scan(&id)
	require.NoError(t, err)
	return id
}

func SetCapacity(t *testing.T, db DBLike, front, gallery, hall, maxAdvanceDays int) {
	t.Helper()

	_, err := db.Exec(context.Background(), `INSERT INTO capacity_config (id, front_capacity, gallery_capacity, hall_capacity, max_advance_days)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET front_capacity = EXCLUDED.front_capacity,
			gallery_capacity = EXCLUDED.gallery_capacity, hall_capacity = EXCLUDED.hall_capacity,
			max_advance_days = EXCLUDED.max_advance_days, updated_at = now()`,
		front, gallery, hall, maxAdvanceDays)
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO capacity_config (id, front_capacity, gallery_capacity, hall_capacity, max_advance_days)
		VALUES (1, 30, 200, 500, 30)
		ON CONFLICT (id) DO NOTHING;
	`)
	return err
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
		    AND tablename NOT IN ('goose_db_version')`)
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
