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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, name, email string) int64 {
	t.Helper()

	ctx := context.Background()

	var userID int64
	err := db.QueryRow(ctx, "INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id", name, email).Scan(&userID)
	require.NoError(t, err)

	return userID
}

func CreateTestItem(t *testing.T, db DBLike, ownerID int64, name, description string, available bool) int64 {
	t.Helper()

	ctx := context.Background()

	var itemID int64
	err := db.QueryRow(ctx,
		"INSERT INTO items (name, description, available, owner_id) VALUES ($1, $2, $3, $4) RETURNING id",
		name, description, available, ownerID).Scan(&itemID)
	require.NoError(t, err)

	return itemID
}

func CreateTestBooking(t *testing.T, db DBLike, itemID, bookerID int64, start, end time.Time, status string) int64 {
	t.Helper()

	ctx := context.Background()

	var bookingID int64
	err := db.QueryRow(ctx,
		"INSERT INTO bookings (item_id, booker_id, start_date, end_date, status) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		itemID, bookerID, start, end, status).Scan(&bookingID)
	require.NoError(t, err)

	return bookingID
}

func CreateTestRequest(t *testing.T, db DBLike, requestorID int64, description string) int64 {
	t.Helper()

	ctx := context.Background()

	var requestID int64
	err := db.QueryRow(ctx,
		"INSERT INTO requests (description, requestor_id, created) VALUES ($1, $2, $3) RETURNING id",
		description, requestorID, time.Now()).Scan(&requestID)
	require.NoError(t, err)

	return requestID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
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

	return nil
}
