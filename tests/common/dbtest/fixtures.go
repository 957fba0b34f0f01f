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

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestOwner(t *testing.T, db DBLike, email, role string, points int64) uuid.UUID {
	t.Helper()

	ownerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO owners (id, name, email, password_hash, role, points_balance) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (email) DO NOTHING",
		ownerID, "Test Owner", email, testPasswordHash, role, points)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM owners WHERE email = $1", email).Scan(&ownerID)
	}

	return ownerID
}

func CreateTestProperty(t *testing.T, db DBLike, name string, priceCents int64) uuid.UUID {
	t.Helper()

	propertyID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO properties (id, name, price_cents) VALUES ($1, $2, $3)",
		propertyID, name, priceCents)
	require.NoError(t, err)

	sharePrice := priceCents / 4
	for idx := 1; idx <= 4; idx++ {
		_, err := db.Exec(ctx,
			"INSERT INTO shares (property_id, idx, price_cents) VALUES ($1, $2, $3)",
			propertyID, idx, sharePrice)
		require.NoError(t, err)
	}

	return propertyID
}

func SetOwnerPoints(t *testing.T, db DBLike, ownerID uuid.UUID, points int64) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE owners SET points_balance = $1 WHERE id = $2", points, ownerID)
	require.NoError(t, err)
}

func OwnerPoints(t *testing.T, db DBLike, ownerID uuid.UUID) int64 {
	t.Helper()

	var points int64
	err := db.QueryRow(context.Background(),
		"SELECT points_balance FROM owners WHERE id = $1", ownerID).Scan(&points)
	require.NoError(t, err)
	return points
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO exchange_pricing (id, weekday_points, weekend_points)
		VALUES (1, 5, 10)
		ON CONFLICT (id) DO UPDATE SET weekday_points = 5, weekend_points = 10;
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
