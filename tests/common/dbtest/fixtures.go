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

func CreateTestAdmin(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	adminID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO admins (id, name, email, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		adminID, "Test "+role, email, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM admins WHERE email = $1", email).Scan(&adminID)
	}

	return adminID
}

func CreateTestRetailer(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	retailerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO retailers (id, name, email, is_active) VALUES ($1, $2, $3, true) ON CONFLICT (email) DO NOTHING",
		retailerID, name, email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM retailers WHERE email = $1", email).Scan(&retailerID)
	}

	return retailerID
}

// CreateTestVoucher inserts an active voucher and returns its id.
func CreateTestVoucher(t *testing.T, db DBLike, vendor, category, supplierName string, amountCents int64) uuid.UUID {
	t.Helper()

	voucherID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO vouchers (id, name, category, vendor, supplier_name, amount_cents, status, pin, serial)
		 VALUES ($1, $2, $3, $4, $5, $6, 'active', $7, $8)`,
		voucherID, fmt.Sprintf("%s %s %d", vendor, category, amountCents), category, vendor, supplierName, amountCents,
		voucherID.String()[:8], "SN-"+voucherID.String()[:8])
	require.NoError(t, err)

	return voucherID
}

func SupplierIDByName(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM suppliers WHERE name = $1", name).Scan(&id)
	require.NoError(t, err)
	return id
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO suppliers (name, kind, catalog) VALUES
		    ('Flash', 'aggregator', 'mobile_data'),
		    ('OTT Mobile', 'ott', NULL),
		    ('Glocell', 'batch', NULL)
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO commission_groups (name, retailer_commission_pct, agent_commission_pct) VALUES
		    ('Default', 3.00, 1.00)
		ON CONFLICT (name) DO NOTHING;
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
