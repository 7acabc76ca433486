package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admesh/txflow/internal/domain"
)

const (
	postgresPort            = "5432"
	domainMigrationsPath    = "file://migrations"
	lifecycleMigrationsPath = "file://../../lifecycle/store/postgresql/migrations"
	dbName                  = "main_test"
	dbUsername              = "txflowuser"
	dbPassword              = "txflowpass"
)

var dbInfo string

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("failed to create pool: %v", err)
	}

	opts := dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15.4",
		Env: []string{
			fmt.Sprintf("POSTGRES_PASSWORD=%s", dbPassword),
			fmt.Sprintf("POSTGRES_USER=%s", dbUsername),
			fmt.Sprintf("POSTGRES_DB=%s", dbName),
			"listen_addresses = '*'",
		},
		ExposedPorts: []string{postgresPort},
	}

	resource, err := pool.RunWithOptions(&opts, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
		config.Tmpfs = map[string]string{
			"/var/lib/postgresql/data": "",
		}
	})
	if err != nil {
		log.Fatalf("failed to create resource: %v", err)
	}

	hostPort := resource.GetPort("5432/tcp")

	dbInfo = fmt.Sprintf("host=localhost port=%s user=%s password=%s dbname=%s sslmode=disable", hostPort, dbUsername, dbPassword, dbName)

	var postgresDB *PostgreSQL
	err = pool.Retry(func() error {
		postgresDB, err = New(dbInfo, 10, 10)
		if err != nil {
			return err
		}
		return postgresDB.db.Ping()
	})
	if err != nil {
		log.Fatalf("failed to connect to docker: %s", err)
	}

	runMigrations(postgresDB.db, lifecycleMigrationsPath, "txflow_schema_migrations")
	runMigrations(postgresDB.db, domainMigrationsPath, "txflow_domain_schema_migrations")

	code := m.Run()

	err = pool.Purge(resource)
	if err != nil {
		log.Fatalf("failed to purge pool: %v", err)
	}

	os.Exit(code)
}

func runMigrations(db *sql.DB, path string, table string) {
	driver, err := migratepostgres.WithInstance(db, &migratepostgres.Config{
		MigrationsTable: table,
	})
	if err != nil {
		log.Fatalf("failed to create driver: %v", err)
	}

	migrations, err := migrate.NewWithDatabaseInstance(path, "postgres", driver)
	if err != nil {
		log.Fatalf("failed to initialize migrate instance: %v", err)
	}
	err = migrations.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("failed to run migrations: %v", err)
	}
}

func pruneTables(db *sql.DB) error {
	for _, q := range []string{
		"TRUNCATE TABLE txflow.applied_transactions;",
		"TRUNCATE TABLE txflow.consent_grants;",
		"TRUNCATE TABLE txflow.campaigns;",
		"TRUNCATE TABLE txflow.transactions CASCADE;",
	} {
		_, err := db.Exec(q)
		if err != nil {
			return err
		}
	}
	return nil
}

func TestDomainPostgresDB(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	postgresDB, err := New(dbInfo, 10, 10, WithNow(func() time.Time {
		return now
	}))
	require.NoError(t, err)
	ctx := context.Background()
	defer func() {
		postgresDB.Close(ctx)
	}()

	t.Run("activate campaign once", func(t *testing.T) {
		defer require.NoError(t, pruneTables(postgresDB.db))

		_, err := postgresDB.db.Exec(
			"INSERT INTO txflow.campaigns (id, status, budget) VALUES ('cmp-1', 'funding', 500000);")
		require.NoError(t, err)

		applied, err := postgresDB.Activate(ctx, "cmp-1", "tx-1", "lh-1")
		require.NoError(t, err)
		require.True(t, applied)

		var status, fundingRef string
		err = postgresDB.db.QueryRow("SELECT status, funding_ref FROM txflow.campaigns WHERE id = 'cmp-1';").Scan(&status, &fundingRef)
		require.NoError(t, err)
		assert.Equal(t, "active", status)
		assert.Equal(t, "lh-1", fundingRef)

		// replay of the same confirmation is a no-op
		applied, err = postgresDB.Activate(ctx, "cmp-1", "tx-1", "lh-1")
		require.NoError(t, err)
		require.False(t, applied)
	})

	t.Run("add spend once per transaction", func(t *testing.T) {
		defer require.NoError(t, pruneTables(postgresDB.db))

		_, err := postgresDB.db.Exec(
			"INSERT INTO txflow.campaigns (id, status, budget, spent) VALUES ('cmp-2', 'active', 500000, 0);")
		require.NoError(t, err)

		applied, err := postgresDB.AddSpend(ctx, "cmp-2", "tx-2", 1250)
		require.NoError(t, err)
		require.True(t, applied)

		applied, err = postgresDB.AddSpend(ctx, "cmp-2", "tx-2", 1250)
		require.NoError(t, err)
		require.False(t, applied)

		var spent int64
		err = postgresDB.db.QueryRow("SELECT spent FROM txflow.campaigns WHERE id = 'cmp-2';").Scan(&spent)
		require.NoError(t, err)
		assert.Equal(t, int64(1250), spent)

		// a different transaction id adds on top
		applied, err = postgresDB.AddSpend(ctx, "cmp-2", "tx-3", 750)
		require.NoError(t, err)
		require.True(t, applied)

		err = postgresDB.db.QueryRow("SELECT spent FROM txflow.campaigns WHERE id = 'cmp-2';").Scan(&spent)
		require.NoError(t, err)
		assert.Equal(t, int64(2000), spent)
	})

	t.Run("mark payout items paid", func(t *testing.T) {
		defer require.NoError(t, pruneTables(postgresDB.db))

		_, err := postgresDB.db.Exec(`INSERT INTO txflow.transactions
			(id, kind, status, attempt, attempt_limit, payload, locked_by, created_at, updated_at)
			VALUES ('tx-4', 'payout_batch', 'confirmed', 0, 5, '{}', 'NONE', now(), now());`)
		require.NoError(t, err)

		_, err = postgresDB.db.Exec(`INSERT INTO txflow.payout_items
			(id, transaction_id, recipient, role, amount, paid) VALUES
			('item-1', 'tx-4', 'host-1', 'host', 1000, FALSE),
			('item-2', 'tx-4', 'ref-2', 'referrer', 250, FALSE),
			('item-3', 'tx-4', 'host-3', 'host', 500, TRUE);`)
		require.NoError(t, err)

		rows, err := postgresDB.MarkItemsPaid(ctx, "tx-4", now)
		require.NoError(t, err)
		require.Equal(t, int64(2), rows)

		// second run finds nothing unpaid
		rows, err = postgresDB.MarkItemsPaid(ctx, "tx-4", now)
		require.NoError(t, err)
		require.Equal(t, int64(0), rows)
	})

	t.Run("insert grant once", func(t *testing.T) {
		defer require.NoError(t, pruneTables(postgresDB.db))

		grant := &domain.ConsentGrant{
			UserID:        "usr-1",
			CampaignID:    "cmp-5",
			Scope:         "attribution",
			TransactionID: "tx-5",
			LedgerRef:     "lh-5",
			GrantedAt:     now,
		}

		inserted, err := postgresDB.InsertGrant(ctx, grant)
		require.NoError(t, err)
		require.True(t, inserted)

		inserted, err = postgresDB.InsertGrant(ctx, grant)
		require.NoError(t, err)
		require.False(t, inserted)

		var count int
		err = postgresDB.db.QueryRow("SELECT count(*) FROM txflow.consent_grants WHERE transaction_id = 'tx-5';").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
