package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	root "newsroom"
	"newsroom/pkg/storage/postgres"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// One database serves the whole package; each test starts from an empty
// sessions table.
var shared struct {
	once      sync.Once
	container testcontainers.Container
	pg        *postgres.PgSQL
	err       error
}

func TestMain(m *testing.M) {
	code := m.Run()

	if shared.pg != nil {
		_ = shared.pg.Close()
	}
	if shared.container != nil {
		_ = shared.container.Terminate(context.Background())
	}
	os.Exit(code)
}

func startDatabase(ctx context.Context) (testcontainers.Container, *postgres.PgSQL, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "newsroom",
				"POSTGRES_PASSWORD": "newsroom",
				"POSTGRES_DB":       "sessions",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("could not start postgres: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return container, nil, fmt.Errorf("could not read postgres host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return container, nil, fmt.Errorf("could not read postgres port: %w", err)
	}

	pg, err := postgres.New(ctx, postgres.Options{
		Username:           "newsroom",
		Password:           "newsroom",
		Host:               host,
		Port:               port.Int(),
		Database:           "sessions",
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 4,
		MaxIdleConnections: 1,
	})
	if err != nil {
		return container, nil, err
	}

	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return container, pg, fmt.Errorf("could not set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, pg.DB.(*sql.DB), "migrations"); err != nil {
		return container, pg, fmt.Errorf("could not migrate sessions: %w", err)
	}

	return container, pg, nil
}

// testDB returns the package database with an empty sessions table.
func testDB(t *testing.T) *postgres.PgSQL {
	t.Helper()

	shared.once.Do(func() {
		shared.container, shared.pg, shared.err = startDatabase(context.Background())
	})
	require.NoError(t, shared.err)

	_, err := shared.pg.DB.ExecContext(context.Background(), "TRUNCATE sessions")
	require.NoError(t, err)

	return shared.pg
}
