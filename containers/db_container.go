package containers

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const pgImage = "postgres:16.3-alpine"

// DBContainer wraps a throwaway postgres instance for db tests. The
// schema is applied through the container's init script hook, so every
// run starts from the same tables the app expects.
type DBContainer struct {
	pg *postgres.PostgresContainer
}

func NewDBContainer() *DBContainer {
	ctx := context.Background()

	// Postgres logs the ready line twice, once before and once after the
	// init scripts run. Waiting on the second occurrence avoids connecting
	// mid-initialization.
	ready := wait.ForLog("database system is ready to accept connections").
		WithOccurrence(2).
		WithStartupTimeout(5 * time.Second)

	pg, err := postgres.Run(ctx, pgImage,
		postgres.WithDatabase("ff_app"),
		postgres.WithUsername("ffuser"),
		postgres.WithPassword("secret"),
		postgres.WithInitScripts(filepath.Join("..", "schema", "schema.sql")),
		testcontainers.WithWaitStrategy(ready),
	)
	if err != nil {
		log.Fatalf("error starting postgres container: %v", err)
	}

	return &DBContainer{pg: pg}
}

func (c *DBContainer) Shutdown() {
	if err := c.pg.Terminate(context.Background()); err != nil {
		log.Fatalf("error terminating postgres container: %v", err)
	}
}

// ConnectionString returns a DSN for the running container. TLS is off
// since the stock image ships without certificates.
func (c *DBContainer) ConnectionString() string {
	connStr, err := c.pg.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		log.Fatalf("error getting connection string: %v", err)
	}
	return connStr
}
