// Package pgtest starts a throwaway PostgreSQL for integration suites and
// applies the production migrations to it.
package pgtest

import (
	"context"
	"fmt"
	"time"

	"quickbite/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables lists every table the migrations create, children first.
var Tables = []string{
	"deliveries",
	"order_lines",
	"orders",
	"cart_lines",
	"carts",
	"menu_items",
	"restaurants",
	"partners",
	"customer_addresses",
	"customers",
}

// Database is a migrated container plus a GORM handle on it.
type Database struct {
	Container *tcpostgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

// Start runs postgres:15-alpine, migrates it and connects GORM.
func Start(ctx context.Context) (*Database, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err := postgres.Migrate(dsn); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DB: db, DSN: dsn}, nil
}

// Truncate empties every table.
func (d *Database) Truncate() error {
	sql := "TRUNCATE TABLE "
	for i, t := range Tables {
		if i > 0 {
			sql += ", "
		}
		sql += t
	}
	return d.DB.Exec(sql + " CASCADE").Error
}

// Terminate stops the container. It is safe on a nil Database.
func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
