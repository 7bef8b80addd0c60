// Package postgres stores recipe attributes (tags, ingredients) with every
// query scoped by the owning user. The repository exposes no unscoped
// reads, so a caller cannot reach another owner's rows by construction.
package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/ikaro-souza/recipe-app-api/internal/pkg/config"
	"github.com/ikaro-souza/recipe-app-api/internal/pkg/pgtools"
	"github.com/ikaro-souza/recipe-app-api/internal/recipes/domain/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AttrsPostgresRepo struct {
	db    *pgxpool.Pool
	table string
}

func New(ctx context.Context, cfg config.PostgresDB, table string) (AttrsPostgresRepo, error) {
	connString := "postgres://" + cfg.Username + ":" + cfg.Password + "@" +
		cfg.Addr + "/" + cfg.DB + "?" + "sslmode=" + cfg.SSLmode + "&pool_max_conns=" + cfg.MaxConns

	db, err := pgtools.Connect(ctx, connString)
	if err != nil {
		return AttrsPostgresRepo{}, fmt.Errorf("connect to db error: %w", err)
	}

	if err := pgtools.ApplyMigration(cfg); err != nil {
		return AttrsPostgresRepo{}, fmt.Errorf("apply migration error: %w", err)
	}

	return AttrsPostgresRepo{
		db:    db,
		table: table,
	}, nil
}

// ListByOwner returns the owner's attributes ordered by name descending,
// ties broken by insertion order.
func (ar AttrsPostgresRepo) ListByOwner(ctx context.Context, ownerID int) (attrs []models.Attribute, err error) { //nolint:nonamedreturns
	tx, err := ar.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot begin transaction error: %w", err)
	}

	defer func() {
		err = pgtools.CommitOrRollback(ctx, tx, err, "list")
	}()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Select("id", "name").
		From(ar.table).
		Where(squirrel.Eq{"user_id": ownerID}).
		OrderBy("name DESC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("to sql error: %w", err)
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	attrs = make([]models.Attribute, 0, 10) //nolint:gomnd

	for rows.Next() {
		var a models.Attribute

		if err = rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}

		a.UserID = ownerID

		attrs = append(attrs, a)
	}

	return attrs, nil
}

// Create inserts the attribute for the owner recorded on it. The owner is
// stamped by the service from the authenticated user, never from the wire.
func (ar AttrsPostgresRepo) Create(ctx context.Context, attr models.Attribute) (created models.Attribute, err error) { //nolint:nonamedreturns
	tx, err := ar.db.Begin(ctx)
	if err != nil {
		return models.Attribute{}, fmt.Errorf("cannot begin transaction error: %w", err)
	}

	defer func() {
		err = pgtools.CommitOrRollback(ctx, tx, err, "create")
	}()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Insert(ar.table).
		Columns("user_id", "name").
		Values(attr.UserID, attr.Name).
		Suffix("RETURNING id").ToSql()
	if err != nil {
		return models.Attribute{}, fmt.Errorf("to sql error: %w", err)
	}

	if err = tx.QueryRow(ctx, query, args...).Scan(&attr.ID); err != nil {
		return models.Attribute{}, fmt.Errorf("scan error: %w", err)
	}

	return attr, nil
}

func (ar AttrsPostgresRepo) Shutdown(ctx context.Context) error {
	done := make(chan struct{})

	go func() {
		ar.db.Close()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("context error: %w", ctx.Err())
	case <-done:
		return nil
	}
}
