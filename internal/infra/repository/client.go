package repository

import (
	"context"

	"scheduling-core/internal/infra"
	"scheduling-core/internal/infra/sqlstore"
	"scheduling-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ClientQueries interface {
	GetClientByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Clients, error)
}

// ClientDirectory reads client display names straight from Postgres.
type ClientDirectory struct {
	queries ClientQueries
	db      sqlstore.DBTX
}

func NewClientDirectory(queries ClientQueries, db sqlstore.DBTX) *ClientDirectory {
	return &ClientDirectory{queries: queries, db: db}
}

func (d *ClientDirectory) DisplayName(ctx context.Context, clientID uuid.UUID) (string, error) {
	row, err := d.queries.GetClientByID(ctx, d.db, clientID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to get client", err)
	}
	return row.DisplayName, nil
}
