package sqlstore

import (
	"context"

	"github.com/google/uuid"
)

const getClientByID = `-- name: GetClientByID :one
SELECT id, display_name, email, phone, created_at
FROM clients
WHERE id = $1`

func (q *Queries) GetClientByID(ctx context.Context, db DBTX, id uuid.UUID) (Clients, error) {
	row := db.QueryRow(ctx, getClientByID, id)
	var i Clients
	err := row.Scan(
		&i.ID,
		&i.DisplayName,
		&i.Email,
		&i.Phone,
		&i.CreatedAt,
	)
	return i, err
}
