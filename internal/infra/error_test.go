//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"scheduling-core/internal/infra"
	"scheduling-core/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		kind     []infra.RepositoryErrorKind
		wantKind infra.RepositoryErrorKind
		dbFailed bool
	}{
		{
			name:     "plain error is a db failure",
			err:      errors.New("connection reset"),
			wantKind: infra.KindDBFailure,
			dbFailed: true,
		},
		{
			name:     "unique violation",
			err:      &pgconn.PgError{Code: "23505"},
			wantKind: infra.KindDuplicateKey,
			dbFailed: true,
		},
		{
			name:     "foreign key violation",
			err:      &pgconn.PgError{Code: "23503"},
			wantKind: infra.KindForeignKeyViolated,
			dbFailed: true,
		},
		{
			name:     "explicit not found",
			err:      pgx.ErrNoRows,
			kind:     []infra.RepositoryErrorKind{infra.KindNotFound},
			wantKind: infra.KindNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tc.err, tc.kind...)

			assert.True(t, infra.IsKind(err, tc.wantKind))
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, tc.dbFailed, errors.Is(err, errs.ErrDatabaseOperationFailed))
		})
	}
}
