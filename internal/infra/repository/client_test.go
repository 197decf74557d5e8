//go:build unit

package repository_test

import (
	"context"
	"testing"

	"scheduling-core/internal/infra"
	"scheduling-core/internal/infra/repository"
	"scheduling-core/internal/infra/sqlstore"
	"scheduling-core/tests/common/builder"
	repositorymock "scheduling-core/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientDirectory_DisplayName(t *testing.T) {
	ctx := context.Background()
	clientID := builder.DefaultClientID

	testCases := []struct {
		name       string
		row        sqlstore.Clients
		queryErr   error
		expected   string
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: name returned", row: sqlstore.Clients{ID: clientID, DisplayName: "Jane Client"}, expected: "Jane Client"},
		{name: "error: unknown client", queryErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database failure", queryErr: assert.AnError, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockClientQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().GetClientByID(ctx, mockDB, clientID).Return(tc.row, tc.queryErr)

			got, err := repository.NewClientDirectory(mockQueries, mockDB).DisplayName(ctx, clientID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
