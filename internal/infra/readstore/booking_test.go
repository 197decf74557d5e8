//go:build unit

package readstore

import (
	"context"
	"errors"
	"testing"

	"scheduling-core/internal/domain/timerange"
	"scheduling-core/internal/infra"
	"scheduling-core/internal/infra/sqlstore"
	"scheduling-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingViewQueries struct {
	mock.Mock
}

func (m *MockBookingViewQueries) GetBookingByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Bookings, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlstore.Bookings), args.Error(1)
}

func (m *MockBookingViewQueries) ListBookingsByProvider(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListBookingsByProviderParams) ([]sqlstore.Bookings, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlstore.Bookings), args.Error(1)
}

func (m *MockBookingViewQueries) ListActiveBookingsOverlapping(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListActiveBookingsOverlappingParams) ([]sqlstore.Bookings, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlstore.Bookings), args.Error(1)
}

func TestBookingReadStore_FindByID(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		mockReturn sqlstore.Bookings
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success",
			mockReturn: sqlstore.Bookings{ID: id, ProviderID: builder.DefaultProviderID, Status: "cancelled", Type: "appointment", DisplayName: "Jane"},
		},
		{
			name:      "not found",
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			mockError: errors.New("connection reset"),
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockBookingViewQueries)
			q.On("GetBookingByID", mock.Anything, nil, id).Return(tt.mockReturn, tt.mockError)
			store := NewBookingReadStore(q, nil)

			got, err := store.FindByID(context.Background(), id)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, id, got.ID())
				assert.True(t, got.IsCancelled())
				assert.Equal(t, "Jane", got.DisplayName())
			}
			q.AssertExpectations(t)
		})
	}
}

func TestBookingReadStore_ListByProvider(t *testing.T) {
	rng := timerange.Interval{Start: builder.At(0, 0), End: builder.At(23, 0)}
	q := new(MockBookingViewQueries)
	q.On("ListBookingsByProvider", mock.Anything, nil, mock.MatchedBy(func(arg sqlstore.ListBookingsByProviderParams) bool {
		return arg.ProviderID == builder.DefaultProviderID &&
			arg.From.Time.Equal(rng.Start) &&
			arg.To.Time.Equal(rng.End) &&
			arg.IncludeCancelled
	})).Return([]sqlstore.Bookings{
		{ID: uuid.New(), ProviderID: builder.DefaultProviderID, Status: "confirmed", Type: "appointment"},
		{ID: uuid.New(), ProviderID: builder.DefaultProviderID, Status: "cancelled", Type: "appointment"},
	}, nil)

	got, err := NewBookingReadStore(q, nil).ListByProvider(context.Background(), builder.DefaultProviderID, rng, true)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].IsActive())
	assert.True(t, got[1].IsCancelled())
	q.AssertExpectations(t)
}
