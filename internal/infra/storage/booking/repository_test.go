package booking

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
)

func TestRepository_ListActiveBookings(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	from := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	end := from.Add(11 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM bookings WHERE provider_id IN ($1,$2) AND status NOT IN ($3,$4,$5) AND start_at < $6 "+
			"AND COALESCE(end_at, start_at + interval '60 minutes') > $7 ORDER BY provider_id ASC, start_at ASC")).
		WithArgs(int64(1), int64(2), "cancelled_by_client", "cancelled_by_salon", "no_show", to, from).
		WillReturnRows(sqlmock.NewRows([]string{"id", "provider_id", "start_at", "end_at", "status"}).
			AddRow(int64(10), int64(1), from.Add(10*time.Hour), end, "confirmed").
			AddRow(int64(11), int64(2), from.Add(14*time.Hour), nil, "pending"))

	bookings, err := NewRepository(db).ListActiveBookings(context.Background(), []int64{1, 2}, from, to)
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	assert.Equal(t, domain.StatusConfirmed, bookings[0].Status)
	require.NotNil(t, bookings[0].EndAt)
	assert.Equal(t, end, *bookings[0].EndAt)
	assert.Nil(t, bookings[1].EndAt)
	assert.Equal(t, from.Add(15*time.Hour), bookings[1].EffectiveEnd())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListActiveBookings_NoProviders(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	bookings, err := NewRepository(db).ListActiveBookings(context.Background(), nil, time.Now(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListActiveBookings_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings")).WillReturnError(errors.New("i/o timeout"))

	_, err = NewRepository(db).ListActiveBookings(context.Background(), []int64{1}, time.Now(), time.Now())
	assert.ErrorIs(t, err, ErrExecQuery)
}
