package salon

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
)

var hoursQuery = regexp.QuoteMeta("SELECT to_char(open_time, 'HH24:MI'), to_char(close_time, 'HH24:MI') FROM salons WHERE id = $1")

func TestRepository_GetOperatingHours(t *testing.T) {
	tests := []struct {
		name    string
		row     []driver.Value
		err     error
		want    *domain.TimeWindow
		wantErr error
	}{
		{
			name: "configured",
			row:  []driver.Value{"10:00", "20:00"},
			want: &domain.TimeWindow{Start: domain.MustClockTime(10, 0), End: domain.MustClockTime(20, 0)},
		},
		{
			name: "no restriction",
			row:  []driver.Value{nil, nil},
		},
		{
			name: "partially configured",
			row:  []driver.Value{"10:00", nil},
		},
		{
			name:    "unknown salon",
			err:     sql.ErrNoRows,
			wantErr: ErrSalonNotFound,
		},
		{
			name:    "broken value",
			row:     []driver.Value{"ten", "20:00"},
			wantErr: ErrInvalidHours,
		},
		{
			name:    "db failure",
			err:     errors.New("connection reset"),
			wantErr: ErrScanRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			exp := mock.ExpectQuery(hoursQuery).WithArgs(int64(5))
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnRows(sqlmock.NewRows([]string{"open_time", "close_time"}).AddRow(tt.row...))
			}

			got, err := NewRepository(db).GetOperatingHours(context.Background(), 5)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRepository_GetSlotInterval(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	query := regexp.QuoteMeta("SELECT slot_interval_minutes FROM salons WHERE id = $1")
	mock.ExpectQuery(query).WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"slot_interval_minutes"}).AddRow(15))
	mock.ExpectQuery(query).WithArgs(int64(6)).
		WillReturnRows(sqlmock.NewRows([]string{"slot_interval_minutes"}).AddRow(nil))
	mock.ExpectQuery(query).WithArgs(int64(7)).WillReturnError(sql.ErrNoRows)

	repo := NewRepository(db)

	interval, err := repo.GetSlotInterval(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 15, interval)

	interval, err = repo.GetSlotInterval(context.Background(), 6)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSlotIntervalMinutes, interval)

	_, err = repo.GetSlotInterval(context.Background(), 7)
	assert.ErrorIs(t, err, ErrSalonNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
